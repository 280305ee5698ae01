package controller_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lpirl-go/graphgolf/controller"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestValidateRejectsTooSmallOrder(t *testing.T) {
	cfg := controller.Config{Order: 1, Degree: 2}
	require.ErrorIs(t, cfg.Validate(), controller.ErrInvalidConfig)
}

func TestValidateRejectsTooSmallDegree(t *testing.T) {
	cfg := controller.Config{Order: 5, Degree: 1}
	require.ErrorIs(t, cfg.Validate(), controller.ErrInvalidConfig)
}

func TestValidateRejectsDegreeNotBelowOrder(t *testing.T) {
	cfg := controller.Config{Order: 5, Degree: 5}
	require.ErrorIs(t, cfg.Validate(), controller.ErrInvalidConfig)
}

func TestValidateAcceptsReasonableConfig(t *testing.T) {
	cfg := controller.Config{Order: 32, Degree: 4}
	require.NoError(t, cfg.Validate())
}

// TestRunOnceTerminatesAndPersists exercises the full tournament loop in
// one-shot mode against a small graph, where at least one enhancer should
// be able to find an improvement quickly, and checks the output file
// named per spec.md §6 appears in the working directory.
func TestRunOnceTerminatesAndPersists(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	cfg := controller.Config{Order: 12, Degree: 3, Once: true, Seed: 1234}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, controller.Run(ctx, cfg, zerolog.Nop()))

	matches, err := filepath.Glob("edges-order=12-degree=3-*")
	require.NoError(t, err)
	require.Len(t, matches, 1)
}

func TestRunInvalidConfigReturnsError(t *testing.T) {
	cfg := controller.Config{Order: 1, Degree: 1}
	err := controller.Run(context.Background(), cfg, zerolog.Nop())
	require.ErrorIs(t, err, controller.ErrInvalidConfig)
}

func TestRunRespectsAlreadyCancelledContext(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	cfg := controller.Config{Order: 12, Degree: 3, Seed: 1}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, controller.Run(ctx, cfg, zerolog.Nop()))

	matches, err := filepath.Glob("edges-order=12-degree=3-*")
	require.NoError(t, err)
	require.Len(t, matches, 1)
}
