package edgeio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lpirl-go/graphgolf/core"
	"github.com/lpirl-go/graphgolf/edgeio"
	"github.com/stretchr/testify/require"
)

func TestReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.txt")

	require.NoError(t, os.WriteFile(path, []byte("0 1\n1 2  \n2 0\n"), 0o644))

	g, err := edgeio.Read(path, 3, 2)
	require.NoError(t, err)
	require.NoError(t, g.Analyze())
	require.Equal(t, 1, g.Diameter())

	outPath := filepath.Join(dir, "out.txt")
	require.NoError(t, edgeio.Write(outPath, g))

	g2, err := edgeio.Read(outPath, 3, 2)
	require.NoError(t, err)
	require.ElementsMatch(t, g.Edges(), g2.Edges())
}

func TestReadToleratesBlankLinesAndTrailingWhitespace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n0 1 \n\n1 2\n"), 0o644))

	g, err := edgeio.Read(path, 3, 2)
	require.NoError(t, err)
	require.Len(t, g.Edges(), 2)
}

func TestReadRejectsOutOfRangeVertex(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 5\n"), 0o644))

	_, err := edgeio.Read(path, 3, 2)
	require.Error(t, err)
}

func TestReadRejectsSelfLoop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 1\n"), 0o644))

	_, err := edgeio.Read(path, 3, 2)
	require.Error(t, err)
}

func TestReadRejectsDuplicateEdge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1\n1 0\n"), 0o644))

	_, err := edgeio.Read(path, 3, 2)
	require.Error(t, err)
}

func TestReadRejectsDegreeOverflow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1\n0 2\n0 3\n"), 0o644))

	_, err := edgeio.Read(path, 4, 2)
	require.Error(t, err)
}

func TestOutputFilenameFormat(t *testing.T) {
	g := core.New(4, 2)
	g.AddEdgeUnsafe(0, 1)
	g.AddEdgeUnsafe(1, 2)
	g.AddEdgeUnsafe(2, 3)
	g.AddEdgeUnsafe(3, 0)
	require.NoError(t, g.Analyze())

	name := edgeio.OutputFilename(g)
	require.Equal(t, "edges-order=4-degree=2-diameter=2-aspl=1.3333333333333333", name)
}
