package edgeio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lpirl-go/graphgolf/core"
)

// Read loads a graph of the given order and degree from an edge-list file
// at path. Every line must be "<u> <v>", decimal vertex IDs in [0,order);
// trailing whitespace is tolerated, blank lines are skipped. No random
// completion runs afterward — per spec, a loaded graph is used as-is, free
// ports and all.
func Read(path string, order, degree int) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgeio: open %s: %w", path, err)
	}
	defer f.Close()

	return decode(f, order, degree)
}

func decode(r io.Reader, order, degree int) (*core.Graph, error) {
	g := core.New(order, degree)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("edgeio: line %d: expected \"<u> <v>\", got %q", lineNo, line)
		}

		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("edgeio: line %d: invalid vertex id %q: %w", lineNo, fields[0], err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("edgeio: line %d: invalid vertex id %q: %w", lineNo, fields[1], err)
		}
		if u < 0 || u >= order || v < 0 || v >= order {
			return nil, fmt.Errorf("edgeio: line %d: vertex id out of range [0,%d)", lineNo, order)
		}
		if u == v {
			return nil, fmt.Errorf("edgeio: line %d: self-loop %d-%d", lineNo, u, v)
		}
		if g.Vertex(u).Degree() >= degree || g.Vertex(v).Degree() >= degree {
			return nil, fmt.Errorf("edgeio: line %d: edge %d-%d exceeds degree %d", lineNo, u, v, degree)
		}
		if hasEdge(g, u, v) {
			return nil, fmt.Errorf("edgeio: line %d: duplicate edge %d-%d", lineNo, u, v)
		}

		g.AddEdgeUnsafe(u, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("edgeio: read: %w", err)
	}

	return g, nil
}

func hasEdge(g *core.Graph, u, v int) bool {
	for _, n := range g.Vertex(u).Neighbors() {
		if n == v {
			return true
		}
	}
	return false
}
