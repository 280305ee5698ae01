package edgeio

import (
	"bufio"
	"fmt"
	"os"

	"github.com/lpirl-go/graphgolf/core"
)

// Write persists g's edges to path, one "<u> <v>\n" line per edge, u<v.
func Write(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("edgeio: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "%d %d\n", e.U, e.V); err != nil {
			return fmt.Errorf("edgeio: write %s: %w", path, err)
		}
	}
	return w.Flush()
}

// OutputFilename formats the conventional result filename for a graph of
// the given order and degree once analyzed: "edges-order=<N>-degree=<k>-
// diameter=<d>-aspl=<x>".
func OutputFilename(g *core.Graph) string {
	return fmt.Sprintf("edges-order=%d-degree=%d-diameter=%d-aspl=%v",
		g.Order(), g.Degree(), g.Diameter(), g.ASPL())
}
