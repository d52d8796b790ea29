package rectray

import (
	"fmt"
	"os"
)

// walkStats holds per-tick walker metrics.
// Only populated when Scene.debug is true.
type walkStats struct {
	nodes     int
	peakQueue int
}

// debugLog prints walker stats to stderr.
func (s *Scene) debugLog() {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[rectray] nodes: %d | peak queue: %d\n",
		s.stats.nodes, s.stats.peakQueue)
}

// debugCheckDisposed panics with a descriptive message when a disposed
// node is used in a tree operation. Only called when a Scene is in
// debug mode. In release mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("rectray debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[rectray] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[rectray] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
