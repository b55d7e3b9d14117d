package diagram

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/mps/pkg/chord"
)

// Colors used in the diagram.
const (
	planColor  = "#d7263d"
	otherColor = "#b0b0b0"
)

// nodeSpacing is the arc length between neighboring positions, in inches.
const nodeSpacing = 0.35

// MinRadius is the smallest circle radius, in inches.
const MinRadius = 1.5

// Options configures chord diagram rendering.
type Options struct {
	// Radius is the circle radius in inches. Zero sizes the circle so
	// neighboring positions sit nodeSpacing apart, but never below MinRadius.
	Radius float64

	// Labels prints position numbers inside the nodes. When false,
	// positions are drawn as small points.
	Labels bool

	// OnlyPlan omits chords outside the planar subset.
	OnlyPlan bool
}

// RadiusFor returns the automatic radius for n positions.
func RadiusFor(n int) float64 {
	r := float64(n) * nodeSpacing / (2 * math.Pi)
	return math.Max(r, MinRadius)
}

// ToDOT converts a chord set and its planar subset to an undirected
// Graphviz graph with pinned node positions.
// Pairs in plan that are not chords of s are ignored.
func ToDOT(s *chord.Set, plan []chord.Pair, opts Options) string {
	n := s.Len()
	radius := opts.Radius
	if radius <= 0 {
		radius = RadiusFor(n)
	}

	chosen := make(map[int]bool, len(plan))
	for _, p := range plan {
		if s.Contains(p) {
			chosen[p.Head] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph chords {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	if opts.Labels {
		buf.WriteString("  node [shape=circle, fixedsize=true, width=0.3, style=filled, fillcolor=white, fontsize=10];\n")
	} else {
		buf.WriteString("  node [shape=point, width=0.08];\n")
	}
	buf.WriteString("\n")

	for p := 0; p < n; p++ {
		x, y := position(p, n, radius)
		fmt.Fprintf(&buf, "  %d [pos=\"%.3f,%.3f!\"];\n", p, x, y)
	}

	buf.WriteString("\n")
	for _, c := range s.Pairs() {
		if chosen[c.Head] {
			fmt.Fprintf(&buf, "  %d -- %d [color=%q, penwidth=2.5];\n", c.Head, c.Tail, planColor)
		} else if !opts.OnlyPlan {
			fmt.Fprintf(&buf, "  %d -- %d [color=%q, penwidth=1];\n", c.Head, c.Tail, otherColor)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// position places p on the circle, clockwise from twelve o'clock.
func position(p, n int, radius float64) (x, y float64) {
	theta := 2 * math.Pi * float64(p) / float64(n)
	return radius * math.Sin(theta), radius * math.Cos(theta)
}
