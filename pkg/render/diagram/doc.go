// Package diagram draws a chord set as a circle diagram using Graphviz.
//
// Every position 0..2N-1 becomes a node pinned on a circle, clockwise from
// the top. Every chord becomes an undirected edge; chords of the planar
// subset are drawn thick and colored, the rest thin and grey. Positions are
// fixed with neato's pos="x,y!" attribute so Graphviz only routes edges:
//
//	Set + plan → ToDOT() → DOT → RenderSVG() → SVG → render.ToPDF/ToPNG
//
// The DOT text is the intermediate representation and can be written out
// directly (format "dot") or rendered with any Graphviz installation:
//
//	neato -Tsvg chords.dot > chords.svg
//
// [Render] dispatches on output format.
package diagram
