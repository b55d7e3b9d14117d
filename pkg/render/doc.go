// Package render turns solve results into images.
//
// The [diagram] subpackage draws a chord set on a circle with Graphviz and
// highlights a planar subset. This package holds the format list shared by
// the CLI, the pipeline and the HTTP server, and the SVG conversion used
// for raster and print output:
//
//	svg, err := diagram.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// [ToPDF] and [ToPNG] shell out to rsvg-convert from librsvg.
//
// [diagram]: github.com/matzehuels/mps/pkg/render/diagram
package render
