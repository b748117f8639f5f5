// Package model defines the layout tree produced from a page's content
// stream events.
//
// The tree is made of a closed set of node kinds. Pages and figures come
// straight from the event stream; text lines, text boxes and text groups
// are produced only by layout analysis.
//
//	page := model.NewPage(1, model.NewBBox(0, 0, 612, 792), 0)
//	page.Add(model.NewLine(1, model.Point{X: 0, Y: 0}, model.Point{X: 10, Y: 0}))
//
// # Geometry
//
//   - [Point] - 2D point
//   - [BBox] - normalized bounding box (X0 <= X1, Y0 <= Y1)
//   - [Matrix] - 2D affine transformation matrix
//
// # Nodes
//
// Every node implements [Node]. Renderers switch over the concrete types:
//
//   - [Page], [Figure] - event containers
//   - [Line], [Rect], [Polygon] - painted paths
//   - [Image] - an image placed inside a figure
//   - [Char] - a single placed glyph
//   - [Anon] - text inserted by layout analysis (word spaces, line ends)
//   - [TextLine], [TextBox], [TextGroup] - layout analysis groupings
package model
