// Package graphicsstate provides PDF path construction, path shape
// classification and the graphics state carried by paint events.
//
// # Paths
//
// A [Path] records the segments of a path in content stream order, each
// tagged with its operator:
//
//	p := graphicsstate.NewPath()
//	p.MoveTo(0, 0)   // m
//	p.LineTo(10, 0)  // l
//	p.Shape()        // "ml"
//
// The re operator expands to "mlllh".
//
// # Classification
//
// [ClassifyPath] turns a painted path into a layout node. The shape signature
// decides the kind:
//
//   - "ml" - a [model.Line]
//   - "mlllh" forming an axis-aligned rectangle after transformation - a [model.Rect]
//   - anything else - a [model.Polygon] of every coordinate pair
//
// # Graphics State
//
// [GraphicsState] tracks the CTM and stroke attributes with a q/Q stack:
//
//	gs := graphicsstate.NewGraphicsState()
//	gs.Save()              // q
//	gs.Transform(matrix)   // cm
//	gs.SetLineWidth(2)     // w
//	gs.Restore()           // Q
package graphicsstate
