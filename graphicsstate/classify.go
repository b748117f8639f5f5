package graphicsstate

import (
	"github.com/tsawler/pdflayout/model"
)

// Shape signatures with a dedicated node kind
const (
	shapeLine = "ml"
	shapeRect = "mlllh"
)

// ClassifyPath maps a painted path to device space through ctm and returns
// the node it represents: a Line for "ml", a Rect for an axis-aligned
// "mlllh", and a Polygon of every coordinate pair otherwise.
//
// Only the exact signatures are recognized. A rectangle traced without the
// closing h, or as "mllll", is kept as a polygon.
func ClassifyPath(ctm model.Matrix, lineWidth float64, path *Path) model.Node {
	switch path.Shape() {
	case shapeLine:
		p0 := ctm.Apply(path.Segments[0].Points[0])
		p1 := ctm.Apply(path.Segments[1].Points[0])
		return model.NewLine(lineWidth, p0, p1)

	case shapeRect:
		var c [4]model.Point
		for i := range c {
			c[i] = ctm.Apply(path.Segments[i].Points[0])
		}
		if isAxisAlignedRect(c) {
			return model.NewRect(lineWidth, model.NewBBox(c[0].X, c[0].Y, c[2].X, c[2].Y))
		}
	}

	pts := path.Points()
	for i := range pts {
		pts[i] = ctm.Apply(pts[i])
	}
	return model.NewPolygon(lineWidth, pts)
}

// isAxisAlignedRect reports whether four corners, in drawing order, trace an
// axis-aligned rectangle starting with either a vertical or a horizontal edge.
func isAxisAlignedRect(c [4]model.Point) bool {
	verticalFirst := c[0].X == c[1].X && c[1].Y == c[2].Y && c[2].X == c[3].X && c[3].Y == c[0].Y
	horizontalFirst := c[0].Y == c[1].Y && c[1].X == c[2].X && c[2].Y == c[3].Y && c[3].X == c[0].X
	return verticalFirst || horizontalFirst
}
