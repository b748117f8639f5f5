package graphicsstate

import (
	"strings"

	"github.com/tsawler/pdflayout/model"
)

// Path operators as they appear in a shape signature
const (
	OpMoveTo    byte = 'm'
	OpLineTo    byte = 'l'
	OpCurveTo   byte = 'c'
	OpCurveToV  byte = 'v'
	OpCurveToY  byte = 'y'
	OpClosePath byte = 'h'
)

// PathSegment is one operator of a path and the points it carries
type PathSegment struct {
	Op byte

	// m, l: one point. c: two control points and the end point.
	// v, y: one control point and the end point. h: none.
	Points []model.Point
}

// Path is a path under construction, in user space
type Path struct {
	Segments []PathSegment

	// CurrentPoint is the current point in user space
	CurrentPoint model.Point

	// SubpathStart is the start of the current subpath (for closepath)
	SubpathStart model.Point

	// HasCurrentPoint indicates if a current point has been set
	HasCurrentPoint bool
}

// NewPath creates a new empty path
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the specified point (m operator)
func (p *Path) MoveTo(x, y float64) {
	pt := model.Point{X: x, Y: y}
	p.Segments = append(p.Segments, PathSegment{Op: OpMoveTo, Points: []model.Point{pt}})
	p.CurrentPoint = pt
	p.SubpathStart = pt
	p.HasCurrentPoint = true
}

// LineTo appends a line segment from the current point to (x, y) (l operator)
func (p *Path) LineTo(x, y float64) {
	if !p.HasCurrentPoint {
		p.MoveTo(x, y)
		return
	}

	pt := model.Point{X: x, Y: y}
	p.Segments = append(p.Segments, PathSegment{Op: OpLineTo, Points: []model.Point{pt}})
	p.CurrentPoint = pt
}

// CurveTo appends a cubic Bézier curve (c operator)
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !p.HasCurrentPoint {
		p.MoveTo(x1, y1)
	}

	p.Segments = append(p.Segments, PathSegment{
		Op:     OpCurveTo,
		Points: []model.Point{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}},
	})
	p.CurrentPoint = model.Point{X: x3, Y: y3}
}

// CurveToV appends a curve whose first control point is the current point (v operator)
func (p *Path) CurveToV(x2, y2, x3, y3 float64) {
	if !p.HasCurrentPoint {
		return
	}

	p.Segments = append(p.Segments, PathSegment{
		Op:     OpCurveToV,
		Points: []model.Point{{X: x2, Y: y2}, {X: x3, Y: y3}},
	})
	p.CurrentPoint = model.Point{X: x3, Y: y3}
}

// CurveToY appends a curve whose second control point is the end point (y operator)
func (p *Path) CurveToY(x1, y1, x3, y3 float64) {
	if !p.HasCurrentPoint {
		return
	}

	p.Segments = append(p.Segments, PathSegment{
		Op:     OpCurveToY,
		Points: []model.Point{{X: x1, Y: y1}, {X: x3, Y: y3}},
	})
	p.CurrentPoint = model.Point{X: x3, Y: y3}
}

// ClosePath closes the current subpath (h operator)
func (p *Path) ClosePath() {
	if !p.HasCurrentPoint {
		return
	}

	p.Segments = append(p.Segments, PathSegment{Op: OpClosePath})
	p.CurrentPoint = p.SubpathStart
}

// Rectangle appends a rectangle as a complete subpath (re operator)
func (p *Path) Rectangle(x, y, width, height float64) {
	p.MoveTo(x, y)
	p.LineTo(x+width, y)
	p.LineTo(x+width, y+height)
	p.LineTo(x, y+height)
	p.ClosePath()
}

// Clear resets the path
func (p *Path) Clear() {
	p.Segments = p.Segments[:0]
	p.HasCurrentPoint = false
}

// IsEmpty returns true if the path has no segments
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Shape returns the operator signature of the path, e.g. "mlllh"
func (p *Path) Shape() string {
	var sb strings.Builder
	for _, seg := range p.Segments {
		sb.WriteByte(seg.Op)
	}
	return sb.String()
}

// Points returns every coordinate pair of every segment, in order
func (p *Path) Points() []model.Point {
	var pts []model.Point
	for _, seg := range p.Segments {
		pts = append(pts, seg.Points...)
	}
	return pts
}
