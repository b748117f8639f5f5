package model

import (
	"fmt"
	"math"
)

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox is an axis-aligned bounding box. Constructors always normalize it so
// that X0 <= X1 and Y0 <= Y1.
type BBox struct {
	X0, Y0 float64 // Lower-left corner (PDF coordinate system)
	X1, Y1 float64 // Upper-right corner
}

// NewBBox creates a normalized bounding box from two corners given in any order
func NewBBox(x0, y0, x1, y1 float64) BBox {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// BBoxFromPoints returns the smallest box containing all points.
// An empty point list yields the zero box.
func BBoxFromPoints(points ...Point) BBox {
	if len(points) == 0 {
		return BBox{}
	}

	b := BBox{X0: points[0].X, Y0: points[0].Y, X1: points[0].X, Y1: points[0].Y}
	for _, p := range points[1:] {
		b.X0 = math.Min(b.X0, p.X)
		b.Y0 = math.Min(b.Y0, p.Y)
		b.X1 = math.Max(b.X1, p.X)
		b.Y1 = math.Max(b.Y1, p.Y)
	}
	return b
}

// Width returns the horizontal extent
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent
func (b BBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width() * b.Height()
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Union returns the smallest box containing both boxes
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0: math.Min(b.X0, other.X0),
		Y0: math.Min(b.Y0, other.Y0),
		X1: math.Max(b.X1, other.X1),
		Y1: math.Max(b.Y1, other.Y1),
	}
}

// HOverlap returns the length of the horizontal overlap with another box,
// or 0 when the boxes do not overlap horizontally.
func (b BBox) HOverlap(other BBox) float64 {
	return math.Max(0, math.Min(b.X1, other.X1)-math.Max(b.X0, other.X0))
}

// VOverlap returns the length of the vertical overlap with another box,
// or 0 when the boxes do not overlap vertically.
func (b BBox) VOverlap(other BBox) float64 {
	return math.Max(0, math.Min(b.Y1, other.Y1)-math.Max(b.Y0, other.Y0))
}

// IsHOverlap reports whether the boxes overlap or touch horizontally
func (b BBox) IsHOverlap(other BBox) bool {
	return other.X0 <= b.X1 && b.X0 <= other.X1
}

// IsVOverlap reports whether the boxes overlap or touch vertically
func (b BBox) IsVOverlap(other BBox) bool {
	return other.Y0 <= b.Y1 && b.Y0 <= other.Y1
}

// HDistance returns the horizontal gap between two boxes (0 if they overlap)
func (b BBox) HDistance(other BBox) float64 {
	if b.IsHOverlap(other) {
		return 0
	}
	return math.Min(math.Abs(b.X0-other.X1), math.Abs(b.X1-other.X0))
}

// VDistance returns the vertical gap between two boxes (0 if they overlap)
func (b BBox) VDistance(other BBox) float64 {
	if b.IsVOverlap(other) {
		return 0
	}
	return math.Min(math.Abs(b.Y0-other.Y1), math.Abs(b.Y1-other.Y0))
}

// String formats the box as "x0,y0,x1,y1" with three decimals
func (b BBox) String() string {
	return fmt.Sprintf("%.3f,%.3f,%.3f,%.3f", b.X0, b.Y0, b.X1, b.Y1)
}

// Matrix represents a 2D affine transformation matrix [a b c d e f]
type Matrix [6]float64

// Identity returns an identity matrix
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Apply transforms a point by the matrix
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Multiply returns m followed by other: applying the result equals applying
// m first and then other.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// Translate creates a translation matrix
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale creates a scaling matrix
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate creates a rotation matrix (angle in radians)
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// IsIdentity returns true if the matrix is an identity matrix
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
