package graphicsstate

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/tsawler/pdflayout/model"
)

func pathFrom(shape string, pts ...model.Point) *Path {
	p := NewPath()
	i := 0
	for _, op := range []byte(shape) {
		switch op {
		case OpMoveTo:
			p.MoveTo(pts[i].X, pts[i].Y)
			i++
		case OpLineTo:
			p.LineTo(pts[i].X, pts[i].Y)
			i++
		case OpClosePath:
			p.ClosePath()
		}
	}
	return p
}

func TestClassifyPath_HorizontalLine(t *testing.T) {
	path := pathFrom("ml", model.Point{X: 0, Y: 0}, model.Point{X: 10, Y: 0})
	n := ClassifyPath(model.Identity(), 1, path)

	line, ok := n.(*model.Line)
	if !ok {
		t.Fatalf("Expected *model.Line, got %T", n)
	}
	if line.P0 != (model.Point{X: 0, Y: 0}) || line.P1 != (model.Point{X: 10, Y: 0}) {
		t.Errorf("Unexpected endpoints %+v %+v", line.P0, line.P1)
	}
	if line.LineWidth != 1 {
		t.Errorf("Expected line width 1, got %v", line.LineWidth)
	}
}

func TestClassifyPath_Rectangle(t *testing.T) {
	path := pathFrom("mlllh",
		model.Point{X: 0, Y: 0}, model.Point{X: 10, Y: 0},
		model.Point{X: 10, Y: 5}, model.Point{X: 0, Y: 5})
	n := ClassifyPath(model.Identity(), 2, path)

	rect, ok := n.(*model.Rect)
	if !ok {
		t.Fatalf("Expected *model.Rect, got %T", n)
	}
	if rect.BBox != model.NewBBox(0, 0, 10, 5) {
		t.Errorf("Expected bbox (0,0,10,5), got %+v", rect.BBox)
	}
}

func TestClassifyPath_ReversedRectangleIsNormalized(t *testing.T) {
	path := NewPath()
	path.Rectangle(10, 5, -10, -5)
	n := ClassifyPath(model.Identity(), 1, path)

	rect, ok := n.(*model.Rect)
	if !ok {
		t.Fatalf("Expected *model.Rect, got %T", n)
	}
	if rect.BBox != model.NewBBox(0, 0, 10, 5) {
		t.Errorf("Expected normalized bbox, got %+v", rect.BBox)
	}
}

func TestClassifyPath_TransformsPoints(t *testing.T) {
	path := pathFrom("ml", model.Point{X: 1, Y: 1}, model.Point{X: 2, Y: 1})
	ctm := model.Matrix{2, 0, 0, 2, 100, 100}
	line := ClassifyPath(ctm, 1, path).(*model.Line)

	if line.P0 != (model.Point{X: 102, Y: 102}) || line.P1 != (model.Point{X: 104, Y: 102}) {
		t.Errorf("Points not transformed: %+v %+v", line.P0, line.P1)
	}
}

func TestClassifyPath_RotatedRectangleIsPolygon(t *testing.T) {
	path := pathFrom("mlllh",
		model.Point{X: 0, Y: 0}, model.Point{X: 10, Y: 0},
		model.Point{X: 10, Y: 5}, model.Point{X: 0, Y: 5})
	n := ClassifyPath(model.Rotate(0.3), 1, path)

	poly, ok := n.(*model.Polygon)
	if !ok {
		t.Fatalf("Expected *model.Polygon, got %T", n)
	}
	if len(poly.Vertices) != 4 {
		t.Errorf("Expected 4 vertices, got %d", len(poly.Vertices))
	}
}

func TestClassifyPath_SignatureMustMatchExactly(t *testing.T) {
	corners := []model.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 0, Y: 5}, {X: 0, Y: 0}}

	tests := []struct {
		name  string
		shape string
		pts   []model.Point
	}{
		{"unclosed rectangle", "mlll", corners[:4]},
		{"rectangle closed by lineto", "mllll", corners},
		{"single point", "m", corners[:1]},
		{"closed line", "mlh", corners[:2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := ClassifyPath(model.Identity(), 1, pathFrom(tt.shape, tt.pts...))
			poly, ok := n.(*model.Polygon)
			if !ok {
				t.Fatalf("Expected *model.Polygon, got %T", n)
			}
			if !reflect.DeepEqual(poly.Vertices, tt.pts) {
				t.Errorf("Vertices = %v, want %v", poly.Vertices, tt.pts)
			}
		})
	}
}

func TestClassifyPath_CurvesFlattenToPolygon(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.CurveTo(1, 2, 3, 4, 5, 6)
	p.ClosePath()

	poly, ok := ClassifyPath(model.Identity(), 1, p).(*model.Polygon)
	if !ok {
		t.Fatal("Expected polygon for curved path")
	}
	want := []model.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}
	if !reflect.DeepEqual(poly.Vertices, want) {
		t.Errorf("Vertices = %v, want %v", poly.Vertices, want)
	}
}

// rectOracle decides from edge directions whether four corners, closed back
// to the first, alternate between vertical and horizontal edges.
func rectOracle(c []model.Point) bool {
	vertical := make([]bool, 4)
	horizontal := make([]bool, 4)
	for i := 0; i < 4; i++ {
		a, b := c[i], c[(i+1)%4]
		vertical[i] = a.X == b.X
		horizontal[i] = a.Y == b.Y
	}
	vFirst, hFirst := true, true
	for i := 0; i < 4; i++ {
		if i%2 == 0 {
			vFirst = vFirst && vertical[i]
			hFirst = hFirst && horizontal[i]
		} else {
			vFirst = vFirst && horizontal[i]
			hFirst = hFirst && vertical[i]
		}
	}
	return vFirst || hFirst
}

func TestClassifyPath_RectangleProperty(t *testing.T) {
	ctm := model.Matrix{2, 0, 0, 3, 7, -4}

	// Generated rectangles: any corner order that walks the edges
	rects := func(x0, y0, x1, y1 float64, verticalFirst bool) bool {
		var c []model.Point
		if verticalFirst {
			c = []model.Point{{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}}
		} else {
			c = []model.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
		}
		n := ClassifyPath(ctm, 1, pathFrom("mlllh", c...))
		rect, ok := n.(*model.Rect)
		if !ok {
			return false
		}
		p0, p2 := ctm.Apply(c[0]), ctm.Apply(c[2])
		return rect.BBox == model.NewBBox(p0.X, p0.Y, p2.X, p2.Y) &&
			rect.BBox.X0 <= rect.BBox.X1 && rect.BBox.Y0 <= rect.BBox.Y1
	}
	if err := quick.Check(rects, nil); err != nil {
		t.Errorf("axis-aligned rectangles: %v", err)
	}

	// Arbitrary quadrilaterals drawn from a small grid, checked against the oracle
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5000; i++ {
		c := make([]model.Point, 4)
		for j := range c {
			c[j] = model.Point{X: float64(rng.Intn(3)), Y: float64(rng.Intn(3))}
		}
		n := ClassifyPath(model.Identity(), 1, pathFrom("mlllh", c...))
		_, isRect := n.(*model.Rect)
		_, isPoly := n.(*model.Polygon)
		if isRect != rectOracle(c) {
			t.Fatalf("corners %v: got %T, oracle says rect=%v", c, n, rectOracle(c))
		}
		if !isRect && !isPoly {
			t.Fatalf("corners %v: unexpected kind %T", c, n)
		}
	}

	// Two-point open paths are always lines
	lines := func(x0, y0, x1, y1 float64) bool {
		_, ok := ClassifyPath(ctm, 1, pathFrom("ml", model.Point{X: x0, Y: y0}, model.Point{X: x1, Y: y1})).(*model.Line)
		return ok
	}
	if err := quick.Check(lines, nil); err != nil {
		t.Errorf("lines: %v", err)
	}
}
