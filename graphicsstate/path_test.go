package graphicsstate

import (
	"testing"

	"github.com/tsawler/pdflayout/model"
)

func TestNewPath(t *testing.T) {
	p := NewPath()
	if p == nil {
		t.Fatal("NewPath returned nil")
	}
	if !p.IsEmpty() {
		t.Errorf("Expected empty path, got %d segments", len(p.Segments))
	}
	if p.HasCurrentPoint {
		t.Error("Expected HasCurrentPoint to be false")
	}
}

func TestPath_MoveTo(t *testing.T) {
	p := NewPath()
	p.MoveTo(100, 200)

	if len(p.Segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(p.Segments))
	}
	if p.Segments[0].Op != OpMoveTo {
		t.Errorf("Expected m, got %c", p.Segments[0].Op)
	}
	if p.CurrentPoint != (model.Point{X: 100, Y: 200}) {
		t.Errorf("Expected current point (100, 200), got %+v", p.CurrentPoint)
	}
	if p.SubpathStart != p.CurrentPoint {
		t.Errorf("Expected subpath start at current point, got %+v", p.SubpathStart)
	}
}

func TestPath_LineTo(t *testing.T) {
	t.Run("with current point", func(t *testing.T) {
		p := NewPath()
		p.MoveTo(0, 0)
		p.LineTo(100, 0)

		if p.Shape() != "ml" {
			t.Errorf("Expected shape ml, got %s", p.Shape())
		}
		if p.CurrentPoint != (model.Point{X: 100, Y: 0}) {
			t.Errorf("Expected current point (100, 0), got %+v", p.CurrentPoint)
		}
	})

	t.Run("without current point becomes moveto", func(t *testing.T) {
		p := NewPath()
		p.LineTo(100, 200)

		if p.Shape() != "m" {
			t.Errorf("Expected shape m, got %s", p.Shape())
		}
		if !p.HasCurrentPoint {
			t.Error("Expected HasCurrentPoint to be true")
		}
	})
}

func TestPath_Curves(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.CurveTo(10, 20, 30, 40, 50, 60)
	p.CurveToV(70, 80, 90, 100)
	p.CurveToY(110, 120, 130, 140)

	if p.Shape() != "mcvy" {
		t.Errorf("Expected shape mcvy, got %s", p.Shape())
	}
	if len(p.Segments[1].Points) != 3 {
		t.Errorf("Expected 3 points for c, got %d", len(p.Segments[1].Points))
	}
	if len(p.Segments[2].Points) != 2 || len(p.Segments[3].Points) != 2 {
		t.Error("Expected 2 points for v and y")
	}
	if p.CurrentPoint != (model.Point{X: 130, Y: 140}) {
		t.Errorf("Expected current point (130, 140), got %+v", p.CurrentPoint)
	}
	if got := len(p.Points()); got != 8 {
		t.Errorf("Expected 8 coordinate pairs, got %d", got)
	}
}

func TestPath_CurveVYWithoutCurrentPoint(t *testing.T) {
	p := NewPath()
	p.CurveToV(1, 2, 3, 4)
	p.CurveToY(1, 2, 3, 4)
	if !p.IsEmpty() {
		t.Errorf("Expected empty path, got %s", p.Shape())
	}
}

func TestPath_ClosePath(t *testing.T) {
	p := NewPath()
	p.ClosePath()
	if !p.IsEmpty() {
		t.Error("ClosePath without current point should be ignored")
	}

	p.MoveTo(5, 5)
	p.LineTo(10, 5)
	p.ClosePath()
	if p.Shape() != "mlh" {
		t.Errorf("Expected shape mlh, got %s", p.Shape())
	}
	if p.CurrentPoint != (model.Point{X: 5, Y: 5}) {
		t.Errorf("Expected current point back at subpath start, got %+v", p.CurrentPoint)
	}
}

func TestPath_Rectangle(t *testing.T) {
	p := NewPath()
	p.Rectangle(10, 20, 100, 50)

	if p.Shape() != "mlllh" {
		t.Errorf("Expected shape mlllh, got %s", p.Shape())
	}
	want := []model.Point{{X: 10, Y: 20}, {X: 110, Y: 20}, {X: 110, Y: 70}, {X: 10, Y: 70}}
	got := p.Points()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Corner %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPath_Clear(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 1, 1)
	p.Clear()
	if !p.IsEmpty() || p.HasCurrentPoint {
		t.Error("Expected cleared path")
	}
}
