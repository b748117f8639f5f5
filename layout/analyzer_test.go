package layout

import (
	"testing"

	"github.com/tsawler/pdflayout/model"
)

func mkChar(text string, x0, y0, x1, y1 float64) *model.Char {
	return &model.Char{Text: text, BBox: model.NewBBox(x0, y0, x1, y1), Size: y1 - y0}
}

// hline lays out one character per rune, 10 points wide, starting at x.
// A space in s leaves a 10 point gap instead of a character.
func hline(s string, x, y float64) []model.Node {
	var out []model.Node
	for _, r := range s {
		if r != ' ' {
			out = append(out, mkChar(string(r), x, y, x+10, y+10))
		}
		x += 10
	}
	return out
}

func analyzePage(t *testing.T, p Params, items ...model.Node) *model.Page {
	t.Helper()
	page := model.NewPage(1, model.NewBBox(0, 0, 612, 792), 0)
	for _, n := range items {
		page.Add(n)
	}
	NewCharAnalyzer().Analyze(page, p)
	return page
}

func textBoxes(items []model.Node) []*model.TextBox {
	var boxes []*model.TextBox
	for _, n := range items {
		if b, ok := n.(*model.TextBox); ok {
			boxes = append(boxes, b)
		}
	}
	return boxes
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.LineOverlap != 0.5 || p.CharMargin != 2.0 || p.LineMargin != 0.5 ||
		p.WordMargin != 0.1 || p.BoxesFlow != 0.5 || p.DetectVertical {
		t.Errorf("Unexpected defaults %+v", p)
	}
}

func TestAnalyzeSingleLine(t *testing.T) {
	page := analyzePage(t, DefaultParams(), hline("ab cd", 0, 0)...)

	boxes := textBoxes(page.Children)
	if len(boxes) != 1 {
		t.Fatalf("Expected 1 text box, got %d", len(boxes))
	}
	if got := model.Text(boxes[0]); got != "ab cd\n" {
		t.Errorf("Expected %q, got %q", "ab cd\n", got)
	}
	if boxes[0].Index != 0 {
		t.Errorf("Expected index 0, got %d", boxes[0].Index)
	}
	if boxes[0].BBox != model.NewBBox(0, 0, 50, 10) {
		t.Errorf("Unexpected box bounds %v", boxes[0].BBox)
	}
	if page.Layout != boxes[0] {
		t.Errorf("Expected the lone box as page layout, got %T", page.Layout)
	}
}

func TestAnalyzeWordMarginZero(t *testing.T) {
	p := DefaultParams()
	p.WordMargin = 0
	page := analyzePage(t, p, hline("ab cd", 0, 0)...)

	if got := model.Text(page); got != "abcd\n" {
		t.Errorf("Expected no inserted spaces, got %q", got)
	}
}

func TestAnalyzeLinesFormOneBox(t *testing.T) {
	items := append(hline("ab", 0, 20), hline("cd", 0, 8)...)
	page := analyzePage(t, DefaultParams(), items...)

	boxes := textBoxes(page.Children)
	if len(boxes) != 1 {
		t.Fatalf("Expected 1 text box, got %d", len(boxes))
	}
	if len(boxes[0].Children) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(boxes[0].Children))
	}
	if got := model.Text(boxes[0]); got != "ab\ncd\n" {
		t.Errorf("Expected %q, got %q", "ab\ncd\n", got)
	}
}

func TestAnalyzeLinesOrderedTopDown(t *testing.T) {
	// Drawn bottom line first
	items := append(hline("cd", 0, 8), hline("ab", 0, 20)...)
	page := analyzePage(t, DefaultParams(), items...)

	if got := model.Text(page); got != "ab\ncd\n" {
		t.Errorf("Expected %q, got %q", "ab\ncd\n", got)
	}
}

func TestAnalyzeDistantCharsSplitLines(t *testing.T) {
	page := analyzePage(t, DefaultParams(), mkChar("a", 0, 0, 10, 10), mkChar("b", 100, 0, 110, 10))

	boxes := textBoxes(page.Children)
	if len(boxes) != 2 {
		t.Fatalf("Expected 2 text boxes, got %d", len(boxes))
	}
	g, ok := page.Layout.(*model.TextGroup)
	if !ok {
		t.Fatalf("Expected a text group layout, got %T", page.Layout)
	}
	if len(g.Children) != 2 {
		t.Errorf("Expected binary group, got %d children", len(g.Children))
	}
	// Left box first on the same row
	if model.Text(boxes[0]) != "a\n" || model.Text(boxes[1]) != "b\n" {
		t.Errorf("Unexpected box order %q %q", model.Text(boxes[0]), model.Text(boxes[1]))
	}
}

func TestAnalyzeIndicesFollowGroupTree(t *testing.T) {
	// Three boxes stacked far apart, drawn bottom first. The upper two are
	// closer to each other and merge first.
	items := append(hline("cc", 0, 0), hline("bb", 0, 150)...)
	items = append(items, hline("aa", 0, 200)...)
	page := analyzePage(t, DefaultParams(), items...)

	boxes := textBoxes(page.Children)
	if len(boxes) != 3 {
		t.Fatalf("Expected 3 text boxes, got %d", len(boxes))
	}
	for i, want := range []string{"aa\n", "bb\n", "cc\n"} {
		if boxes[i].Index != i {
			t.Errorf("box %d has index %d", i, boxes[i].Index)
		}
		if got := model.Text(boxes[i]); got != want {
			t.Errorf("box %d = %q, want %q", i, got, want)
		}
	}

	root, ok := page.Layout.(*model.TextGroup)
	if !ok {
		t.Fatalf("Expected a text group layout, got %T", page.Layout)
	}
	inner, ok := root.Children[0].(*model.TextGroup)
	if !ok {
		t.Fatalf("Expected the top pair grouped first, got %T", root.Children[0])
	}
	if inner.Children[0] != boxes[0] || inner.Children[1] != boxes[1] || root.Children[1] != boxes[2] {
		t.Error("Unexpected group tree shape")
	}
	if root.BBox != model.NewBBox(0, 0, 20, 210) {
		t.Errorf("Unexpected root bounds %v", root.BBox)
	}
}

func TestAnalyzeKeepsOtherNodesAfterBoxes(t *testing.T) {
	rect := model.NewRect(1, model.NewBBox(0, 0, 100, 100))
	items := []model.Node{rect}
	items = append(items, hline("ab", 10, 10)...)
	page := analyzePage(t, DefaultParams(), items...)

	if len(page.Children) != 2 {
		t.Fatalf("Expected box and rect, got %d children", len(page.Children))
	}
	if _, ok := page.Children[0].(*model.TextBox); !ok {
		t.Errorf("Expected text box first, got %T", page.Children[0])
	}
	if page.Children[1] != rect {
		t.Errorf("Expected rect second, got %T", page.Children[1])
	}
}

func TestAnalyzeEmptyLinesLast(t *testing.T) {
	zero := mkChar("x", 300, 300, 300, 310)
	rect := model.NewRect(1, model.NewBBox(0, 0, 1, 1))
	items := append(hline("ab", 0, 0), rect, zero)
	page := analyzePage(t, DefaultParams(), items...)

	if len(page.Children) != 3 {
		t.Fatalf("Expected 3 children, got %d", len(page.Children))
	}
	line, ok := page.Children[2].(*model.TextLine)
	if !ok {
		t.Fatalf("Expected the empty line last, got %T", page.Children[2])
	}
	if model.Text(line) != "x\n" {
		t.Errorf("Unexpected empty line text %q", model.Text(line))
	}
}

func TestAnalyzeVerticalText(t *testing.T) {
	chars := []model.Node{
		mkChar("a", 0, 20, 10, 30),
		mkChar("b", 0, 10, 10, 20),
		mkChar("c", 0, 0, 10, 10),
	}

	t.Run("detected", func(t *testing.T) {
		p := DefaultParams()
		p.DetectVertical = true
		page := analyzePage(t, p, chars...)

		boxes := textBoxes(page.Children)
		if len(boxes) != 1 {
			t.Fatalf("Expected 1 text box, got %d", len(boxes))
		}
		if !boxes[0].Vertical || boxes[0].WritingMode() != "tb-rl" {
			t.Error("Expected a vertical box")
		}
		if got := model.Text(boxes[0]); got != "abc\n" {
			t.Errorf("Expected %q, got %q", "abc\n", got)
		}
	})

	t.Run("not detected", func(t *testing.T) {
		page := analyzePage(t, DefaultParams(), chars...)

		boxes := textBoxes(page.Children)
		if len(boxes) != 1 {
			t.Fatalf("Expected 1 text box, got %d", len(boxes))
		}
		if boxes[0].Vertical {
			t.Error("Expected a horizontal box")
		}
		if len(boxes[0].Children) != 3 {
			t.Errorf("Expected one line per character, got %d", len(boxes[0].Children))
		}
		if got := model.Text(boxes[0]); got != "a\nb\nc\n" {
			t.Errorf("Expected %q, got %q", "a\nb\nc\n", got)
		}
	})
}

func TestAnalyzeVerticalWordSpace(t *testing.T) {
	p := DefaultParams()
	p.DetectVertical = true
	page := analyzePage(t, p,
		mkChar("a", 0, 40, 10, 50),
		mkChar("b", 0, 30, 10, 40),
		mkChar("c", 0, 12, 10, 22),
	)

	if got := model.Text(page); got != "ab c\n" {
		t.Errorf("Expected %q, got %q", "ab c\n", got)
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	items := append(hline("ab cd", 0, 100), hline("ef", 0, 0)...)
	page := analyzePage(t, DefaultParams(), items...)
	before := model.Text(page)
	children := len(page.Children)
	layout := page.Layout

	NewCharAnalyzer().Analyze(page, DefaultParams())

	if model.Text(page) != before || len(page.Children) != children || page.Layout != layout {
		t.Error("Second analysis changed the page")
	}
}

func TestAnalyzeNoChars(t *testing.T) {
	rect := model.NewRect(1, model.NewBBox(0, 0, 1, 1))
	page := analyzePage(t, DefaultParams(), rect)

	if len(page.Children) != 1 || page.Children[0] != rect {
		t.Error("Expected children unchanged")
	}
	if page.Layout != nil {
		t.Error("Expected no layout")
	}
}

func TestAnalyzeFigure(t *testing.T) {
	fig := model.NewFigure("Fm1", model.NewBBox(0, 0, 100, 100), model.Identity())
	for _, n := range hline("hi", 0, 0) {
		fig.Add(n)
	}
	NewCharAnalyzer().Analyze(fig, DefaultParams())

	if len(fig.Children) != 1 {
		t.Fatalf("Expected 1 box, got %d", len(fig.Children))
	}
	if got := model.Text(fig); got != "hi\n" {
		t.Errorf("Expected %q, got %q", "hi\n", got)
	}
	if fig.BBox != model.NewBBox(0, 0, 100, 100) {
		t.Error("Figure bounds should not change")
	}
}
