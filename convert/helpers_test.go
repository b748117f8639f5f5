package convert

import (
	"errors"

	"github.com/tsawler/pdflayout/model"
)

func char(text, font string, size, x0, y0, x1, y1 float64) *model.Char {
	return &model.Char{Text: text, FontName: font, Size: size, BBox: model.NewBBox(x0, y0, x1, y1)}
}

// textLine ends the line with a newline as layout analysis does
func textLine(items ...model.Node) *model.TextLine {
	l := &model.TextLine{}
	l.SetItems(append(items, &model.Anon{Text: "\n"}))
	return l
}

func textBox(index int, lines ...*model.TextLine) *model.TextBox {
	items := make([]model.Node, len(lines))
	for i, l := range lines {
		items[i] = l
	}
	b := &model.TextBox{Index: index}
	b.SetItems(items)
	return b
}

// samplePage has one text box, a line, a rectangle and a triangle
func samplePage() *model.Page {
	page := model.NewPage(1, model.NewBBox(0, 0, 200, 100), 0)
	box := textBox(0, textLine(
		char("A", "F1", 12, 10, 80, 18, 92),
		char("&", "F1", 12, 18, 80, 26, 92),
	))
	page.Add(box)
	page.Add(model.NewLine(1, model.Point{X: 0, Y: 50}, model.Point{X: 200, Y: 50}))
	page.Add(model.NewRect(2, model.NewBBox(5, 5, 15, 15)))
	page.Add(model.NewPolygon(1, []model.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}))
	page.Layout = box
	return page
}

var errDiskFull = errors.New("disk full")

// failWriter fails every write
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errDiskFull }

// recognizerFunc adapts a function to ocr.Recognizer
type recognizerFunc func(*model.Image) (string, error)

func (f recognizerFunc) Recognize(img *model.Image) (string, error) { return f(img) }
