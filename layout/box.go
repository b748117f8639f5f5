package layout

import (
	"sort"

	"github.com/tsawler/pdflayout/model"
)

// overlapsStrictly reports whether two boxes share interior area.
// Boxes that only touch do not overlap.
func overlapsStrictly(a, b model.BBox) bool {
	return a.X0 < b.X1 && b.X0 < a.X1 && a.Y0 < b.Y1 && b.Y0 < a.Y1
}

// neighbors returns the lines of the same orientation within LineMargin of
// line, in input order. line itself is always included.
func neighbors(line *model.TextLine, lines []*model.TextLine, p Params) []*model.TextLine {
	b := line.BBox
	var q model.BBox
	if line.Vertical {
		d := p.LineMargin * b.Width()
		q = model.BBox{X0: b.X0 - d, Y0: b.Y0, X1: b.X1 + d, Y1: b.Y1}
	} else {
		d := p.LineMargin * b.Height()
		q = model.BBox{X0: b.X0, Y0: b.Y0 - d, X1: b.X1, Y1: b.Y1 + d}
	}

	var out []*model.TextLine
	for _, other := range lines {
		if other == line || (other.Vertical == line.Vertical && overlapsStrictly(q, other.BBox)) {
			out = append(out, other)
		}
	}
	return out
}

// boxMembers is a text box under construction
type boxMembers struct {
	vertical bool
	lines    []*model.TextLine
}

// buildBoxes merges neighboring lines into text boxes. Boxes are returned
// in order of their first line.
func buildBoxes(lines []*model.TextLine, p Params) []*model.TextBox {
	boxOf := make(map[*model.TextLine]*boxMembers)

	for _, line := range lines {
		var members []*model.TextLine
		for _, n := range neighbors(line, lines, p) {
			members = append(members, n)
			if prev, ok := boxOf[n]; ok {
				members = append(members, prev.lines...)
				delete(boxOf, n)
			}
		}

		box := &boxMembers{vertical: line.Vertical}
		seen := make(map[*model.TextLine]bool, len(members))
		for _, m := range members {
			if seen[m] {
				continue
			}
			seen[m] = true
			box.lines = append(box.lines, m)
			boxOf[m] = box
		}
	}

	var boxes []*model.TextBox
	done := make(map[*boxMembers]bool)
	for _, line := range lines {
		members := boxOf[line]
		if done[members] {
			continue
		}
		done[members] = true
		boxes = append(boxes, newTextBox(members))
	}
	return boxes
}

// newTextBox orders lines top to bottom, or right to left when vertical
func newTextBox(m *boxMembers) *model.TextBox {
	lines := append([]*model.TextLine(nil), m.lines...)
	if m.vertical {
		sort.SliceStable(lines, func(i, j int) bool { return lines[i].BBox.X1 > lines[j].BBox.X1 })
	} else {
		sort.SliceStable(lines, func(i, j int) bool { return lines[i].BBox.Y1 > lines[j].BBox.Y1 })
	}

	items := make([]model.Node, len(lines))
	for i, l := range lines {
		items[i] = l
	}
	box := &model.TextBox{Vertical: m.vertical}
	box.SetItems(items)
	return box
}
