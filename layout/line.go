package layout

import (
	"math"

	"github.com/tsawler/pdflayout/model"
)

// alignment of two consecutive characters
const (
	alignNone       = 0
	alignHorizontal = 1
	alignVertical   = 2
)

// align reports how c1 follows c0: on the same horizontal line, the same
// vertical line, both, or neither
func align(c0, c1 *model.Char, p Params) int {
	b0, b1 := c0.BBox, c1.BBox
	k := alignNone

	if b0.IsVOverlap(b1) &&
		math.Min(b0.Height(), b1.Height())*p.LineOverlap < b0.VOverlap(b1) &&
		b0.HDistance(b1) < math.Max(b0.Width(), b1.Width())*p.CharMargin {
		k |= alignHorizontal
	}

	if p.DetectVertical && b0.IsHOverlap(b1) &&
		math.Min(b0.Width(), b1.Width())*p.LineOverlap < b0.HOverlap(b1) &&
		b0.VDistance(b1) < math.Max(b0.Height(), b1.Height())*p.CharMargin {
		k |= alignVertical
	}

	return k
}

// lineBuilder accumulates the characters of one text line and inserts word
// spaces between them
type lineBuilder struct {
	vertical   bool
	wordMargin float64
	items      []model.Node

	// edge is the trailing edge of the last character: x1 for horizontal
	// lines, y0 for vertical ones
	edge    float64
	started bool
}

func newLineBuilder(vertical bool, p Params) *lineBuilder {
	return &lineBuilder{vertical: vertical, wordMargin: p.WordMargin}
}

func (lb *lineBuilder) add(c *model.Char) {
	b := c.BBox
	if lb.started && lb.wordMargin > 0 {
		var gap bool
		if lb.vertical {
			gap = b.Y1+lb.wordMargin*b.Height() < lb.edge
		} else {
			gap = lb.edge < b.X0-lb.wordMargin*b.Width()
		}
		if gap {
			lb.items = append(lb.items, &model.Anon{Text: " "})
		}
	}

	if lb.vertical {
		lb.edge = b.Y0
	} else {
		lb.edge = b.X1
	}
	lb.started = true
	lb.items = append(lb.items, c)
}

// finish closes the line with a newline
func (lb *lineBuilder) finish() *model.TextLine {
	line := &model.TextLine{Vertical: lb.vertical}
	line.SetItems(append(lb.items, &model.Anon{Text: "\n"}))
	return line
}

// buildLines splits characters, in drawing order, into text lines. A line
// continues while each character aligns with the previous one in the line's
// direction. A character that aligns with nothing, or ambiguously in both
// directions, starts no line and stands alone.
func buildLines(chars []*model.Char, p Params) []*model.TextLine {
	var lines []*model.TextLine
	var cur *lineBuilder

	for i := 1; i < len(chars); i++ {
		c0, c1 := chars[i-1], chars[i]
		k := align(c0, c1, p)

		switch {
		case cur != nil && ((!cur.vertical && k&alignHorizontal != 0) || (cur.vertical && k&alignVertical != 0)):
			cur.add(c1)
		case cur != nil:
			lines = append(lines, cur.finish())
			cur = nil
		case k == alignVertical:
			cur = newLineBuilder(true, p)
			cur.add(c0)
			cur.add(c1)
		case k == alignHorizontal:
			cur = newLineBuilder(false, p)
			cur.add(c0)
			cur.add(c1)
		default:
			single := newLineBuilder(false, p)
			single.add(c0)
			lines = append(lines, single.finish())
		}
	}

	if cur == nil {
		cur = newLineBuilder(false, p)
		cur.add(chars[len(chars)-1])
	}
	return append(lines, cur.finish())
}
