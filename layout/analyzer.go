package layout

import (
	"sort"

	"github.com/tsawler/pdflayout/model"
)

// Analyzer groups the children of a container in place. For a page it also
// sets the page's Layout.
type Analyzer interface {
	Analyze(c model.Container, p Params)
}

// CharAnalyzer is the default Analyzer: characters to lines, lines to
// boxes, boxes to a group tree
type CharAnalyzer struct{}

// NewCharAnalyzer creates the default analyzer
func NewCharAnalyzer() *CharAnalyzer {
	return &CharAnalyzer{}
}

// Analyze groups the characters directly inside c. Containers without
// characters, including ones analyzed before, are left unchanged.
func (a *CharAnalyzer) Analyze(c model.Container, p Params) {
	var chars []*model.Char
	var others []model.Node
	for _, n := range c.Items() {
		if ch, ok := n.(*model.Char); ok {
			chars = append(chars, ch)
		} else {
			others = append(others, n)
		}
	}
	if len(chars) == 0 {
		return
	}

	var lines []*model.TextLine
	var empties []model.Node
	for _, line := range buildLines(chars, p) {
		if line.BBox.Width() <= 0 || line.BBox.Height() <= 0 {
			empties = append(empties, line)
			continue
		}
		lines = append(lines, line)
	}

	boxes := buildBoxes(lines, p)
	root := groupBoxes(boxes)
	if root != nil {
		orderGroups(root, p)
		assignIndices(root, new(int))
	}
	sort.SliceStable(boxes, func(i, j int) bool { return boxes[i].Index < boxes[j].Index })

	items := make([]model.Node, 0, len(boxes)+len(others)+len(empties))
	for _, b := range boxes {
		items = append(items, b)
	}
	items = append(items, others...)
	items = append(items, empties...)
	c.SetItems(items)

	if page, ok := c.(*model.Page); ok && root != nil {
		page.Layout = root
	}
}
