package layout

import (
	"sort"

	"github.com/tsawler/pdflayout/model"
)

// wastedArea is the area of the rectangle enclosing a and b less the areas
// of a and b. It may be negative when they overlap.
func wastedArea(a, b model.BBox) float64 {
	u := a.Union(b)
	return u.Area() - a.Area() - b.Area()
}

func isVerticalText(n model.Node) bool {
	switch v := n.(type) {
	case *model.TextBox:
		return v.Vertical
	case *model.TextGroup:
		return v.Vertical
	}
	return false
}

// candidate is a pair of nodes that may be merged
type candidate struct {
	blocked bool // another node lies between the pair
	dist    float64
	seq     int
	a, b    model.Node
}

// groupBoxes merges boxes pairwise into a binary tree of text groups. The
// pair enclosing the least wasted area is merged first; pairs with another
// node between them wait until no unobstructed pair is left. A single box
// is returned as is; no boxes give nil.
func groupBoxes(boxes []*model.TextBox) model.Node {
	if len(boxes) == 0 {
		return nil
	}

	// plane holds the nodes not yet merged, in insertion order
	var plane []model.Node
	inPlane := make(map[model.Node]bool)
	for _, b := range boxes {
		plane = append(plane, b)
		inPlane[b] = true
	}

	seq := 0
	var cands []candidate
	push := func(a, b model.Node) {
		cands = append(cands, candidate{dist: wastedArea(a.Bounds(), b.Bounds()), seq: seq, a: a, b: b})
		seq++
	}
	sortCands := func() {
		sort.SliceStable(cands, func(i, j int) bool {
			ci, cj := cands[i], cands[j]
			if ci.blocked != cj.blocked {
				return !ci.blocked
			}
			if ci.dist != cj.dist {
				return ci.dist < cj.dist
			}
			return ci.seq < cj.seq
		})
	}

	// between reports whether a node other than a and b overlaps the
	// rectangle enclosing them
	between := func(a, b model.Node) bool {
		u := a.Bounds().Union(b.Bounds())
		for _, n := range plane {
			if n != a && n != b && overlapsStrictly(u, n.Bounds()) {
				return true
			}
		}
		return false
	}

	for i := range plane {
		for j := i + 1; j < len(plane); j++ {
			push(plane[i], plane[j])
		}
	}
	sortCands()

	for len(cands) > 0 {
		c := cands[0]
		cands = cands[1:]

		if !c.blocked && between(c.a, c.b) {
			c.blocked = true
			cands = append(cands, c)
			continue
		}

		group := &model.TextGroup{Vertical: isVerticalText(c.a) || isVerticalText(c.b)}
		group.SetItems([]model.Node{c.a, c.b})

		delete(inPlane, c.a)
		delete(inPlane, c.b)
		kept := plane[:0]
		for _, n := range plane {
			if inPlane[n] {
				kept = append(kept, n)
			}
		}
		plane = kept

		live := cands[:0]
		for _, e := range cands {
			if inPlane[e.a] && inPlane[e.b] {
				live = append(live, e)
			}
		}
		cands = live

		for _, other := range plane {
			push(group, other)
		}
		sortCands()

		plane = append(plane, group)
		inPlane[group] = true
	}

	return plane[0]
}

// orderGroups sorts the children of every group: top-left to bottom-right
// for horizontal text, top-right to bottom-left for vertical text
func orderGroups(n model.Node, p Params) {
	g, ok := n.(*model.TextGroup)
	if !ok {
		return
	}

	flow := p.BoxesFlow
	key := func(n model.Node) float64 {
		b := n.Bounds()
		if g.Vertical {
			return -(1+flow)*(b.X0+b.X1) - (1-flow)*b.Y1
		}
		return (1-flow)*b.X0 - (1+flow)*(b.Y0+b.Y1)
	}
	sort.SliceStable(g.Children, func(i, j int) bool { return key(g.Children[i]) < key(g.Children[j]) })

	for _, child := range g.Children {
		orderGroups(child, p)
	}
}

// assignIndices numbers text boxes in depth-first order
func assignIndices(n model.Node, next *int) {
	switch v := n.(type) {
	case *model.TextBox:
		v.Index = *next
		*next++
	case *model.TextGroup:
		for _, child := range v.Children {
			assignIndices(child, next)
		}
	}
}
