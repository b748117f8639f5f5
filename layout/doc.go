// Package layout groups the characters of a page or figure into text lines,
// text boxes and a hierarchy of text groups.
//
// The default [CharAnalyzer] works in three passes:
//
//   - Characters that overlap vertically and sit close together (or, with
//     DetectVertical, overlap horizontally and stack closely) form text
//     lines. A space is inserted where the gap between characters exceeds
//     WordMargin, and every line ends with a newline.
//   - Lines whose boxes, widened by LineMargin, touch are merged into text
//     boxes. Lines in a box run top to bottom (right to left for vertical
//     text).
//   - Boxes are merged pairwise, smallest wasted area first, into a binary
//     tree of text groups whose order follows BoxesFlow. Boxes are numbered
//     in tree order.
//
// Analysis replaces the container's children with its text boxes (in index
// order) followed by its other nodes:
//
//	a := layout.NewCharAnalyzer()
//	a.Analyze(page, layout.DefaultParams())
//	root := page.Layout
package layout
