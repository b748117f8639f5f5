// Package device turns page content events into layout trees.
//
// A content stream interpreter reports what a page draws through the
// [Device] interface: page and figure boundaries, images, painted paths and
// placed glyphs. [Builder] implements Device and assembles a [model.Page]
// from those events, classifying paths into lines, rectangles and polygons
// and placing each glyph as a [model.Char].
//
// # Containers
//
// Pages and figures form a strict stack. BeginFigure pushes the current
// container and EndFigure pops it, appending the finished figure to its
// parent. Mismatched events are a programming error in the event source and
// make the Builder panic with an error wrapping [ErrStackMismatch].
//
// # Analysis
//
// When a [layout.Analyzer] is configured it runs over each figure as the
// figure closes and over each page as the page closes, so text is grouped
// into lines, boxes and a group tree before the page is handed on.
//
// # Receivers
//
// Finished pages go to a [Receiver], typically one of the converters in the
// convert package. [Aggregator] keeps the last page for callers that want
// the tree itself:
//
//	agg := device.NewAggregator()
//	b := device.NewBuilder(agg)
//	b.BeginPage(device.PageInfo{MediaBox: box}, model.Identity())
//	// ... drawing events ...
//	if err := b.EndPage(); err != nil {
//	    return err
//	}
//	page := agg.Result()
//
// # Unmapped Glyphs
//
// A glyph code the font cannot map to text is kept as the placeholder
// \xNN (the code in upper case hex) and recorded as a [Warning]. Text
// extraction never stops on an unmapped glyph.
package device
