// Package contentstream parses PDF content streams and interprets them
// against a device.
//
// Content streams contain the instructions for rendering page content,
// including text display, graphics operations, and image placement.
//
// # Parsing
//
// PDF content streams consist of operators and their operands:
//
//	parser := contentstream.NewParser(streamData)
//	ops, err := parser.Parse()
//	for _, op := range ops {
//	    fmt.Printf("Operator: %s, Operands: %v\n", op.Operator, op.Operands)
//	}
//
// Operands are Number, Name, String, Bool, Null, Array and Dict values.
// Inline images (BI ... ID ... EI) become a single EI operation whose operand
// is an *InlineImage.
//
// # Interpreting
//
// An Interpreter tracks the graphics and text state while executing a page
// and reports paths, glyphs, forms and images to a device.Device:
//
//	agg := device.NewAggregator()
//	in := contentstream.NewInterpreter(device.NewBuilder(agg))
//	err := in.ProcessPage(&contentstream.Page{
//	    MediaBox:  model.BBox{X1: 612, Y1: 792},
//	    Contents:  [][]byte{content},
//	    Resources: res,
//	})
//
// Supported operators:
//   - q, Q, cm, w, J, j, M, d - graphics state
//   - G, g, RG, rg, K, k - color
//   - m, l, c, v, y, h, re - path construction
//   - S, s, f, F, f*, B, B*, b, b*, n - path painting
//   - BT, Tf, Tc, Tw, Tz, TL, Tr, Ts, Tm, Td, TD, T* - text state
//   - Tj, TJ, ', " - text showing
//   - Do, BI/ID/EI - XObjects and inline images
//
// Other operators are ignored.
package contentstream
