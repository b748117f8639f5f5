// Package convert serializes layout trees.
//
// Three converters receive finished pages from a device.Builder:
//
//   - [TextConverter] writes the characters of each page, a newline after
//     each text box and a form feed after each page
//   - [HTMLConverter] writes one HTML document of absolutely positioned
//     elements, in normal, loose or exact [LayoutMode]
//   - [XMLConverter] writes one element per node with exact coordinates,
//     followed by the text group tree
//
// Each has a Config struct with a Default constructor:
//
//	var buf bytes.Buffer
//	conv, err := convert.NewHTMLConverterWithConfig(&buf, convert.HTMLConfig{
//	    Codec:      "utf-8",
//	    Scale:      1.5,
//	    FontScale:  0.7,
//	    LayoutMode: convert.LayoutExact,
//	    PageMargin: 50,
//	})
//	if err != nil {
//	    return err
//	}
//	b := device.NewBuilder(conv)
//	// ... drawing events ...
//	if err := conv.Close(); err != nil {
//	    return err
//	}
//
// # Output Encoding
//
// Codecs are named by their WHATWG labels ("utf-8", "windows-1252",
// "shift_jis", ...). The text converter drops characters the codec cannot
// represent; the markup converters write them as character references.
// Write errors are kept and returned by the next ReceiveLayout or Close;
// nothing is written after the first error.
//
// # Images
//
// With an output directory configured, the markup converters save each
// image with [WriteImage] and reference the file. JPEG streams are copied
// unchanged, gray and RGB streams become BMP files and anything else is
// saved as decoded bytes.
package convert
