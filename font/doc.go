// Package font provides the font collaborator of the layout builder: text for
// character codes and the metrics used to place glyph boxes.
//
// # Font Types
//
//   - [Standard] - simple fonts measured with Standard-14 metrics
//   - [TrueType] - embedded TrueType/OpenType programs read with sfnt
//
// Both satisfy [Font]:
//
//	f := font.NewStandard("Helvetica")
//	text, ok := f.Decode(code)   // ok is false for unmapped codes
//	adv := f.CharWidth(code)     // fraction of the em
//
// # CMap Support
//
// ToUnicode CMaps map character codes to text and take priority over a
// font's encoding:
//
//	cm, err := font.ParseCMap(data)
//	f.ToUnicode = cm
//
// Decoded text is normalized to NFC.
package font
