// Package filters decodes PDF stream data.
//
// [Decode] runs a stream's filter chain in order:
//
//	data, err := filters.Decode(raw, []string{"FlateDecode"}, []filters.Params{{Predictor: 12, Columns: 100}})
//
// Supported filters are FlateDecode (with TIFF and PNG predictors),
// ASCIIHexDecode, ASCII85Decode, RunLengthDecode and CCITTFaxDecode.
// Inline-image abbreviations (Fl, AHx, A85, RL, CCF, DCT) are accepted.
// Image codecs (DCTDecode, JPXDecode, JBIG2Decode) end the chain and their
// input is returned still encoded.
package filters
