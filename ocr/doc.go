// Package ocr recognizes text in page images.
//
// The text converter can be given a [Recognizer] so that scanned pages,
// which carry images instead of glyphs, still produce text. [Client]
// implements Recognizer on top of the Tesseract engine through gosseract.
//
// Tesseract support is compiled in only with the "ocr" build tag:
//
//	go build -tags ocr
//
// Without the tag every Client operation returns [ErrOCRNotEnabled].
// Tesseract must be installed on the system. On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr
