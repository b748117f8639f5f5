package convert

import (
	"github.com/tsawler/pdflayout/device"
)

// Converter is a page receiver that serializes each page as it arrives.
// Close finishes the document and must be called once after the last page.
type Converter interface {
	device.Receiver
	Close() error
}

var (
	_ Converter = (*TextConverter)(nil)
	_ Converter = (*HTMLConverter)(nil)
	_ Converter = (*XMLConverter)(nil)
)
