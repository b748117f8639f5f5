// Package format names the output formats a layout can be rendered to.
package format

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents a supported output format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Text indicates plain text, one form feed per page.
	Text
	// HTML indicates positioned HTML markup.
	HTML
	// XML indicates the structured XML dump of the layout tree.
	XML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Text:
		return "Text"
	case HTML:
		return "HTML"
	case XML:
		return "XML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Text:
		return ".txt"
	case HTML:
		return ".html"
	case XML:
		return ".xml"
	default:
		return ""
	}
}

// Parse returns the format named s ("text", "txt", "html", "htm" or "xml"),
// ignoring case
func Parse(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "txt":
		return Text, nil
	case "html", "htm":
		return HTML, nil
	case "xml":
		return XML, nil
	}
	return Unknown, fmt.Errorf("unknown output format: %q", s)
}

// Detect determines the format from a filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return Text
	case ".html", ".htm":
		return HTML
	case ".xml":
		return XML
	default:
		return Unknown
	}
}

// DetectFromMagic recognizes rendered output by its first bytes. Markup
// with an html element is HTML, other markup with an XML declaration is
// XML, and anything else is Unknown.
func DetectFromMagic(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return Unknown
	}

	head := strings.ToUpper(string(data[:min(500, len(data))]))
	if strings.HasPrefix(head, "<!DOCTYPE HTML") || strings.HasPrefix(head, "<HTML") {
		return HTML
	}
	if strings.HasPrefix(head, "<?XML") {
		if strings.Contains(head, "<HTML") {
			return HTML
		}
		return XML
	}

	return Unknown
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
