package convert

import (
	"fmt"
	"io"

	"github.com/tsawler/pdflayout/internal/logging"
	"github.com/tsawler/pdflayout/model"
	"github.com/tsawler/pdflayout/ocr"
)

// TextConfig holds configuration for a TextConverter
type TextConfig struct {
	// Codec names the output encoding (WHATWG labels such as "utf-8",
	// "windows-1252", "shift_jis"). Characters it cannot represent are
	// dropped.
	Codec string

	// ShowPageNumbers writes "Page N" before each page
	ShowPageNumbers bool

	// Recognizer, when set, turns images into text
	Recognizer ocr.Recognizer
}

// DefaultTextConfig returns UTF-8 output without page numbers or OCR
func DefaultTextConfig() TextConfig {
	return TextConfig{Codec: DefaultCodec}
}

// TextConverter writes the text of each page: the characters in tree
// order, a newline after each text box and a form feed after each page
type TextConverter struct {
	config TextConfig
	out    *output
}

// NewTextConverter creates a text converter with default configuration
func NewTextConverter(w io.Writer) (*TextConverter, error) {
	return NewTextConverterWithConfig(w, DefaultTextConfig())
}

// NewTextConverterWithConfig creates a text converter with custom
// configuration
func NewTextConverterWithConfig(w io.Writer, config TextConfig) (*TextConverter, error) {
	out, err := newOutput(w, config.Codec)
	if err != nil {
		return nil, err
	}
	return &TextConverter{config: config, out: out}, nil
}

// ReceiveLayout writes one page
func (c *TextConverter) ReceiveLayout(page *model.Page) error {
	if c.config.ShowPageNumbers {
		c.out.writeText(fmt.Sprintf("Page %d\n", page.ID))
	}
	c.render(page)
	c.out.writeText("\f")
	return c.out.err
}

func (c *TextConverter) render(n model.Node) {
	switch v := n.(type) {
	case model.Container:
		for _, child := range v.Items() {
			c.render(child)
		}
	case model.TextNode:
		c.out.writeText(v.GetText())
	case *model.Image:
		c.recognize(v)
	}
	if _, ok := n.(*model.TextBox); ok {
		c.out.writeText("\n")
	}
}

func (c *TextConverter) recognize(img *model.Image) {
	if c.config.Recognizer == nil {
		return
	}
	text, err := c.config.Recognizer.Recognize(img)
	if err != nil {
		logging.Logger().Warn("image text recognition failed", "image", img.Name, "error", err)
		return
	}
	if text != "" {
		c.out.writeText(text + "\n")
	}
}

// Close returns the first write error, if any
func (c *TextConverter) Close() error {
	return c.out.err
}
