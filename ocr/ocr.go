//go:build ocr

package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/tsawler/pdflayout/model"
)

// Client wraps a Tesseract engine. It is not safe for concurrent use.
type Client struct {
	client *gosseract.Client
}

var _ Recognizer = (*Client)(nil)

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// RecognizeImage performs OCR on encoded image data (PNG, TIFF, JPEG).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// Recognize performs OCR on an image node
func (c *Client) Recognize(img *model.Image) (string, error) {
	data, err := ImageData(img)
	if err != nil {
		return "", err
	}
	return c.RecognizeImage(data)
}

// SetLanguage sets the language(s) for recognition, "+" separated
// (e.g. "eng+fra"). The default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}
