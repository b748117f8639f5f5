//go:build !ocr

package ocr

import "github.com/tsawler/pdflayout/model"

// Client is a stub OCR client that returns errors for all operations
type Client struct{}

var _ Recognizer = (*Client)(nil)

// New returns ErrOCRNotEnabled
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// RecognizeImage returns ErrOCRNotEnabled
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// Recognize returns ErrOCRNotEnabled
func (c *Client) Recognize(img *model.Image) (string, error) {
	return "", ErrOCRNotEnabled
}

// SetLanguage returns ErrOCRNotEnabled
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// SetPageSegMode returns ErrOCRNotEnabled
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}
