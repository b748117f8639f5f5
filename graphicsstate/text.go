package graphicsstate

import (
	"github.com/tsawler/pdflayout/font"
	"github.com/tsawler/pdflayout/model"
)

// TextState represents text-specific state
type TextState struct {
	// Font and size (Tf). Font is nil until a font is selected.
	FontName string
	Font     font.Font
	FontSize float64

	// Character and word spacing in unscaled text space units
	CharSpacing float64
	WordSpacing float64

	// Horizontal scaling in percent
	Scaling float64

	// Leading as given to TL
	Leading float64

	RenderingMode int
	Rise          float64

	// Matrix is the text line matrix. Offset is how far the glyphs shown
	// since the last line move have advanced, in text space.
	Matrix model.Matrix
	Offset model.Point
}

func newTextState() TextState {
	return TextState{
		Scaling: 100,
		Matrix:  model.Identity(),
	}
}

// TextMatrix returns the current text matrix including the shown advance
func (ts *TextState) TextMatrix() model.Matrix {
	return model.Translate(ts.Offset.X, ts.Offset.Y).Multiply(ts.Matrix)
}

// SetFont sets the current font (Tf operator)
func (gs *GraphicsState) SetFont(name string, f font.Font, size float64) {
	gs.Text.FontName = name
	gs.Text.Font = f
	gs.Text.FontSize = size
}

// SetCharSpacing sets character spacing (Tc operator)
func (gs *GraphicsState) SetCharSpacing(spacing float64) {
	gs.Text.CharSpacing = spacing
}

// SetWordSpacing sets word spacing (Tw operator)
func (gs *GraphicsState) SetWordSpacing(spacing float64) {
	gs.Text.WordSpacing = spacing
}

// SetHorizontalScaling sets horizontal scaling (Tz operator)
func (gs *GraphicsState) SetHorizontalScaling(scale float64) {
	gs.Text.Scaling = scale
}

// SetLeading sets text leading (TL operator)
func (gs *GraphicsState) SetLeading(leading float64) {
	gs.Text.Leading = leading
}

// SetRenderingMode sets text rendering mode (Tr operator)
func (gs *GraphicsState) SetRenderingMode(mode int) {
	gs.Text.RenderingMode = mode
}

// SetTextRise sets text rise (Ts operator)
func (gs *GraphicsState) SetTextRise(rise float64) {
	gs.Text.Rise = rise
}

// BeginText resets the text matrix (BT operator)
func (gs *GraphicsState) BeginText() {
	gs.Text.Matrix = model.Identity()
	gs.Text.Offset = model.Point{}
}

// SetTextMatrix sets the text matrix (Tm operator)
func (gs *GraphicsState) SetTextMatrix(m model.Matrix) {
	gs.Text.Matrix = m
	gs.Text.Offset = model.Point{}
}

// TranslateText starts a new line offset by (tx, ty) from the start of the
// current one (Td operator)
func (gs *GraphicsState) TranslateText(tx, ty float64) {
	gs.Text.Matrix = model.Translate(tx, ty).Multiply(gs.Text.Matrix)
	gs.Text.Offset = model.Point{}
}

// TranslateTextSetLeading moves like Td and sets the leading to -ty (TD
// operator)
func (gs *GraphicsState) TranslateTextSetLeading(tx, ty float64) {
	gs.SetLeading(-ty)
	gs.TranslateText(tx, ty)
}

// NextLine moves to the start of the next line (T* operator)
func (gs *GraphicsState) NextLine() {
	gs.TranslateText(0, -gs.Text.Leading)
}
