package graphicsstate

import (
	"errors"

	"github.com/tsawler/pdflayout/model"
)

// ErrStackUnderflow is returned by Restore when no state was saved
var ErrStackUnderflow = errors.New("graphics state stack underflow")

// GraphicsState is the part of the PDF graphics state that paint events
// carry to a device
type GraphicsState struct {
	// Current Transformation Matrix
	CTM model.Matrix

	// Stroke attributes
	LineWidth  float64
	LineCap    int
	LineJoin   int
	MiterLimit float64
	Dash       []float64
	DashPhase  float64

	// Color (simplified to RGB)
	StrokeColor [3]float64
	FillColor   [3]float64

	// Text state
	Text TextState

	stack []GraphicsState
}

// NewGraphicsState creates a graphics state with the PDF defaults
func NewGraphicsState() *GraphicsState {
	return &GraphicsState{
		CTM:        model.Identity(),
		LineWidth:  1.0,
		MiterLimit: 10.0,
		Text:       newTextState(),
	}
}

// Clone returns a copy of the state without its save stack
func (gs *GraphicsState) Clone() *GraphicsState {
	c := *gs
	c.stack = nil
	if gs.Dash != nil {
		c.Dash = append([]float64(nil), gs.Dash...)
	}
	return &c
}

// Save pushes the current state (q operator)
func (gs *GraphicsState) Save() {
	gs.stack = append(gs.stack, *gs.Clone())
}

// Restore pops the most recently saved state (Q operator). The text line
// matrix and the shown offset are not graphics state and carry over.
func (gs *GraphicsState) Restore() error {
	if len(gs.stack) == 0 {
		return ErrStackUnderflow
	}

	saved := gs.stack[len(gs.stack)-1]
	stack := gs.stack[:len(gs.stack)-1]
	matrix, offset := gs.Text.Matrix, gs.Text.Offset
	*gs = saved
	gs.stack = stack
	gs.Text.Matrix, gs.Text.Offset = matrix, offset
	return nil
}

// Depth returns the number of saved states
func (gs *GraphicsState) Depth() int {
	return len(gs.stack)
}

// Transform concatenates m to the CTM (cm operator)
func (gs *GraphicsState) Transform(m model.Matrix) {
	gs.CTM = m.Multiply(gs.CTM)
}

// SetLineWidth sets the line width (w operator)
func (gs *GraphicsState) SetLineWidth(width float64) {
	gs.LineWidth = width
}

// SetLineCap sets the line cap style (J operator)
func (gs *GraphicsState) SetLineCap(style int) {
	gs.LineCap = style
}

// SetLineJoin sets the line join style (j operator)
func (gs *GraphicsState) SetLineJoin(style int) {
	gs.LineJoin = style
}

// SetDash sets the dash pattern (d operator)
func (gs *GraphicsState) SetDash(array []float64, phase float64) {
	gs.Dash = append([]float64(nil), array...)
	gs.DashPhase = phase
}

// SetStrokeColorRGB sets the stroke color (RG operator)
func (gs *GraphicsState) SetStrokeColorRGB(r, g, b float64) {
	gs.StrokeColor = [3]float64{r, g, b}
}

// SetFillColorRGB sets the fill color (rg operator)
func (gs *GraphicsState) SetFillColorRGB(r, g, b float64) {
	gs.FillColor = [3]float64{r, g, b}
}

// SetStrokeGray sets a gray stroke color (G operator)
func (gs *GraphicsState) SetStrokeGray(gray float64) {
	gs.SetStrokeColorRGB(gray, gray, gray)
}

// SetFillGray sets a gray fill color (g operator)
func (gs *GraphicsState) SetFillGray(gray float64) {
	gs.SetFillColorRGB(gray, gray, gray)
}
