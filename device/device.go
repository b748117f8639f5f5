package device

import (
	"github.com/tsawler/pdflayout/font"
	"github.com/tsawler/pdflayout/graphicsstate"
	"github.com/tsawler/pdflayout/model"
)

// Device receives the drawing events of a page in content stream order
type Device interface {
	BeginPage(page PageInfo, ctm model.Matrix)
	EndPage() error

	// BeginFigure opens a nested coordinate space such as a form XObject.
	// matrix is the figure's own matrix and ctm the transform active where
	// the figure is drawn.
	BeginFigure(name string, bbox model.BBox, matrix, ctm model.Matrix)
	EndFigure(name string)

	// RenderImage places an image filling the enclosing figure
	RenderImage(name string, stream model.ImageStream)

	// PaintPath paints path with the graphics state's CTM and line width
	PaintPath(gs *graphicsstate.GraphicsState, stroke, fill, evenOdd bool, path *graphicsstate.Path)

	// RenderChar places the glyph for code and returns its advance in text
	// space. text is the glyph's Unicode text when the caller already knows
	// it; when empty the font decodes code.
	RenderChar(matrix model.Matrix, f font.Font, size, scaling, rise float64, code int, text string) float64
}

// PageInfo describes a page as declared by the document
type PageInfo struct {
	MediaBox model.BBox
	Rotate   int
}
