package device

import (
	"errors"
	"fmt"
	"math"

	"github.com/tsawler/pdflayout/font"
	"github.com/tsawler/pdflayout/graphicsstate"
	"github.com/tsawler/pdflayout/internal/logging"
	"github.com/tsawler/pdflayout/layout"
	"github.com/tsawler/pdflayout/model"
)

// ErrStackMismatch is wrapped by the panic raised when begin and end events
// do not pair up
var ErrStackMismatch = errors.New("container stack mismatch")

// Warning records a recoverable anomaly met while building a page
type Warning struct {
	Page int
	Font string
	Code int
}

func (w Warning) String() string {
	return fmt.Sprintf("page %d: code 0x%X not mapped in font %s", w.Page, w.Code, w.Font)
}

// BuilderConfig holds configuration for a Builder
type BuilderConfig struct {
	// FirstPage is the number given to the first page built
	FirstPage int

	// Analyzer groups text when a figure or page closes. Nil disables
	// analysis and leaves characters as direct children.
	Analyzer layout.Analyzer
	Params   layout.Params
}

// DefaultBuilderConfig returns pages numbered from 1 with the default
// character analyzer
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		FirstPage: 1,
		Analyzer:  layout.NewCharAnalyzer(),
		Params:    layout.DefaultParams(),
	}
}

// Builder assembles layout trees from drawing events. It is not safe for
// concurrent use; build independent pages with independent builders.
type Builder struct {
	config   BuilderConfig
	receiver Receiver

	pageNo   int
	cur      model.Container
	stack    []model.Container
	warnings []Warning
}

var _ Device = (*Builder)(nil)

// NewBuilder creates a builder with default configuration
func NewBuilder(r Receiver) *Builder {
	return NewBuilderWithConfig(r, DefaultBuilderConfig())
}

// NewBuilderWithConfig creates a builder with custom configuration
func NewBuilderWithConfig(r Receiver, config BuilderConfig) *Builder {
	if config.FirstPage < 1 {
		config.FirstPage = 1
	}
	return &Builder{config: config, receiver: r, pageNo: config.FirstPage}
}

// PageNumber returns the number the next page will get
func (b *Builder) PageNumber() int {
	return b.pageNo
}

// Warnings returns the anomalies recorded so far
func (b *Builder) Warnings() []Warning {
	return b.warnings
}

// BeginPage opens a page. The page box is the media box mapped through ctm
// and moved to the origin.
func (b *Builder) BeginPage(page PageInfo, ctm model.Matrix) {
	if b.cur != nil || len(b.stack) != 0 {
		mismatch("begin page %d while a container is open", b.pageNo)
	}

	mb := page.MediaBox
	p0 := ctm.Apply(model.Point{X: mb.X0, Y: mb.Y0})
	p1 := ctm.Apply(model.Point{X: mb.X1, Y: mb.Y1})
	bbox := model.NewBBox(0, 0, math.Abs(p0.X-p1.X), math.Abs(p0.Y-p1.Y))
	b.cur = model.NewPage(b.pageNo, bbox, page.Rotate)
}

// EndPage closes the page, analyzes it and hands it to the receiver. The
// receiver's error is returned.
func (b *Builder) EndPage() error {
	page, ok := b.cur.(*model.Page)
	if !ok || len(b.stack) != 0 {
		mismatch("end page %d with %d open figures", b.pageNo, len(b.stack))
	}

	b.analyze(page)
	b.cur = nil
	b.pageNo++

	logging.Logger().Debug("page built", "page", page.ID, "items", len(page.Children))
	if b.receiver == nil {
		return nil
	}
	if err := b.receiver.ReceiveLayout(page); err != nil {
		return fmt.Errorf("page %d: %w", page.ID, err)
	}
	return nil
}

// BeginFigure opens a figure inside the current container. The figure's
// matrix is fixed here as matrix followed by ctm.
func (b *Builder) BeginFigure(name string, bbox model.BBox, matrix, ctm model.Matrix) {
	if b.cur == nil {
		mismatch("begin figure %s outside a page", name)
	}
	b.stack = append(b.stack, b.cur)
	b.cur = model.NewFigure(name, bbox, matrix.Multiply(ctm))
}

// EndFigure closes the current figure and appends it to its parent
func (b *Builder) EndFigure(name string) {
	fig, ok := b.cur.(*model.Figure)
	if !ok || len(b.stack) == 0 {
		mismatch("end figure %s without an open figure", name)
	}

	b.analyze(fig)
	b.cur = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.add(fig)
}

// RenderImage adds an image occupying the whole current figure
func (b *Builder) RenderImage(name string, stream model.ImageStream) {
	fig, ok := b.cur.(*model.Figure)
	if !ok {
		mismatch("image %s outside a figure", name)
	}
	b.add(model.NewImage(name, stream, fig.BBox))
}

// PaintPath classifies path under the graphics state's CTM and adds the
// resulting line, rectangle or polygon. Empty paths add nothing.
func (b *Builder) PaintPath(gs *graphicsstate.GraphicsState, stroke, fill, evenOdd bool, path *graphicsstate.Path) {
	b.requireOpen("path")
	if path == nil || path.IsEmpty() {
		return
	}
	b.add(graphicsstate.ClassifyPath(gs.CTM, gs.LineWidth, path))
}

// RenderChar adds the glyph for code and returns its advance. The font
// decodes code only when text is empty.
func (b *Builder) RenderChar(matrix model.Matrix, f font.Font, size, scaling, rise float64, code int, text string) float64 {
	b.requireOpen("glyph")

	if text == "" {
		var ok bool
		if text, ok = f.Decode(code); !ok {
			text = b.undefinedChar(f, code)
		}
	}
	c := model.NewChar(matrix, font.Metrics(f, code), size, scaling, rise, text)
	b.add(c)
	return c.Adv
}

// undefinedChar records an unmapped code and returns its placeholder
func (b *Builder) undefinedChar(f font.Font, code int) string {
	w := Warning{Page: b.pageNo, Font: f.Name(), Code: code}
	b.warnings = append(b.warnings, w)
	logging.Logger().Debug("undefined character", "page", w.Page, "font", w.Font, "code", code)
	return fmt.Sprintf(`\x%X`, code)
}

func (b *Builder) analyze(c model.Container) {
	if b.config.Analyzer != nil {
		b.config.Analyzer.Analyze(c, b.config.Params)
	}
}

func (b *Builder) add(n model.Node) {
	b.cur.SetItems(append(b.cur.Items(), n))
}

func (b *Builder) requireOpen(what string) {
	if b.cur == nil {
		mismatch("%s outside a page", what)
	}
}

// mismatch panics with an error wrapping ErrStackMismatch
func mismatch(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrStackMismatch, fmt.Sprintf(format, args...)))
}
