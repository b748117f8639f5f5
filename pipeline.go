package pdflayout

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/pdflayout/convert"
	"github.com/tsawler/pdflayout/device"
	"github.com/tsawler/pdflayout/format"
	"github.com/tsawler/pdflayout/internal/logging"
	"github.com/tsawler/pdflayout/layout"
	"github.com/tsawler/pdflayout/model"
	"github.com/tsawler/pdflayout/ocr"
)

// ErrNoPage is returned when a Source finishes without ending a page
var ErrNoPage = errors.New("source produced no page")

// Pipeline provides a fluent interface for building and rendering pages.
// Each configuration method returns a new Pipeline instance, making it
// safe for concurrent use and allowing method chaining.
type Pipeline struct {
	format  format.Format
	options Options

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Pipeline with a deep copy of options.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		format:  p.format,
		options: p.options.clone(),
		err:     p.err,
	}
}

// Format returns the output format
func (p *Pipeline) Format() format.Format {
	return p.format
}

// Codec selects the output encoding by WHATWG label (default "utf-8").
func (p *Pipeline) Codec(name string) *Pipeline {
	n := p.clone()
	n.options.codec = name
	return n
}

// FirstPage sets the number given to the first page (default 1).
func (p *Pipeline) FirstPage(n int) *Pipeline {
	c := p.clone()
	if n < 1 {
		c.err = fmt.Errorf("invalid first page number: %d", n)
		return c
	}
	c.options.firstPage = n
	return c
}

// LayoutParams replaces the layout analysis parameters.
func (p *Pipeline) LayoutParams(params layout.Params) *Pipeline {
	n := p.clone()
	n.options.params = params
	return n
}

// DetectVertical enables vertical text line detection.
func (p *Pipeline) DetectVertical() *Pipeline {
	n := p.clone()
	n.options.params.DetectVertical = true
	return n
}

// NoAnalysis skips layout analysis: pages keep their raw characters and
// shapes.
func (p *Pipeline) NoAnalysis() *Pipeline {
	n := p.clone()
	n.options.analyze = false
	return n
}

// Workers bounds how many pages are built at once (default GOMAXPROCS).
func (p *Pipeline) Workers(n int) *Pipeline {
	c := p.clone()
	if n < 1 {
		c.err = fmt.Errorf("invalid worker count: %d", n)
		return c
	}
	c.options.workers = n
	return c
}

// ShowPageNumbers turns page headings on or off. Text output has them off
// by default and HTML on.
func (p *Pipeline) ShowPageNumbers(show bool) *Pipeline {
	n := p.clone()
	n.options.showPageNumbers = &show
	return n
}

// LayoutMode selects how HTML output places text.
func (p *Pipeline) LayoutMode(mode convert.LayoutMode) *Pipeline {
	n := p.clone()
	n.options.layoutMode = mode
	return n
}

// Scale sets the HTML coordinate and font scales.
func (p *Pipeline) Scale(scale, fontScale float64) *Pipeline {
	n := p.clone()
	if scale <= 0 || fontScale <= 0 {
		n.err = fmt.Errorf("invalid scale %g/%g", scale, fontScale)
		return n
	}
	n.options.scale = scale
	n.options.fontScale = fontScale
	return n
}

// OutputDir makes HTML and XML output write images into dir and reference
// them.
func (p *Pipeline) OutputDir(dir string) *Pipeline {
	n := p.clone()
	n.options.outputDir = dir
	return n
}

// ShowLayout outlines text boxes and text groups in HTML output.
func (p *Pipeline) ShowLayout() *Pipeline {
	n := p.clone()
	n.options.showLayout = true
	return n
}

// Recognizer makes text output include the text recognized in images.
func (p *Pipeline) Recognizer(r ocr.Recognizer) *Pipeline {
	n := p.clone()
	n.options.recognizer = r
	return n
}

// NewConverter creates the renderer for the pipeline's format writing to w.
func (p *Pipeline) NewConverter(w io.Writer) (convert.Converter, error) {
	if p.err != nil {
		return nil, p.err
	}

	switch p.format {
	case format.Text:
		return convert.NewTextConverterWithConfig(w, p.options.textConfig())
	case format.HTML:
		return convert.NewHTMLConverterWithConfig(w, p.options.htmlConfig())
	case format.XML:
		return convert.NewXMLConverterWithConfig(w, p.options.xmlConfig())
	default:
		return nil, fmt.Errorf("unsupported output format: %s", p.format)
	}
}

// Convert renders sources and returns the output as a string.
func (p *Pipeline) Convert(ctx context.Context, sources ...Source) (string, []device.Warning, error) {
	var buf bytes.Buffer
	warnings, err := p.Run(ctx, &buf, sources...)
	if err != nil {
		return "", warnings, err
	}
	return buf.String(), warnings, nil
}

// Run builds one page per source and renders them to w. Pages are built
// concurrently, each by its own Builder, and handed to the renderer in
// source order as soon as every earlier page is done. The renderer is
// closed before Run returns.
func (p *Pipeline) Run(ctx context.Context, w io.Writer, sources ...Source) ([]device.Warning, error) {
	conv, err := p.NewConverter(w)
	if err != nil {
		return nil, err
	}

	warnings, err := p.build(ctx, sources, conv.ReceiveLayout)
	if closeErr := conv.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to finish output: %w", closeErr)
	}
	return warnings, err
}

// Build builds one page per source and returns the pages in source order
// without rendering them.
func (p *Pipeline) Build(ctx context.Context, sources ...Source) ([]*model.Page, []device.Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}

	pages := make([]*model.Page, 0, len(sources))
	warnings, err := p.build(ctx, sources, func(page *model.Page) error {
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		return nil, warnings, err
	}
	return pages, warnings, nil
}

// build runs the sources on a bounded errgroup and feeds deliver in order
func (p *Pipeline) build(ctx context.Context, sources []Source, deliver func(*model.Page) error) ([]device.Warning, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	n := len(sources)
	pages := make([]*model.Page, n)
	warns := make([][]device.Warning, n)
	ready := make([]chan struct{}, n)
	for i := range ready {
		ready[i] = make(chan struct{})
	}

	g, gctx := errgroup.WithContext(ctx)
	// One slot for the launcher
	g.SetLimit(p.options.workers + 1)
	g.Go(func() error {
		for i := range sources {
			i := i
			if gctx.Err() != nil {
				// Unblock the consumer for pages never started
				for j := i; j < n; j++ {
					close(ready[j])
				}
				return gctx.Err()
			}
			g.Go(func() error {
				defer close(ready[i])
				page, w, err := p.buildPage(gctx, sources[i], p.options.firstPage+i)
				pages[i], warns[i] = page, w
				return err
			})
		}
		return nil
	})

	var deliverErr error
	for i := 0; i < n; i++ {
		<-ready[i]
		if pages[i] == nil {
			break
		}
		if err := deliver(pages[i]); err != nil {
			deliverErr = err
			cancel()
			break
		}
		pages[i] = nil
	}

	err := g.Wait()
	if deliverErr != nil {
		err = deliverErr
	}

	var warnings []device.Warning
	for _, w := range warns {
		warnings = append(warnings, w...)
	}
	return warnings, err
}

// buildPage runs one source into a private Builder
func (p *Pipeline) buildPage(ctx context.Context, src Source, pageNo int) (page *model.Page, warnings []device.Warning, err error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	cfg := device.DefaultBuilderConfig()
	cfg.FirstPage = pageNo
	cfg.Params = p.options.params
	if !p.options.analyze {
		cfg.Analyzer = nil
	}

	agg := device.NewAggregator()
	b := device.NewBuilderWithConfig(agg, cfg)

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && errors.Is(e, device.ErrStackMismatch) {
			page, err = nil, fmt.Errorf("page %d: %w", pageNo, e)
			return
		}
		panic(r)
	}()

	if err := src.Render(b); err != nil {
		return nil, b.Warnings(), fmt.Errorf("page %d: %w", pageNo, err)
	}
	if agg.Result() == nil {
		return nil, b.Warnings(), fmt.Errorf("page %d: %w", pageNo, ErrNoPage)
	}

	logging.Logger().Debug("page ready", "page", pageNo, "warnings", len(b.Warnings()))
	return agg.Result(), b.Warnings(), nil
}
