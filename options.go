package pdflayout

import (
	"runtime"

	"github.com/tsawler/pdflayout/convert"
	"github.com/tsawler/pdflayout/layout"
	"github.com/tsawler/pdflayout/ocr"
)

// Options holds the configuration of a Pipeline.
type Options struct {
	// Page numbering and analysis
	firstPage int
	analyze   bool
	params    layout.Params

	// Concurrency
	workers int

	// Renderer settings
	codec           string
	showPageNumbers *bool // nil keeps each renderer's default
	layoutMode      convert.LayoutMode
	scale           float64
	fontScale       float64
	outputDir       string
	showLayout      bool
	recognizer      ocr.Recognizer
}

// defaultOptions returns the default pipeline options.
func defaultOptions() Options {
	return Options{
		firstPage:  1,
		analyze:    true,
		params:     layout.DefaultParams(),
		workers:    runtime.GOMAXPROCS(0),
		codec:      convert.DefaultCodec,
		layoutMode: convert.LayoutNormal,
		scale:      1,
		fontScale:  0.7,
	}
}

// clone creates a deep copy of Options.
func (o Options) clone() Options {
	c := o
	if o.showPageNumbers != nil {
		v := *o.showPageNumbers
		c.showPageNumbers = &v
	}
	return c
}

func (o Options) textConfig() convert.TextConfig {
	cfg := convert.DefaultTextConfig()
	cfg.Codec = o.codec
	cfg.Recognizer = o.recognizer
	if o.showPageNumbers != nil {
		cfg.ShowPageNumbers = *o.showPageNumbers
	}
	return cfg
}

func (o Options) htmlConfig() convert.HTMLConfig {
	cfg := convert.DefaultHTMLConfig()
	cfg.Codec = o.codec
	cfg.Scale = o.scale
	cfg.FontScale = o.fontScale
	cfg.LayoutMode = o.layoutMode
	cfg.OutputDir = o.outputDir
	if o.showPageNumbers != nil {
		cfg.ShowPageNumbers = *o.showPageNumbers
	}
	if o.showLayout {
		cfg.RectColors["textbox"] = "blue"
		cfg.RectColors["textgroup"] = "red"
	}
	return cfg
}

func (o Options) xmlConfig() convert.XMLConfig {
	cfg := convert.DefaultXMLConfig()
	cfg.Codec = o.codec
	cfg.OutputDir = o.outputDir
	return cfg
}
