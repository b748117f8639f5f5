package convert

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/pdflayout/model"
)

// LayoutMode selects how closely markup output follows the page geometry
type LayoutMode int

const (
	// LayoutNormal positions each text box and flows its text inside,
	// with a line break per text line
	LayoutNormal LayoutMode = iota
	// LayoutExact positions every character and draws the boxes of lines
	// and text boxes
	LayoutExact
	// LayoutLoose is LayoutNormal without line breaks
	LayoutLoose
)

var layoutModeNames = map[LayoutMode]string{
	LayoutNormal: "normal",
	LayoutExact:  "exact",
	LayoutLoose:  "loose",
}

func (m LayoutMode) String() string {
	if s, ok := layoutModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("LayoutMode(%d)", int(m))
}

// ParseLayoutMode returns the mode named "normal", "exact" or "loose"
func ParseLayoutMode(s string) (LayoutMode, error) {
	for m, name := range layoutModeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return LayoutNormal, fmt.Errorf("unknown layout mode: %q", s)
}

// HTMLConfig holds configuration for an HTMLConverter
type HTMLConfig struct {
	// Codec names the output encoding. Characters it cannot represent are
	// written as numeric character references.
	Codec string

	// Scale multiplies every coordinate, FontScale additionally every font
	// size
	Scale     float64
	FontScale float64

	LayoutMode      LayoutMode
	ShowPageNumbers bool

	// PageMargin separates consecutive pages vertically
	PageMargin float64

	// OutputDir receives the page images. Images are left out when empty.
	OutputDir string

	// RectColors maps a node kind to the border color of its outline:
	// "page", "polygon", "figure", "textline", "textbox", "textgroup" and
	// "char". Kinds without a color are not outlined.
	RectColors map[string]string

	// TextColors maps "char" and "textbox" to the color of the text placed
	// for them in exact mode
	TextColors map[string]string
}

// DefaultRectColors outlines shapes in black and pages in gray
func DefaultRectColors() map[string]string {
	return map[string]string{
		"polygon": "black",
		"page":    "gray",
	}
}

// DefaultTextColors draws exact mode characters in black
func DefaultTextColors() map[string]string {
	return map[string]string{
		"char": "black",
	}
}

// DefaultHTMLConfig returns the default markup configuration
func DefaultHTMLConfig() HTMLConfig {
	return HTMLConfig{
		Codec:           DefaultCodec,
		Scale:           1,
		FontScale:       0.7,
		LayoutMode:      LayoutNormal,
		ShowPageNumbers: true,
		PageMargin:      50,
		RectColors:      DefaultRectColors(),
		TextColors:      DefaultTextColors(),
	}
}

// fontKey identifies an inline font run
type fontKey struct {
	name string
	size float64
}

// HTMLConverter writes pages as one HTML document of absolutely positioned
// elements. Pages are stacked top to bottom.
type HTMLConverter struct {
	config HTMLConfig
	out    *output

	yoffset   float64
	font      *fontKey
	fontStack []*fontKey
	pages     []int
}

// NewHTMLConverter creates an HTML converter with default configuration
// and writes the document header
func NewHTMLConverter(w io.Writer) (*HTMLConverter, error) {
	return NewHTMLConverterWithConfig(w, DefaultHTMLConfig())
}

// NewHTMLConverterWithConfig creates an HTML converter with custom
// configuration and writes the document header
func NewHTMLConverterWithConfig(w io.Writer, config HTMLConfig) (*HTMLConverter, error) {
	out, err := newOutput(w, config.Codec)
	if err != nil {
		return nil, err
	}
	c := &HTMLConverter{config: config, out: out, yoffset: config.PageMargin}
	c.writeHeader()
	if out.err != nil {
		return nil, out.err
	}
	return c, nil
}

func (c *HTMLConverter) writeHeader() {
	c.out.write("<html><head>\n")
	c.out.writef("<meta http-equiv=\"Content-Type\" content=\"text/html; charset=%s\">\n", c.out.codec)
	c.out.write("</head><body>\n")
}

func (c *HTMLConverter) writeFooter() {
	links := make([]string, len(c.pages))
	for i, id := range c.pages {
		links[i] = fmt.Sprintf("<a href=\"#%d\">%d</a>", id, id)
	}
	c.out.writef("<div style=\"position:absolute; top:0px;\">Page: %s</div>\n", strings.Join(links, ", "))
	c.out.write("</body></html>\n")
}

// px scales a length to whole pixels
func (c *HTMLConverter) px(v float64) int {
	return int(v * c.config.Scale)
}

// top converts a page y coordinate to a document offset in pixels
func (c *HTMLConverter) top(y float64) int {
	return c.px(c.yoffset - y)
}

func (c *HTMLConverter) placeRect(kind string, border int, b model.BBox) {
	color := c.config.RectColors[kind]
	if color == "" {
		return
	}
	c.out.writef("<span style=\"position:absolute; border: %s %dpx solid; "+
		"left:%dpx; top:%dpx; width:%dpx; height:%dpx;\"></span>\n",
		color, border, c.px(b.X0), c.top(b.Y1), c.px(b.Width()), c.px(b.Height()))
}

func (c *HTMLConverter) placeImage(img *model.Image, border int) {
	if c.config.OutputDir == "" {
		return
	}
	name, err := WriteImage(img, c.config.OutputDir)
	if err != nil {
		c.out.fail(err)
		return
	}
	b := img.BBox
	c.out.writef("<img src=\"%s\" border=\"%d\" style=\"position:absolute; left:%dpx; top:%dpx;\" "+
		"width=\"%d\" height=\"%d\" />\n",
		html.EscapeString(name), border, c.px(b.X0), c.top(b.Y1), c.px(b.Width()), c.px(b.Height()))
}

func (c *HTMLConverter) placeText(kind, text string, x, y, size float64) {
	color := c.config.TextColors[kind]
	if color == "" {
		return
	}
	c.out.writef("<span style=\"position:absolute; color:%s; left:%dpx; top:%dpx; font-size:%dpx;\">",
		color, c.px(x), c.top(y), int(size*c.config.Scale*c.config.FontScale))
	c.out.writeEscaped(text)
	c.out.write("</span>\n")
}

// beginTextBox opens a positioned box and a fresh font scope
func (c *HTMLConverter) beginTextBox(box *model.TextBox) {
	c.fontStack = append(c.fontStack, c.font)
	c.font = nil

	border := ""
	if color := c.config.RectColors["textbox"]; color != "" {
		border = fmt.Sprintf("border: %s 1px solid; ", color)
	}
	b := box.BBox
	c.out.writef("<div style=\"position:absolute; %swriting-mode:%s; "+
		"left:%dpx; top:%dpx; width:%dpx; height:%dpx;\">",
		border, box.WritingMode(), c.px(b.X0), c.top(b.Y1), c.px(b.Width()), c.px(b.Height()))
}

// endTextBox closes the open font run and restores the enclosing scope
func (c *HTMLConverter) endTextBox() {
	if c.font != nil {
		c.out.write("</span>")
	}
	c.font = c.fontStack[len(c.fontStack)-1]
	c.fontStack = c.fontStack[:len(c.fontStack)-1]
	c.out.write("</div>")
}

// putText writes text in the given font, opening a new span only when the
// font differs from the current run
func (c *HTMLConverter) putText(text, fontName string, size float64) {
	f := fontKey{name: fontName, size: size}
	if c.font == nil || *c.font != f {
		if c.font != nil {
			c.out.write("</span>")
		}
		c.out.writef("<span style=\"font-family: %s; font-size:%dpx\">",
			html.EscapeString(fontName), int(size*c.config.Scale*c.config.FontScale))
		c.font = &f
	}
	c.out.writeEscaped(text)
}

// ReceiveLayout writes one page below the previous ones
func (c *HTMLConverter) ReceiveLayout(page *model.Page) error {
	c.render(page)
	// chars outside any text box leave a run open at page level
	if c.font != nil {
		c.out.write("</span>")
		c.font = nil
	}
	if page.Layout != nil {
		c.showLayout(page.Layout)
	}
	c.yoffset += c.config.PageMargin
	c.pages = append(c.pages, page.ID)
	return c.out.err
}

func (c *HTMLConverter) render(n model.Node) {
	switch v := n.(type) {
	case *model.Page:
		c.yoffset += v.BBox.Y1
		c.placeRect("page", 1, v.BBox)
		if c.config.ShowPageNumbers {
			c.out.writef("<div style=\"position:absolute; top:%dpx;\">", c.top(v.BBox.Y1))
			c.out.writef("<a name=\"%d\">Page %d</a></div>\n", v.ID, v.ID)
		}
		c.renderChildren(v)
	case model.Shape:
		c.placeRect("polygon", 1, v.Bounds())
	case *model.Figure:
		c.placeRect("figure", 1, v.BBox)
		c.renderChildren(v)
	case *model.Image:
		c.placeImage(v, 1)
	default:
		if c.config.LayoutMode == LayoutExact {
			c.renderExact(n)
		} else {
			c.renderFlow(n)
		}
	}
}

func (c *HTMLConverter) renderChildren(parent model.Container) {
	for _, child := range parent.Items() {
		c.render(child)
	}
}

func (c *HTMLConverter) renderExact(n model.Node) {
	switch v := n.(type) {
	case *model.TextLine:
		c.placeRect("textline", 1, v.BBox)
		c.renderChildren(v)
	case *model.TextBox:
		c.placeRect("textbox", 1, v.BBox)
		c.placeText("textbox", strconv.Itoa(v.Index+1), v.BBox.X0, v.BBox.Y1, 20)
		c.renderChildren(v)
	case *model.Char:
		c.placeRect("char", 1, v.BBox)
		c.placeText("char", v.Text, v.BBox.X0, v.BBox.Y1, v.Size)
	}
}

func (c *HTMLConverter) renderFlow(n model.Node) {
	switch v := n.(type) {
	case *model.TextLine:
		c.renderChildren(v)
		if c.config.LayoutMode != LayoutLoose {
			c.out.write("<br>")
		}
	case *model.TextBox:
		c.renderTextBox(v)
	case *model.Char:
		c.putText(v.Text, v.FontName, v.Size)
	case model.TextNode:
		c.out.writeEscaped(v.GetText())
	}
}

func (c *HTMLConverter) renderTextBox(box *model.TextBox) {
	c.beginTextBox(box)
	defer c.endTextBox()
	c.renderChildren(box)
}

// showLayout outlines the text group tree
func (c *HTMLConverter) showLayout(n model.Node) {
	g, ok := n.(*model.TextGroup)
	if !ok {
		return
	}
	c.placeRect("textgroup", 1, g.BBox)
	for _, child := range g.Children {
		c.showLayout(child)
	}
}

// Close writes the page index footer and returns the first write error
func (c *HTMLConverter) Close() error {
	c.writeFooter()
	return c.out.err
}
