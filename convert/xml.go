package convert

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/pdflayout/model"
)

// XMLConfig holds configuration for an XMLConverter
type XMLConfig struct {
	// Codec names the output encoding, declared in the XML prolog
	Codec string

	// OutputDir receives the page images. Images are described without a
	// source when empty.
	OutputDir string
}

// DefaultXMLConfig returns UTF-8 output without images
func DefaultXMLConfig() XMLConfig {
	return XMLConfig{Codec: DefaultCodec}
}

// XMLConverter writes one element per layout node with its exact geometry
type XMLConverter struct {
	config XMLConfig
	out    *output
}

// NewXMLConverter creates an XML converter with default configuration and
// writes the document prolog
func NewXMLConverter(w io.Writer) (*XMLConverter, error) {
	return NewXMLConverterWithConfig(w, DefaultXMLConfig())
}

// NewXMLConverterWithConfig creates an XML converter with custom
// configuration and writes the document prolog
func NewXMLConverterWithConfig(w io.Writer, config XMLConfig) (*XMLConverter, error) {
	out, err := newOutput(w, config.Codec)
	if err != nil {
		return nil, err
	}
	c := &XMLConverter{config: config, out: out}
	out.writef("<?xml version=\"1.0\" encoding=\"%s\" ?>\n", out.codec)
	out.write("<pages>\n")
	if out.err != nil {
		return nil, out.err
	}
	return c, nil
}

// ReceiveLayout writes one page element, followed by a layout element when
// the page has a text group tree. It panics on a node kind it does not
// know.
func (c *XMLConverter) ReceiveLayout(page *model.Page) error {
	c.render(page)
	if page.Layout != nil {
		c.out.write("<layout>\n")
		c.showLayout(page.Layout)
		c.out.write("</layout>\n")
	}
	return c.out.err
}

func (c *XMLConverter) render(n model.Node) {
	switch v := n.(type) {
	case *model.Page:
		c.out.writef("<page id=\"%d\" bbox=\"%s\" rotate=\"%d\">\n", v.ID, v.BBox, v.Rotate)
		c.renderChildren(v)
		c.out.write("</page>\n")
	case *model.Line:
		c.out.writef("<line linewidth=\"%d\" bbox=\"%s\" />\n", int(v.LineWidth), v.Bounds())
	case *model.Rect:
		c.out.writef("<rect linewidth=\"%d\" bbox=\"%s\" />\n", int(v.LineWidth), v.BBox)
	case *model.Polygon:
		c.out.writef("<polygon linewidth=\"%d\" bbox=\"%s\" pts=\"%s\"/>\n",
			int(v.LineWidth), v.Bounds(), formatPoints(v.Vertices))
	case *model.Figure:
		c.out.writef("<figure name=\"%s\" bbox=\"%s\">\n", html.EscapeString(v.Name), v.BBox)
		c.renderChildren(v)
		c.out.write("</figure>\n")
	case *model.TextLine:
		c.out.writef("<textline bbox=\"%s\">\n", v.BBox)
		c.renderChildren(v)
		c.out.write("</textline>\n")
	case *model.TextBox:
		wmode := ""
		if v.Vertical {
			wmode = " wmode=\"vertical\""
		}
		c.out.writef("<textbox id=\"%d\" bbox=\"%s\"%s>\n", v.Index, v.BBox, wmode)
		c.renderChildren(v)
		c.out.write("</textbox>\n")
	case *model.TextGroup:
		c.out.writef("<textgroup bbox=\"%s\">\n", v.BBox)
		c.renderChildren(v)
		c.out.write("</textgroup>\n")
	case *model.Char:
		c.out.writef("<text font=\"%s\" bbox=\"%s\" size=\"%.3f\">",
			html.EscapeString(v.FontName), v.BBox, v.Size)
		c.out.writeEscaped(v.Text)
		c.out.write("</text>\n")
	case *model.Anon:
		c.out.write("<text>")
		c.out.writeEscaped(v.Text)
		c.out.write("</text>\n")
	case *model.Image:
		c.renderImage(v)
	default:
		panic(fmt.Sprintf("convert: unknown node kind %T", n))
	}
}

func (c *XMLConverter) renderChildren(parent model.Container) {
	for _, child := range parent.Items() {
		c.render(child)
	}
}

func (c *XMLConverter) renderImage(img *model.Image) {
	w, h := int(img.BBox.Width()), int(img.BBox.Height())
	if c.config.OutputDir == "" {
		c.out.writef("<image width=\"%d\" height=\"%d\" />\n", w, h)
		return
	}
	name, err := WriteImage(img, c.config.OutputDir)
	if err != nil {
		c.out.fail(err)
		return
	}
	c.out.writef("<image src=\"%s\" width=\"%d\" height=\"%d\" />\n", html.EscapeString(name), w, h)
}

// showLayout writes the text group tree with boxes as leaves
func (c *XMLConverter) showLayout(n model.Node) {
	switch v := n.(type) {
	case *model.TextBox:
		c.out.writef("<textbox id=\"%d\" bbox=\"%s\" />\n", v.Index, v.BBox)
	case *model.TextGroup:
		c.out.writef("<textgroup bbox=\"%s\">\n", v.BBox)
		for _, child := range v.Children {
			c.showLayout(child)
		}
		c.out.write("</textgroup>\n")
	}
}

// formatPoints joins points as x,y pairs with three decimals
func formatPoints(pts []model.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fmt.Sprintf("%.3f,%.3f", p.X, p.Y)
	}
	return strings.Join(parts, ",")
}

// Close ends the document and returns the first write error
func (c *XMLConverter) Close() error {
	c.out.write("</pages>\n")
	return c.out.err
}
