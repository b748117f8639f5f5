package pdflayout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tsawler/pdflayout/contentstream"
	"github.com/tsawler/pdflayout/convert"
	"github.com/tsawler/pdflayout/device"
	"github.com/tsawler/pdflayout/font"
	"github.com/tsawler/pdflayout/format"
	"github.com/tsawler/pdflayout/model"
)

var letterBox = model.BBox{X1: 612, Y1: 792}

// textPage draws s in Courier at (72, 700)
func textPage(s string) Source {
	content := fmt.Sprintf("BT /F1 10 Tf 72 700 Td (%s) Tj ET", s)
	return ContentPage(&contentstream.Page{
		MediaBox:  letterBox,
		Contents:  [][]byte{[]byte(content)},
		Resources: &contentstream.Resources{Fonts: map[string]font.Font{"F1": font.NewStandard("Courier")}},
	})
}

type failWriter struct{}

var errBoom = errors.New("boom")

func (failWriter) Write([]byte) (int, error) { return 0, errBoom }

// noGlyphs maps no character code
type noGlyphs struct {
	font.Font
}

func (noGlyphs) Decode(int) (string, bool) { return "", false }

func TestConvertText(t *testing.T) {
	out, warnings, err := New(format.Text).Convert(context.Background(), textPage("Hello"), textPage("World"))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if out != "Hello\n\n\fWorld\n\n\f" {
		t.Errorf("Expected two pages of text, got %q", out)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
}

func TestConvertKeepsPageOrder(t *testing.T) {
	var sources []Source
	var expected strings.Builder
	for i := 0; i < 20; i++ {
		sources = append(sources, textPage(fmt.Sprintf("P%02d", i)))
		fmt.Fprintf(&expected, "P%02d\n\n\f", i)
	}

	out, _, err := New(format.Text).Workers(3).Convert(context.Background(), sources...)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if out != expected.String() {
		t.Errorf("Expected pages in source order, got %q", out)
	}
}

func TestConvertPageNumbers(t *testing.T) {
	out, _, err := New(format.Text).ShowPageNumbers(true).FirstPage(5).
		Convert(context.Background(), textPage("A"), textPage("B"))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if !strings.HasPrefix(out, "Page 5\nA") || !strings.Contains(out, "Page 6\nB") {
		t.Errorf("Expected pages numbered from 5, got %q", out)
	}
}

func TestConvertFormats(t *testing.T) {
	tests := []struct {
		filename string
		want     format.Format
		contains string
	}{
		{"out.xml", format.XML, `<page id="1" bbox="0.000,0.000,612.000,792.000" rotate="0">`},
		{"out.html", format.HTML, `<a name="1">Page 1</a>`},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			p := ForFile(tt.filename)
			if p.Format() != tt.want {
				t.Fatalf("Expected format %v, got %v", tt.want, p.Format())
			}
			out, _, err := p.Convert(context.Background(), textPage("Hi"))
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}
			if got := format.DetectFromMagic([]byte(out)); got != tt.want {
				t.Errorf("Expected output detected as %v, got %v", tt.want, got)
			}
			if !strings.Contains(out, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, out)
			}
		})
	}
}

func TestPipelineOptionsAreImmutable(t *testing.T) {
	base := New(format.Text)
	_ = base.ShowPageNumbers(true)

	out, _, err := base.Convert(context.Background(), textPage("A"))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if strings.Contains(out, "Page 1") {
		t.Errorf("Expected the base pipeline to be unchanged, got %q", out)
	}
}

func TestPipelineInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		p    *Pipeline
	}{
		{"unknown format", New(format.Unknown)},
		{"unsupported file", ForFile("out.pdf")},
		{"workers", New(format.Text).Workers(0)},
		{"first page", New(format.Text).FirstPage(0)},
		{"scale", New(format.HTML).Scale(0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := tt.p.Convert(context.Background(), textPage("A")); err == nil {
				t.Error("Expected an error")
			}
			if _, _, err := tt.p.Build(context.Background(), textPage("A")); err == nil {
				t.Error("Expected Build to fail too")
			}
		})
	}

	if _, _, err := New(format.Text).Codec("no-such-codec").Convert(context.Background()); !errors.Is(err, convert.ErrUnknownCodec) {
		t.Errorf("Expected ErrUnknownCodec, got %v", err)
	}
}

func TestPipelineSourceErrors(t *testing.T) {
	failing := SourceFunc(func(dev device.Device) error { return errBoom })
	silent := SourceFunc(func(dev device.Device) error { return nil })
	unbalanced := SourceFunc(func(dev device.Device) error {
		dev.EndFigure("stray")
		return nil
	})

	tests := []struct {
		name   string
		source Source
		want   error
	}{
		{"source error", failing, errBoom},
		{"no page", silent, ErrNoPage},
		{"stack mismatch", unbalanced, device.ErrStackMismatch},
		{"syntax error", ContentPage(&contentstream.Page{Contents: [][]byte{[]byte("(open")}}), contentstream.ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := New(format.Text).Convert(context.Background(), textPage("A"), tt.source, textPage("C"))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			if !strings.Contains(err.Error(), "page 2") {
				t.Errorf("Expected the page number in %q", err)
			}
		})
	}
}

func TestPipelineWriteError(t *testing.T) {
	_, err := New(format.Text).Run(context.Background(), failWriter{}, textPage("A"), textPage("B"))
	if !errors.Is(err, errBoom) {
		t.Errorf("Expected the write error, got %v", err)
	}
}

func TestPipelineCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := New(format.Text).Convert(ctx, textPage("A"), textPage("B"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestPipelineEmpty(t *testing.T) {
	out, _, err := New(format.XML).Convert(context.Background())
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if !strings.HasSuffix(out, "<pages>\n</pages>\n") {
		t.Errorf("Expected an empty document, got %q", out)
	}
}

func TestPipelineBuild(t *testing.T) {
	pages, _, err := New(format.Text).Build(context.Background(), textPage("AB"), textPage("C"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(pages) != 2 || pages[0].ID != 1 || pages[1].ID != 2 {
		t.Fatalf("Expected pages 1 and 2, got %v", pages)
	}
	if _, ok := pages[0].Layout.(*model.TextBox); !ok {
		t.Errorf("Expected a single text box layout, got %T", pages[0].Layout)
	}

	raw, _, err := New(format.Text).NoAnalysis().Build(context.Background(), textPage("AB"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if raw[0].Layout != nil || len(raw[0].Children) != 2 {
		t.Errorf("Expected two raw chars without layout, got %d children", len(raw[0].Children))
	}
	if _, ok := raw[0].Children[0].(*model.Char); !ok {
		t.Errorf("Expected a char, got %T", raw[0].Children[0])
	}
}

func TestPipelineWarnings(t *testing.T) {
	src := ContentPage(&contentstream.Page{
		MediaBox:  letterBox,
		Contents:  [][]byte{[]byte("BT /X 10 Tf (ab) Tj ET")},
		Resources: &contentstream.Resources{Fonts: map[string]font.Font{"X": noGlyphs{font.NewStandard("Courier")}}},
	})

	out, warnings, err := New(format.Text).FirstPage(3).Convert(context.Background(), src)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if !strings.Contains(out, `\x61\x62`) {
		t.Errorf("Expected placeholders in the output, got %q", out)
	}
	if len(warnings) != 2 || warnings[0].Page != 3 || warnings[0].Code != 'a' {
		t.Fatalf("Expected two warnings on page 3, got %v", warnings)
	}

	expected := "page 3: code 0x61 not mapped in font Courier\npage 3: code 0x62 not mapped in font Courier"
	if got := FormatWarnings(warnings); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}
