package contentstream

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/tsawler/pdflayout/device"
	"github.com/tsawler/pdflayout/font"
	"github.com/tsawler/pdflayout/graphicsstate"
	"github.com/tsawler/pdflayout/internal/logging"
	"github.com/tsawler/pdflayout/model"
)

// MaxFormDepth bounds how deeply form XObjects may draw other forms
const MaxFormDepth = 32

// ErrFormDepth is returned when forms nest deeper than MaxFormDepth, which
// usually means a form draws itself
var ErrFormDepth = errors.New("form XObjects nested too deeply")

// Interpreter executes content streams and reports what they draw to a
// device
type Interpreter struct {
	dev     device.Device
	inlines int
}

// NewInterpreter creates an interpreter that drives dev
func NewInterpreter(dev device.Device) *Interpreter {
	return &Interpreter{dev: dev}
}

// ProcessPage draws one page: BeginPage, the page contents, then EndPage.
// EndPage is called even when the contents fail to parse.
func (in *Interpreter) ProcessPage(p *Page) error {
	ctm := PageCTM(p.MediaBox, p.Rotate)
	in.dev.BeginPage(device.PageInfo{MediaBox: p.MediaBox, Rotate: normalizeRotation(p.Rotate)}, ctm)
	in.inlines = 0

	err := in.render(p.Resources, bytes.Join(p.Contents, []byte{'\n'}), ctm, 0)
	if endErr := in.dev.EndPage(); err == nil {
		err = endErr
	}
	return err
}

// render runs one content stream with a fresh graphics state
func (in *Interpreter) render(res *Resources, content []byte, ctm model.Matrix, depth int) error {
	ops, err := NewParser(content).Parse()
	if err != nil {
		return err
	}

	fr := &frame{
		in:    in,
		res:   res,
		gs:    graphicsstate.NewGraphicsState(),
		path:  graphicsstate.NewPath(),
		depth: depth,
	}
	fr.gs.CTM = ctm

	for _, op := range ops {
		if err := fr.execute(op); err != nil {
			return fmt.Errorf("operator %s: %w", op.Operator, err)
		}
	}
	return nil
}

// frame is the state of one content stream being executed
type frame struct {
	in    *Interpreter
	res   *Resources
	gs    *graphicsstate.GraphicsState
	path  *graphicsstate.Path
	depth int
}

// execute applies one operation. Operations with operands of the wrong
// count or type are ignored, as are unknown operators.
func (fr *frame) execute(op Operation) error {
	gs := fr.gs

	switch op.Operator {
	// Graphics state
	case "q":
		gs.Save()
	case "Q":
		if err := gs.Restore(); err != nil {
			logging.Logger().Debug("unbalanced Q ignored", "error", err)
		}
	case "cm":
		if v, ok := op.Numbers(6); ok {
			gs.Transform(model.Matrix{v[0], v[1], v[2], v[3], v[4], v[5]})
		}
	case "w":
		if v, ok := op.Numbers(1); ok {
			gs.SetLineWidth(v[0])
		}
	case "J":
		if v, ok := op.Numbers(1); ok {
			gs.SetLineCap(int(v[0]))
		}
	case "j":
		if v, ok := op.Numbers(1); ok {
			gs.SetLineJoin(int(v[0]))
		}
	case "M":
		if v, ok := op.Numbers(1); ok {
			gs.MiterLimit = v[0]
		}
	case "d":
		fr.setDash(op)

	// Color
	case "G":
		if v, ok := op.Numbers(1); ok {
			gs.SetStrokeGray(v[0])
		}
	case "g":
		if v, ok := op.Numbers(1); ok {
			gs.SetFillGray(v[0])
		}
	case "RG":
		if v, ok := op.Numbers(3); ok {
			gs.SetStrokeColorRGB(v[0], v[1], v[2])
		}
	case "rg":
		if v, ok := op.Numbers(3); ok {
			gs.SetFillColorRGB(v[0], v[1], v[2])
		}
	case "K":
		if v, ok := op.Numbers(4); ok {
			gs.SetStrokeColorRGB(cmykToRGB(v))
		}
	case "k":
		if v, ok := op.Numbers(4); ok {
			gs.SetFillColorRGB(cmykToRGB(v))
		}

	// Path construction
	case "m":
		if v, ok := op.Numbers(2); ok {
			fr.path.MoveTo(v[0], v[1])
		}
	case "l":
		if v, ok := op.Numbers(2); ok {
			fr.path.LineTo(v[0], v[1])
		}
	case "c":
		if v, ok := op.Numbers(6); ok {
			fr.path.CurveTo(v[0], v[1], v[2], v[3], v[4], v[5])
		}
	case "v":
		if v, ok := op.Numbers(4); ok {
			fr.path.CurveToV(v[0], v[1], v[2], v[3])
		}
	case "y":
		if v, ok := op.Numbers(4); ok {
			fr.path.CurveToY(v[0], v[1], v[2], v[3])
		}
	case "h":
		fr.path.ClosePath()
	case "re":
		if v, ok := op.Numbers(4); ok {
			fr.path.Rectangle(v[0], v[1], v[2], v[3])
		}

	// Path painting
	case "S":
		fr.paint(true, false, false)
	case "s":
		fr.path.ClosePath()
		fr.paint(true, false, false)
	case "f", "F":
		fr.paint(false, true, false)
	case "f*":
		fr.paint(false, true, true)
	case "B":
		fr.paint(true, true, false)
	case "B*":
		fr.paint(true, true, true)
	case "b":
		fr.path.ClosePath()
		fr.paint(true, true, false)
	case "b*":
		fr.path.ClosePath()
		fr.paint(true, true, true)
	case "n":
		fr.path.Clear()

	// Text state
	case "BT":
		gs.BeginText()
	case "Tf":
		fr.setFont(op)
	case "Tc":
		if v, ok := op.Numbers(1); ok {
			gs.SetCharSpacing(v[0])
		}
	case "Tw":
		if v, ok := op.Numbers(1); ok {
			gs.SetWordSpacing(v[0])
		}
	case "Tz":
		if v, ok := op.Numbers(1); ok {
			gs.SetHorizontalScaling(v[0])
		}
	case "TL":
		if v, ok := op.Numbers(1); ok {
			gs.SetLeading(v[0])
		}
	case "Tr":
		if v, ok := op.Numbers(1); ok {
			gs.SetRenderingMode(int(v[0]))
		}
	case "Ts":
		if v, ok := op.Numbers(1); ok {
			gs.SetTextRise(v[0])
		}

	// Text positioning
	case "Tm":
		if v, ok := op.Numbers(6); ok {
			gs.SetTextMatrix(model.Matrix{v[0], v[1], v[2], v[3], v[4], v[5]})
		}
	case "Td":
		if v, ok := op.Numbers(2); ok {
			gs.TranslateText(v[0], v[1])
		}
	case "TD":
		if v, ok := op.Numbers(2); ok {
			gs.TranslateTextSetLeading(v[0], v[1])
		}
	case "T*":
		gs.NextLine()

	// Text showing
	case "Tj":
		if len(op.Operands) == 1 {
			fr.showText(Array{op.Operands[0]})
		}
	case "TJ":
		if len(op.Operands) == 1 {
			if arr, ok := op.Operands[0].(Array); ok {
				fr.showText(arr)
			}
		}
	case "'":
		if len(op.Operands) == 1 {
			gs.NextLine()
			fr.showText(Array{op.Operands[0]})
		}
	case "\"":
		if len(op.Operands) == 3 {
			if aw, ok := op.Operands[0].(Number); ok {
				gs.SetWordSpacing(float64(aw))
			}
			if ac, ok := op.Operands[1].(Number); ok {
				gs.SetCharSpacing(float64(ac))
			}
			gs.NextLine()
			fr.showText(Array{op.Operands[2]})
		}

	// XObjects
	case "Do":
		if len(op.Operands) == 1 {
			if name, ok := op.Operands[0].(Name); ok {
				return fr.drawXObject(string(name))
			}
		}
	case "EI":
		if len(op.Operands) == 1 {
			if ii, ok := op.Operands[0].(*InlineImage); ok {
				fr.in.inlines++
				fr.drawImage(fmt.Sprintf("inline%d", fr.in.inlines), ii.Stream())
			}
		}
	}

	return nil
}

func (fr *frame) setDash(op Operation) {
	if len(op.Operands) != 2 {
		return
	}
	arr, ok := op.Operands[0].(Array)
	phase, ok2 := op.Operands[1].(Number)
	if !ok || !ok2 {
		return
	}

	dash := make([]float64, 0, len(arr))
	for _, item := range arr {
		if n, ok := item.(Number); ok {
			dash = append(dash, float64(n))
		}
	}
	fr.gs.SetDash(dash, float64(phase))
}

func (fr *frame) setFont(op Operation) {
	if len(op.Operands) != 2 {
		return
	}
	name, ok := op.Operands[0].(Name)
	size, ok2 := op.Operands[1].(Number)
	if !ok || !ok2 {
		return
	}

	f, found := fr.res.font(string(name))
	if !found {
		logging.Logger().Debug("font not in resources, using Helvetica", "font", string(name))
		f = font.NewStandard("Helvetica")
	}
	fr.gs.SetFont(string(name), f, float64(size))
}

// paint hands the current path to the device and starts a new one
func (fr *frame) paint(stroke, fill, evenOdd bool) {
	fr.in.dev.PaintPath(fr.gs, stroke, fill, evenOdd, fr.path)
	fr.path = graphicsstate.NewPath()
}

// showText renders strings and applies the positioning numbers between
// them, advancing the text offset by each glyph's width and the character
// and word spacing.
func (fr *frame) showText(seq Array) {
	ts := &fr.gs.Text
	if ts.Font == nil {
		logging.Logger().Debug("text shown without a font")
		return
	}

	matrix := ts.Matrix.Multiply(fr.gs.CTM)
	scaling := ts.Scaling * .01
	charSpace := ts.CharSpacing * scaling
	wordSpace := ts.WordSpacing * scaling
	if font.IsMultiByte(ts.Font) {
		wordSpace = 0
	}
	dscale := .001 * ts.FontSize * scaling
	vertical := ts.Font.IsVertical()

	x, y := ts.Offset.X, ts.Offset.Y
	advance := func(d float64) {
		if vertical {
			y += d
		} else {
			x += d
		}
	}

	needCharSpace := false
	for _, item := range seq {
		switch v := item.(type) {
		case Number:
			advance(-float64(v) * dscale)
			needCharSpace = true
		case String:
			for _, code := range font.Codes(ts.Font, []byte(v)) {
				if needCharSpace {
					advance(charSpace)
				}
				m := model.Translate(x, y).Multiply(matrix)
				advance(fr.in.dev.RenderChar(m, ts.Font, ts.FontSize, scaling, ts.Rise, code, ""))
				if code == ' ' && wordSpace != 0 {
					advance(wordSpace)
				}
				needCharSpace = true
			}
		}
	}

	ts.Offset = model.Point{X: x, Y: y}
}

func (fr *frame) drawXObject(name string) error {
	if form, ok := fr.res.form(name); ok {
		return fr.drawForm(name, form)
	}
	if img, ok := fr.res.image(name); ok {
		fr.drawImage(name, img)
		return nil
	}
	logging.Logger().Debug("undefined XObject", "name", name)
	return nil
}

func (fr *frame) drawForm(name string, form *Form) error {
	if fr.depth >= MaxFormDepth {
		return fmt.Errorf("%w: %s", ErrFormDepth, name)
	}

	matrix := form.Matrix
	if matrix == (model.Matrix{}) {
		matrix = model.Identity()
	}
	res := form.Resources
	if res == nil {
		res = fr.res
	}

	fr.in.dev.BeginFigure(name, form.BBox, matrix, fr.gs.CTM)
	err := fr.in.render(res, form.Content, matrix.Multiply(fr.gs.CTM), fr.depth+1)
	fr.in.dev.EndFigure(name)
	if err != nil {
		return fmt.Errorf("form %s: %w", name, err)
	}
	return nil
}

// drawImage places an image as a figure covering the unit square of the
// current user space
func (fr *frame) drawImage(name string, img model.ImageStream) {
	if img.Width() <= 0 || img.Height() <= 0 {
		logging.Logger().Debug("image without dimensions skipped", "name", name)
		return
	}
	fr.in.dev.BeginFigure(name, model.BBox{X1: 1, Y1: 1}, model.Identity(), fr.gs.CTM)
	fr.in.dev.RenderImage(name, img)
	fr.in.dev.EndFigure(name)
}

func cmykToRGB(v []float64) (r, g, b float64) {
	c, m, y, k := v[0], v[1], v[2], v[3]
	return (1 - c) * (1 - k), (1 - m) * (1 - k), (1 - y) * (1 - k)
}
