package contentstream

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// ErrSyntax is wrapped by every error the parser returns
var ErrSyntax = errors.New("content stream syntax error")

// Parser parses PDF content streams into a sequence of operations.
// Each operation consists of an operator and its operands.
type Parser struct {
	data  []byte
	pos   int
	ops   []Operation
	stack []Operand
}

// NewParser creates a new content stream parser for the given data.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse parses the content stream and returns all operations in order.
// Operands left without an operator at the end are dropped.
func (p *Parser) Parse() ([]Operation, error) {
	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			break
		}

		start := p.pos
		if err := p.parseNext(); err != nil {
			return nil, fmt.Errorf("%w at position %d: %v", ErrSyntax, start, err)
		}
	}

	return p.ops, nil
}

// parseNext parses the next token, which is either an operand (pushed onto the
// stack) or an operator (which consumes the operand stack and creates an Operation).
func (p *Parser) parseNext() error {
	if isRegular(p.data[p.pos]) && !isNumberStart(p.data[p.pos]) {
		word := p.readKeyword()
		switch word {
		case "true":
			p.stack = append(p.stack, Bool(true))
		case "false":
			p.stack = append(p.stack, Bool(false))
		case "null":
			p.stack = append(p.stack, Null{})
		case "BI":
			return p.parseInlineImage()
		default:
			p.emit(word, p.stack)
		}
		return nil
	}

	operand, err := p.parseOperand()
	if err != nil {
		return err
	}
	p.stack = append(p.stack, operand)
	return nil
}

func (p *Parser) emit(operator string, operands []Operand) {
	p.ops = append(p.ops, Operation{Operator: operator, Operands: operands})
	p.stack = nil
}

// readKeyword reads a run of regular characters
func (p *Parser) readKeyword() string {
	start := p.pos
	for p.pos < len(p.data) && isRegular(p.data[p.pos]) {
		p.pos++
	}
	return string(p.data[start:p.pos])
}

// parseOperand parses a single operand, which can be a number, string, name,
// array, dictionary, boolean, or null.
func (p *Parser) parseOperand() (Operand, error) {
	p.skipSpace()
	if p.pos >= len(p.data) {
		return nil, errors.New("unexpected end of stream")
	}

	c := p.data[p.pos]
	switch {
	case isNumberStart(c):
		return p.parseNumber()
	case c == '(':
		return p.parseString()
	case c == '<' && p.peek(1) == '<':
		return p.parseDict()
	case c == '<':
		return p.parseHexString()
	case c == '/':
		return p.parseName(), nil
	case c == '[':
		return p.parseArray()
	case isRegular(c):
		switch word := p.readKeyword(); word {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		case "null":
			return Null{}, nil
		default:
			return nil, fmt.Errorf("unexpected keyword %q inside an operand", word)
		}
	}

	return nil, fmt.Errorf("unexpected character %q", c)
}

// parseNumber parses an integer or real number operand.
func (p *Parser) parseNumber() (Operand, error) {
	start := p.pos
	if p.data[p.pos] == '+' || p.data[p.pos] == '-' {
		p.pos++
	}

	hasDecimal := false
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
		} else if c == '.' && !hasDecimal {
			hasDecimal = true
			p.pos++
		} else {
			break
		}
	}

	numStr := string(p.data[start:p.pos])
	switch numStr {
	case "+", "-", ".", "+.", "-.":
		// A lone sign or point reads as zero
		return Number(0), nil
	}

	val, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", numStr, err)
	}
	return Number(val), nil
}

// parseString parses a literal string (...) with escape sequence handling.
func (p *Parser) parseString() (Operand, error) {
	p.pos++ // skip '('

	var result bytes.Buffer
	depth := 1

	for p.pos < len(p.data) && depth > 0 {
		c := p.data[p.pos]
		p.pos++

		switch c {
		case '\\':
			p.readEscape(&result)
		case '(':
			depth++
			result.WriteByte(c)
		case ')':
			depth--
			if depth > 0 {
				result.WriteByte(c)
			}
		default:
			result.WriteByte(c)
		}
	}

	if depth != 0 {
		return nil, errors.New("unclosed string")
	}
	return String(result.String()), nil
}

// readEscape decodes the escape sequence after a backslash
func (p *Parser) readEscape(result *bytes.Buffer) {
	if p.pos >= len(p.data) {
		return
	}

	next := p.data[p.pos]
	p.pos++
	switch next {
	case 'n':
		result.WriteByte('\n')
	case 'r':
		result.WriteByte('\r')
	case 't':
		result.WriteByte('\t')
	case 'b':
		result.WriteByte('\b')
	case 'f':
		result.WriteByte('\f')
	case '\r':
		// Line continuation
		if p.pos < len(p.data) && p.data[p.pos] == '\n' {
			p.pos++
		}
	case '\n':
	case '0', '1', '2', '3', '4', '5', '6', '7':
		octal := int(next - '0')
		for i := 0; i < 2 && p.pos < len(p.data); i++ {
			d := p.data[p.pos]
			if d < '0' || d > '7' {
				break
			}
			octal = octal*8 + int(d-'0')
			p.pos++
		}
		result.WriteByte(byte(octal & 0xFF))
	default:
		// \( \) \\ and unknown escapes keep the character
		result.WriteByte(next)
	}
}

// parseHexString parses a hexadecimal string <...>. An odd final digit is
// padded with zero.
func (p *Parser) parseHexString() (Operand, error) {
	p.pos++ // skip '<'

	var result bytes.Buffer
	var digits []byte

	for {
		if p.pos >= len(p.data) {
			return nil, errors.New("unclosed hex string")
		}
		c := p.data[p.pos]
		p.pos++

		if c == '>' {
			break
		}
		if isSpace(c) {
			continue
		}
		if !isHexDigit(c) {
			return nil, fmt.Errorf("invalid hex digit %q", c)
		}

		digits = append(digits, c)
		if len(digits) == 2 {
			result.WriteByte(hexValue(digits[0])<<4 | hexValue(digits[1]))
			digits = digits[:0]
		}
	}

	if len(digits) == 1 {
		result.WriteByte(hexValue(digits[0]) << 4)
	}
	return String(result.String()), nil
}

// parseName parses a name object /Name with # escape handling.
func (p *Parser) parseName() Operand {
	p.pos++ // skip '/'

	var result bytes.Buffer
	for p.pos < len(p.data) && isRegular(p.data[p.pos]) {
		c := p.data[p.pos]
		if c == '#' && p.pos+2 < len(p.data) && isHexDigit(p.data[p.pos+1]) && isHexDigit(p.data[p.pos+2]) {
			result.WriteByte(hexValue(p.data[p.pos+1])<<4 | hexValue(p.data[p.pos+2]))
			p.pos += 3
			continue
		}
		result.WriteByte(c)
		p.pos++
	}

	return Name(result.String())
}

// parseArray parses an array [...] of operands.
func (p *Parser) parseArray() (Operand, error) {
	p.pos++ // skip '['

	arr := Array{}
	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			return nil, errors.New("unclosed array")
		}
		if p.data[p.pos] == ']' {
			p.pos++
			return arr, nil
		}

		obj, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		arr = append(arr, obj)
	}
}

// parseDict parses a dictionary <<...>>, as used by marked content and
// inline images.
func (p *Parser) parseDict() (Operand, error) {
	p.pos += 2 // skip '<<'

	dict := Dict{}
	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			return nil, errors.New("unclosed dictionary")
		}
		if p.data[p.pos] == '>' && p.peek(1) == '>' {
			p.pos += 2
			return dict, nil
		}
		if p.data[p.pos] != '/' {
			return nil, errors.New("dictionary key must be a name")
		}

		key := p.parseName().(Name)
		value, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		dict[string(key)] = value
	}
}

// parseInlineImage reads the key/value pairs after BI, the ID keyword, and
// the image bytes up to an EI keyword, and emits a single EI operation.
func (p *Parser) parseInlineImage() error {
	dict := Dict{}
	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			return errors.New("inline image without ID")
		}
		if p.data[p.pos] != '/' {
			word := p.readKeyword()
			if word != "ID" {
				return fmt.Errorf("unexpected %q in inline image dictionary", word)
			}
			break
		}

		key := p.parseName().(Name)
		value, err := p.parseOperand()
		if err != nil {
			return err
		}
		dict[string(key)] = value
	}

	// A single white-space character separates ID from the data
	if p.pos < len(p.data) && isSpace(p.data[p.pos]) {
		p.pos++
	}

	start := p.pos
	for i := start; i+1 < len(p.data); i++ {
		if p.data[i] != 'E' || p.data[i+1] != 'I' {
			continue
		}
		if i > start && !isSpace(p.data[i-1]) {
			continue
		}
		if i+2 < len(p.data) && isRegular(p.data[i+2]) {
			continue
		}

		end := i
		if end > start {
			end-- // the white space before EI
		}
		data := append([]byte(nil), p.data[start:end]...)
		p.pos = i + 2
		p.emit("EI", []Operand{&InlineImage{Dict: dict, Data: data}})
		return nil
	}

	return errors.New("inline image without EI")
}

func (p *Parser) peek(offset int) byte {
	if p.pos+offset < len(p.data) {
		return p.data[p.pos+offset]
	}
	return 0
}

// skipSpace advances past white space and comments
func (p *Parser) skipSpace() {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == '%' {
			for p.pos < len(p.data) && p.data[p.pos] != '\n' && p.data[p.pos] != '\r' {
				p.pos++
			}
			continue
		}
		if !isSpace(c) {
			return
		}
		p.pos++
	}
}

// isSpace reports whether c is a PDF whitespace character.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

// isDelimiter reports whether c is a PDF delimiter character.
func isDelimiter(c byte) bool {
	return c == '(' || c == ')' || c == '<' || c == '>' ||
		c == '[' || c == ']' || c == '{' || c == '}' ||
		c == '/' || c == '%'
}

// isRegular reports whether c can be part of a keyword or name
func isRegular(c byte) bool {
	return !isSpace(c) && !isDelimiter(c)
}

func isNumberStart(c byte) bool {
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

// isHexDigit reports whether c is a hexadecimal digit.
func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// hexValue returns the numeric value of a hexadecimal digit.
func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
