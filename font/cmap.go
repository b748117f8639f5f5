package font

import (
	"encoding/hex"
	"fmt"
	"unicode/utf16"
)

// CMap maps character codes to Unicode text (a ToUnicode CMap)
type CMap struct {
	// Single character mappings: charCode -> unicode string
	chars map[uint32]string

	// Range mappings, checked in the order they were declared
	ranges []CMapRange
}

// CMapRange maps a contiguous run of codes to consecutive text values.
// The last UTF-16 unit of Start is incremented for each code past StartCode.
type CMapRange struct {
	StartCode uint32
	EndCode   uint32
	Start     []uint16
}

// NewCMap creates a new empty CMap
func NewCMap() *CMap {
	return &CMap{chars: make(map[uint32]string)}
}

// ParseCMap parses the decoded bytes of a ToUnicode CMap stream. Only the
// bfchar and bfrange sections are read; malformed entries are skipped.
func ParseCMap(data []byte) (*CMap, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty cmap data")
	}

	cm := NewCMap()
	toks := tokenize(data)
	for i := 0; i < len(toks); i++ {
		switch toks[i].text {
		case "beginbfchar":
			i = cm.readBfChar(toks, i+1)
		case "beginbfrange":
			i = cm.readBfRange(toks, i+1)
		}
	}
	return cm, nil
}

// readBfChar reads <src> <dst> pairs up to endbfchar and returns its index
func (cm *CMap) readBfChar(toks []token, i int) int {
	for ; i < len(toks) && toks[i].text != "endbfchar"; i++ {
		if i+1 >= len(toks) || toks[i].kind != tokHex || toks[i+1].kind != tokHex {
			continue
		}
		src, dst := toks[i], toks[i+1]
		i++
		code, ok := codeOf(src.text)
		if !ok {
			continue
		}
		if text, err := hexToUnicode(dst.text); err == nil {
			cm.chars[code] = text
		}
	}
	return i
}

// readBfRange reads <lo> <hi> <dst> and <lo> <hi> [<d0> <d1> ...] entries
// up to endbfrange and returns its index
func (cm *CMap) readBfRange(toks []token, i int) int {
	for i+2 < len(toks) && toks[i].text != "endbfrange" {
		lo, okLo := codeOf(toks[i].text)
		hi, okHi := codeOf(toks[i+1].text)
		i += 2

		if toks[i].kind == tokOpenArray {
			code := lo
			for i++; i < len(toks) && toks[i].kind != tokCloseArray; i++ {
				if okLo && okHi && code <= hi && toks[i].kind == tokHex {
					if text, err := hexToUnicode(toks[i].text); err == nil {
						cm.chars[code] = text
					}
				}
				code++
			}
			i++
			continue
		}

		if okLo && okHi && toks[i].kind == tokHex && lo <= hi {
			if units, err := hexToUTF16(toks[i].text); err == nil && len(units) > 0 {
				cm.ranges = append(cm.ranges, CMapRange{StartCode: lo, EndCode: hi, Start: units})
			}
		}
		i++
	}
	return i
}

// Lookup returns the text for a character code
func (cm *CMap) Lookup(code uint32) (string, bool) {
	if cm == nil {
		return "", false
	}
	if text, ok := cm.chars[code]; ok {
		return text, true
	}
	for _, r := range cm.ranges {
		if code < r.StartCode || code > r.EndCode {
			continue
		}
		units := append([]uint16(nil), r.Start...)
		units[len(units)-1] += uint16(code - r.StartCode)
		return string(utf16.Decode(units)), true
	}
	return "", false
}

// Len returns the number of codes with a single mapping plus declared ranges
func (cm *CMap) Len() int {
	if cm == nil {
		return 0
	}
	return len(cm.chars) + len(cm.ranges)
}

type tokenKind int

const (
	tokWord tokenKind = iota
	tokHex
	tokOpenArray
	tokCloseArray
)

type token struct {
	kind tokenKind
	text string
}

// tokenize splits CMap source into hex strings, array brackets and bare
// words. Comments, names and dictionaries are returned as words.
func tokenize(data []byte) []token {
	var toks []token
	for i := 0; i < len(data); {
		c := data[i]
		switch {
		case isSpace(c):
			i++
		case c == '%':
			for i < len(data) && data[i] != '\n' && data[i] != '\r' {
				i++
			}
		case c == '[':
			toks = append(toks, token{kind: tokOpenArray, text: "["})
			i++
		case c == ']':
			toks = append(toks, token{kind: tokCloseArray, text: "]"})
			i++
		case c == '<' && i+1 < len(data) && data[i+1] == '<':
			toks = append(toks, token{text: "<<"})
			i += 2
		case c == '<':
			j := i + 1
			var digits []byte
			for j < len(data) && data[j] != '>' {
				if !isSpace(data[j]) {
					digits = append(digits, data[j])
				}
				j++
			}
			toks = append(toks, token{kind: tokHex, text: string(digits)})
			i = j + 1
		default:
			j := i
			if c == '/' {
				j++
			}
			for j < len(data) && !isSpace(data[j]) && !isDelimiter(data[j]) {
				j++
			}
			if j == i {
				j++
			}
			toks = append(toks, token{text: string(data[i:j])})
			i = j
		}
	}
	return toks
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == 0
}

func isDelimiter(c byte) bool {
	return c == '[' || c == ']' || c == '<' || c == '>' || c == '%' || c == '/'
}

// codeOf parses a source code of up to four bytes
func codeOf(hexStr string) (uint32, bool) {
	b, err := decodeHex(hexStr)
	if err != nil || len(b) == 0 || len(b) > 4 {
		return 0, false
	}
	var code uint32
	for _, v := range b {
		code = code<<8 | uint32(v)
	}
	return code, true
}

// hexToUTF16 decodes a destination string as big-endian UTF-16 units.
// A single byte is taken as one unit.
func hexToUTF16(hexStr string) ([]uint16, error) {
	b, err := decodeHex(hexStr)
	if err != nil {
		return nil, err
	}
	if len(b) == 1 {
		return []uint16{uint16(b[0])}, nil
	}
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("odd UTF-16BE length %d", len(b))
	}
	units := make([]uint16, len(b)/2)
	for k := range units {
		units[k] = uint16(b[2*k])<<8 | uint16(b[2*k+1])
	}
	if len(units) > 0 && units[0] == 0xFEFF {
		units = units[1:]
	}
	return units, nil
}

// hexToUnicode converts a destination hex string to text
func hexToUnicode(hexStr string) (string, error) {
	units, err := hexToUTF16(hexStr)
	if err != nil {
		return "", err
	}
	if len(units) == 0 {
		return "", fmt.Errorf("invalid unicode data")
	}
	return string(utf16.Decode(units)), nil
}

// decodeHex decodes hex digits, padding an odd trailing digit with zero
func decodeHex(hexStr string) ([]byte, error) {
	if len(hexStr)%2 != 0 {
		hexStr += "0"
	}
	return hex.DecodeString(hexStr)
}
