package contentstream

import (
	"errors"
	"testing"
)

func parse(t *testing.T, input string) []Operation {
	t.Helper()
	ops, err := NewParser([]byte(input)).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return ops
}

func TestParseSimpleOperator(t *testing.T) {
	ops := parse(t, "q")

	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}
	if ops[0].Operator != "q" {
		t.Errorf("expected operator 'q', got %q", ops[0].Operator)
	}
	if len(ops[0].Operands) != 0 {
		t.Errorf("expected 0 operands, got %d", len(ops[0].Operands))
	}
}

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"100 Tz", 100},
		{"12.5 Tz", 12.5},
		{"-3 Tz", -3},
		{"+4 Tz", 4},
		{".5 Tz", 0.5},
		{"-.25 Tz", -0.25},
		{"7. Tz", 7},
		{"- Tz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ops := parse(t, tt.input)
			if len(ops) != 1 || len(ops[0].Operands) != 1 {
				t.Fatalf("expected one operation with one operand, got %v", ops)
			}
			n, ok := ops[0].Operands[0].(Number)
			if !ok {
				t.Fatalf("expected Number operand, got %T", ops[0].Operands[0])
			}
			if float64(n) != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, n)
			}
		})
	}
}

func TestParseTextBlock(t *testing.T) {
	ops := parse(t, "BT\n/F1 12 Tf\n100 700 Td\n(Hello) Tj\nET")

	expected := []string{"BT", "Tf", "Td", "Tj", "ET"}
	if len(ops) != len(expected) {
		t.Fatalf("expected %d operations, got %d", len(expected), len(ops))
	}
	for i, op := range expected {
		if ops[i].Operator != op {
			t.Errorf("operation %d: expected %q, got %q", i, op, ops[i].Operator)
		}
	}

	if name, ok := ops[1].Operands[0].(Name); !ok || name != "F1" {
		t.Errorf("expected font name F1, got %v", ops[1].Operands[0])
	}
	if s, ok := ops[3].Operands[0].(String); !ok || s != "Hello" {
		t.Errorf("expected string Hello, got %v", ops[3].Operands[0])
	}
}

func TestParseOperatorCharacters(t *testing.T) {
	ops := parse(t, "T* f* B* b* (a) ' 1 2 (b) \" 0 0 d0")

	expected := []string{"T*", "f*", "B*", "b*", "'", "\"", "d0"}
	if len(ops) != len(expected) {
		t.Fatalf("expected %d operations, got %d: %v", len(expected), len(ops), ops)
	}
	for i, op := range expected {
		if ops[i].Operator != op {
			t.Errorf("operation %d: expected %q, got %q", i, op, ops[i].Operator)
		}
	}
	if len(ops[5].Operands) != 3 {
		t.Errorf("expected 3 operands for \", got %d", len(ops[5].Operands))
	}
}

func TestParseArray(t *testing.T) {
	ops := parse(t, "[(Hello) -250 (World) [1 2]] TJ")

	arr, ok := ops[0].Operands[0].(Array)
	if !ok {
		t.Fatalf("expected Array operand, got %T", ops[0].Operands[0])
	}
	if len(arr) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(arr))
	}
	if n, ok := arr[1].(Number); !ok || n != -250 {
		t.Errorf("expected -250, got %v", arr[1])
	}
	if inner, ok := arr[3].(Array); !ok || len(inner) != 2 {
		t.Errorf("expected nested array of 2, got %v", arr[3])
	}
}

func TestParseStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"escapes", `(a\nb\tc\\d\(e\)) Tj`, "a\nb\tc\\d(e)"},
		{"octal", `(\101\102\0103) Tj`, "AB\b3"},
		{"nested parentheses", `(outer (inner) text) Tj`, "outer (inner) text"},
		{"line continuation", "(ab\\\ncd) Tj", "abcd"},
		{"unknown escape", `(\q) Tj`, "q"},
		{"hex", `<48656C6C6F> Tj`, "Hello"},
		{"hex with spaces", `<48 65 6c 6C 6f> Tj`, "Hello"},
		{"odd hex", `<414> Tj`, "A@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := parse(t, tt.input)
			s, ok := ops[0].Operands[0].(String)
			if !ok {
				t.Fatalf("expected String operand, got %T", ops[0].Operands[0])
			}
			if string(s) != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, s)
			}
		})
	}
}

func TestParseName(t *testing.T) {
	ops := parse(t, "/A#20B /C#2 Tf")

	if n := ops[0].Operands[0].(Name); n != "A B" {
		t.Errorf("expected escaped name 'A B', got %q", n)
	}
	if n := ops[0].Operands[1].(Name); n != "C#2" {
		t.Errorf("expected invalid escape kept, got %q", n)
	}
}

func TestParseDictAndKeywords(t *testing.T) {
	ops := parse(t, "/Span <</ActualText (x) /MCID 3 /On true /Off false /None null>> BDC EMC")

	if len(ops) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(ops))
	}
	d, ok := ops[0].Operands[1].(Dict)
	if !ok {
		t.Fatalf("expected Dict operand, got %T", ops[0].Operands[1])
	}
	if d["MCID"] != Number(3) || d["On"] != Bool(true) || d["Off"] != Bool(false) {
		t.Errorf("unexpected dictionary %v", d)
	}
	if _, ok := d["None"].(Null); !ok {
		t.Errorf("expected Null, got %T", d["None"])
	}
}

func TestParseComments(t *testing.T) {
	ops := parse(t, "% leading comment\n1 w % trailing\nS")

	if len(ops) != 2 || ops[0].Operator != "w" || ops[1].Operator != "S" {
		t.Fatalf("expected w and S, got %v", ops)
	}
}

func TestParseOperandsDoNotLeak(t *testing.T) {
	p1 := NewParser([]byte("1 2"))
	if _, err := p1.Parse(); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ops := parse(t, "S")
	if len(ops[0].Operands) != 0 {
		t.Errorf("expected operands of another parser to be ignored, got %v", ops[0].Operands)
	}
}

func TestParseInlineImage(t *testing.T) {
	input := "q BI /W 2 /H 1 /CS /G /BPC 8 /F [/AHx] ID 00FF> EI Q"
	ops := parse(t, input)

	if len(ops) != 3 || ops[1].Operator != "EI" {
		t.Fatalf("expected q EI Q, got %v", ops)
	}
	ii, ok := ops[1].Operands[0].(*InlineImage)
	if !ok {
		t.Fatalf("expected InlineImage operand, got %T", ops[1].Operands[0])
	}
	if string(ii.Data) != "00FF>" {
		t.Errorf("expected data 00FF>, got %q", ii.Data)
	}
	if ii.Dict["W"] != Number(2) || ii.Dict["CS"] != Name("G") {
		t.Errorf("unexpected dictionary %v", ii.Dict)
	}
}

func TestParseInlineImageBinaryData(t *testing.T) {
	// "EI" inside the data is not followed by white space
	data := []byte{'E', 'I', 'x', 0x00, 0xFF}
	input := append([]byte("BI /W 5 /H 1 ID "), data...)
	input = append(input, []byte("\nEI")...)

	ops, err := NewParser(input).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ii := ops[0].Operands[0].(*InlineImage)
	if string(ii.Data) != string(data) {
		t.Errorf("expected %v, got %v", data, ii.Data)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed string", "(abc Tj"},
		{"unclosed array", "[1 2 TJ"},
		{"unclosed hex", "<4142 Tj"},
		{"invalid hex", "<4G> Tj"},
		{"unclosed dict", "<</A 1 BDC"},
		{"dict key", "<<1 2>> BDC"},
		{"stray delimiter", ") Tj"},
		{"keyword in array", "[1 Tj] TJ"},
		{"inline image without ID", "BI /W 1"},
		{"inline image without EI", "BI /W 1 ID abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser([]byte(tt.input)).Parse()
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Expected ErrSyntax, got %v", err)
			}
		})
	}
}

func TestOperationNumbers(t *testing.T) {
	op := Operation{Operator: "cm", Operands: []Operand{Number(1), Number(0), Number(0), Number(1), Number(5), Number(6)}}

	v, ok := op.Numbers(6)
	if !ok || v[4] != 5 || v[5] != 6 {
		t.Errorf("Expected six numbers, got %v %v", v, ok)
	}
	if _, ok := op.Numbers(4); ok {
		t.Error("Expected a count mismatch to fail")
	}

	op.Operands[2] = Name("x")
	if _, ok := op.Numbers(6); ok {
		t.Error("Expected a non-numeric operand to fail")
	}
}
