package contentstream

// Operand is a value that precedes an operator in a content stream
type Operand interface {
	operand()
}

// Number is an integer or real operand
type Number float64

// Name is a name operand without its leading slash
type Name string

// String is a literal or hex string operand holding raw bytes
type String string

// Bool is a boolean operand
type Bool bool

// Null is the null operand
type Null struct{}

// Array is an array operand
type Array []Operand

// Dict is a dictionary operand
type Dict map[string]Operand

// InlineImage is the operand of an EI operation: the BI dictionary with its
// keys as written and the bytes between ID and EI
type InlineImage struct {
	Dict Dict
	Data []byte
}

func (Number) operand()       {}
func (Name) operand()         {}
func (String) operand()       {}
func (Bool) operand()         {}
func (Null) operand()         {}
func (Array) operand()        {}
func (Dict) operand()         {}
func (*InlineImage) operand() {}

// Operation represents a single content stream operation consisting of an
// operator and the operands that precede it.
type Operation struct {
	Operator string
	Operands []Operand
}

// Numbers returns the operands as numbers when there are exactly n of them
// and all are numeric
func (op Operation) Numbers(n int) ([]float64, bool) {
	if len(op.Operands) != n {
		return nil, false
	}
	vals := make([]float64, n)
	for i, o := range op.Operands {
		num, ok := o.(Number)
		if !ok {
			return nil, false
		}
		vals[i] = float64(num)
	}
	return vals, true
}

// Get returns the value stored under any of keys
func (d Dict) Get(keys ...string) (Operand, bool) {
	for _, k := range keys {
		if v, ok := d[k]; ok {
			return v, true
		}
	}
	return nil, false
}
