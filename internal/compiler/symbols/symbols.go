package symbols

// ValueType is the statically inferred type of an expression.
type ValueType int

const (
	Float ValueType = iota
	String
	Boolean
)

func (v ValueType) String() string {
	switch v {
	case Float:
		return "f32"
	case String:
		return "str"
	case Boolean:
		return "bool"
	}
	return "unknown"
}

type SymbolInfo struct {
	Type ValueType
	Line int // declaration line, for redeclaration diagnostics
}
