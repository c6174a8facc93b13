package circuit

// Wire is the name of a 16-bit signal line. Wires are identified by name.
type Wire string

// Value is a signal carried by a wire. The 16-bit register width of the
// simulated hardware is carried by the type itself.
type Value uint16

// MaxValue is the largest signal a wire can carry.
const MaxValue Value = 0xFFFF

// Kind selects a gate's operator. The set is closed; evaluation switches
// over it exhaustively.
type Kind uint8

const (
	KindConn Kind = iota // plain wire-to-wire connection
	KindAnd
	KindOr
	KindLShift
	KindRShift
	KindNot
)

func (k Kind) String() string {
	switch k {
	case KindConn:
		return "CONN"
	case KindAnd:
		return "AND"
	case KindOr:
		return "OR"
	case KindLShift:
		return "LSHIFT"
	case KindRShift:
		return "RSHIFT"
	case KindNot:
		return "NOT"
	}
	return "UNKNOWN"
}

// arity is the number of operand values the kind consumes.
func (k Kind) arity() int {
	if k == KindAnd || k == KindOr {
		return 2
	}
	return 1
}

// Gate connects one or two operands through an operator to a single output
// wire. Operands are a set, not a sequence: the parser collapses doubled
// operands, and Inputs/Consts together hold at most two distinct entries.
type Gate struct {
	Kind   Kind
	Inputs []Wire  // wire operands, pending until resolved
	Consts []Value // literal operands, available immediately
	Shift  uint16  // shift distance, KindLShift/KindRShift only
	Out    Wire
}

// ready reports whether every wire operand has a value.
func (g *Gate) ready(values map[Wire]Value) bool {
	for _, w := range g.Inputs {
		if _, ok := values[w]; !ok {
			return false
		}
	}
	return true
}

// eval computes the gate's output signal. All wire operands must already
// be present in values.
func (g *Gate) eval(values map[Wire]Value) Value {
	in := make([]Value, 0, 2)
	for _, w := range g.Inputs {
		in = append(in, values[w])
	}
	in = append(in, g.Consts...)
	if len(in) < g.Kind.arity() {
		// A doubled operand was collapsed at parse time; it feeds both
		// sides of the gate.
		in = append(in, in[0])
	}

	switch g.Kind {
	case KindConn:
		return in[0]
	case KindAnd:
		return in[0] & in[1]
	case KindOr:
		return in[0] | in[1]
	case KindLShift:
		// Value is 16 bits wide, so the shift result truncates to the
		// register width on its own.
		return in[0] << g.Shift
	case KindRShift:
		return in[0] >> g.Shift
	case KindNot:
		// Complement within the 16-bit space, i.e. MaxValue - in[0].
		return ^in[0]
	}
	panic("circuit: unknown gate kind")
}
