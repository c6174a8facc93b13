// Package netlist parses the line-oriented circuit statement format into a
// circuit.Design. Statement order is irrelevant: a gate may name wires
// whose defining statements appear later in the text.
package netlist

import (
	"fmt"
	"strconv"
	"strings"

	"wiresim/pkg/circuit"
)

// ParseError reports a statement that matches none of the recognized
// shapes. It carries the offending line so callers can surface it.
type ParseError struct {
	LineNo int
	Line   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse statement on line %d: %q", e.LineNo, e.Line)
}

// Parse reads one statement per line and produces the design's initial
// assignments and unresolved gate set. Blank lines are skipped; any other
// unrecognized line aborts the whole parse with a *ParseError.
func Parse(source string) (*circuit.Design, error) {
	d := &circuit.Design{}
	for i, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if err := parseStatement(d, line, i+1); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Resolve parses source and runs the circuit to fixpoint in one call.
func Resolve(source string) (map[circuit.Wire]circuit.Value, error) {
	d, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return d.Resolve()
}

// parseStatement classifies line into one of the recognized statement
// shapes and appends the resulting assignment or gate to d. The shapes do
// not overlap: the token count plus the position of "->" pins each one
// down.
func parseStatement(d *circuit.Design, line string, lineNo int) error {
	fields := strings.Fields(line)
	bad := &ParseError{LineNo: lineNo, Line: line}

	switch {
	case len(fields) == 3 && fields[1] == "->":
		// "<value> -> <wire>" or "<operand> -> <wire>"
		out, ok := wireName(fields[2])
		if !ok {
			return bad
		}
		if isDigits(fields[0]) {
			v, err := parseValue(fields[0])
			if err != nil {
				return bad
			}
			d.Assignments = append(d.Assignments, circuit.Assignment{Wire: out, Value: v})
			return nil
		}
		return appendGate(d, circuit.KindConn, []string{fields[0]}, 0, out, bad)

	case len(fields) == 4 && fields[0] == "NOT" && fields[2] == "->":
		// "NOT <operand> -> <wire>"
		out, ok := wireName(fields[3])
		if !ok {
			return bad
		}
		return appendGate(d, circuit.KindNot, []string{fields[1]}, 0, out, bad)

	case len(fields) == 5 && fields[3] == "->":
		// "<operand> OP <operand> -> <wire>"
		out, ok := wireName(fields[4])
		if !ok {
			return bad
		}
		switch fields[1] {
		case "AND":
			return appendGate(d, circuit.KindAnd, []string{fields[0], fields[2]}, 0, out, bad)
		case "OR":
			return appendGate(d, circuit.KindOr, []string{fields[0], fields[2]}, 0, out, bad)
		case "LSHIFT", "RSHIFT":
			// The shift distance must be a literal integer, never a wire.
			if !isDigits(fields[2]) {
				return bad
			}
			shift, err := strconv.ParseUint(fields[2], 10, 16)
			if err != nil {
				return bad
			}
			kind := circuit.KindLShift
			if fields[1] == "RSHIFT" {
				kind = circuit.KindRShift
			}
			return appendGate(d, kind, []string{fields[0]}, uint16(shift), out, bad)
		}
	}

	return bad
}

// appendGate classifies the operand tokens into wire and literal sets and
// appends the gate. bad is returned unchanged when a token is neither a
// wire name nor an in-range literal.
func appendGate(d *circuit.Design, kind circuit.Kind, operands []string, shift uint16, out circuit.Wire, bad *ParseError) error {
	if len(operands) == 2 && operands[0] == operands[1] {
		// Operands form a set: a doubled operand collapses to one entry.
		operands = operands[:1]
	}

	var wires []circuit.Wire
	var consts []circuit.Value
	for _, tok := range operands {
		if isDigits(tok) {
			v, err := parseValue(tok)
			if err != nil {
				return bad
			}
			consts = append(consts, v)
			continue
		}
		w, ok := wireName(tok)
		if !ok {
			return bad
		}
		wires = append(wires, w)
	}

	d.Gates = append(d.Gates, circuit.Gate{
		Kind:   kind,
		Inputs: wires,
		Consts: consts,
		Shift:  shift,
		Out:    out,
	})
	return nil
}

// wireName validates that tok is a wire identifier: one or more lowercase
// letters.
func wireName(tok string) (circuit.Wire, bool) {
	if tok == "" {
		return "", false
	}
	for _, r := range tok {
		if r < 'a' || r > 'z' {
			return "", false
		}
	}
	return circuit.Wire(tok), true
}

// isDigits reports whether tok is entirely decimal digits.
func isDigits(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseValue parses a decimal literal into the 16-bit signal range.
func parseValue(tok string) (circuit.Value, error) {
	v, err := strconv.ParseUint(tok, 10, 16)
	if err != nil {
		return 0, err
	}
	return circuit.Value(v), nil
}
