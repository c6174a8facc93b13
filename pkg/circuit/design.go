package circuit

// Assignment gives a wire a literal signal directly.
type Assignment struct {
	Wire  Wire
	Value Value
}

// Design is a parsed circuit: the literal assignments plus the unresolved
// gate set, in no particular order. The input format guarantees each wire
// is driven by exactly one statement.
type Design struct {
	Assignments []Assignment
	Gates       []Gate
}

// Override forces wire w to carry the literal signal v, replacing whatever
// statement drove it before. The next resolution starts from scratch with
// the new assignment in place.
func (d *Design) Override(w Wire, v Value) {
	gates := d.Gates[:0]
	for _, g := range d.Gates {
		if g.Out != w {
			gates = append(gates, g)
		}
	}
	d.Gates = gates

	for i := range d.Assignments {
		if d.Assignments[i].Wire == w {
			d.Assignments[i].Value = v
			return
		}
	}
	d.Assignments = append(d.Assignments, Assignment{Wire: w, Value: v})
}

// Resolve runs the design to fixpoint and returns the complete wire-value
// map, or an error wrapping ErrUnsatisfiable if no valid evaluation order
// exists.
func (d *Design) Resolve() (map[Wire]Value, error) {
	r := NewResolver(d)
	if err := r.Run(); err != nil {
		return nil, err
	}
	return r.Values(), nil
}
