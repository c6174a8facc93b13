package circuit

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnsatisfiable reports a circuit that cannot be resolved to fixpoint:
// gates remain but none has all of its wire operands resolved. The cause is
// either a dependency cycle or a reference to a wire no statement defines.
var ErrUnsatisfiable = errors.New("circuit is unsatisfiable")

// Resolver drives a Design to fixpoint. It exclusively owns its value map
// and pending gate set for the duration of one resolution run: the map only
// grows, the pending set only shrinks, and each gate is evaluated exactly
// once.
type Resolver struct {
	values  map[Wire]Value
	pending []Gate
}

// NewResolver seeds the value map from the design's literal assignments and
// takes a copy of its gate list as the pending set.
func NewResolver(d *Design) *Resolver {
	values := make(map[Wire]Value, len(d.Assignments)+len(d.Gates))
	for _, a := range d.Assignments {
		values[a.Wire] = a.Value
	}
	pending := make([]Gate, len(d.Gates))
	copy(pending, d.Gates)
	return &Resolver{values: values, pending: pending}
}

// Step evaluates a single gate whose wire operands are all resolved,
// records its output signal, and reports the output wire. ok is false once
// no gates remain. When gates remain but none is eligible, Step returns an
// error wrapping ErrUnsatisfiable that names the blocked output wires.
//
// Which gate is chosen among simultaneously eligible ones is unspecified;
// every gate's output depends only on its own operands, so the final value
// map does not depend on the choice.
func (r *Resolver) Step() (out Wire, ok bool, err error) {
	if len(r.pending) == 0 {
		return "", false, nil
	}
	for i := range r.pending {
		g := &r.pending[i]
		if !g.ready(r.values) {
			continue
		}
		r.values[g.Out] = g.eval(r.values)
		out = g.Out
		r.pending = append(r.pending[:i], r.pending[i+1:]...)
		return out, true, nil
	}
	return "", false, r.stuckErr()
}

// Run steps the resolver until every gate has been evaluated or no further
// progress is possible.
func (r *Resolver) Run() error {
	for {
		_, ok, err := r.Step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// Values returns the resolved wire-value map. After Run returns nil it is
// complete; callers must treat it as read-only.
func (r *Resolver) Values() map[Wire]Value {
	return r.values
}

// Value looks up a single wire's resolved signal.
func (r *Resolver) Value(w Wire) (Value, bool) {
	v, ok := r.values[w]
	return v, ok
}

// PendingCount is the number of gates not yet evaluated.
func (r *Resolver) PendingCount() int {
	return len(r.pending)
}

func (r *Resolver) stuckErr() error {
	outs := make([]string, len(r.pending))
	for i := range r.pending {
		outs[i] = string(r.pending[i].Out)
	}
	sort.Strings(outs)
	return fmt.Errorf("%d gates blocked on unresolvable inputs (outputs: %s): %w",
		len(r.pending), strings.Join(outs, " "), ErrUnsatisfiable)
}
