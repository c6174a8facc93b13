package main

import (
	"errors"
	"math/rand"
	"os"
	"reflect"
	"strings"
	"testing"

	"wiresim/pkg/circuit"
	"wiresim/pkg/netlist"
)

var exampleSignals = map[circuit.Wire]circuit.Value{
	"x": 123,
	"y": 456,
	"d": 72,
	"e": 507,
	"f": 492,
	"g": 114,
	"h": 65412,
	"i": 65079,
}

func TestExampleCircuit(t *testing.T) {
	srcBytes, err := os.ReadFile("_circuits/example.txt")
	if err != nil {
		t.Fatalf("Failed to read circuit file: %v", err)
	}

	values, err := netlist.Resolve(string(srcBytes))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if !reflect.DeepEqual(values, exampleSignals) {
		t.Errorf("resolved signals = %v; want %v", values, exampleSignals)
	}
}

// Permuting the statement lines must not change any resolved signal.
func TestStatementOrderIndependence(t *testing.T) {
	srcBytes, err := os.ReadFile("_circuits/example.txt")
	if err != nil {
		t.Fatalf("Failed to read circuit file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(srcBytes)), "\n")

	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 5; round++ {
		rng.Shuffle(len(lines), func(i, j int) {
			lines[i], lines[j] = lines[j], lines[i]
		})
		values, err := netlist.Resolve(strings.Join(lines, "\n"))
		if err != nil {
			t.Fatalf("round %d: Resolve failed: %v", round, err)
		}
		if !reflect.DeepEqual(values, exampleSignals) {
			t.Errorf("round %d: resolved signals = %v; want %v", round, values, exampleSignals)
		}
	}
}

func TestCyclicCircuitFails(t *testing.T) {
	src := strings.Join([]string{
		"123 -> y",
		"x AND y -> x",
	}, "\n")

	_, err := netlist.Resolve(src)
	if !errors.Is(err, circuit.ErrUnsatisfiable) {
		t.Fatalf("Resolve error = %v; want ErrUnsatisfiable", err)
	}
}

func TestMalformedLineFails(t *testing.T) {
	src := "123 -> x\nfoo BAND bar -> baz\n456 -> y\n"

	_, err := netlist.Resolve(src)
	var perr *netlist.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Resolve error = %v; want *ParseError", err)
	}
	if perr.LineNo != 2 || perr.Line != "foo BAND bar -> baz" {
		t.Errorf("flagged line %d %q; want line 2 %q", perr.LineNo, perr.Line, "foo BAND bar -> baz")
	}
}

// The override workflow: resolve once, force a wire to the signal another
// wire carried, and resolve the modified design from scratch.
func TestOverrideAndRerun(t *testing.T) {
	srcBytes, err := os.ReadFile("_circuits/example.txt")
	if err != nil {
		t.Fatalf("Failed to read circuit file: %v", err)
	}
	src := string(srcBytes)

	first, err := netlist.Resolve(src)
	if err != nil {
		t.Fatalf("first Resolve failed: %v", err)
	}

	design, err := netlist.Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	design.Override("y", first["e"])

	second, err := design.Resolve()
	if err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}
	if second["y"] != 507 {
		t.Errorf("overridden y = %d; want 507", second["y"])
	}
	if want := circuit.Value(123 & 507); second["d"] != want {
		t.Errorf("d after override = %d; want %d", second["d"], want)
	}
	if second["x"] != 123 {
		t.Errorf("x after override = %d; want 123", second["x"])
	}
}

func TestOverrideFlag(t *testing.T) {
	var o overrideFlag
	if err := o.Set("b=956"); err != nil {
		t.Fatalf("Set(\"b=956\") failed: %v", err)
	}
	if err := o.Set("ax=0"); err != nil {
		t.Fatalf("Set(\"ax=0\") failed: %v", err)
	}
	want := []circuit.Assignment{
		{Wire: "b", Value: 956},
		{Wire: "ax", Value: 0},
	}
	if !reflect.DeepEqual(o.assignments, want) {
		t.Errorf("assignments = %+v; want %+v", o.assignments, want)
	}

	for _, bad := range []string{"", "b", "=5", "b=", "b=70000", "B=5", "b=x"} {
		var o overrideFlag
		if err := o.Set(bad); err == nil {
			t.Errorf("Set(%q) succeeded; want error", bad)
		}
	}
}
