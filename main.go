package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"wiresim/pkg/circuit"
	"wiresim/pkg/netlist"
	"wiresim/pkg/utils"
)

// overrideFlag collects repeatable -override wire=value arguments.
type overrideFlag struct {
	assignments []circuit.Assignment
}

func (o *overrideFlag) String() string {
	parts := make([]string, len(o.assignments))
	for i, a := range o.assignments {
		parts[i] = fmt.Sprintf("%s=%d", a.Wire, a.Value)
	}
	return strings.Join(parts, ",")
}

func (o *overrideFlag) Set(s string) error {
	name, val, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("override must be wire=value, got %q", s)
	}
	if name == "" || strings.Trim(name, "abcdefghijklmnopqrstuvwxyz") != "" {
		return fmt.Errorf("invalid wire name %q", name)
	}
	v, err := strconv.ParseUint(val, 10, 16)
	if err != nil {
		return fmt.Errorf("invalid signal value %q: must fit in 0..65535", val)
	}
	o.assignments = append(o.assignments, circuit.Assignment{
		Wire:  circuit.Wire(name),
		Value: circuit.Value(v),
	})
	return nil
}

func main() {
	inPath := flag.String("in", "", "input circuit file path")
	wire := flag.String("wire", "", "print only this wire's signal (default: all wires)")
	var overrides overrideFlag
	flag.Var(&overrides, "override", "force a wire to a literal signal, as wire=value (repeatable)")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: provide -in <circuit file>")
		flag.Usage()
		os.Exit(2)
	}

	fullPath, err := utils.ResolveInputPath(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to locate circuit file %q: %v\n", *inPath, err)
		os.Exit(1)
	}

	source, err := os.ReadFile(fullPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read circuit file %q: %v\n", fullPath, err)
		os.Exit(1)
	}

	design, err := netlist.Parse(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse failed: %v\n", err)
		os.Exit(1)
	}

	for _, a := range overrides.assignments {
		design.Override(a.Wire, a.Value)
	}

	values, err := design.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolution failed: %v\n", err)
		os.Exit(1)
	}

	if *wire != "" {
		v, ok := values[circuit.Wire(*wire)]
		if !ok {
			fmt.Fprintf(os.Stderr, "wire %q is not defined by the circuit\n", *wire)
			os.Exit(1)
		}
		fmt.Printf("%s = %d\n", *wire, v)
		return
	}

	printAll(values)
}

func printAll(values map[circuit.Wire]circuit.Value) {
	names := make([]string, 0, len(values))
	for w := range values {
		names = append(names, string(w))
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s = %d\n", name, values[circuit.Wire(name)])
	}
}
