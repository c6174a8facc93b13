package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"wiresim/pkg/circuit"
	"wiresim/pkg/netlist"
	"wiresim/pkg/utils"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: console <circuit file> [--trace]")
	}
	filename := os.Args[1]
	trace := false
	if len(os.Args) > 2 {
		for _, arg := range os.Args[2:] {
			trace = arg == "--trace"
		}
	}

	fullPath, err := utils.ResolveInputPath(filename)
	if err != nil {
		log.Fatalf("Failed to locate circuit file: %v", err)
	}
	sourceBytes, err := os.ReadFile(fullPath)
	if err != nil {
		log.Fatalf("Failed to read circuit file: %v", err)
	}

	design, err := netlist.Parse(string(sourceBytes))
	if err != nil {
		log.Fatalf("Parsing failed: %v", err)
	}

	fmt.Printf("parsed %d assignments and %d gates from %s\n",
		len(design.Assignments), len(design.Gates), fullPath)

	resolver := circuit.NewResolver(design)
	steps := 0
	for {
		out, ok, err := resolver.Step()
		if err != nil {
			log.Fatalf("Resolution failed: %v", err)
		}
		if !ok {
			break
		}
		steps++
		if trace {
			v, _ := resolver.Value(out)
			fmt.Printf("step %d: %s = %d\n", steps, out, v)
		}
	}

	values := resolver.Values()
	fmt.Printf("resolved %d wires in %d gate evaluations\n", len(values), steps)

	names := make([]string, 0, len(values))
	for w := range values {
		names = append(names, string(w))
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s = %d\n", name, values[circuit.Wire(name)])
	}
}
