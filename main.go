// Package main provides a usage banner for rv5sim, a cycle-accurate RV64I
// five-stage in-order pipeline simulator with split I/D set-associative LRU
// caches built on Akita.
//
// For the full CLI, use: go run ./cmd/rv5sim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("rv5sim - RV64I five-stage pipeline simulator")
	fmt.Println("Built on Akita simulation primitives")
	fmt.Println("")
	fmt.Println("Usage: rv5sim <command> [options] <program>")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  run      Run a program to completion and print a short summary")
	fmt.Println("  trace    Emit one JSON snapshot per cycle to stdout")
	fmt.Println("  stats    Run a program and print only the final statistics record")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  --config   Path to a JSON cache/memory configuration file")
	fmt.Println("  --raw      Treat the program as a flat instruction-word image, not ELF")
	fmt.Println("  --entry    Entry PC for a raw image")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/rv5sim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/rv5sim' instead.")
	}
}
