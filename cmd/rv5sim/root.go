// Package main provides the entry point for rv5sim, a cycle-accurate RV64I
// five-stage in-order pipeline simulator with split I/D set-associative LRU
// caches.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	entryFlag  uint64
	rawImage   bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "rv5sim",
	Short: "rv5sim is a cycle-accurate RV64I pipeline simulator",
	Long: `rv5sim simulates a five-stage in-order RISC-V integer pipeline ` +
		`(IF/ID/EX/MEM/WB) with split instruction and data set-associative ` +
		`LRU caches, forwarding, hazard stalls, fixed branch prediction, and ` +
		`precise exceptions.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logLevel.Set(slog.LevelDebug)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a JSON cache/memory configuration file (default: built-in)")
	rootCmd.PersistentFlags().Uint64Var(&entryFlag, "entry", 0,
		"entry PC (ignored for ELF images, which carry their own entry point)")
	rootCmd.PersistentFlags().BoolVar(&rawImage, "raw", false,
		"treat the program argument as a flat little-endian instruction-word image rather than an ELF file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
