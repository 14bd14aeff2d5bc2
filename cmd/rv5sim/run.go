package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/archlab/rv5sim/timing/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run <program>",
	Short: "Run a program to completion and print a short summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildCore(args[0])
		if err != nil {
			return err
		}

		status, runErr := c.RunTillHalt()
		c.Finalize()

		stats := c.Stats()
		fmt.Printf("status: %s\n", statusString(status))
		fmt.Printf("cycles: %d\n", stats.TotalCycles)
		fmt.Printf("instructions: %d\n", stats.DynamicInstructions)
		fmt.Printf("load stalls: %d\n", stats.LoadStalls)
		fmt.Printf("cpi: %s\n", stats.CPI().String())

		if verbose {
			fmt.Printf("program: %s\n", args[0])
		}

		if status == pipeline.StatusError {
			logger.Error("run terminated by exception", "program", args[0], "cycle", stats.TotalCycles, "err", runErr)
			fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
			os.Exit(1)
		}
		return nil
	},
}

func statusString(s pipeline.Status) string {
	switch s {
	case pipeline.StatusHalt:
		return "HALT"
	case pipeline.StatusError:
		return "ERROR"
	default:
		return "SUCCESS"
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
