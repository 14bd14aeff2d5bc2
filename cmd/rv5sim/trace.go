package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/archlab/rv5sim/timing/pipeline"
	"github.com/archlab/rv5sim/timing/trace"
)

var traceCmd = &cobra.Command{
	Use:   "trace <program>",
	Short: "Run a program, emitting one JSON snapshot per cycle to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := trace.NewJSONLogger(os.Stdout)

		c, err := buildCore(args[0], pipeline.WithLogger(logger))
		if err != nil {
			return err
		}

		status, runErr := c.RunTillHalt()
		c.Finalize()

		if err := logger.Err(); err != nil {
			return err
		}
		if status == pipeline.StatusError {
			return runErr
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
}
