package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/archlab/rv5sim/timing/pipeline"
	"github.com/archlab/rv5sim/timing/trace"
)

var statsCmd = &cobra.Command{
	Use:   "stats <program>",
	Short: "Run a program and print only the final statistics record as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := trace.NewMemoryLogger()

		c, err := buildCore(args[0], pipeline.WithLogger(logger))
		if err != nil {
			return err
		}

		status, runErr := c.RunTillHalt()
		c.Finalize()

		data, marshalErr := json.MarshalIndent(logger.Final, "", "  ")
		if marshalErr != nil {
			return marshalErr
		}
		fmt.Println(string(data))

		if status == pipeline.StatusError {
			fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
