package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"attest/internal/fingerprint"
	"attest/internal/verify"
)

func newRecordCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "record <project-dir>",
		Short: "Build a project and record its output fingerprints as the new baseline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			runner := verify.NewRunner(cfg, ctx.ensureLogger())
			set, err := runner.Record(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			baselinePath := filepath.Join(args[0], fingerprint.BaselineFileName)
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d fingerprints to %s\n", set.Len(), baselinePath)
			return nil
		},
	}
}
