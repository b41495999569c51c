package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"attest/internal/runhistory"
	"attest/internal/verify"
)

// errVerificationFailed is the verdict of a completed run whose output does
// not match the baseline. main maps it to its own exit code.
var errVerificationFailed = errors.New("verification failed")

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var ignoreFlags []string

	cmd := &cobra.Command{
		Use:   "verify <project-dir>",
		Short: "Build a project and verify its output against the recorded baseline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if len(ignoreFlags) > 0 {
				cfg.Verify.Ignore = append(cfg.Verify.Ignore, ignoreFlags...)
			}

			runner := verify.NewRunner(cfg, ctx.ensureLogger())
			if cfg.Verify.HistoryEnabled {
				store, err := runhistory.Open(cfg.Paths.HistoryDB)
				if err != nil {
					return fmt.Errorf("open run history: %w", err)
				}
				defer store.Close()
				runner = runner.WithHistory(store)
			}

			outcome, err := runner.Verify(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range outcome.Report() {
				fmt.Fprintln(out, line)
			}
			if !outcome.Passed {
				return errVerificationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&ignoreFlags, "ignore", nil, "Additional path-glob pattern exempt from added/removed reporting (repeatable)")
	return cmd
}
