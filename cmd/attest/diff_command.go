package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"attest/internal/diff"
	"attest/internal/fingerprint"
)

// errFingerprintsDiffer is the verdict of a completed comparison between two
// recorded fingerprint files. main maps it to the same exit code as a failed
// verification.
var errFingerprintsDiffer = errors.New("fingerprint sets differ")

func newDiffCommand(ctx *commandContext) *cobra.Command {
	var ignoreFlags []string

	cmd := &cobra.Command{
		Use:   "diff <baseline-file> <current-file>",
		Short: "Compare two recorded fingerprint files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			algo, err := fingerprint.ParseAlgorithm(cfg.Hashing.Algorithm)
			if err != nil {
				return err
			}
			store := fingerprint.Store{Algorithm: algo, Logger: ctx.ensureLogger()}

			baseline, err := store.Load(args[0])
			if err != nil {
				return err
			}
			current, err := store.Load(args[1])
			if err != nil {
				return err
			}

			patterns := append(append([]string(nil), cfg.Verify.Ignore...), ignoreFlags...)
			ignore, err := fingerprint.IgnorePatterns(patterns)
			if err != nil {
				return err
			}

			result := diff.Compare(baseline, current, ignore)
			out := cmd.OutOrStdout()
			for _, line := range result.Report() {
				fmt.Fprintln(out, line)
			}
			if !result.Clean() {
				return errFingerprintsDiffer
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&ignoreFlags, "ignore", nil, "Additional path-glob pattern exempt from added/removed reporting (repeatable)")
	return cmd
}
