package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"attest/internal/fingerprint"
)

func newHashCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "hash <dir>",
		Short: "Fingerprint a directory and print entries in baseline format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			algo, err := fingerprint.ParseAlgorithm(cfg.Hashing.Algorithm)
			if err != nil {
				return err
			}

			set, err := fingerprint.Compute(cmd.Context(), args[0], fingerprint.Options{
				Algorithm: algo,
				Workers:   cfg.Hashing.Workers,
				Logger:    ctx.ensureLogger(),
			})
			if err != nil {
				return err
			}

			if output != "" {
				store := fingerprint.Store{Algorithm: algo, Logger: ctx.ensureLogger()}
				if err := store.Save(output, set); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d fingerprints to %s\n", set.Len(), output)
				return nil
			}

			out := cmd.OutOrStdout()
			for _, entry := range set.Entries() {
				fmt.Fprintf(out, "%s  %s\n", entry.Digest, entry.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write entries to a file instead of stdout")
	return cmd
}
