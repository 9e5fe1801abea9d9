package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/sol/snapshot"
	"github.com/dhamidi/sol/solidity/kinds"
)

func newSnapshotCmd() *cobra.Command {
	var rule string
	var output string

	cmd := &cobra.Command{
		Use:   "snapshot <file>",
		Short: "Render the YAML snapshot of a parse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := parseFile(cmd.InOrStdin(), args[0], rule)
			if err != nil {
				return err
			}
			text, err := snapshot.Render(out)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}
			if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rule, "rule", kinds.SourceUnit.String(), "rule to parse the input as")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the snapshot to this file")

	return cmd
}
