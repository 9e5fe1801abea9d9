package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/sol/grammar"
	"github.com/dhamidi/sol/solidity/definition"
)

func newEbnfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ebnf",
		Short:         "EBNF grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newEbnfDumpCmd())
	cmd.AddCommand(newEbnfCheckCmd())

	return cmd
}

func newEbnfDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the Solidity grammar in EBNF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return grammar.WriteEBNF(cmd.OutOrStdout(), definition.Create())
		},
	}
}

func newEbnfCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check [file]",
		Short:         "Parse and verify an EBNF grammar file, or the Solidity grammar",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filename string
			var src io.Reader
			if len(args) == 1 {
				filename = args[0]
				f, err := os.Open(filename)
				if err != nil {
					return fmt.Errorf("open file: %w", err)
				}
				defer f.Close()
				src = f
			} else {
				def := definition.Create()
				var buf bytes.Buffer
				if err := grammar.WriteEBNF(&buf, def); err != nil {
					return err
				}
				filename = def.Name + ".ebnf"
				src = &buf
				if startProduction == "" {
					startProduction = def.Name
				}
			}

			g, err := ebnf.Parse(filename, src)
			if err != nil {
				printErrors(cmd.OutOrStdout(), err)
				return err
			}

			if startProduction == "" {
				return nil
			}
			if err := ebnf.Verify(g, startProduction); err != nil {
				printErrors(cmd.OutOrStdout(), err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax of a file)")

	return cmd
}

func printErrors(w io.Writer, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := range v.Len() {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
