package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/sol/format"
	"github.com/dhamidi/sol/solidity/kinds"
	"github.com/dhamidi/sol/solidity/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var rule string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a Solidity file and dump the syntax tree",
		Long:  "Parse a Solidity file and dump the syntax tree. Use - to read from standard input.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			out, err := parseFile(cmd.InOrStdin(), args[0], rule)
			if err != nil {
				return err
			}
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format ("+strings.Join(format.Names(), ", ")+")")
	cmd.Flags().StringVar(&rule, "rule", kinds.SourceUnit.String(), "rule to parse the input as")

	return cmd
}

// parseFile parses filename, or stdin when filename is "-", starting at the
// named rule.
func parseFile(stdin io.Reader, filename, rule string) (*parser.Output, error) {
	kind, ok := kinds.ParseRuleKind(rule)
	if !ok {
		return nil, fmt.Errorf("unknown rule %q", rule)
	}

	var data []byte
	var err error
	if filename == "-" {
		data, err = io.ReadAll(stdin)
		filename = "<stdin>"
	} else {
		data, err = os.ReadFile(filename)
	}
	if err != nil {
		return nil, fmt.Errorf("read solidity file: %w", err)
	}

	return parser.ParseRule(kind, string(data), parser.WithFile(filename)), nil
}
