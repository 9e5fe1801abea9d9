package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"slices"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/dhamidi/sol/grammar"
	"github.com/dhamidi/sol/solidity/definition"
)

var kindsTemplate = template.Must(template.New("kinds").Parse(`// Code generated by "ahi kinds"; DO NOT EDIT.

package kinds

const (
{{- range $i, $name := .Rules}}
	{{$name}}{{if eq $i 0}} RuleKind = iota{{end}}
{{- end}}
)

var ruleKindNames = [...]string{
{{- range .Rules}}
	{{printf "%q" .}},
{{- end}}
}

const (
{{- range $i, $name := .Tokens}}
	{{$name}}{{if eq $i 0}} TokenKind = iota{{end}}
{{- end}}
)

var tokenKindNames = [...]string{
{{- range .Tokens}}
	{{printf "%q" .}},
{{- end}}
}

const (
	FieldNone Field = iota
{{- range .Fields}}
	Field{{.}}
{{- end}}
)

var fieldNames = [...]string{
	"",
{{- range .Fields}}
	{{printf "%q" .}},
{{- end}}
}
`))

// builtinFields come first so that every precedence tier shares them.
var builtinFields = []string{"Variant", "Operand", "LeftOperand", "RightOperand"}

func newKindsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "Generate the rule, token and field enumerations from the grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := generateKinds(definition.Create())
			if err != nil {
				return err
			}
			if output == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			return os.WriteFile(output, src, 0o644)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "solidity/kinds/kinds_gen.go", "file to write, - for stdout")

	return cmd
}

func generateKinds(def *grammar.Definition) ([]byte, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	data := struct {
		Rules, Tokens, Fields []string
	}{
		Rules:  def.RuleNames(),
		Tokens: append(def.TokenNames(), "Skipped"),
	}
	seen := make(map[string]bool)
	for _, name := range slices.Concat(builtinFields, def.FieldNames()) {
		if !seen[name] {
			seen[name] = true
			data.Fields = append(data.Fields, name)
		}
	}

	var buf bytes.Buffer
	if err := kindsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render kinds: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format kinds: %w", err)
	}
	return src, nil
}
