package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/tonal/internal/material/scheme"
)

var _ pflag.Value = (*enumValue[scheme.Mode])(nil)

// enumValue is a pflag.Value for string enums, so invalid names are
// rejected while flags are parsed.
type enumValue[T ~string] struct {
	target *T
	parse  func(string) (T, error)
	valid  []T
	typ    string
}

func newEnumValue[T ~string](target *T, typ string, parse func(string) (T, error), valid []T) *enumValue[T] {
	return &enumValue[T]{target: target, parse: parse, valid: valid, typ: typ}
}

func (e *enumValue[T]) String() string {
	if e.target == nil {
		return ""
	}
	return string(*e.target)
}

func (e *enumValue[T]) Set(s string) error {
	v, err := e.parse(s)
	if err != nil {
		return err
	}
	*e.target = v
	return nil
}

func (e *enumValue[T]) Type() string {
	return e.typ
}

// names returns the valid values as a "a|b|c" usage string.
func (e *enumValue[T]) names() string {
	names := make([]string, len(e.valid))
	for i, v := range e.valid {
		names[i] = string(v)
	}
	return strings.Join(names, "|")
}

// complete offers the valid values as shell completions.
func (e *enumValue[T]) complete(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, v := range e.valid {
		if strings.HasPrefix(string(v), toComplete) {
			out = append(out, string(v))
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// usage appends the valid values to a flag description.
func (e *enumValue[T]) usage(desc string) string {
	return fmt.Sprintf("%s (%s)", desc, e.names())
}
