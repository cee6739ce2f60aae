package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/correction"
	"github.com/jmylchreest/tonal/internal/material/scheme"
)

func newRolesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List scheme roles and the corrections applied to them",
		Long: `List every role a scheme carries, in output order, with the corrections
the active rules apply to it in each mode.

Shifts are shown as signed amounts; derived roles as source x lightness.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, err := correction.LoadRules(opts.resolved.RulesPath)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), rolesTable(rules).Render())
			return err
		},
	}
}

func rolesTable(rules correction.Rules) *Table {
	modes := scheme.ValidModes()
	headers := []string{"ROLE", "BASELINE"}
	for _, m := range modes {
		headers = append(headers, strings.ToUpper(m.String()))
	}
	table := NewTable(headers...)

	for _, role := range scheme.Roles() {
		row := []string{role.String(), describeShifts(rules.Baseline, role)}
		for _, m := range modes {
			mr := rules.Modes[m]
			var parts []string
			if s := describeShifts(mr.Shifts, role); s != "" {
				parts = append(parts, s)
			}
			for _, d := range mr.Derivations {
				if d.Target == role {
					parts = append(parts, fmt.Sprintf("%s x%s", d.From, formatAmount(d.LightnessFactor)))
				}
			}
			row = append(row, strings.Join(parts, ", "))
		}
		table.AddRow(row...)
	}
	return table
}

func describeShifts(shifts []correction.Shift, role scheme.Role) string {
	var parts []string
	for _, s := range shifts {
		if s.Role == role {
			amount := formatAmount(s.Amount)
			if s.Amount >= 0 {
				amount = "+" + amount
			}
			parts = append(parts, amount)
		}
	}
	return strings.Join(parts, ", ")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
