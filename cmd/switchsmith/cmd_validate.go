package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/switchsmith/switchsmith/pkg/cli"
	"github.com/switchsmith/switchsmith/pkg/model"
	"github.com/switchsmith/switchsmith/pkg/util"
	"github.com/switchsmith/switchsmith/pkg/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a plan without generating",
	Long: `Validate checks every port record and the switch-wide settings.

All problems are reported, not just the first one. The exit status is
non-zero when any record is invalid, so the command can gate generation
in scripts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ports, err := expandPlan()
		if err != nil {
			return err
		}

		t := cli.NewTable("SCOPE", "FIELD", "KIND", "PROBLEM")
		total := 0

		for i := range ports {
			for _, fe := range validate.Port(&ports[i]) {
				t.Row(ports[i].ID, fe.Field, errorKind(fe), fe.Detail)
				total++
			}
		}
		for _, fe := range validate.Global(&p.Global) {
			t.Row("global", fe.Field, errorKind(fe), fe.Detail)
			total++
		}

		t.Flush()

		if total > 0 {
			return fmt.Errorf("%d validation error(s) in %d port(s)", total, len(ports))
		}
		fmt.Printf("%s %d port(s) and global settings are valid\n", cli.Green("OK:"), len(ports))
		return nil
	},
}

// countProblems is the quick pre-generation check: total error count across
// all ports and the global record.
func countProblems(ports []model.PortConfig, global *model.GlobalConfig) int {
	n := 0
	for i := range ports {
		n += len(validate.Port(&ports[i]))
	}
	n += len(validate.Global(global))
	return n
}

// errorKind labels a validation error by its sentinel class.
func errorKind(fe *util.FieldError) string {
	switch {
	case errors.Is(fe, util.ErrOutOfRange):
		return "range"
	case errors.Is(fe, util.ErrBadGrammar):
		return "grammar"
	case errors.Is(fe, util.ErrModeConflict):
		return "conflict"
	case errors.Is(fe, util.ErrMissingRequired):
		return "missing"
	default:
		return "error"
	}
}
