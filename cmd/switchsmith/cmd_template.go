package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/switchsmith/switchsmith/pkg/cli"
	"github.com/switchsmith/switchsmith/pkg/model"
	"github.com/switchsmith/switchsmith/pkg/template"
	"github.com/switchsmith/switchsmith/pkg/validate"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage port templates",
	Long: `Manage named port templates stored under the template directory.

Built-in templates (Access Port, Phone Port, AP Port, Trunk Port) are
always available; a stored template of the same name shadows the
built-in. Plans reference templates by name in their port entries.`,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available port templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := templateStore()
		names, err := store.ListPorts()
		if err != nil {
			return err
		}

		t := cli.NewTable("TEMPLATE", "MODE", "SOURCE")
		for _, name := range names {
			tmpl, ok := store.Port(name)
			if !ok {
				continue
			}
			source := "stored"
			if template.IsBuiltin(name) {
				source = "built-in"
			}
			t.Row(name, string(tmpl.Mode), source)
		}
		t.Flush()
		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a port template as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpl, ok := templateStore().Port(args[0])
		if !ok {
			return fmt.Errorf("unknown template %q", args[0])
		}
		data, err := json.MarshalIndent(tmpl, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var templateSaveCmd = &cobra.Command{
	Use:   "save <name> <file.json>",
	Short: "Store a port template from a JSON file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		var tmpl model.PortConfig
		if err := json.Unmarshal(data, &tmpl); err != nil {
			return fmt.Errorf("parsing %s: %w", args[1], err)
		}

		// Warn about invalid templates but store them anyway; a template may
		// deliberately leave required fields for the plan entry to fill in.
		if errs := validate.Port(&tmpl); len(errs) > 0 {
			fmt.Printf("%s template has %d validation issue(s) when used as-is:\n", cli.Yellow("note:"), len(errs))
			for _, fe := range errs {
				fmt.Printf("  - %s\n", fe.Error())
			}
		}

		if err := templateStore().SavePort(args[0], &tmpl); err != nil {
			return err
		}
		fmt.Printf("Stored template %q\n", args[0])
		return nil
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored port template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := templateStore().DeletePort(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted template %q\n", args[0])
		if template.IsBuiltin(args[0]) {
			fmt.Printf("Built-in %q is available again.\n", args[0])
		}
		return nil
	},
}

func init() {
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateSaveCmd)
	templateCmd.AddCommand(templateDeleteCmd)
}
