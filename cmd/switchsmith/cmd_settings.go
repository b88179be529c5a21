package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/switchsmith/switchsmith/pkg/cli"
	"github.com/switchsmith/switchsmith/pkg/model"
	"github.com/switchsmith/switchsmith/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent settings",
	Long: `Manage persistent settings stored in ~/.switchsmith/settings.json.

Settings provide defaults for flags:
  - default_plan:   Used when -p is not specified
  - template_dir:   Template directory (-T flag default)
  - interface_type: Default interface family for plans that omit one

Examples:
  switchsmith settings show
  switchsmith settings set plan plans/floor2.yaml
  switchsmith settings set interface-type GigabitEthernet
  switchsmith settings clear`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		fmt.Printf("Settings file: %s\n\n", settings.DefaultSettingsPath())

		t := cli.NewTable("SETTING", "VALUE")

		printSetting := func(name, value string) {
			if value == "" {
				value = "(not set)"
			}
			t.Row(name, value)
		}

		printSetting("default_plan", s.DefaultPlan)
		printSetting("template_dir", s.TemplateDir)
		printSetting("interface_type", s.InterfaceType)

		t.Flush()
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <setting> <value>",
	Short: "Set a setting value",
	Long: `Set a persistent setting value.

Available settings:
  plan           - Default plan file (-p flag default)
  templates      - Template directory (-T flag default)
  interface-type - Default interface family (FastEthernet, GigabitEthernet, TenGigabitEthernet)

Examples:
  switchsmith settings set plan plans/floor2.yaml
  switchsmith settings set templates ~/switch-templates
  switchsmith settings set interface-type Gi`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setting := args[0]
		value := args[1]

		s, err := settings.Load()
		if err != nil {
			s = &settings.Settings{}
		}

		switch setting {
		case "plan", "default_plan":
			s.SetDefaultPlan(value)
			fmt.Printf("Default plan set to: %s\n", value)
		case "templates", "template_dir":
			s.SetTemplateDir(value)
			fmt.Printf("Template directory set to: %s\n", value)
		case "interface-type", "interface_type":
			t, err := model.LookupInterfaceType(value)
			if err != nil {
				return err
			}
			s.SetInterfaceType(t.Prefix)
			fmt.Printf("Default interface type set to: %s\n", t.Prefix)
		default:
			return fmt.Errorf("unknown setting: %s (valid: plan, templates, interface-type)", setting)
		}

		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}

		return nil
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <setting>",
	Short: "Get a setting value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setting := args[0]

		s, err := settings.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		var value string
		switch setting {
		case "plan", "default_plan":
			value = s.DefaultPlan
		case "templates", "template_dir":
			value = s.TemplateDir
		case "interface-type", "interface_type":
			value = s.InterfaceType
		default:
			return fmt.Errorf("unknown setting: %s (valid: plan, templates, interface-type)", setting)
		}

		if value == "" {
			fmt.Println("(not set)")
		} else {
			fmt.Println(value)
		}
		return nil
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := &settings.Settings{}
		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Println("All settings cleared.")
		return nil
	},
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show settings file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(settings.DefaultSettingsPath())
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsClearCmd)
	settingsCmd.AddCommand(settingsPathCmd)
}
