// Switchsmith - Cisco IOS Switch Configuration Generator
//
// A CLI tool for turning YAML switch plans into IOS command text:
//   - Port and switch-wide configuration records with validation
//   - VLAN registry with automatic detection from port references
//   - Named port/global templates with sensible built-ins
//   - Deterministic generation: the same plan always yields the same text
//
// Workflow:
//
//	switchsmith validate -p plan.yaml        # check the plan
//	switchsmith generate -p plan.yaml        # print the config
//	switchsmith generate -p plan.yaml -o run.cfg --wrap
//	switchsmith vlan list -p plan.yaml       # show detected VLANs
//	switchsmith template list                # show available templates
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/switchsmith/switchsmith/pkg/model"
	"github.com/switchsmith/switchsmith/pkg/plan"
	"github.com/switchsmith/switchsmith/pkg/settings"
	"github.com/switchsmith/switchsmith/pkg/template"
	"github.com/switchsmith/switchsmith/pkg/util"
	"github.com/switchsmith/switchsmith/pkg/version"
)

var (
	// Global option flags
	planPath    string // -p, --plan
	templateDir string // -T, --templates
	verbose     bool

	// Global state
	userSettings *settings.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "switchsmith",
	Short:             "Cisco IOS Switch Configuration Generator",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Switchsmith turns YAML switch plans into Cisco IOS command text.

A plan describes one switch: its interface naming scheme, switch-wide
settings, and port entries. Generation is deterministic and never talks
to a device — the output is meant to be reviewed and pasted or uploaded.

  switchsmith generate -p <plan.yaml> [-o <file>]`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load user settings
		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}

		// Apply defaults from settings
		if planPath == "" {
			planPath = userSettings.DefaultPlan
		}
		if templateDir == "" {
			templateDir = userSettings.GetTemplateDir()
		}

		// Set log level: quiet by default, verbose on -v
		if verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("warn")
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&planPath, "plan", "p", "", "Plan file (default from settings)")
	rootCmd.PersistentFlags().StringVarP(&templateDir, "templates", "T", "", "Template directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "build", Title: "Plan Operations:"},
		&cobra.Group{ID: "library", Title: "Template & VLAN Library:"},
		&cobra.Group{ID: "meta", Title: "Configuration & Meta:"},
	)

	for _, cmd := range []*cobra.Command{generateCmd, validateCmd} {
		cmd.GroupID = "build"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{vlanCmd, templateCmd} {
		cmd.GroupID = "library"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{secretCmd, settingsCmd, versionCmd} {
		cmd.GroupID = "meta"
		rootCmd.AddCommand(cmd)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if version.Version == "dev" {
			fmt.Println("switchsmith dev build (use 'make build' for version info)")
		} else {
			fmt.Printf("switchsmith %s (%s)\n", version.Version, version.GitCommit)
		}
	},
}

// templateStore returns the store over the configured template directory.
func templateStore() *template.Store {
	return template.NewStore(templateDir)
}

// loadPlan loads the plan named by -p (or the settings default).
func loadPlan() (*plan.Plan, error) {
	if planPath == "" {
		return nil, fmt.Errorf("plan required: use -p <plan.yaml> or set a default via 'switchsmith settings set plan <path>'")
	}
	return plan.Load(planPath)
}

// expandPlan loads the plan and resolves its port entries against the
// template store.
func expandPlan() (*plan.Plan, []model.PortConfig, error) {
	p, err := loadPlan()
	if err != nil {
		return nil, nil, err
	}
	ports, err := p.Expand(templateStore().Port)
	if err != nil {
		return nil, nil, err
	}
	return p, ports, nil
}
