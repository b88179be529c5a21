package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/switchsmith/switchsmith/pkg/generate"
	"github.com/switchsmith/switchsmith/pkg/vlan"
)

var (
	generateOutput   string
	generateWrap     bool
	generateComments bool
	generateForce    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate IOS configuration text from a plan",
	Long: `Generate renders the plan into Cisco IOS command text.

The plan is validated first; generation is refused when any record is
invalid unless --force is given. VLANs referenced by ports are detected
and defined automatically, with names from the standard assignment
(10 Data, 20 Wireless, 30 Guest, 100 Voice, 1000 Management).

Examples:
  switchsmith generate -p plan.yaml
  switchsmith generate -p plan.yaml -o switch.cfg --wrap --comments
  switchsmith generate -p plan.yaml --force    # render despite errors`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ports, err := expandPlan()
		if err != nil {
			return err
		}

		if !generateForce {
			if n := countProblems(ports, &p.Global); n > 0 {
				return fmt.Errorf("plan has %d validation error(s); run 'switchsmith validate' for details or use --force", n)
			}
		}

		reg := vlan.NewRegistry()
		if _, err := vlan.Detect(ports, reg); err != nil {
			return fmt.Errorf("detecting VLANs: %w", err)
		}

		gen := generate.New(reg)
		gen.Options.WrapTerminal = generateWrap
		gen.Options.Comments = generateComments

		text := strings.Join(gen.Generate(ports, &p.Global), "\n") + "\n"

		if generateOutput != "" {
			if err := os.WriteFile(generateOutput, []byte(text), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", generateOutput, err)
			}
			fmt.Printf("Wrote %s (%d ports, %d VLANs)\n", generateOutput, len(ports), reg.Len())
			return nil
		}

		fmt.Print(text)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write to file instead of stdout")
	generateCmd.Flags().BoolVar(&generateWrap, "wrap", false, "Wrap with enable/configure terminal and save hints")
	generateCmd.Flags().BoolVar(&generateComments, "comments", false, "Emit section comment banners")
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "Generate even when validation fails")
}
