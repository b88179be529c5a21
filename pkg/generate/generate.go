// Package generate renders configuration records into Cisco-IOS-style
// command text. Rendering is deterministic: identical inputs produce
// identical output, and unset optional fields suppress their lines entirely.
//
// The generator never validates; it renders whatever is present so callers
// can preview a configuration while it is still being edited.
package generate

import (
	"fmt"

	"github.com/switchsmith/switchsmith/pkg/model"
	"github.com/switchsmith/switchsmith/pkg/util"
	"github.com/switchsmith/switchsmith/pkg/vlan"
)

// Options controls decoration around the generated command lines.
type Options struct {
	// WrapTerminal surrounds the output with enable/configure terminal/end
	// and a reminder of the save commands.
	WrapTerminal bool
	// Comments emits "! ---" banners between sections.
	Comments bool
}

// Generator renders port and global records against a VLAN registry.
type Generator struct {
	Registry *vlan.Registry
	Options  Options
}

// New returns a Generator over the given registry with default options.
func New(reg *vlan.Registry) *Generator {
	return &Generator{Registry: reg}
}

// Generate renders the full configuration in fixed order: VLAN definitions
// (registry insertion order), global sections, then one block per port in
// the order given. Inputs are not mutated.
func (g *Generator) Generate(ports []model.PortConfig, global *model.GlobalConfig) []string {
	var lines []string

	if g.Options.WrapTerminal {
		lines = append(lines, "enable", "configure terminal", "!")
	}

	lines = append(lines, g.vlanBlocks()...)
	if global != nil {
		lines = append(lines, g.globalBlocks(global)...)
	}
	for i := range ports {
		lines = append(lines, g.portBlock(&ports[i])...)
	}
	util.WithSection("generate").Debugf("rendered %d lines for %d ports", len(lines), len(ports))

	if g.Options.WrapTerminal {
		lines = append(lines,
			"!",
			"end",
			"!",
			"! Choose ONE save command:",
			"! copy running-config startup-config",
			"! write memory",
			"!",
		)
	}

	return lines
}

// vlanBlocks renders one name/number block per registry entry.
func (g *Generator) vlanBlocks() []string {
	if g.Registry == nil {
		return nil
	}

	var lines []string
	for _, e := range g.Registry.Entries() {
		lines = g.banner(lines, fmt.Sprintf("VLAN %d", e.ID))
		lines = append(lines, fmt.Sprintf("vlan %d", e.ID))
		if e.Name != "" {
			lines = append(lines, fmt.Sprintf(" name %s", util.SanitizeName(e.Name)))
		}
		lines = append(lines, " exit")
	}
	return lines
}

// vlanScope is the compacted registry ID list used by commands that take a
// VLAN range ("spanning-tree vlan", "ip arp inspection vlan"). Falls back to
// VLAN 1 when nothing is registered.
func (g *Generator) vlanScope() string {
	if g.Registry == nil || g.Registry.Len() == 0 {
		return "1"
	}
	return util.CompactRange(g.Registry.IDs())
}

// banner appends a section comment when Comments is enabled.
func (g *Generator) banner(lines []string, title string) []string {
	if !g.Options.Comments {
		return lines
	}
	return append(lines, fmt.Sprintf("! --- %s ---", title))
}
