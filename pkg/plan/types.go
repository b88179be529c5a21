// Package plan loads switch plan files: a YAML document describing one
// switch (its interface naming scheme, global settings, and port entries)
// that expands into the records the validator and generator consume.
package plan

import "github.com/switchsmith/switchsmith/pkg/model"

// Plan is the top-level structure of a plan file.
type Plan struct {
	Switch SwitchMeta         `yaml:"switch"`
	Global model.GlobalConfig `yaml:"global"`
	Ports  []PortEntry        `yaml:"ports"`
}

// SwitchMeta names the switch and its interface addressing scheme.
type SwitchMeta struct {
	Name          string `yaml:"name,omitempty"`
	InterfaceType string `yaml:"interface_type,omitempty"` // full name or abbreviation, e.g. "GigabitEthernet" or "Gi"
	Slot          int    `yaml:"slot"`
	Subslot       int    `yaml:"subslot"`
}

// PortEntry configures one port or a contiguous range of ports. Exactly one
// of Port or Ports must be set. Template, when present, names a stored port
// template applied before the entry's own fields.
type PortEntry struct {
	Port     int    `yaml:"port,omitempty"`  // single port number
	Ports    string `yaml:"ports,omitempty"` // range spec, e.g. "1-8" or "1,3,5-8"
	Template string `yaml:"template,omitempty"`

	model.PortConfig `yaml:",inline"`
}
