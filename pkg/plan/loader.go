package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/switchsmith/switchsmith/pkg/model"
	"github.com/switchsmith/switchsmith/pkg/util"
)

// TemplateFunc resolves a named port template. Returning false means the
// name is unknown.
type TemplateFunc func(name string) (*model.PortConfig, bool)

// Load parses a plan file and validates its shape. Field-level validation is
// left to the validate package; Load only rejects plans that cannot expand.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	// Seed defaults first; unmarshal leaves fields absent from the
	// document untouched.
	p := Plan{Global: *model.NewGlobalConfig()}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan YAML: %w", err)
	}

	if err := validatePlan(&p); err != nil {
		return nil, fmt.Errorf("validating plan: %w", err)
	}

	util.Debugf("loaded plan %s: %d port entries", path, len(p.Ports))
	return &p, nil
}

func validatePlan(p *Plan) error {
	if _, err := model.LookupInterfaceType(p.Switch.InterfaceType); err != nil {
		return err
	}
	if p.Switch.Slot < 0 || p.Switch.Subslot < 0 {
		return fmt.Errorf("slot numbers must be non-negative, got %d/%d", p.Switch.Slot, p.Switch.Subslot)
	}
	for i, entry := range p.Ports {
		if entry.Port == 0 && entry.Ports == "" {
			return fmt.Errorf("port entry %d: one of 'port' or 'ports' is required", i)
		}
		if entry.Port != 0 && entry.Ports != "" {
			return fmt.Errorf("port entry %d: 'port' and 'ports' are mutually exclusive", i)
		}
		if entry.Port < 0 {
			return fmt.Errorf("port entry %d: negative port number %d", i, entry.Port)
		}
	}
	return nil
}

// InterfacePrefix returns the interface name prefix for this switch,
// e.g. "GigabitEthernet0/0/".
func (m *SwitchMeta) InterfacePrefix() (string, error) {
	return model.InterfacePrefix(m.InterfaceType, m.Slot, m.Subslot)
}

// Expand resolves every port entry into concrete port records, in plan order
// with ascending port numbers within a range entry. Templates, when named,
// supply the base record; the entry's own fields override.
func (p *Plan) Expand(lookup TemplateFunc) ([]model.PortConfig, error) {
	prefix, err := p.Switch.InterfacePrefix()
	if err != nil {
		return nil, err
	}
	var ports []model.PortConfig

	for i, entry := range p.Ports {
		numbers, err := entryNumbers(&entry)
		if err != nil {
			return nil, fmt.Errorf("port entry %d: %w", i, err)
		}

		base := model.PortConfig{}
		if entry.Template != "" {
			if lookup == nil {
				return nil, fmt.Errorf("port entry %d: template %q referenced but no templates available", i, entry.Template)
			}
			tmpl, ok := lookup(entry.Template)
			if !ok {
				return nil, fmt.Errorf("port entry %d: unknown template %q", i, entry.Template)
			}
			base = *tmpl
		}

		for _, n := range numbers {
			pc := overlay(base, &entry.PortConfig)
			pc.ID = model.PortName(prefix, n)
			ports = append(ports, pc)
		}
	}

	return ports, nil
}

func entryNumbers(entry *PortEntry) ([]int, error) {
	if entry.Port != 0 {
		return []int{entry.Port}, nil
	}
	numbers, err := util.ExpandRange(entry.Ports)
	if err != nil {
		return nil, fmt.Errorf("port range %q: %w", entry.Ports, err)
	}
	return numbers, nil
}

// overlay applies the entry's set fields over the template base. Zero values
// leave the base value in place, so a template field can only be overridden,
// never cleared, from a plan entry.
func overlay(base model.PortConfig, over *model.PortConfig) model.PortConfig {
	out := base

	if over.Mode != "" {
		out.SetMode(over.Mode)
	}
	if over.Description != "" {
		out.Description = over.Description
	}
	if over.DataVLAN != 0 {
		out.DataVLAN = over.DataVLAN
	}
	if over.VoiceVLAN != 0 {
		out.VoiceVLAN = over.VoiceVLAN
	}
	if over.NativeVLAN != 0 {
		out.NativeVLAN = over.NativeVLAN
	}
	if over.AllowedVLANs != "" {
		out.AllowedVLANs = over.AllowedVLANs
	}
	if over.Portfast {
		out.Portfast = true
	}
	if over.QoSTrust {
		out.QoSTrust = true
	}
	if over.Security.Enabled {
		out.Security = over.Security
	}
	if !over.Storm.IsZero() {
		out.Storm = over.Storm
	}
	if over.EtherChannel != nil {
		ec := *over.EtherChannel
		out.EtherChannel = &ec
	} else if base.EtherChannel != nil {
		ec := *base.EtherChannel
		out.EtherChannel = &ec
	}
	if over.PoE != nil {
		poe := *over.PoE
		out.PoE = &poe
	} else if base.PoE != nil {
		poe := *base.PoE
		out.PoE = &poe
	}
	if !over.ACL.IsZero() {
		out.ACL = over.ACL
	}

	return out
}
