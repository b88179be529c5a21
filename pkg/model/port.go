// Package model defines the configuration records for switch ports and
// switch-wide settings.
package model

import "strings"

// PortMode selects the switchport operating mode.
type PortMode string

const (
	ModeAccess PortMode = "access"
	ModeTrunk  PortMode = "trunk"
)

// AllowedAll is the canonical allowed-VLAN specification admitting every VLAN
// on a trunk. Stored uppercase; accepted case-insensitively on input.
const AllowedAll = "ALL"

// ViolationAction is the port-security response to an offending MAC address.
type ViolationAction string

const (
	ViolationShutdown ViolationAction = "shutdown"
	ViolationRestrict ViolationAction = "restrict"
	ViolationProtect  ViolationAction = "protect"
)

// EtherChannelMode selects the link-aggregation negotiation protocol.
type EtherChannelMode string

const (
	EtherChannelLACP EtherChannelMode = "lacp"
	EtherChannelPAgP EtherChannelMode = "pagp"
	EtherChannelOn   EtherChannelMode = "on"
)

// LoadBalanceMethod is an EtherChannel frame-distribution hash method.
type LoadBalanceMethod string

const (
	LoadBalanceSrcMAC    LoadBalanceMethod = "src-mac"
	LoadBalanceDstMAC    LoadBalanceMethod = "dst-mac"
	LoadBalanceSrcDstMAC LoadBalanceMethod = "src-dst-mac"
	LoadBalanceSrcIP     LoadBalanceMethod = "src-ip"
	LoadBalanceDstIP     LoadBalanceMethod = "dst-ip"
	LoadBalanceSrcDstIP  LoadBalanceMethod = "src-dst-ip"
)

// PoEMode selects inline-power behavior on a port.
type PoEMode string

const (
	PoEAuto   PoEMode = "auto"
	PoEStatic PoEMode = "static"
	PoENever  PoEMode = "never"
)

// PortSecurity holds per-port MAC security settings.
type PortSecurity struct {
	Enabled         bool            `json:"enabled" yaml:"enabled"`
	MaxMAC          int             `json:"max_mac,omitempty" yaml:"max_mac,omitempty"`
	ViolationAction ViolationAction `json:"violation_action,omitempty" yaml:"violation_action,omitempty"`
	Sticky          bool            `json:"sticky,omitempty" yaml:"sticky,omitempty"`
}

// StormControl holds suppression thresholds per traffic class.
// A nil threshold leaves that class unconfigured.
type StormControl struct {
	Broadcast *float64 `json:"broadcast,omitempty" yaml:"broadcast,omitempty"`
	Multicast *float64 `json:"multicast,omitempty" yaml:"multicast,omitempty"`
	Unicast   *float64 `json:"unicast,omitempty" yaml:"unicast,omitempty"`
}

// IsZero reports whether no traffic class is configured.
func (s StormControl) IsZero() bool {
	return s.Broadcast == nil && s.Multicast == nil && s.Unicast == nil
}

// EtherChannel holds link-aggregation membership settings.
type EtherChannel struct {
	Enabled     bool              `json:"enabled" yaml:"enabled"`
	Mode        EtherChannelMode  `json:"mode,omitempty" yaml:"mode,omitempty"`
	Group       int               `json:"group,omitempty" yaml:"group,omitempty"`
	LoadBalance LoadBalanceMethod `json:"load_balance,omitempty" yaml:"load_balance,omitempty"`
}

// PoE holds inline-power settings for a port.
type PoE struct {
	Enabled  bool    `json:"enabled" yaml:"enabled"`
	Mode     PoEMode `json:"mode,omitempty" yaml:"mode,omitempty"`
	MaxWatts float64 `json:"max_watts,omitempty" yaml:"max_watts,omitempty"`
}

// ACLBinding names the access lists applied to a port.
type ACLBinding struct {
	Inbound  string `json:"inbound,omitempty" yaml:"inbound,omitempty"`
	Outbound string `json:"outbound,omitempty" yaml:"outbound,omitempty"`
}

// IsZero reports whether no ACL is bound.
func (a ACLBinding) IsZero() bool {
	return a.Inbound == "" && a.Outbound == ""
}

// PortConfig is the in-memory record of one port's settings.
//
// VLAN-valued fields use 0 to mean unset. Access-mode fields (DataVLAN,
// VoiceVLAN) and trunk-mode fields (NativeVLAN, AllowedVLANs) are mutually
// exclusive by mode; use SetMode to transition so the inapplicable fields
// are cleared.
type PortConfig struct {
	ID          string   `json:"id" yaml:"id"` // e.g. "GigabitEthernet0/0/1"
	Mode        PortMode `json:"mode" yaml:"mode"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`

	// Access mode
	DataVLAN  int `json:"data_vlan,omitempty" yaml:"data_vlan,omitempty"`
	VoiceVLAN int `json:"voice_vlan,omitempty" yaml:"voice_vlan,omitempty"`

	// Trunk mode
	NativeVLAN   int    `json:"native_vlan,omitempty" yaml:"native_vlan,omitempty"`
	AllowedVLANs string `json:"allowed_vlans,omitempty" yaml:"allowed_vlans,omitempty"` // "ALL" or "1,10-20,30"

	Portfast bool `json:"portfast,omitempty" yaml:"portfast,omitempty"`
	QoSTrust bool `json:"qos_trust,omitempty" yaml:"qos_trust,omitempty"`

	Security     PortSecurity  `json:"security,omitempty" yaml:"security,omitempty"`
	Storm        StormControl  `json:"storm,omitempty" yaml:"storm,omitempty"`
	EtherChannel *EtherChannel `json:"etherchannel,omitempty" yaml:"etherchannel,omitempty"`
	PoE          *PoE          `json:"poe,omitempty" yaml:"poe,omitempty"`
	ACL          ACLBinding    `json:"acl,omitempty" yaml:"acl,omitempty"`
}

// SetMode transitions the port to the given mode, clearing the fields the
// new mode does not use. Entering trunk mode defaults the allowed list to
// "ALL" when nothing is set.
func (p *PortConfig) SetMode(mode PortMode) {
	prev := p.Mode
	p.Mode = mode
	if prev == mode {
		return
	}
	switch mode {
	case ModeAccess:
		p.NativeVLAN = 0
		p.AllowedVLANs = ""
	case ModeTrunk:
		p.DataVLAN = 0
		p.VoiceVLAN = 0
		if p.AllowedVLANs == "" {
			p.AllowedVLANs = AllowedAll
		}
	}
}

// IsAccess reports whether the port operates in access mode.
func (p *PortConfig) IsAccess() bool { return p.Mode == ModeAccess }

// IsTrunk reports whether the port operates in trunk mode.
func (p *PortConfig) IsTrunk() bool { return p.Mode == ModeTrunk }

// AllowsAll reports whether the trunk admits every VLAN.
func (p *PortConfig) AllowsAll() bool {
	return strings.EqualFold(p.AllowedVLANs, AllowedAll)
}

// HasSecurity reports whether port security is enabled.
func (p *PortConfig) HasSecurity() bool { return p.Security.Enabled }

// HasEtherChannel reports whether the port is an EtherChannel member.
func (p *PortConfig) HasEtherChannel() bool {
	return p.EtherChannel != nil && p.EtherChannel.Enabled
}
