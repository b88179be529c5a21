package model

// STPMode is the spanning-tree flavor running switch-wide.
type STPMode string

const (
	STPModePVST      STPMode = "pvst"
	STPModeRapidPVST STPMode = "rapid-pvst"
	STPModeMST       STPMode = "mst"
)

// VTPMode is the VLAN Trunking Protocol role of the switch.
type VTPMode string

const (
	VTPModeServer      VTPMode = "server"
	VTPModeClient      VTPMode = "client"
	VTPModeTransparent VTPMode = "transparent"
)

// STPPriorityStep is the granularity of bridge priorities.
const (
	STPPriorityStep = 4096
	STPPriorityMax  = 61440
)

// SVIConfig is a management or routed interface with an address.
type SVIConfig struct {
	Interface   string `json:"interface" yaml:"interface"` // e.g. "Vlan1"
	IP          string `json:"ip" yaml:"ip"`
	Mask        string `json:"mask" yaml:"mask"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// GlobalConfig is the switch-wide settings record.
//
// Optional string fields suppress their output lines when empty.
// STPPriority is a pointer because 0 is a meaningful priority.
type GlobalConfig struct {
	// Identity and access
	Hostname           string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	EnableSecret       string `json:"enable_secret,omitempty" yaml:"enable_secret,omitempty"`
	LinePassword       string `json:"line_password,omitempty" yaml:"line_password,omitempty"`
	VTYSSH             bool   `json:"vty_ssh" yaml:"vty_ssh"`
	VTYTelnet          bool   `json:"vty_telnet" yaml:"vty_telnet"`
	PasswordEncryption bool   `json:"pwd_encrypt" yaml:"pwd_encrypt"`
	NoDomainLookup     bool   `json:"no_domain_lookup" yaml:"no_domain_lookup"`

	// Spanning tree
	STPMode     STPMode `json:"stp_mode,omitempty" yaml:"stp_mode,omitempty"`
	STPPriority *int    `json:"stp_priority,omitempty" yaml:"stp_priority,omitempty"`

	// VTP
	VTPMode     VTPMode `json:"vtp_mode,omitempty" yaml:"vtp_mode,omitempty"`
	VTPDomain   string  `json:"vtp_domain,omitempty" yaml:"vtp_domain,omitempty"`
	VTPPassword string  `json:"vtp_password,omitempty" yaml:"vtp_password,omitempty"`

	// Management plane
	SNMPCommunity string `json:"snmp_community,omitempty" yaml:"snmp_community,omitempty"`
	NTPServer     string `json:"ntp_server,omitempty" yaml:"ntp_server,omitempty"`

	// Layer-2 security features
	DHCPSnooping  bool `json:"dhcp_snooping,omitempty" yaml:"dhcp_snooping,omitempty"`
	DAI           bool `json:"dai,omitempty" yaml:"dai,omitempty"`
	IPSourceGuard bool `json:"ip_source_guard,omitempty" yaml:"ip_source_guard,omitempty"`

	// Power over Ethernet
	PoEGlobal bool `json:"poe_global,omitempty" yaml:"poe_global,omitempty"`

	// Management addressing
	SVI       *SVIConfig `json:"svi,omitempty" yaml:"svi,omitempty"`
	GatewayIP string     `json:"gateway_ip,omitempty" yaml:"gateway_ip,omitempty"`
}

// NewGlobalConfig returns a record with the conventional defaults: both vty
// transports permitted, password encryption on, domain lookup off.
func NewGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		VTYSSH:             true,
		VTYTelnet:          true,
		PasswordEncryption: true,
		NoDomainLookup:     true,
	}
}

// HasSTPPriority reports whether an explicit bridge priority is set.
func (g *GlobalConfig) HasSTPPriority() bool { return g.STPPriority != nil }

// HasSVI reports whether a management interface with an address is set.
func (g *GlobalConfig) HasSVI() bool {
	return g.SVI != nil && g.SVI.Interface != "" && g.SVI.IP != "" && g.SVI.Mask != ""
}
