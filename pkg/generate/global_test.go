package generate

import (
	"strings"
	"testing"

	"github.com/switchsmith/switchsmith/pkg/model"
	"github.com/switchsmith/switchsmith/pkg/vlan"
)

func TestGlobal_Hostname(t *testing.T) {
	g := model.NewGlobalConfig()
	g.Hostname = "sw-floor2"

	lines := generateLines(t, vlan.NewRegistry(), nil, g)
	requireLine(t, lines, "hostname sw-floor2")
}

func TestGlobal_PasswordBlock(t *testing.T) {
	g := model.NewGlobalConfig()
	g.EnableSecret = "$8$abc$def"
	g.LinePassword = "console123"

	lines := generateLines(t, vlan.NewRegistry(), nil, g)

	requireLine(t, lines, "enable secret $8$abc$def")
	requireLine(t, lines, "line console 0")
	requireLine(t, lines, " password console123")
	requireLine(t, lines, " login")
	requireLine(t, lines, "line vty 0 4")
	requireLine(t, lines, " transport input ssh telnet")
}

func TestGlobal_TransportInput(t *testing.T) {
	tests := []struct {
		ssh, telnet bool
		want        string
	}{
		{true, true, " transport input ssh telnet"},
		{true, false, " transport input ssh"},
		{false, true, " transport input telnet"},
		{false, false, " transport input none"},
	}

	for _, tt := range tests {
		g := model.NewGlobalConfig()
		g.LinePassword = "x"
		g.VTYSSH = tt.ssh
		g.VTYTelnet = tt.telnet

		lines := generateLines(t, vlan.NewRegistry(), nil, g)
		requireLine(t, lines, tt.want)
	}
}

func TestGlobal_BasicSettings(t *testing.T) {
	g := model.NewGlobalConfig()
	lines := generateLines(t, vlan.NewRegistry(), nil, g)

	requireLine(t, lines, "service password-encryption")
	requireLine(t, lines, "no ip domain-lookup")

	g.PasswordEncryption = false
	g.NoDomainLookup = false
	lines = generateLines(t, vlan.NewRegistry(), nil, g)
	if len(lines) != 0 {
		t.Errorf("all-defaults-off global should render nothing, got %v", lines)
	}
}

func TestGlobal_STPBlock(t *testing.T) {
	g := model.NewGlobalConfig()
	g.PasswordEncryption = false
	g.NoDomainLookup = false
	g.STPMode = model.STPModeRapidPVST
	g.STPPriority = intp(4096)

	lines := generateLines(t, registryWith(t, 1, 10, 11, 12), nil, g)

	requireLine(t, lines, "spanning-tree mode rapid-pvst")
	requireLine(t, lines, "spanning-tree vlan 1,10-12 priority 4096")
}

func TestGlobal_STPPriorityWithEmptyRegistry(t *testing.T) {
	g := model.NewGlobalConfig()
	g.STPPriority = intp(0)

	lines := generateLines(t, vlan.NewRegistry(), nil, g)
	requireLine(t, lines, "spanning-tree vlan 1 priority 0")
}

func TestGlobal_VTPBlock(t *testing.T) {
	g := model.NewGlobalConfig()
	g.PasswordEncryption = false
	g.NoDomainLookup = false
	g.VTPMode = model.VTPModeTransparent
	g.VTPDomain = "CAMPUS"
	g.VTPPassword = "vtppass"

	lines := generateLines(t, vlan.NewRegistry(), nil, g)

	requireLine(t, lines, "vtp mode transparent")
	requireLine(t, lines, "vtp domain CAMPUS")
	requireLine(t, lines, "vtp password vtppass")
}

func TestGlobal_ManagementPlane(t *testing.T) {
	g := model.NewGlobalConfig()
	g.SNMPCommunity = "monitoring"
	g.NTPServer = "10.0.0.1"

	lines := generateLines(t, vlan.NewRegistry(), nil, g)

	requireLine(t, lines, "snmp-server community monitoring RO")
	requireLine(t, lines, "ntp server 10.0.0.1")
}

func TestGlobal_SecurityFeatures(t *testing.T) {
	g := model.NewGlobalConfig()
	g.DHCPSnooping = true
	g.DAI = true
	g.IPSourceGuard = true

	lines := generateLines(t, registryWith(t, 10, 100), nil, g)

	requireLine(t, lines, "ip dhcp snooping")
	requireLine(t, lines, "ip dhcp snooping vlan 10,100")
	requireLine(t, lines, "ip arp inspection vlan 10,100")
	requireLine(t, lines, "ip verify source")
}

func TestGlobal_PoEPolicing(t *testing.T) {
	g := model.NewGlobalConfig()
	g.PoEGlobal = true

	lines := generateLines(t, vlan.NewRegistry(), nil, g)
	requireLine(t, lines, "power inline police")
}

func TestGlobal_SVIBlock(t *testing.T) {
	g := model.NewGlobalConfig()
	g.SVI = &model.SVIConfig{
		Interface:   "Vlan1000",
		IP:          "10.10.0.2",
		Mask:        "255.255.255.0",
		Description: "management",
	}

	lines := generateLines(t, vlan.NewRegistry(), nil, g)

	requireLine(t, lines, "interface Vlan1000")
	requireLine(t, lines, " description management")
	requireLine(t, lines, " ip address 10.10.0.2 255.255.255.0")
	requireLine(t, lines, " no shutdown")
	forbidLine(t, lines, "no switchport")
}

func TestGlobal_SVIRoutedPort(t *testing.T) {
	g := model.NewGlobalConfig()
	g.SVI = &model.SVIConfig{
		Interface: "GigabitEthernet0/0/48",
		IP:        "10.10.0.2",
		Mask:      "255.255.255.252",
	}

	lines := generateLines(t, vlan.NewRegistry(), nil, g)
	requireLine(t, lines, " no switchport")
}

func TestGlobal_DefaultRoute(t *testing.T) {
	g := model.NewGlobalConfig()
	g.GatewayIP = "192.168.1.1"

	lines := generateLines(t, vlan.NewRegistry(), nil, g)
	requireLine(t, lines, "ip route 0.0.0.0 0.0.0.0 192.168.1.1")
}

// Global sections come out in fixed order regardless of which are set.
func TestGlobal_SectionOrder(t *testing.T) {
	g := model.NewGlobalConfig()
	g.Hostname = "sw-1"
	g.EnableSecret = "s"
	g.STPMode = model.STPModePVST
	g.VTPMode = model.VTPModeServer
	g.SNMPCommunity = "c"
	g.NTPServer = "10.0.0.1"
	g.DHCPSnooping = true
	g.PoEGlobal = true
	g.SVI = &model.SVIConfig{Interface: "Vlan1", IP: "10.0.0.2", Mask: "255.255.255.0"}
	g.GatewayIP = "10.0.0.1"

	lines := generateLines(t, vlan.NewRegistry(), nil, g)
	text := strings.Join(lines, "\n")

	markers := []string{
		"hostname sw-1",
		"enable secret s",
		"service password-encryption",
		"spanning-tree mode pvst",
		"vtp mode server",
		"snmp-server community c RO",
		"ntp server 10.0.0.1",
		"ip dhcp snooping",
		"power inline police",
		"interface Vlan1",
		"ip route 0.0.0.0 0.0.0.0 10.0.0.1",
	}

	last := -1
	for _, m := range markers {
		idx := strings.Index(text, m)
		if idx < 0 {
			t.Fatalf("missing %q in output:\n%s", m, text)
		}
		if idx < last {
			t.Errorf("%q appears out of order", m)
		}
		last = idx
	}
}
