package generate

import (
	"fmt"
	"strings"

	"github.com/switchsmith/switchsmith/pkg/model"
)

// globalBlocks renders the switch-wide sections in fixed order:
// identity → passwords → basic settings → STP → VTP → SNMP → NTP →
// L2 security features → PoE → management SVI → default route.
func (g *Generator) globalBlocks(gc *model.GlobalConfig) []string {
	var lines []string

	if gc.Hostname != "" {
		lines = g.banner(lines, fmt.Sprintf("Hostname %q", gc.Hostname))
		lines = append(lines, fmt.Sprintf("hostname %s", gc.Hostname))
	}

	lines = append(lines, g.passwordBlock(gc)...)
	lines = append(lines, g.basicSettings(gc)...)
	lines = append(lines, g.stpBlock(gc)...)
	lines = append(lines, g.vtpBlock(gc)...)

	if gc.SNMPCommunity != "" {
		lines = g.banner(lines, "SNMP")
		lines = append(lines, fmt.Sprintf("snmp-server community %s RO", gc.SNMPCommunity))
	}

	if gc.NTPServer != "" {
		lines = g.banner(lines, "NTP")
		lines = append(lines, fmt.Sprintf("ntp server %s", gc.NTPServer))
	}

	lines = append(lines, g.securityFeatures(gc)...)

	if gc.PoEGlobal {
		lines = g.banner(lines, "PoE")
		lines = append(lines, "power inline police")
	}

	lines = append(lines, g.sviBlock(gc)...)

	if gc.GatewayIP != "" {
		lines = g.banner(lines, fmt.Sprintf("Default gateway via %s", gc.GatewayIP))
		lines = append(lines, fmt.Sprintf("ip route 0.0.0.0 0.0.0.0 %s", gc.GatewayIP))
	}

	return lines
}

func (g *Generator) passwordBlock(gc *model.GlobalConfig) []string {
	if gc.EnableSecret == "" && gc.LinePassword == "" {
		return nil
	}

	var lines []string
	lines = g.banner(lines, "Passwords")

	if gc.EnableSecret != "" {
		lines = append(lines, fmt.Sprintf("enable secret %s", gc.EnableSecret))
	}

	if gc.LinePassword != "" {
		lines = append(lines,
			"line console 0",
			fmt.Sprintf(" password %s", gc.LinePassword),
			" login",
			" exit",
			"line vty 0 4",
			fmt.Sprintf(" password %s", gc.LinePassword),
			" login",
			" "+transportInput(gc),
			" exit",
		)
	}

	return lines
}

// transportInput builds the vty transport command from the permitted
// protocols. Both disabled means no remote line access at all.
func transportInput(gc *model.GlobalConfig) string {
	switch {
	case gc.VTYSSH && gc.VTYTelnet:
		return "transport input ssh telnet"
	case gc.VTYSSH:
		return "transport input ssh"
	case gc.VTYTelnet:
		return "transport input telnet"
	default:
		return "transport input none"
	}
}

func (g *Generator) basicSettings(gc *model.GlobalConfig) []string {
	if !gc.PasswordEncryption && !gc.NoDomainLookup {
		return nil
	}
	var lines []string
	lines = g.banner(lines, "Basic settings")
	if gc.PasswordEncryption {
		lines = append(lines, "service password-encryption")
	}
	if gc.NoDomainLookup {
		lines = append(lines, "no ip domain-lookup")
	}
	return lines
}

func (g *Generator) stpBlock(gc *model.GlobalConfig) []string {
	if gc.STPMode == "" && !gc.HasSTPPriority() {
		return nil
	}
	var lines []string
	lines = g.banner(lines, "Spanning tree")
	if gc.STPMode != "" {
		lines = append(lines, fmt.Sprintf("spanning-tree mode %s", gc.STPMode))
	}
	if gc.HasSTPPriority() {
		lines = append(lines, fmt.Sprintf("spanning-tree vlan %s priority %d", g.vlanScope(), *gc.STPPriority))
	}
	return lines
}

func (g *Generator) vtpBlock(gc *model.GlobalConfig) []string {
	if gc.VTPMode == "" && gc.VTPDomain == "" && gc.VTPPassword == "" {
		return nil
	}
	var lines []string
	lines = g.banner(lines, "VTP")
	if gc.VTPMode != "" {
		lines = append(lines, fmt.Sprintf("vtp mode %s", gc.VTPMode))
	}
	if gc.VTPDomain != "" {
		lines = append(lines, fmt.Sprintf("vtp domain %s", gc.VTPDomain))
	}
	if gc.VTPPassword != "" {
		lines = append(lines, fmt.Sprintf("vtp password %s", gc.VTPPassword))
	}
	return lines
}

func (g *Generator) securityFeatures(gc *model.GlobalConfig) []string {
	if !gc.DHCPSnooping && !gc.DAI && !gc.IPSourceGuard {
		return nil
	}
	var lines []string
	lines = g.banner(lines, "L2 security")
	if gc.DHCPSnooping {
		lines = append(lines,
			"ip dhcp snooping",
			fmt.Sprintf("ip dhcp snooping vlan %s", g.vlanScope()),
		)
	}
	if gc.DAI {
		lines = append(lines, fmt.Sprintf("ip arp inspection vlan %s", g.vlanScope()))
	}
	if gc.IPSourceGuard {
		lines = append(lines, "ip verify source")
	}
	return lines
}

func (g *Generator) sviBlock(gc *model.GlobalConfig) []string {
	if !gc.HasSVI() {
		return nil
	}
	svi := gc.SVI

	var lines []string
	lines = g.banner(lines, fmt.Sprintf("IP for %s", svi.Interface))
	lines = append(lines, fmt.Sprintf("interface %s", svi.Interface))
	if svi.Description != "" {
		lines = append(lines, fmt.Sprintf(" description %s", svi.Description))
	}
	if !strings.HasPrefix(strings.ToLower(svi.Interface), "vlan") {
		lines = append(lines, " no switchport")
	}
	lines = append(lines,
		fmt.Sprintf(" ip address %s %s", svi.IP, svi.Mask),
		" no shutdown",
		" exit",
	)
	return lines
}
