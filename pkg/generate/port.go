package generate

import (
	"fmt"

	"github.com/switchsmith/switchsmith/pkg/model"
	"github.com/switchsmith/switchsmith/pkg/util"
)

// portBlock renders one self-contained interface block. Every line is
// conditional on the corresponding field being set; nothing is emitted for
// unset fields.
func (g *Generator) portBlock(p *model.PortConfig) []string {
	var lines []string

	lines = g.banner(lines, fmt.Sprintf("Port %s", p.ID))
	lines = append(lines, fmt.Sprintf("interface %s", p.ID))

	if p.Description != "" {
		lines = append(lines, fmt.Sprintf(" description %s", p.Description))
	}

	switch p.Mode {
	case model.ModeAccess:
		lines = append(lines, " switchport mode access")
		if p.DataVLAN != 0 {
			lines = append(lines, fmt.Sprintf(" switchport access vlan %d", p.DataVLAN))
		}
		if p.VoiceVLAN != 0 {
			lines = append(lines, fmt.Sprintf(" switchport voice vlan %d", p.VoiceVLAN))
		}
	case model.ModeTrunk:
		lines = append(lines, " switchport mode trunk", " switchport nonegotiate")
		if p.NativeVLAN != 0 {
			lines = append(lines, fmt.Sprintf(" switchport trunk native vlan %d", p.NativeVLAN))
		}
		if p.AllowedVLANs != "" {
			lines = append(lines, fmt.Sprintf(" switchport trunk allowed vlan %s", renderAllowedVLANs(p)))
		}
	}

	if p.Portfast {
		lines = append(lines, " spanning-tree portfast")
	}
	if p.QoSTrust {
		lines = append(lines, " mls qos trust cos")
	}

	lines = append(lines, securityLines(&p.Security)...)
	lines = append(lines, stormLines(&p.Storm)...)
	lines = append(lines, etherChannelLines(p.EtherChannel)...)
	lines = append(lines, poeLines(p.PoE)...)

	if p.ACL.Inbound != "" {
		lines = append(lines, fmt.Sprintf(" ip access-group %s in", p.ACL.Inbound))
	}
	if p.ACL.Outbound != "" {
		lines = append(lines, fmt.Sprintf(" ip access-group %s out", p.ACL.Outbound))
	}

	lines = append(lines, " no shutdown", " exit")
	return lines
}

// renderAllowedVLANs normalizes the allowed spec through expand-then-compact
// so equivalent specs render identically. "ALL" stays literal; a spec that
// does not parse is rendered as-is (preview semantics).
func renderAllowedVLANs(p *model.PortConfig) string {
	if p.AllowsAll() {
		return model.AllowedAll
	}
	members, err := util.ExpandRange(p.AllowedVLANs)
	if err != nil || len(members) == 0 {
		return p.AllowedVLANs
	}
	return util.CompactRange(members)
}

func securityLines(s *model.PortSecurity) []string {
	if !s.Enabled {
		return nil
	}
	lines := []string{" switchport port-security"}
	if s.MaxMAC > 0 {
		lines = append(lines, fmt.Sprintf(" switchport port-security maximum %d", s.MaxMAC))
	}
	if s.ViolationAction != "" {
		lines = append(lines, fmt.Sprintf(" switchport port-security violation %s", s.ViolationAction))
	}
	if s.Sticky {
		lines = append(lines, " switchport port-security mac-address sticky")
	}
	return lines
}

// stormLines emits one line per configured traffic class, in broadcast,
// multicast, unicast order.
func stormLines(s *model.StormControl) []string {
	var lines []string
	add := func(class string, level *float64) {
		if level != nil {
			lines = append(lines, fmt.Sprintf(" storm-control %s level %.2f", class, *level))
		}
	}
	add("broadcast", s.Broadcast)
	add("multicast", s.Multicast)
	add("unicast", s.Unicast)
	return lines
}

func etherChannelLines(ec *model.EtherChannel) []string {
	if ec == nil || !ec.Enabled {
		return nil
	}

	var negotiation string
	switch ec.Mode {
	case model.EtherChannelLACP:
		negotiation = "active"
	case model.EtherChannelPAgP:
		negotiation = "desirable"
	default:
		negotiation = "on"
	}

	lines := []string{fmt.Sprintf(" channel-group %d mode %s", ec.Group, negotiation)}
	if ec.LoadBalance != "" {
		lines = append(lines, fmt.Sprintf(" port-channel load-balance %s", ec.LoadBalance))
	}
	return lines
}

func poeLines(p *model.PoE) []string {
	if p == nil {
		return nil
	}
	if !p.Enabled || p.Mode == model.PoENever {
		return []string{" power inline never"}
	}
	if p.Mode == model.PoEStatic {
		if p.MaxWatts > 0 {
			return []string{fmt.Sprintf(" power inline static max %d", int(p.MaxWatts*1000))}
		}
		return []string{" power inline static"}
	}
	return []string{" power inline auto"}
}
