// Package validate checks configuration records for internally consistent,
// in-range values before generation. Every check runs; errors are returned
// as a list so a caller can surface all problems at once. Inputs are never
// mutated.
package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/switchsmith/switchsmith/pkg/model"
	"github.com/switchsmith/switchsmith/pkg/util"
)

var hostnamePattern = regexp.MustCompile(`^[a-zA-Z0-9\-_.]+$`)

// Port validates one port record. Returns nil when the record is valid.
func Port(p *model.PortConfig) []*util.FieldError {
	var errs []*util.FieldError

	switch p.Mode {
	case model.ModeAccess:
		if p.DataVLAN == 0 {
			errs = append(errs, util.MissingRequiredError("data_vlan", "access mode requires a data VLAN"))
		}
		if p.NativeVLAN != 0 {
			errs = append(errs, util.ModeConflictError("native_vlan", "native VLAN is a trunk-mode field"))
		}
		if p.AllowedVLANs != "" {
			errs = append(errs, util.ModeConflictError("allowed_vlans", "allowed VLANs is a trunk-mode field"))
		}
	case model.ModeTrunk:
		if p.NativeVLAN == 0 {
			errs = append(errs, util.MissingRequiredError("native_vlan", "trunk mode requires a native VLAN"))
		}
		if p.DataVLAN != 0 {
			errs = append(errs, util.ModeConflictError("data_vlan", "data VLAN is an access-mode field"))
		}
		if p.VoiceVLAN != 0 {
			errs = append(errs, util.ModeConflictError("voice_vlan", "voice VLAN is an access-mode field"))
		}
	case "":
		errs = append(errs, util.MissingRequiredError("mode", "port mode not set"))
	default:
		errs = append(errs, util.RangeError("mode", "unknown port mode %q", p.Mode))
	}

	errs = append(errs, checkVLANField("data_vlan", p.DataVLAN)...)
	errs = append(errs, checkVLANField("voice_vlan", p.VoiceVLAN)...)
	errs = append(errs, checkVLANField("native_vlan", p.NativeVLAN)...)

	if p.AllowedVLANs != "" {
		if err := CheckAllowedSpec(p.AllowedVLANs); err != nil {
			errs = append(errs, err)
		}
	}

	errs = append(errs, checkSecurity(&p.Security)...)
	errs = append(errs, checkStorm(&p.Storm)...)
	errs = append(errs, checkEtherChannel(p.EtherChannel)...)
	errs = append(errs, checkPoE(p.PoE)...)

	return errs
}

// Global validates the switch-wide record. Returns nil when valid.
func Global(g *model.GlobalConfig) []*util.FieldError {
	var errs []*util.FieldError

	if g.Hostname != "" && !hostnamePattern.MatchString(g.Hostname) {
		errs = append(errs, util.GrammarError("hostname", "hostname %q contains invalid characters", g.Hostname))
	}

	switch g.STPMode {
	case "", model.STPModePVST, model.STPModeRapidPVST, model.STPModeMST:
	default:
		errs = append(errs, util.RangeError("stp_mode", "unknown STP mode %q", g.STPMode))
	}

	if g.STPPriority != nil {
		pri := *g.STPPriority
		if pri < 0 || pri > model.STPPriorityMax || pri%model.STPPriorityStep != 0 {
			errs = append(errs, util.RangeError("stp_priority",
				"priority %d must be a multiple of %d within 0-%d", pri, model.STPPriorityStep, model.STPPriorityMax))
		}
	}

	switch g.VTPMode {
	case "", model.VTPModeServer, model.VTPModeClient, model.VTPModeTransparent:
	default:
		errs = append(errs, util.RangeError("vtp_mode", "unknown VTP mode %q", g.VTPMode))
	}

	if g.NTPServer != "" && !util.IsIPv4(g.NTPServer) && !hostnamePattern.MatchString(g.NTPServer) {
		errs = append(errs, util.GrammarError("ntp_server", "%q is not an address or hostname", g.NTPServer))
	}

	if g.SVI != nil {
		if g.SVI.IP != "" && !util.IsIPv4(g.SVI.IP) {
			errs = append(errs, util.GrammarError("svi.ip", "%q is not an IPv4 address", g.SVI.IP))
		}
		if g.SVI.Mask != "" && !util.IsNetmask(g.SVI.Mask) {
			errs = append(errs, util.GrammarError("svi.mask", "%q is not a netmask", g.SVI.Mask))
		}
	}

	if g.GatewayIP != "" && !util.IsIPv4(g.GatewayIP) {
		errs = append(errs, util.GrammarError("gateway_ip", "%q is not an IPv4 address", g.GatewayIP))
	}

	return errs
}

func checkVLANField(field string, id int) []*util.FieldError {
	if id == 0 {
		return nil
	}
	if id < 1 || id > 4094 {
		return []*util.FieldError{util.RangeError(field, "VLAN ID %d outside 1-4094", id)}
	}
	return nil
}

func checkSecurity(s *model.PortSecurity) []*util.FieldError {
	if !s.Enabled {
		return nil
	}
	var errs []*util.FieldError
	if s.MaxMAC < 1 {
		errs = append(errs, util.RangeError("security.max_mac", "maximum MAC count must be at least 1, got %d", s.MaxMAC))
	}
	switch s.ViolationAction {
	case "", model.ViolationShutdown, model.ViolationRestrict, model.ViolationProtect:
	default:
		errs = append(errs, util.RangeError("security.violation_action", "unknown violation action %q", s.ViolationAction))
	}
	return errs
}

func checkStorm(s *model.StormControl) []*util.FieldError {
	var errs []*util.FieldError
	check := func(field string, v *float64) {
		if v != nil && (*v < 0 || *v > 100) {
			errs = append(errs, util.RangeError(field, "threshold %.2f outside 0-100", *v))
		}
	}
	check("storm.broadcast", s.Broadcast)
	check("storm.multicast", s.Multicast)
	check("storm.unicast", s.Unicast)
	return errs
}

func checkEtherChannel(ec *model.EtherChannel) []*util.FieldError {
	if ec == nil || !ec.Enabled {
		return nil
	}
	var errs []*util.FieldError
	if ec.Group < 1 {
		errs = append(errs, util.RangeError("etherchannel.group", "group number must be at least 1, got %d", ec.Group))
	}
	switch ec.Mode {
	case "", model.EtherChannelLACP, model.EtherChannelPAgP, model.EtherChannelOn:
	default:
		errs = append(errs, util.RangeError("etherchannel.mode", "unknown EtherChannel mode %q", ec.Mode))
	}
	switch ec.LoadBalance {
	case "", model.LoadBalanceSrcMAC, model.LoadBalanceDstMAC, model.LoadBalanceSrcDstMAC,
		model.LoadBalanceSrcIP, model.LoadBalanceDstIP, model.LoadBalanceSrcDstIP:
	default:
		errs = append(errs, util.RangeError("etherchannel.load_balance", "unknown load-balance method %q", ec.LoadBalance))
	}
	return errs
}

func checkPoE(p *model.PoE) []*util.FieldError {
	if p == nil || !p.Enabled {
		return nil
	}
	var errs []*util.FieldError
	switch p.Mode {
	case "", model.PoEAuto, model.PoEStatic, model.PoENever:
	default:
		errs = append(errs, util.RangeError("poe.mode", "unknown PoE mode %q", p.Mode))
	}
	if p.MaxWatts < 0 {
		errs = append(errs, util.RangeError("poe.max_watts", "power limit must be non-negative, got %.1f", p.MaxWatts))
	}
	return errs
}

// CheckAllowedSpec validates an allowed-VLAN specification against the
// grammar ALL | range(,range)* where range is N or N-M. Ranges must be
// ascending and non-overlapping; out-of-order specs like "10-20,15" are
// rejected rather than silently merged.
func CheckAllowedSpec(spec string) *util.FieldError {
	if strings.EqualFold(spec, model.AllowedAll) {
		return nil
	}

	prevEnd := 0
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return util.GrammarError("allowed_vlans", "empty element in %q", spec)
		}

		var start, end int
		if lo, hi, isRange := strings.Cut(part, "-"); isRange {
			var err *util.FieldError
			if start, err = parseVLANNumber(lo, spec); err != nil {
				return err
			}
			if end, err = parseVLANNumber(hi, spec); err != nil {
				return err
			}
			if start > end {
				return util.GrammarError("allowed_vlans", "descending range %q in %q", part, spec)
			}
		} else {
			var err *util.FieldError
			if start, err = parseVLANNumber(part, spec); err != nil {
				return err
			}
			end = start
		}

		if start < 1 || end > 4094 {
			return util.RangeError("allowed_vlans", "range %q outside 1-4094", part)
		}
		if start <= prevEnd {
			return util.GrammarError("allowed_vlans", "ranges must be ascending and non-overlapping at %q in %q", part, spec)
		}
		prevEnd = end
	}

	return nil
}

func parseVLANNumber(s, spec string) (int, *util.FieldError) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, util.GrammarError("allowed_vlans", "%q in %q is not a number", s, spec)
	}
	return n, nil
}
