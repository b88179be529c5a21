package vlan

import (
	"sort"

	"github.com/switchsmith/switchsmith/pkg/model"
	"github.com/switchsmith/switchsmith/pkg/util"
)

// Detect scans port records for referenced VLAN IDs and registers any that
// are missing, naming them with the default heuristic. IDs are added in port
// order, ascending within a port, so repeated runs over the same input yield
// the same registry order. Returns the IDs actually added, in addition order.
//
// An unparseable allowed-VLAN spec contributes nothing (shape problems are
// the validator's job); an out-of-domain ID that does parse is an error.
func Detect(ports []model.PortConfig, reg *Registry) ([]int, error) {
	var added []int

	for _, port := range ports {
		ids := referencedVLANs(&port)
		sort.Ints(ids)

		for _, id := range ids {
			if reg.Has(id) {
				continue
			}
			e, err := reg.Add(id, "")
			if err != nil {
				return added, err
			}
			util.WithPort(port.ID).Debugf("detected VLAN %d (%s)", e.ID, e.Name)
			added = append(added, id)
		}
	}

	return added, nil
}

// referencedVLANs collects every VLAN-valued field set on the port.
// "ALL" expands to no explicit IDs.
func referencedVLANs(port *model.PortConfig) []int {
	var ids []int

	switch port.Mode {
	case model.ModeAccess:
		if port.DataVLAN != 0 {
			ids = append(ids, port.DataVLAN)
		}
		if port.VoiceVLAN != 0 {
			ids = append(ids, port.VoiceVLAN)
		}
	case model.ModeTrunk:
		if port.NativeVLAN != 0 {
			ids = append(ids, port.NativeVLAN)
		}
		if port.AllowedVLANs != "" && !port.AllowsAll() {
			members, err := util.ExpandRange(port.AllowedVLANs)
			if err == nil {
				ids = append(ids, members...)
			}
		}
	}

	return ids
}
