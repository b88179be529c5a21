package model

import (
	"fmt"
	"strings"
)

// InterfaceType describes one switch interface family.
type InterfaceType struct {
	Prefix string // full IOS name, e.g. "GigabitEthernet"
	Abbrev string // short form, e.g. "Gi"
	Speed  string
}

// InterfaceTypes are the supported interface families.
var InterfaceTypes = map[string]InterfaceType{
	"FastEthernet":       {Prefix: "FastEthernet", Abbrev: "Fa", Speed: "10/100 Mbps"},
	"GigabitEthernet":    {Prefix: "GigabitEthernet", Abbrev: "Gi", Speed: "10/100/1000 Mbps"},
	"TenGigabitEthernet": {Prefix: "TenGigabitEthernet", Abbrev: "Te", Speed: "10 Gbps"},
}

// DefaultInterfaceType is used when a plan does not name one.
const DefaultInterfaceType = "GigabitEthernet"

// InterfacePrefix builds the slot-qualified prefix for port names,
// e.g. ("GigabitEthernet", 0, 0) -> "GigabitEthernet0/0/".
// The type may be given as the full name or its abbreviation.
func InterfacePrefix(ifType string, slot, subslot int) (string, error) {
	t, err := LookupInterfaceType(ifType)
	if err != nil {
		return "", err
	}
	if slot < 0 || subslot < 0 {
		return "", fmt.Errorf("slot numbers must be non-negative, got %d/%d", slot, subslot)
	}
	return fmt.Sprintf("%s%d/%d/", t.Prefix, slot, subslot), nil
}

// LookupInterfaceType resolves a full or abbreviated interface type name.
func LookupInterfaceType(name string) (InterfaceType, error) {
	if name == "" {
		name = DefaultInterfaceType
	}
	if t, ok := InterfaceTypes[name]; ok {
		return t, nil
	}
	for _, t := range InterfaceTypes {
		if strings.EqualFold(name, t.Abbrev) || strings.EqualFold(name, t.Prefix) {
			return t, nil
		}
	}
	return InterfaceType{}, fmt.Errorf("unknown interface type %q", name)
}

// PortName appends a port number to a slot-qualified prefix.
func PortName(prefix string, number int) string {
	return fmt.Sprintf("%s%d", prefix, number)
}
