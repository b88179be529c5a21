package vlan

import "fmt"

// namingRule maps one well-known VLAN ID to its conventional name.
type namingRule struct {
	id   int
	name string
}

// namingTable is the fixed precedence table for default VLAN names.
// Kept as an ordered list rather than branching so it is trivially
// extensible.
var namingTable = []namingRule{
	{1, "Default"},
	{10, "Data"},
	{20, "Wireless"},
	{30, "Guest"},
	{100, "Voice"},
	{1000, "Management"},
}

// DefaultName returns the conventional name for a VLAN ID: a table entry for
// well-known IDs, "VLAN<id>" otherwise.
func DefaultName(id int) string {
	for _, rule := range namingTable {
		if rule.id == id {
			return rule.name
		}
	}
	return fmt.Sprintf("VLAN%d", id)
}
