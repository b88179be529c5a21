package util

import (
	"net"
	"strings"
)

// IsIPv4 reports whether s is a dotted-quad IPv4 address.
func IsIPv4(s string) bool {
	if strings.Count(s, ".") != 3 {
		return false
	}
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

// IsNetmask reports whether s is a contiguous IPv4 netmask
// (e.g. "255.255.255.0").
func IsNetmask(s string) bool {
	if !IsIPv4(s) {
		return false
	}
	ip := net.ParseIP(s).To4()
	mask := net.IPv4Mask(ip[0], ip[1], ip[2], ip[3])
	// Size returns (0, 0) for non-contiguous masks
	ones, bits := mask.Size()
	return bits == 32 && ones > 0
}
