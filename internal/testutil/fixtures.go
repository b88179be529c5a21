// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/switchsmith/switchsmith/pkg/model"
)

// AccessPort returns a valid access-mode port record.
func AccessPort(id string) model.PortConfig {
	return model.PortConfig{
		ID:          id,
		Mode:        model.ModeAccess,
		Description: "workstation",
		DataVLAN:    10,
		VoiceVLAN:   100,
		Portfast:    true,
	}
}

// TrunkPort returns a valid trunk-mode port record.
func TrunkPort(id string) model.PortConfig {
	return model.PortConfig{
		ID:           id,
		Mode:         model.ModeTrunk,
		Description:  "uplink",
		NativeVLAN:   1,
		AllowedVLANs: "10,20,100",
	}
}

// Global returns a populated switch-wide record.
func Global() *model.GlobalConfig {
	g := model.NewGlobalConfig()
	g.Hostname = "sw-test-1"
	g.LinePassword = "lab"
	g.STPMode = model.STPModeRapidPVST
	g.SNMPCommunity = "public"
	g.NTPServer = "10.0.0.1"
	g.GatewayIP = "192.168.1.1"
	return g
}

// WritePlan writes a plan YAML document to a temp file and returns its path.
func WritePlan(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("writing plan fixture: %v", err)
	}
	return path
}

// SamplePlan is a small but representative plan document.
const SamplePlan = `switch:
  name: sw-lab-1
  interface_type: GigabitEthernet
  slot: 0
  subslot: 0
global:
  hostname: sw-lab-1
  stp_mode: rapid-pvst
  ntp_server: 10.0.0.1
ports:
  - ports: "1-4"
    mode: access
    data_vlan: 10
    voice_vlan: 100
    portfast: true
  - port: 24
    mode: trunk
    native_vlan: 1
    allowed_vlans: "10,100"
`
