package generate

import (
	"reflect"
	"strings"
	"testing"

	"github.com/switchsmith/switchsmith/pkg/model"
	"github.com/switchsmith/switchsmith/pkg/vlan"
)

func level(v float64) *float64 { return &v }
func intp(v int) *int          { return &v }

func registryWith(t *testing.T, ids ...int) *vlan.Registry {
	t.Helper()
	reg := vlan.NewRegistry()
	for _, id := range ids {
		if _, err := reg.Add(id, ""); err != nil {
			t.Fatalf("Add(%d): %v", id, err)
		}
	}
	return reg
}

func generateLines(t *testing.T, reg *vlan.Registry, ports []model.PortConfig, global *model.GlobalConfig) []string {
	t.Helper()
	return New(reg).Generate(ports, global)
}

func requireLine(t *testing.T, lines []string, want string) {
	t.Helper()
	for _, l := range lines {
		if l == want {
			return
		}
	}
	t.Errorf("missing line %q in output:\n%s", want, strings.Join(lines, "\n"))
}

func forbidLine(t *testing.T, lines []string, substr string) {
	t.Helper()
	for _, l := range lines {
		if strings.Contains(l, substr) {
			t.Errorf("unexpected line %q in output", l)
		}
	}
}

func TestGenerate_AccessPortBlock(t *testing.T) {
	ports := []model.PortConfig{{
		ID:          "GigabitEthernet0/0/1",
		Mode:        model.ModeAccess,
		Description: "Printer",
		DataVLAN:    10,
		VoiceVLAN:   100,
		Portfast:    true,
		QoSTrust:    true,
	}}

	lines := generateLines(t, registryWith(t, 10, 100), ports, nil)

	requireLine(t, lines, "interface GigabitEthernet0/0/1")
	requireLine(t, lines, " description Printer")
	requireLine(t, lines, " switchport mode access")
	requireLine(t, lines, " switchport access vlan 10")
	requireLine(t, lines, " switchport voice vlan 100")
	requireLine(t, lines, " spanning-tree portfast")
	requireLine(t, lines, " mls qos trust cos")
	requireLine(t, lines, " no shutdown")
}

func TestGenerate_TrunkAllowedListCompacted(t *testing.T) {
	ports := []model.PortConfig{{
		ID:           "GigabitEthernet0/0/24",
		Mode:         model.ModeTrunk,
		NativeVLAN:   1,
		AllowedVLANs: "1,10-20,30",
	}}

	lines := generateLines(t, vlan.NewRegistry(), ports, nil)

	requireLine(t, lines, " switchport mode trunk")
	requireLine(t, lines, " switchport nonegotiate")
	requireLine(t, lines, " switchport trunk native vlan 1")
	requireLine(t, lines, " switchport trunk allowed vlan 1,10-20,30")
}

func TestGenerate_TrunkAllowedNormalized(t *testing.T) {
	// An equivalent but uncompacted spec renders in compacted form
	ports := []model.PortConfig{{
		ID:           "GigabitEthernet0/0/24",
		Mode:         model.ModeTrunk,
		NativeVLAN:   1,
		AllowedVLANs: "10,11,12",
	}}

	lines := generateLines(t, vlan.NewRegistry(), ports, nil)
	requireLine(t, lines, " switchport trunk allowed vlan 10-12")
}

func TestGenerate_TrunkAllowedAllLiteral(t *testing.T) {
	ports := []model.PortConfig{{
		ID:           "GigabitEthernet0/0/24",
		Mode:         model.ModeTrunk,
		NativeVLAN:   1,
		AllowedVLANs: "all",
	}}

	lines := generateLines(t, vlan.NewRegistry(), ports, nil)
	requireLine(t, lines, " switchport trunk allowed vlan ALL")
}

func TestGenerate_VLANBlocks(t *testing.T) {
	reg := registryWith(t, 10, 100)
	lines := generateLines(t, reg, nil, nil)

	want := []string{
		"vlan 10",
		" name Data",
		" exit",
		"vlan 100",
		" name Voice",
		" exit",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("vlan blocks = %v, want %v", lines, want)
	}
}

func TestGenerate_VLANNameSanitized(t *testing.T) {
	reg := vlan.NewRegistry()
	reg.Add(200, "Guest WiFi")

	lines := generateLines(t, reg, nil, nil)
	requireLine(t, lines, " name Guest_WiFi")
}

func TestGenerate_UnsetFieldsSuppressed(t *testing.T) {
	ports := []model.PortConfig{{
		ID:       "GigabitEthernet0/0/2",
		Mode:     model.ModeAccess,
		DataVLAN: 10,
	}}

	lines := generateLines(t, vlan.NewRegistry(), ports, nil)

	forbidLine(t, lines, "description")
	forbidLine(t, lines, "voice vlan")
	forbidLine(t, lines, "portfast")
	forbidLine(t, lines, "mls qos")
	forbidLine(t, lines, "port-security")
	forbidLine(t, lines, "storm-control")
	forbidLine(t, lines, "channel-group")
	forbidLine(t, lines, "power inline")
	forbidLine(t, lines, "access-group")
}

func TestGenerate_Deterministic(t *testing.T) {
	ports := []model.PortConfig{{
		ID: "GigabitEthernet0/0/1", Mode: model.ModeAccess, DataVLAN: 10,
	}, {
		ID: "GigabitEthernet0/0/24", Mode: model.ModeTrunk, NativeVLAN: 1, AllowedVLANs: "ALL",
	}}
	global := model.NewGlobalConfig()
	global.Hostname = "sw-1"

	reg := registryWith(t, 1, 10)
	first := generateLines(t, reg, ports, global)
	second := generateLines(t, reg, ports, global)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated generation produced different output")
	}
}

// Output order is fixed: VLAN blocks, then global sections, then port blocks
// in input order.
func TestGenerate_SectionOrder(t *testing.T) {
	ports := []model.PortConfig{
		{ID: "GigabitEthernet0/0/2", Mode: model.ModeAccess, DataVLAN: 10},
		{ID: "GigabitEthernet0/0/1", Mode: model.ModeAccess, DataVLAN: 10},
	}
	global := model.NewGlobalConfig()
	global.Hostname = "sw-1"

	lines := generateLines(t, registryWith(t, 10), ports, global)
	text := strings.Join(lines, "\n")

	vlanIdx := strings.Index(text, "vlan 10")
	hostIdx := strings.Index(text, "hostname sw-1")
	port2Idx := strings.Index(text, "interface GigabitEthernet0/0/2")
	port1Idx := strings.Index(text, "interface GigabitEthernet0/0/1")

	if !(vlanIdx < hostIdx && hostIdx < port2Idx && port2Idx < port1Idx) {
		t.Errorf("section order wrong:\n%s", text)
	}
}

func TestGenerate_WrapTerminal(t *testing.T) {
	gen := New(vlan.NewRegistry())
	gen.Options.WrapTerminal = true

	lines := gen.Generate(nil, nil)
	if len(lines) < 5 {
		t.Fatalf("wrapped output too short: %v", lines)
	}
	if lines[0] != "enable" || lines[1] != "configure terminal" {
		t.Errorf("wrap prefix wrong: %v", lines[:2])
	}
	text := strings.Join(lines, "\n")
	if !strings.Contains(text, "end") {
		t.Error("wrap suffix missing 'end'")
	}
	if !strings.Contains(text, "! copy running-config startup-config") {
		t.Error("wrap suffix missing save hint")
	}
}

func TestGenerate_CommentBanners(t *testing.T) {
	gen := New(registryWith(t, 10))
	gen.Options.Comments = true

	ports := []model.PortConfig{{ID: "GigabitEthernet0/0/1", Mode: model.ModeAccess, DataVLAN: 10}}
	lines := gen.Generate(ports, nil)

	requireLine(t, lines, "! --- VLAN 10 ---")
	requireLine(t, lines, "! --- Port GigabitEthernet0/0/1 ---")
}

func TestGenerate_PortSecurityLines(t *testing.T) {
	ports := []model.PortConfig{{
		ID: "GigabitEthernet0/0/1", Mode: model.ModeAccess, DataVLAN: 10,
		Security: model.PortSecurity{
			Enabled:         true,
			MaxMAC:          2,
			ViolationAction: model.ViolationRestrict,
			Sticky:          true,
		},
	}}

	lines := generateLines(t, vlan.NewRegistry(), ports, nil)
	requireLine(t, lines, " switchport port-security")
	requireLine(t, lines, " switchport port-security maximum 2")
	requireLine(t, lines, " switchport port-security violation restrict")
	requireLine(t, lines, " switchport port-security mac-address sticky")
}

func TestGenerate_StormControlLines(t *testing.T) {
	ports := []model.PortConfig{{
		ID: "GigabitEthernet0/0/1", Mode: model.ModeAccess, DataVLAN: 10,
		Storm: model.StormControl{Broadcast: level(10), Unicast: level(75.5)},
	}}

	lines := generateLines(t, vlan.NewRegistry(), ports, nil)
	requireLine(t, lines, " storm-control broadcast level 10.00")
	requireLine(t, lines, " storm-control unicast level 75.50")
	forbidLine(t, lines, "storm-control multicast")
}

func TestGenerate_EtherChannelLines(t *testing.T) {
	tests := []struct {
		mode model.EtherChannelMode
		want string
	}{
		{model.EtherChannelLACP, " channel-group 3 mode active"},
		{model.EtherChannelPAgP, " channel-group 3 mode desirable"},
		{model.EtherChannelOn, " channel-group 3 mode on"},
	}

	for _, tt := range tests {
		ports := []model.PortConfig{{
			ID: "GigabitEthernet0/0/1", Mode: model.ModeTrunk, NativeVLAN: 1,
			EtherChannel: &model.EtherChannel{
				Enabled: true, Mode: tt.mode, Group: 3,
				LoadBalance: model.LoadBalanceSrcDstMAC,
			},
		}}
		lines := generateLines(t, vlan.NewRegistry(), ports, nil)
		requireLine(t, lines, tt.want)
		requireLine(t, lines, " port-channel load-balance src-dst-mac")
	}
}

func TestGenerate_PoELines(t *testing.T) {
	tests := []struct {
		name string
		poe  *model.PoE
		want string
	}{
		{"auto", &model.PoE{Enabled: true, Mode: model.PoEAuto}, " power inline auto"},
		{"static", &model.PoE{Enabled: true, Mode: model.PoEStatic}, " power inline static"},
		{"static with limit", &model.PoE{Enabled: true, Mode: model.PoEStatic, MaxWatts: 15.4}, " power inline static max 15400"},
		{"never", &model.PoE{Enabled: true, Mode: model.PoENever}, " power inline never"},
		{"disabled", &model.PoE{Enabled: false}, " power inline never"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ports := []model.PortConfig{{
				ID: "GigabitEthernet0/0/1", Mode: model.ModeAccess, DataVLAN: 10, PoE: tt.poe,
			}}
			lines := generateLines(t, vlan.NewRegistry(), ports, nil)
			requireLine(t, lines, tt.want)
		})
	}
}

func TestGenerate_ACLBindings(t *testing.T) {
	ports := []model.PortConfig{{
		ID: "GigabitEthernet0/0/1", Mode: model.ModeAccess, DataVLAN: 10,
		ACL: model.ACLBinding{Inbound: "EDGE-IN", Outbound: "EDGE-OUT"},
	}}

	lines := generateLines(t, vlan.NewRegistry(), ports, nil)
	requireLine(t, lines, " ip access-group EDGE-IN in")
	requireLine(t, lines, " ip access-group EDGE-OUT out")
}
