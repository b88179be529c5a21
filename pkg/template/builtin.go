package template

import "github.com/switchsmith/switchsmith/pkg/model"

func level(v float64) *float64 { return &v }

// BuiltinPorts are the port templates available without any stored state.
var BuiltinPorts = map[string]model.PortConfig{
	"Access Port": {
		Mode:        model.ModeAccess,
		Description: "Standard access port",
		DataVLAN:    10,
		Portfast:    true,
		Security: model.PortSecurity{
			Enabled:         true,
			MaxMAC:          2,
			ViolationAction: model.ViolationRestrict,
		},
	},
	"Phone Port": {
		Mode:        model.ModeAccess,
		Description: "IP phone with data passthrough",
		DataVLAN:    10,
		VoiceVLAN:   100,
		Portfast:    true,
		QoSTrust:    true,
		PoE:         &model.PoE{Enabled: true, Mode: model.PoEAuto},
	},
	"AP Port": {
		Mode:         model.ModeTrunk,
		Description:  "Wireless access point uplink",
		NativeVLAN:   1,
		AllowedVLANs: model.AllowedAll,
		PoE:          &model.PoE{Enabled: true, Mode: model.PoEAuto},
		Storm: model.StormControl{
			Broadcast: level(10),
		},
	},
	"Trunk Port": {
		Mode:         model.ModeTrunk,
		Description:  "Inter-switch trunk",
		NativeVLAN:   1,
		AllowedVLANs: model.AllowedAll,
	},
}
