// Package settings manages persistent user settings for the switchsmith CLI.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds persistent user preferences
type Settings struct {
	// DefaultPlan is the plan file to use when --plan is not specified
	DefaultPlan string `json:"default_plan,omitempty"`

	// TemplateDir overrides the default template directory
	TemplateDir string `json:"template_dir,omitempty"`

	// InterfaceType is the default interface family for new plans
	InterfaceType string `json:"interface_type,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "switchsmith_settings.json"
	}
	return filepath.Join(home, ".switchsmith", "settings.json")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty settings if file doesn't exist
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path
func (s *Settings) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SetDefaultPlan sets the default plan file
func (s *Settings) SetDefaultPlan(path string) {
	s.DefaultPlan = path
}

// SetTemplateDir sets the template directory
func (s *Settings) SetTemplateDir(dir string) {
	s.TemplateDir = dir
}

// GetTemplateDir returns the template directory (with fallback)
func (s *Settings) GetTemplateDir() string {
	if s.TemplateDir != "" {
		return s.TemplateDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "templates"
	}
	return filepath.Join(home, ".switchsmith", "templates")
}

// SetInterfaceType sets the default interface family
func (s *Settings) SetInterfaceType(name string) {
	s.InterfaceType = name
}

// Clear resets all settings to defaults
func (s *Settings) Clear() {
	*s = Settings{}
}
