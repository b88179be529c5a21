// Package template persists named port and global configuration templates
// as JSON files, and ships a set of built-in port templates for common
// roles. Stored templates shadow built-ins of the same name.
package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/switchsmith/switchsmith/pkg/model"
)

const (
	portFile   = "port_templates.json"
	globalFile = "global_templates.json"
)

// Store reads and writes templates under a directory.
type Store struct {
	Dir string
}

// NewStore returns a Store over dir. The directory is created on first save.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Port returns the named port template, consulting stored templates first
// and built-ins second.
func (s *Store) Port(name string) (*model.PortConfig, bool) {
	stored, err := s.loadPorts()
	if err == nil {
		if t, ok := stored[name]; ok {
			return &t, true
		}
	}
	if t, ok := BuiltinPorts[name]; ok {
		out := t
		return &out, true
	}
	return nil, false
}

// Global returns the named global template from the store.
func (s *Store) Global(name string) (*model.GlobalConfig, bool) {
	stored, err := s.loadGlobals()
	if err != nil {
		return nil, false
	}
	t, ok := stored[name]
	if !ok {
		return nil, false
	}
	return &t, true
}

// SavePort stores a port template under name, overwriting any existing one.
func (s *Store) SavePort(name string, t *model.PortConfig) error {
	stored, err := s.loadPorts()
	if err != nil {
		return err
	}
	if stored == nil {
		stored = map[string]model.PortConfig{}
	}
	stored[name] = *t
	return s.writeFile(portFile, stored)
}

// SaveGlobal stores a global template under name.
func (s *Store) SaveGlobal(name string, t *model.GlobalConfig) error {
	stored, err := s.loadGlobals()
	if err != nil {
		return err
	}
	if stored == nil {
		stored = map[string]model.GlobalConfig{}
	}
	stored[name] = *t
	return s.writeFile(globalFile, stored)
}

// DeletePort removes a stored port template. Built-ins cannot be deleted.
func (s *Store) DeletePort(name string) error {
	stored, err := s.loadPorts()
	if err != nil {
		return err
	}
	if _, ok := stored[name]; !ok {
		return fmt.Errorf("no stored template %q", name)
	}
	delete(stored, name)
	return s.writeFile(portFile, stored)
}

// ListPorts returns stored and built-in port template names, sorted, with
// stored names shadowing built-ins.
func (s *Store) ListPorts() ([]string, error) {
	stored, err := s.loadPorts()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var names []string
	for name := range stored {
		seen[name] = true
		names = append(names, name)
	}
	for name := range BuiltinPorts {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// ListGlobals returns stored global template names, sorted.
func (s *Store) ListGlobals() ([]string, error) {
	stored, err := s.loadGlobals()
	if err != nil {
		return nil, err
	}
	var names []string
	for name := range stored {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// IsBuiltin reports whether name is a built-in port template.
func IsBuiltin(name string) bool {
	_, ok := BuiltinPorts[name]
	return ok
}

func (s *Store) loadPorts() (map[string]model.PortConfig, error) {
	var out map[string]model.PortConfig
	if err := s.readFile(portFile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) loadGlobals() (map[string]model.GlobalConfig, error) {
	var out map[string]model.GlobalConfig
	if err := s.readFile(globalFile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) readFile(file string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.Dir, file))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", file, err)
	}
	return nil
}

func (s *Store) writeFile(file string, v any) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, file), data, 0644)
}
