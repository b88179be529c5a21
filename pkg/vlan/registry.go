// Package vlan tracks the VLANs a configuration references and names them.
package vlan

import (
	"github.com/switchsmith/switchsmith/pkg/util"
)

// Entry is one registered VLAN.
type Entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Registry maps VLAN IDs to entries, preserving insertion order so generated
// vlan blocks come out in the order VLANs were first seen.
type Registry struct {
	byID  map[int]*Entry
	order []int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[int]*Entry)}
}

// Add registers a VLAN. An empty name is filled in by the naming heuristic.
// Adding an existing ID is a no-op returning the existing entry; the supplied
// name does not overwrite it. IDs outside 1-4094 are rejected.
func (r *Registry) Add(id int, name string) (*Entry, error) {
	if err := util.ValidateVLANID(id); err != nil {
		return nil, err
	}
	if e, ok := r.byID[id]; ok {
		return e, nil
	}
	if name == "" {
		name = DefaultName(id)
	}
	e := &Entry{ID: id, Name: name}
	r.byID[id] = e
	r.order = append(r.order, id)
	return e, nil
}

// Get returns the entry for id, or false if not registered.
func (r *Registry) Get(id int) (*Entry, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Has reports whether id is registered.
func (r *Registry) Has(id int) bool {
	_, ok := r.byID[id]
	return ok
}

// Len returns the number of registered VLANs.
func (r *Registry) Len() int { return len(r.order) }

// Entries returns all entries in insertion order.
func (r *Registry) Entries() []*Entry {
	entries := make([]*Entry, 0, len(r.order))
	for _, id := range r.order {
		entries = append(entries, r.byID[id])
	}
	return entries
}

// IDs returns all registered IDs in insertion order.
func (r *Registry) IDs() []int {
	ids := make([]int, len(r.order))
	copy(ids, r.order)
	return ids
}
