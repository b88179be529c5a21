package vlan

import (
	"errors"
	"reflect"
	"testing"

	"github.com/switchsmith/switchsmith/pkg/util"
)

func TestDefaultName(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{1, "Default"},
		{10, "Data"},
		{20, "Wireless"},
		{30, "Guest"},
		{100, "Voice"},
		{1000, "Management"},
		{42, "VLAN42"},
		{4094, "VLAN4094"},
	}
	for _, tt := range tests {
		if got := DefaultName(tt.id); got != tt.want {
			t.Errorf("DefaultName(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestRegistry_AddDefaultsName(t *testing.T) {
	r := NewRegistry()
	e, err := r.Add(100, "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if e.Name != "Voice" {
		t.Errorf("Add(100, \"\") name = %q, want %q", e.Name, "Voice")
	}

	e, err = r.Add(555, "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if e.Name != "VLAN555" {
		t.Errorf("Add(555, \"\") name = %q, want %q", e.Name, "VLAN555")
	}
}

func TestRegistry_AddExplicitName(t *testing.T) {
	r := NewRegistry()
	e, err := r.Add(10, "Workstations")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if e.Name != "Workstations" {
		t.Errorf("explicit name not kept: got %q", e.Name)
	}
}

func TestRegistry_AddIdempotent(t *testing.T) {
	r := NewRegistry()
	first, err := r.Add(10, "Data")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Re-adding must not overwrite the name or duplicate the entry
	second, err := r.Add(10, "Other")
	if err != nil {
		t.Fatalf("re-Add: %v", err)
	}
	if second != first {
		t.Error("re-Add should return the existing entry")
	}
	if second.Name != "Data" {
		t.Errorf("re-Add overwrote name: got %q", second.Name)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d after duplicate Add, want 1", r.Len())
	}
}

func TestRegistry_AddOutOfRange(t *testing.T) {
	r := NewRegistry()
	for _, id := range []int{0, -5, 4095} {
		_, err := r.Add(id, "")
		if err == nil {
			t.Errorf("Add(%d) should fail", id)
			continue
		}
		if !errors.Is(err, util.ErrOutOfRange) {
			t.Errorf("Add(%d) error should unwrap to ErrOutOfRange, got %v", id, err)
		}
		if r.Has(id) {
			t.Errorf("rejected ID %d must not be registered", id)
		}
	}
}

func TestRegistry_InsertionOrder(t *testing.T) {
	r := NewRegistry()
	for _, id := range []int{100, 10, 4094, 1} {
		if _, err := r.Add(id, ""); err != nil {
			t.Fatalf("Add(%d): %v", id, err)
		}
	}

	want := []int{100, 10, 4094, 1}
	if got := r.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want insertion order %v", got, want)
	}

	entries := r.Entries()
	for i, e := range entries {
		if e.ID != want[i] {
			t.Errorf("Entries()[%d].ID = %d, want %d", i, e.ID, want[i])
		}
	}
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()
	r.Add(20, "")

	e, ok := r.Get(20)
	if !ok || e.Name != "Wireless" {
		t.Errorf("Get(20) = %v, %v", e, ok)
	}
	if _, ok := r.Get(30); ok {
		t.Error("Get(30) should report missing")
	}
}
