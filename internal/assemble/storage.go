package assemble

import (
	"fmt"
	"slices"

	"builder-generator/internal/synth"
)

// Storage is the in-memory state of a builder: one optional slot or one
// list per storage field. It is not safe for concurrent use.
type Storage struct {
	kinds map[string]synth.StorageKind
	slots map[string]any // holds only slots that were set
	lists map[string][]any
}

// NewStorage returns storage in the given initial state: every slot empty,
// every list empty.
func NewStorage(initial []synth.InitialValue) *Storage {
	s := &Storage{
		kinds: make(map[string]synth.StorageKind, len(initial)),
		slots: make(map[string]any),
		lists: make(map[string][]any),
	}

	for _, iv := range initial {
		s.kinds[iv.Slot] = iv.Kind
		if iv.Kind == synth.StorageList {
			s.lists[iv.Slot] = []any{}
		}
	}

	return s
}

// Replace overwrites the slot's contents with v.
func (s *Storage) Replace(slot string, v any) error {
	if err := s.expect(slot, synth.StorageSlot); err != nil {
		return err
	}

	s.slots[slot] = v

	return nil
}

// Append adds v to the end of the list.
func (s *Storage) Append(slot string, v any) error {
	if err := s.expect(slot, synth.StorageList); err != nil {
		return err
	}

	s.lists[slot] = append(s.lists[slot], v)

	return nil
}

// Slot returns the slot's value and whether it is set.
func (s *Storage) Slot(name string) (any, bool) {
	v, ok := s.slots[name]
	return v, ok
}

// List returns a copy of the list.
func (s *Storage) List(name string) []any {
	return slices.Clone(s.lists[name])
}

func (s *Storage) expect(slot string, kind synth.StorageKind) error {
	got, ok := s.kinds[slot]
	if !ok {
		return fmt.Errorf("unknown storage field %q", slot)
	}

	if got != kind {
		return fmt.Errorf("storage field %q is a %s, not a %s", slot, got, kind)
	}

	return nil
}
