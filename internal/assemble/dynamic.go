package assemble

import (
	"fmt"

	"builder-generator/internal/synth"
)

// Dynamic is an in-memory builder driven by a BuilderSchema. Invoke plays
// the role of a generated mutator, Build the role of the generated Build.
type Dynamic struct {
	schema  *synth.BuilderSchema
	plan    *Plan
	storage *Storage
}

// NewDynamic returns a builder for bs in its initial state.
func NewDynamic(bs *synth.BuilderSchema) *Dynamic {
	return &Dynamic{
		schema:  bs,
		plan:    Derive(bs),
		storage: NewStorage(bs.Initial),
	}
}

// Invoke calls the named mutator with v.
func (d *Dynamic) Invoke(mutator string, v any) error {
	m, ok := d.schema.Mutator(mutator)
	if !ok {
		return fmt.Errorf("%s has no mutator %s", d.schema.BuilderTypeName, mutator)
	}

	if m.Mode == synth.WriteAppend {
		return d.storage.Append(m.Slot, v)
	}

	return d.storage.Replace(m.Slot, v)
}

// Build assembles the record from the current state.
func (d *Dynamic) Build() (Record, error) {
	return d.plan.Assemble(d.storage)
}

// Storage exposes the builder's current state.
func (d *Dynamic) Storage() *Storage {
	return d.storage
}
