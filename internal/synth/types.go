package synth

import (
	"builder-generator/internal/classify"
	"builder-generator/internal/common"
	"builder-generator/internal/schema"
)

// StorageKind is how a builder stores one field.
type StorageKind int

const (
	StorageSlot StorageKind = iota // *T, empty is nil
	StorageList                    // []T, empty is []T{}
)

// String returns a human-readable representation of the StorageKind.
func (k StorageKind) String() string {
	switch k {
	case StorageSlot:
		return "slot"
	case StorageList:
		return "list"
	default:
		return common.UnknownStr
	}
}

// WriteMode is what a mutator does to its storage field.
type WriteMode int

const (
	WriteReplace WriteMode = iota // overwrite the slot
	WriteAppend                   // append to the list
)

// String returns a human-readable representation of the WriteMode.
func (m WriteMode) String() string {
	switch m {
	case WriteReplace:
		return "replace"
	case WriteAppend:
		return "append"
	default:
		return common.UnknownStr
	}
}

// StorageField is one field of the builder's storage.
type StorageField struct {
	Name string // same as the source field
	Kind StorageKind
	Elem *schema.TypeRef // T
}

// Type returns the Go type of the storage field: *T or []T.
func (s StorageField) Type() *schema.TypeRef {
	if s.Kind == StorageList {
		return schema.SliceOf(s.Elem)
	}

	return schema.PointerTo(s.Elem)
}

// Mutator is one synthesized builder method.
type Mutator struct {
	Name      string          // field name, or the attribute accessor
	Param     string          // parameter identifier
	ParamType *schema.TypeRef // T
	Slot      string          // storage field written
	Mode      WriteMode
}

// InitialValue is the starting state of one storage field.
type InitialValue struct {
	Slot string
	Kind StorageKind // StorageSlot starts nil, StorageList starts empty
}

// Entry ties a source field to its classification, storage and mutator.
type Entry struct {
	Field   schema.Field
	Class   classify.Classification
	Storage StorageField
	Mutator Mutator
}

// BuilderSchema describes the builder of one record.
type BuilderSchema struct {
	Record           schema.RecordID
	PkgName          string
	TargetRecordName string
	BuilderTypeName  string
	Constructor      string // e.g. "NewOrderBuilder"
	BuildMethod      string // e.g. "Build"
	StorageHolder    string // builder field holding the storage struct

	// Entries are in the record's field declaration order.
	Entries []Entry
	Initial []InitialValue
}

// Storage returns the storage fields in declaration order.
func (b *BuilderSchema) Storage() []StorageField {
	out := make([]StorageField, len(b.Entries))
	for i, e := range b.Entries {
		out[i] = e.Storage
	}

	return out
}

// Mutators returns the mutators in declaration order.
func (b *BuilderSchema) Mutators() []Mutator {
	out := make([]Mutator, len(b.Entries))
	for i, e := range b.Entries {
		out[i] = e.Mutator
	}

	return out
}

// Mutator returns the mutator with the given name.
func (b *BuilderSchema) Mutator(name string) (Mutator, bool) {
	for _, e := range b.Entries {
		if e.Mutator.Name == name {
			return e.Mutator, true
		}
	}

	return Mutator{}, false
}
