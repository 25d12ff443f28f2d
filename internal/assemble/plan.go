package assemble

import (
	"builder-generator/internal/classify"
	"builder-generator/internal/common"
	"builder-generator/internal/schema"
	"builder-generator/internal/synth"
)

// ReadMode is how Build reads one storage field.
type ReadMode int

const (
	ReadTake     ReadMode = iota // copy the slot's value, empty slot fails
	ReadOptional                 // copy the slot as an optional value
	ReadList                     // copy the list, possibly empty
)

// String returns a human-readable representation of the ReadMode.
func (m ReadMode) String() string {
	switch m {
	case ReadTake:
		return "take"
	case ReadOptional:
		return "optional"
	case ReadList:
		return "list"
	default:
		return common.UnknownStr
	}
}

// CloneMode is how Build copies a slot value that would otherwise share
// memory with the builder.
type CloneMode int

const (
	CloneNone  CloneMode = iota // assignment already copies
	CloneSlice                  // fresh backing array
	CloneMap                    // fresh map
)

// String returns a human-readable representation of the CloneMode.
func (c CloneMode) String() string {
	switch c {
	case CloneNone:
		return "none"
	case CloneSlice:
		return "slice"
	case CloneMap:
		return "map"
	default:
		return common.UnknownStr
	}
}

// Rule converts one storage field back into the record field.
type Rule struct {
	Field         string // record field
	Slot          string // storage field read
	Mode          ReadMode
	FailWhenEmpty bool      // true only for ReadTake
	Clone         CloneMode // ReadTake and ReadOptional; lists are always copied
}

// Plan is the assembly rule set of one builder.
type Plan struct {
	Record  string
	Builder string
	Rules   []Rule // declaration order
}

// Derive returns the assembly plan for bs.
func Derive(bs *synth.BuilderSchema) *Plan {
	p := &Plan{
		Record:  bs.TargetRecordName,
		Builder: bs.BuilderTypeName,
		Rules:   make([]Rule, 0, len(bs.Entries)),
	}

	for _, e := range bs.Entries {
		p.Rules = append(p.Rules, deriveRule(e))
	}

	return p
}

func deriveRule(e synth.Entry) Rule {
	rule := Rule{Field: e.Field.Name, Slot: e.Storage.Name}

	switch e.Class.Kind {
	case classify.KindRequired:
		rule.Mode = ReadTake
		rule.FailWhenEmpty = true
		rule.Clone = cloneMode(e.Class.Elem)
	case classify.KindOptional:
		rule.Mode = ReadOptional
		rule.Clone = cloneMode(e.Class.Elem)
	case classify.KindAccumulated:
		rule.Mode = ReadList
	}

	return rule
}

// cloneMode picks the copy for a value of type t. Named slice and map
// types are copied by assignment only.
func cloneMode(t *schema.TypeRef) CloneMode {
	if t == nil {
		return CloneNone
	}

	switch t.Kind {
	case schema.TypeKindSlice:
		return CloneSlice
	case schema.TypeKindMap:
		return CloneMap
	default:
		return CloneNone
	}
}
