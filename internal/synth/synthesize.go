package synth

import (
	"fmt"
	"go/token"
	"go/types"

	"github.com/stoewer/go-strcase"

	"builder-generator/internal/classify"
	"builder-generator/internal/schema"
)

// StorageHolder is the builder field that holds the storage struct.
// Keeping storage one level down lets mutators share the field names.
const StorageHolder = "slots"

// ReceiverName is the receiver identifier of generated methods.
const ReceiverName = "b"

// Options controls naming of the synthesized builder.
type Options struct {
	// Suffix is appended to the record name to form the builder name.
	Suffix string
	// ConstructorPrefix is prepended to the builder name to form its constructor.
	ConstructorPrefix string
	// BuildMethod is the name of the assembling method.
	BuildMethod string
}

// DefaultOptions returns the default naming options.
func DefaultOptions() Options {
	return Options{
		Suffix:            "Builder",
		ConstructorPrefix: "New",
		BuildMethod:       "Build",
	}
}

// Synthesize builds the BuilderSchema for rec from its field classifications.
// classes must be parallel to rec.Fields.
func Synthesize(rec *schema.Record, classes []classify.Classification, opts Options) (*BuilderSchema, error) {
	if len(classes) != len(rec.Fields) {
		return nil, fmt.Errorf("record %s has %d fields but %d classifications",
			rec.ID.Name, len(rec.Fields), len(classes))
	}

	builderName := rec.ID.Name + opts.Suffix
	bs := &BuilderSchema{
		Record:           rec.ID,
		PkgName:          rec.PkgName,
		TargetRecordName: rec.ID.Name,
		BuilderTypeName:  builderName,
		Constructor:      opts.ConstructorPrefix + builderName,
		BuildMethod:      opts.BuildMethod,
		StorageHolder:    StorageHolder,
		Entries:          make([]Entry, 0, len(rec.Fields)),
		Initial:          make([]InitialValue, 0, len(rec.Fields)),
	}

	for i, f := range rec.Fields {
		entry := synthesizeEntry(f, classes[i])
		bs.Entries = append(bs.Entries, entry)
		bs.Initial = append(bs.Initial, InitialValue{
			Slot: entry.Storage.Name,
			Kind: entry.Storage.Kind,
		})
	}

	if err := checkNames(bs); err != nil {
		return nil, err
	}

	return bs, nil
}

func synthesizeEntry(f schema.Field, cl classify.Classification) Entry {
	entry := Entry{Field: f, Class: cl}

	switch cl.Kind {
	case classify.KindAccumulated:
		entry.Storage = StorageField{Name: f.Name, Kind: StorageList, Elem: cl.Elem}
		entry.Mutator = Mutator{
			Name:      cl.Accessor,
			Param:     paramName(cl.Accessor),
			ParamType: cl.Elem,
			Slot:      f.Name,
			Mode:      WriteAppend,
		}
	default:
		entry.Storage = StorageField{Name: f.Name, Kind: StorageSlot, Elem: cl.Elem}
		entry.Mutator = Mutator{
			Name:      f.Name,
			Param:     paramName(f.Name),
			ParamType: cl.Elem,
			Slot:      f.Name,
			Mode:      WriteReplace,
		}
	}

	return entry
}

// checkNames rejects builders whose methods would clash with each other,
// with the build method or with the storage holder field.
func checkNames(bs *BuilderSchema) error {
	owners := map[string]string{
		bs.BuildMethod:   "the build method",
		bs.StorageHolder: "the builder storage field",
	}

	for _, e := range bs.Entries {
		name := e.Mutator.Name
		if owner, ok := owners[name]; ok {
			return schema.Errorf(schema.KindNameCollision, e.Field.Name,
				"mutator %s collides with %s", name, owner)
		}

		owners[name] = "the mutator of field " + e.Field.Name
	}

	return nil
}

// paramName derives the mutator parameter from the mutator name.
// Keywords, predeclared identifiers and the receiver name get a suffix
// so the parameter never shadows anything the mutator body refers to.
func paramName(name string) string {
	p := strcase.LowerCamelCase(name)

	switch {
	case p == "" || !token.IsIdentifier(p) && !token.IsKeyword(p):
		return "v"
	case token.IsKeyword(p) || p == ReceiverName || types.Universe.Lookup(p) != nil:
		return p + "Value"
	default:
		return p
	}
}
