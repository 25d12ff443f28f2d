package plan

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"builder-generator/internal/assemble"
	"builder-generator/internal/synth"
)

// DocumentVersion is the version of the exported descriptor format.
const DocumentVersion = "1"

// Document is the serializable form of a Plan: the abstract descriptors a
// code emitter needs for every builder.
type Document struct {
	Version  string       `yaml:"version" json:"version"`
	Builders []BuilderDoc `yaml:"builders" json:"builders"`
}

// BuilderDoc describes one builder.
type BuilderDoc struct {
	Record      string        `yaml:"record" json:"record"`
	Package     string        `yaml:"package" json:"package"`
	Builder     string        `yaml:"builder" json:"builder"`
	Constructor string        `yaml:"constructor" json:"constructor"`
	BuildMethod string        `yaml:"build_method" json:"build_method"`
	Storage     []StorageDoc  `yaml:"storage" json:"storage"`
	Mutators    []MutatorDoc  `yaml:"mutators" json:"mutators"`
	Initial     []InitialDoc  `yaml:"initial" json:"initial"`
	Assembly    []AssemblyDoc `yaml:"assembly" json:"assembly"`
}

// StorageDoc describes one storage field.
type StorageDoc struct {
	Name string `yaml:"name" json:"name"`
	Kind string `yaml:"kind" json:"kind"`
	Type string `yaml:"type" json:"type"`
}

// MutatorDoc describes one mutator method.
type MutatorDoc struct {
	Name      string `yaml:"name" json:"name"`
	Param     string `yaml:"param" json:"param"`
	ParamType string `yaml:"param_type" json:"param_type"`
	Slot      string `yaml:"slot" json:"slot"`
	Mode      string `yaml:"mode" json:"mode"`
}

// InitialDoc describes the starting value of one storage field.
type InitialDoc struct {
	Slot  string `yaml:"slot" json:"slot"`
	Value string `yaml:"value" json:"value"`
}

// AssemblyDoc describes how one record field is read back from storage.
type AssemblyDoc struct {
	Field         string `yaml:"field" json:"field"`
	Slot          string `yaml:"slot" json:"slot"`
	Read          string `yaml:"read" json:"read"`
	FailWhenEmpty bool   `yaml:"fail_when_empty,omitempty" json:"fail_when_empty,omitempty"`
	Clone         string `yaml:"clone,omitempty" json:"clone,omitempty"`
}

// Export converts a plan into its descriptor document.
func Export(p *Plan) *Document {
	doc := &Document{
		Version:  DocumentVersion,
		Builders: make([]BuilderDoc, 0, len(p.Records)),
	}

	for i := range p.Records {
		doc.Builders = append(doc.Builders, exportRecord(&p.Records[i]))
	}

	return doc
}

// ExportYAML renders the plan's descriptor document as YAML.
func ExportYAML(p *Plan) ([]byte, error) {
	out, err := yaml.Marshal(Export(p))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}

	return out, nil
}

// ExportJSON renders the plan's descriptor document as indented JSON.
func ExportJSON(p *Plan) ([]byte, error) {
	out, err := json.MarshalIndent(Export(p), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}

	return out, nil
}

func exportRecord(rp *RecordPlan) BuilderDoc {
	bs := rp.Builder
	bd := BuilderDoc{
		Record:      bs.Record.String(),
		Package:     bs.PkgName,
		Builder:     bs.BuilderTypeName,
		Constructor: bs.Constructor,
		BuildMethod: bs.BuildMethod,
		Storage:     make([]StorageDoc, 0, len(bs.Entries)),
		Mutators:    make([]MutatorDoc, 0, len(bs.Entries)),
		Initial:     make([]InitialDoc, 0, len(bs.Initial)),
		Assembly:    make([]AssemblyDoc, 0, len(rp.Assembly.Rules)),
	}

	for _, s := range bs.Storage() {
		bd.Storage = append(bd.Storage, StorageDoc{
			Name: s.Name,
			Kind: s.Kind.String(),
			Type: s.Type().String(),
		})
	}

	for _, m := range bs.Mutators() {
		bd.Mutators = append(bd.Mutators, MutatorDoc{
			Name:      m.Name,
			Param:     m.Param,
			ParamType: m.ParamType.String(),
			Slot:      m.Slot,
			Mode:      m.Mode.String(),
		})
	}

	storage := bs.Storage()
	for i, iv := range bs.Initial {
		bd.Initial = append(bd.Initial, InitialDoc{
			Slot:  iv.Slot,
			Value: initialValue(iv, storage[i]),
		})
	}

	for _, r := range rp.Assembly.Rules {
		ad := AssemblyDoc{
			Field:         r.Field,
			Slot:          r.Slot,
			Read:          r.Mode.String(),
			FailWhenEmpty: r.FailWhenEmpty,
		}
		if r.Clone != assemble.CloneNone {
			ad.Clone = r.Clone.String()
		}

		bd.Assembly = append(bd.Assembly, ad)
	}

	return bd
}

func initialValue(iv synth.InitialValue, s synth.StorageField) string {
	if iv.Kind == synth.StorageList {
		return s.Type().String() + "{}"
	}

	return "nil"
}
