package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"builder-generator/internal/assemble"
	"builder-generator/internal/synth"
)

// emitter writes the declarations of one builder into a file.
type emitter struct {
	out      *jen.File
	schema   *synth.BuilderSchema
	assembly *assemble.Plan
	comments bool

	// rendered storage element types, keyed by slot name
	elems map[string]*jen.Statement
}

func (e *emitter) emit() error {
	e.elems = make(map[string]*jen.Statement, len(e.schema.Entries))

	for _, sf := range e.schema.Storage() {
		code, err := typeCode(sf.Elem)
		if err != nil {
			return fmt.Errorf("field %s: %w", sf.Name, err)
		}

		e.elems[sf.Name] = code
	}

	e.emitType()
	e.emitConstructor()

	for _, m := range e.schema.Mutators() {
		e.emitMutator(m)
	}

	return e.emitBuild()
}

// decl separates the next declaration and writes its doc comment.
func (e *emitter) decl(format string, args ...any) {
	e.out.Line()

	if e.comments {
		e.out.Comment(fmt.Sprintf(format, args...))
	}
}

// storageType returns *T or []T for a storage field.
func (e *emitter) storageType(sf synth.StorageField) *jen.Statement {
	elem := e.elems[sf.Name].Clone()
	if sf.Kind == synth.StorageList {
		return jen.Index().Add(elem)
	}

	return jen.Op("*").Add(elem)
}

// slot returns b.slots.<name>.
func (e *emitter) slot(name string) *jen.Statement {
	return jen.Id(synth.ReceiverName).Dot(e.schema.StorageHolder).Dot(name)
}

func (e *emitter) receiver() *jen.Statement {
	return jen.Id(synth.ReceiverName).Op("*").Id(e.schema.BuilderTypeName)
}

func (e *emitter) emitType() {
	storage := e.schema.Storage()
	fields := make([]jen.Code, 0, len(storage))

	for _, sf := range storage {
		fields = append(fields, jen.Id(sf.Name).Add(e.storageType(sf)))
	}

	e.decl("%s accumulates the fields of %s. Use %s to create one.",
		e.schema.BuilderTypeName, e.schema.TargetRecordName, e.schema.Constructor)
	e.out.Type().Id(e.schema.BuilderTypeName).Struct(
		jen.Id(e.schema.StorageHolder).Struct(fields...),
	)
}

func (e *emitter) emitConstructor() {
	var lists []jen.Code

	storage := e.schema.Storage()
	for _, iv := range e.schema.Initial {
		if iv.Kind != synth.StorageList {
			continue
		}

		for _, sf := range storage {
			if sf.Name == iv.Slot {
				lists = append(lists, e.slot(iv.Slot).Op("=").Add(e.storageType(sf)).Values())
			}
		}
	}

	var body []jen.Code
	if len(lists) == 0 {
		body = []jen.Code{jen.Return(jen.Op("&").Id(e.schema.BuilderTypeName).Values())}
	} else {
		body = append(body, jen.Id(synth.ReceiverName).Op(":=").Op("&").Id(e.schema.BuilderTypeName).Values())
		body = append(body, lists...)
		body = append(body, jen.Return(jen.Id(synth.ReceiverName)))
	}

	e.decl("%s returns an empty %s.", e.schema.Constructor, e.schema.BuilderTypeName)
	e.out.Func().Id(e.schema.Constructor).Params().Op("*").Id(e.schema.BuilderTypeName).Block(body...)
}

func (e *emitter) emitMutator(m synth.Mutator) {
	var write jen.Code

	if m.Mode == synth.WriteAppend {
		write = e.slot(m.Slot).Op("=").Append(e.slot(m.Slot), jen.Id(m.Param))
		e.decl("%s appends %s to %s.", m.Name, m.Param, m.Slot)
	} else {
		write = e.slot(m.Slot).Op("=").Op("&").Id(m.Param)
		e.decl("%s sets %s, replacing any earlier value.", m.Name, m.Slot)
	}

	e.out.Func().Params(e.receiver()).Id(m.Name).
		Params(jen.Id(m.Param).Add(e.elems[m.Slot].Clone())).
		Op("*").Id(e.schema.BuilderTypeName).
		Block(
			write,
			jen.Return(jen.Id(synth.ReceiverName)),
		)
}

func (e *emitter) emitBuild() error {
	record := e.schema.TargetRecordName

	var (
		checks []jen.Code
		values []jen.Code
	)

	for _, r := range e.assembly.Rules {
		var value *jen.Statement

		switch r.Mode {
		case assemble.ReadTake:
			value = jen.Op("*").Add(e.slot(r.Slot))

			switch r.Clone {
			case assemble.CloneSlice:
				value = jen.Qual("slices", "Clone").Call(value)
			case assemble.CloneMap:
				value = jen.Qual("maps", "Clone").Call(value)
			}
		case assemble.ReadOptional:
			value = jen.Qual(RuntimePkg, clonePtrFunc(r.Clone)).Call(e.slot(r.Slot))
		case assemble.ReadList:
			value = jen.Qual("slices", "Clone").Call(e.slot(r.Slot))
		default:
			return fmt.Errorf("field %s: unsupported read mode %s", r.Field, r.Mode)
		}

		if r.FailWhenEmpty {
			checks = append(checks, jen.If(e.slot(r.Slot).Op("==").Nil()).Block(
				jen.Return(
					jen.Id(record).Values(),
					jen.Op("&").Qual(RuntimePkg, "MissingFieldError").Values(
						jen.Id("Record").Op(":").Lit(record),
						jen.Id("Field").Op(":").Lit(r.Field),
					),
				),
			))
		}

		values = append(values, jen.Line().Id(r.Field).Op(":").Add(value))
	}

	if len(values) > 0 {
		values = append(values, jen.Line())
	}

	body := make([]jen.Code, 0, len(checks)+1)
	body = append(body, checks...)
	body = append(body, jen.Return(jen.Id(record).Values(values...), jen.Nil()))

	e.decl("%s returns the %s, or a *builder.MissingFieldError naming the first unset required field.",
		e.schema.BuildMethod, record)
	e.out.Func().Params(e.receiver()).Id(e.schema.BuildMethod).Params().
		Params(jen.Id(record), jen.Error()).
		Block(body...)

	return nil
}

// clonePtrFunc names the runtime helper that copies an optional slot.
func clonePtrFunc(c assemble.CloneMode) string {
	switch c {
	case assemble.CloneSlice:
		return "CloneSlicePtr"
	case assemble.CloneMap:
		return "CloneMapPtr"
	default:
		return "ClonePtr"
	}
}
