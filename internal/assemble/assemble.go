package assemble

import "builder-generator/builder"

// FieldValue is one assembled record field.
type FieldValue struct {
	Name    string
	Value   any  // []any for list fields, nil for absent optional fields
	Present bool // false only for an unset optional field
}

// Record is an assembled record with fields in declaration order.
type Record struct {
	Name   string
	Fields []FieldValue
}

// Get returns the named field.
func (r Record) Get(name string) (FieldValue, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return FieldValue{}, false
}

// Assemble applies the plan's rules to s in declaration order. The first
// empty required slot stops assembly with *builder.MissingFieldError and no
// record. s is only read.
func (p *Plan) Assemble(s *Storage) (Record, error) {
	rec := Record{
		Name:   p.Record,
		Fields: make([]FieldValue, 0, len(p.Rules)),
	}

	for _, rule := range p.Rules {
		fv := FieldValue{Name: rule.Field}

		switch rule.Mode {
		case ReadTake:
			v, ok := s.Slot(rule.Slot)
			if !ok && rule.FailWhenEmpty {
				return Record{}, &builder.MissingFieldError{Record: p.Record, Field: rule.Field}
			}

			fv.Value, fv.Present = v, ok

		case ReadOptional:
			fv.Value, fv.Present = s.Slot(rule.Slot)

		case ReadList:
			list := s.List(rule.Slot)
			if list == nil {
				list = []any{}
			}

			fv.Value, fv.Present = list, true
		}

		rec.Fields = append(rec.Fields, fv)
	}

	return rec, nil
}
