package gen

import (
	"errors"
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/fatih/structtag"

	"builder-generator/internal/schema"
)

var errNilType = errors.New("nil type reference")

// typeCode converts a type reference into jennifer code. Named types are
// qualified by package path so jennifer can manage imports.
func typeCode(t *schema.TypeRef) (*jen.Statement, error) {
	if t == nil {
		return nil, errNilType
	}

	switch t.Kind {
	case schema.TypeKindBasic:
		return jen.Id(t.Name), nil

	case schema.TypeKindNamed:
		return namedCode(t)

	case schema.TypeKindPointer:
		return prefixed(jen.Op("*"), t.Elem)

	case schema.TypeKindSlice:
		return prefixed(jen.Index(), t.Elem)

	case schema.TypeKindArray:
		return prefixed(jen.Index(jen.Lit(int(t.Len))), t.Elem)

	case schema.TypeKindMap:
		key, err := typeCode(t.Key)
		if err != nil {
			return nil, fmt.Errorf("map key: %w", err)
		}

		return prefixed(jen.Map(key), t.Elem)

	case schema.TypeKindChan:
		switch t.Dir {
		case schema.ChanSend:
			return prefixed(jen.Chan().Op("<-"), t.Elem)
		case schema.ChanRecv:
			return prefixed(jen.Op("<-").Chan(), t.Elem)
		default:
			return prefixed(jen.Chan(), t.Elem)
		}

	case schema.TypeKindFunc:
		sig, err := signatureCode(t)
		if err != nil {
			return nil, err
		}

		return jen.Func().Add(sig), nil

	case schema.TypeKindInterface:
		return interfaceCode(t)

	case schema.TypeKindStruct:
		return structCode(t)

	default:
		return nil, fmt.Errorf("cannot render %s type", t.Kind)
	}
}

func prefixed(prefix *jen.Statement, elem *schema.TypeRef) (*jen.Statement, error) {
	code, err := typeCode(elem)
	if err != nil {
		return nil, err
	}

	return prefix.Add(code), nil
}

func namedCode(t *schema.TypeRef) (*jen.Statement, error) {
	var s *jen.Statement
	if t.PkgPath == "" {
		s = jen.Id(t.Name)
	} else {
		s = jen.Qual(t.PkgPath, t.Name)
	}

	if len(t.Args) == 0 {
		return s, nil
	}

	args, err := typeList(t.Args)
	if err != nil {
		return nil, fmt.Errorf("type arguments of %s: %w", t.Name, err)
	}

	return s.Types(args...), nil
}

// signatureCode renders "(params) results" of a func type.
func signatureCode(t *schema.TypeRef) (*jen.Statement, error) {
	params := make([]jen.Code, 0, len(t.Params))

	for i, p := range t.Params {
		if t.Variadic && i == len(t.Params)-1 && p != nil && p.Kind == schema.TypeKindSlice {
			elem, err := prefixed(jen.Op("..."), p.Elem)
			if err != nil {
				return nil, err
			}

			params = append(params, elem)

			continue
		}

		code, err := typeCode(p)
		if err != nil {
			return nil, err
		}

		params = append(params, code)
	}

	sig := jen.Params(params...)

	switch len(t.Results) {
	case 0:
		return sig, nil
	case 1:
		res, err := typeCode(t.Results[0])
		if err != nil {
			return nil, err
		}

		return sig.Add(res), nil
	default:
		results, err := typeList(t.Results)
		if err != nil {
			return nil, err
		}

		return sig.Params(results...), nil
	}
}

func interfaceCode(t *schema.TypeRef) (*jen.Statement, error) {
	members, err := typeList(t.Embeddeds)
	if err != nil {
		return nil, err
	}

	for _, m := range t.Methods {
		if m.Signature == nil {
			return nil, fmt.Errorf("method %s: %w", m.Name, errNilType)
		}

		sig, err := signatureCode(m.Signature)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", m.Name, err)
		}

		members = append(members, jen.Id(m.Name).Add(sig))
	}

	return jen.Interface(members...), nil
}

func structCode(t *schema.TypeRef) (*jen.Statement, error) {
	fields := make([]jen.Code, 0, len(t.Fields))

	for _, f := range t.Fields {
		code, err := typeCode(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}

		field := code
		if !f.Embedded {
			field = jen.Id(f.Name).Add(code)
		}

		if f.Tag != "" {
			tags, err := tagMap(f.Tag)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", f.Name, err)
			}

			field = field.Tag(tags)
		}

		fields = append(fields, field)
	}

	return jen.Struct(fields...), nil
}

// tagMap splits a raw struct tag for jen's Tag. jennifer renders tag keys
// sorted, so the original key order is not kept.
func tagMap(raw string) (map[string]string, error) {
	tags, err := structtag.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse tag %q: %w", raw, err)
	}

	out := make(map[string]string, tags.Len())
	for _, tag := range tags.Tags() {
		out[tag.Key] = tag.Value()
	}

	return out, nil
}

func typeList(list []*schema.TypeRef) ([]jen.Code, error) {
	out := make([]jen.Code, 0, len(list))

	for _, t := range list {
		code, err := typeCode(t)
		if err != nil {
			return nil, err
		}

		out = append(out, code)
	}

	return out, nil
}
