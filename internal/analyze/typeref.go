package analyze

import (
	"go/types"

	"builder-generator/internal/schema"
)

// typeRef converts a go/types.Type into a schema.TypeRef.
func typeRef(t types.Type) *schema.TypeRef {
	switch tt := t.(type) {
	case *types.Basic:
		if tt.Kind() == types.UnsafePointer {
			return schema.Named("unsafe", "Pointer")
		}

		return schema.Basic(tt.Name())

	case *types.Alias:
		obj := tt.Obj()
		if obj.Pkg() == nil {
			// any
			return schema.Basic(obj.Name())
		}

		return schema.Named(obj.Pkg().Path(), obj.Name(), typeList(tt.TypeArgs())...)

	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() == nil {
			// error, comparable
			return schema.Named("", obj.Name())
		}

		return schema.Named(obj.Pkg().Path(), obj.Name(), typeList(tt.TypeArgs())...)

	case *types.Pointer:
		return schema.PointerTo(typeRef(tt.Elem()))

	case *types.Slice:
		return schema.SliceOf(typeRef(tt.Elem()))

	case *types.Array:
		return &schema.TypeRef{Kind: schema.TypeKindArray, Len: tt.Len(), Elem: typeRef(tt.Elem())}

	case *types.Map:
		return schema.MapOf(typeRef(tt.Key()), typeRef(tt.Elem()))

	case *types.Chan:
		ref := &schema.TypeRef{Kind: schema.TypeKindChan, Elem: typeRef(tt.Elem())}

		switch tt.Dir() {
		case types.SendOnly:
			ref.Dir = schema.ChanSend
		case types.RecvOnly:
			ref.Dir = schema.ChanRecv
		default:
			ref.Dir = schema.ChanBoth
		}

		return ref

	case *types.Signature:
		return signatureRef(tt)

	case *types.Interface:
		ref := &schema.TypeRef{Kind: schema.TypeKindInterface}

		for i := 0; i < tt.NumEmbeddeds(); i++ {
			ref.Embeddeds = append(ref.Embeddeds, typeRef(tt.EmbeddedType(i)))
		}

		for i := 0; i < tt.NumExplicitMethods(); i++ {
			m := tt.ExplicitMethod(i)
			ref.Methods = append(ref.Methods, schema.Method{
				Name:      m.Name(),
				Signature: signatureRef(m.Type().(*types.Signature)),
			})
		}

		return ref

	case *types.Struct:
		ref := &schema.TypeRef{Kind: schema.TypeKindStruct}

		for i := 0; i < tt.NumFields(); i++ {
			f := tt.Field(i)
			ref.Fields = append(ref.Fields, schema.StructField{
				Name:     f.Name(),
				Type:     typeRef(f.Type()),
				Tag:      tt.Tag(i),
				Embedded: f.Embedded(),
			})
		}

		return ref

	default:
		// type parameters, unions and tuples do not appear in non-generic records
		return &schema.TypeRef{Kind: schema.TypeKindUnknown, Name: t.String()}
	}
}

func signatureRef(sig *types.Signature) *schema.TypeRef {
	return &schema.TypeRef{
		Kind:     schema.TypeKindFunc,
		Params:   tupleList(sig.Params()),
		Results:  tupleList(sig.Results()),
		Variadic: sig.Variadic(),
	}
}

func tupleList(tuple *types.Tuple) []*schema.TypeRef {
	if tuple == nil {
		return nil
	}

	out := make([]*schema.TypeRef, 0, tuple.Len())
	for i := 0; i < tuple.Len(); i++ {
		out = append(out, typeRef(tuple.At(i).Type()))
	}

	return out
}

func typeList(list *types.TypeList) []*schema.TypeRef {
	if list == nil || list.Len() == 0 {
		return nil
	}

	out := make([]*schema.TypeRef, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		out = append(out, typeRef(list.At(i)))
	}

	return out
}
