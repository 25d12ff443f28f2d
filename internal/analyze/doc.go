// Package analyze extracts records from Go packages.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to turn
// selected struct declarations into schema.Records: fields in declaration
// order, each with a schema.TypeRef and its raw builder tag entries.
//
// Records are selected by name, or by a //buildergen:builder line in the
// type's doc comment. Packages are loaded with the "buildergen" build tag so
// previously generated builders (constrained to !buildergen) never take part
// in their own regeneration.
package analyze
