// Package assemble describes and executes the Build step of a builder.
//
// Derive turns a BuilderSchema into a Plan: one Rule per field, in
// declaration order, saying how the field's storage is read and whether an
// empty slot fails the build. The code emitter renders these rules as the
// generated Build method.
//
// The same Plan runs against in-memory Storage (see Dynamic), which lets the
// derivation be exercised without compiling generated code. Assembly fails
// fast on the first unset required field and never modifies storage.
package assemble
