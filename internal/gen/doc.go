// Package gen renders builder source files from a plan.
//
// Code is built with github.com/dave/jennifer, which tracks imports and
// gofmts the result. Every record gets its own file placed next to the
// record's package:
//   - the builder type, storage kept in an unexported struct field
//   - a constructor returning the builder in its initial state
//   - one chainable mutator per field
//   - the build method, which checks required fields in declaration order
//
// Generated files carry a build constraint excluding them when the loader
// runs, so stale builders never hide changes to their records.
package gen
