// Package classify decides how each record field is accumulated by a builder.
//
// Every field gets exactly one Classification:
//   - Required(T): plain type T, missing at Build time is an error
//   - Optional(T): declared *T, missing at Build time yields nil
//   - Accumulated(T, accessor): declared []T with a builder attribute,
//     collected element by element through the accessor mutator
//
// The declared type is first reduced to a Shape (plain, optional wrapper or
// collection wrapper) so the classification rules never look at TypeRef
// internals directly.
package classify
