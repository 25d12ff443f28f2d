// Package plan runs the builder derivation for every extracted record and
// produces a Plan consumed by code generation.
//
// Derivation pipeline, per record:
//  1. Classify every field (required, optional, accumulated)
//  2. Synthesize the builder schema (storage, mutators, initial state)
//  3. Derive the assembly rules of Build
//
// A schema error aborts only the record it belongs to. It is reported in
// Plan.Diagnostics and the remaining records are still planned.
//
// Export renders the plan as the language-neutral descriptors a code
// emitter needs, serialized as YAML or JSON.
package plan
