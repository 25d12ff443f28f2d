// Package schema is the in-memory model of records handed from the schema
// extractor to the builder derivation.
//
// Key types:
//   - RecordID: package import path + type name
//   - Record: one struct declaration with its fields in declaration order
//   - Field: field name, declared TypeRef and raw builder attributes
//   - TypeRef: tagged type reference (basic/named/pointer/slice/...)
//   - Error: generation-time schema error with a fixed set of kinds
package schema
