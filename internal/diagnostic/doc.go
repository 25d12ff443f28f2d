// Package diagnostic collects structured errors and warnings produced while
// extracting records and deriving their builders.
//
// Key capabilities:
//   - Schema errors keyed by kind (AttributeTypeMismatch, MalformedAttribute, ...)
//   - Extraction problems (generic records, non-struct types, bad tags)
//   - Per-record aborts reported together, so one bad record does not hide others
package diagnostic
