// Package synth derives the builder type for a classified record.
//
// The result is a BuilderSchema: storage fields (optional slot or list per
// source field, named like the field), one mutator per field (replace for
// slots, append for lists) and the builder's empty initial state. It is a
// structural transliteration of the classification; no cross-field rules
// are applied here.
package synth
