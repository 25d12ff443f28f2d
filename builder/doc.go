// Package builder is the runtime support imported by code that builder-gen
// writes.
//
// Generated Build methods report an unset required field with
// *MissingFieldError and copy optional slots with ClonePtr, or with
// CloneSlicePtr and CloneMapPtr when the value is a slice or a map.
package builder
