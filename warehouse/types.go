// Package warehouse holds records that cannot have builders. Each one
// triggers a different schema or extraction error.
package warehouse

// Shipment puts an accessor on a field that is not a slice.
//
//buildergen:builder
type Shipment struct {
	ID     string
	Weight int `builder:"each=Weight"`
}

// Pallet carries two builder attributes on one field.
//
//buildergen:builder
type Pallet struct {
	Boxes []string `builder:"each=Box" builder:"each=Crate"`
}

// Label uses an unknown attribute option.
//
//buildergen:builder
type Label struct {
	Lines []string `builder:"add=Line"`
}

// Dock has a struct tag that does not parse.
//
//buildergen:builder
type Dock struct {
	Bay string `builder:each=Bay`
}

// Crate has a broken json entry but a well-formed builder one. It is
// accepted.
//
//buildergen:builder
type Crate struct {
	Slots []string `json:slots builder:"each=Slot"`
}

// Page is generic.
//
//buildergen:builder
type Page[T any] struct {
	Items []T
}

// Zone is not a struct.
//
//buildergen:builder
type Zone string

// Bin is fine but carries no directive.
type Bin struct {
	Code string
}
