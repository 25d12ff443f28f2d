// Package store holds records used to exercise record extraction.
package store

import (
	"context"
	"math/big"
	"time"
)

// Product is an item available for sale.
// PriceCents is in the lowest currency unit to avoid floating-point errors.
//
//buildergen:builder
type Product struct {
	ID          int64     `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Tags        []string  `json:"tags" builder:"each=Tag"`
	CreatedAt   time.Time `json:"created_at"`
}

// Customer places orders. It has no directive and is only extracted by name.
type Customer struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Address  *string `json:"address"`
	IsActive bool    `json:"is_active"`
}

// Order is a transaction made by a customer.
//
//buildergen:builder
type Order struct {
	ID         int64             `json:"id"`
	CustomerID int64             `json:"customer_id"`
	Status     OrderStatus       `json:"status"`
	Items      []OrderItem       `json:"items" builder:"each=Item"`
	Notes      map[string]string `json:"notes"`
	OrderedAt  time.Time         `json:"ordered_at"`
	_          struct{}
}

// OrderItem is a product line within an order.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Name      string `json:"name"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Audit is embedded into Event.
type Audit struct {
	CreatedBy string
}

// Event covers the less common field types.
//
//buildergen:builder
type Event struct {
	Audit
	Payload  any
	Err      error
	Handler  func(context.Context, ...string) error
	Done     <-chan struct{}
	Digest   [32]byte
	Meta     struct{ Source string }
	Stringer interface{ String() string }
	Counter  *big.Int
	Ref      Pair[string, Order]
}

// Pair is a generic holder. Event uses an instantiation of it.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}
