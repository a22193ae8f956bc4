// Package store holds the Go types of a small order store. They are the
// source the modeldef tool derives model definitions from.
package store

import (
	"time"
)

// Audit carries the timestamps shared by stored records.
type Audit struct {
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// Customer represents the user placing orders.
type Customer struct {
	Audit

	ID       int64          `json:"id"`
	Email    string         `json:"email"`
	FullName string         `json:"fullName"`
	Notes    string         `json:"notes,omitempty" model:"Text"`
	IsActive bool           `json:"isActive"`
	Address  *Address       `json:"address"`
	Tags     []string       `json:"tags"`
	Prefs    map[string]any `json:"prefs"`
	password string
}

// Address is stored inline with its owner.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

// Order represents a transaction made by a customer.
type Order struct {
	Audit

	ID         int64       `json:"id"`
	CustomerID int64       `json:"customerId"`
	Customer   *Customer   `json:"customer" model:",relation=belongsTo,key=customerId"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"totalCents"`
	Lines      []OrderLine `json:"lines"`
	Checksum   []byte      `json:"checksum"`
	Trace      string      `json:"-"`
	Scratch    string      `model:"-"`
}

// OrderLine is one product line within an order.
type OrderLine struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
