package queries

import (
	"time"

	"printdrop/internal/core/domain/model/kernel"
)

// UserSummary is the public part of a user shown next to an order.
type UserSummary struct {
	ID       kernel.UUID
	Fullname string
	Email    string
}

// DocumentView is a stored document as its owner sees it.
type DocumentView struct {
	ID           kernel.UUID
	OwnerID      kernel.UUID
	FileURL      string
	OriginalName string
	PageCount    int
	Size         string
	ColorType    string
	Binding      bool
	Copies       int
	CreatedAt    time.Time
}

// OrderView is an order with its documents in selection order.
// Courier is nil until the order is picked.
type OrderView struct {
	ID              kernel.UUID
	Owner           UserSummary
	Documents       []DocumentView
	DeliveryAddress string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	PaymentType     string
	IsPaid          bool
	TotalAmount     int64
	Status          string
	Courier         *UserSummary
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UserView is a user record without password material.
type UserView struct {
	ID        kernel.UUID
	Fullname  string
	Email     string
	Role      string
	Phone     string
	Address   string
	CreatedAt time.Time
}
