package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type OrderItem struct {
	ProductID int64
	Name      string
	Quantity  int
	Price     float64
}

type Order struct {
	// UID is the store-generated identifier, NumericID the application-level
	// one. The two identifier spaces are independent, see OrderRef.
	UID       uuid.UUID
	NumericID int64

	UserID        int64
	OrderNumber   string
	Status        string
	TotalAmount   float64
	CustomerName  string
	CustomerEmail string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []OrderItem
}

// OrderUpdate carries the mutable order fields; nil means "leave as is".
type OrderUpdate struct {
	Status        *string
	TotalAmount   *float64
	CustomerName  *string
	CustomerEmail *string
}

const StatusPending = "pending"

type OrderStats struct {
	TotalOrders       int64
	TotalRevenue      float64
	AverageOrderValue float64
	MaxOrderValue     float64
	MinOrderValue     float64

	StatusBreakdown map[string]int64
	RecentOrders    int64
}

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidOrderRef = errors.New("invalid order reference")
)
