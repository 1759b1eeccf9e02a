package events

import (
	"time"

	"github.com/ecomlab/storefront-admin/internal/entities"
)

const (
	TypeOrderCreated = "order.created"
	TypeOrderUpdated = "order.updated"
	TypeOrderDeleted = "order.deleted"
)

// OrderEvent is the payload published after a successful order write.
type OrderEvent struct {
	Type        string    `json:"type"`
	OrderUID    string    `json:"order_uid"`
	OrderID     int64     `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	UserID      int64     `json:"user_id"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewOrderEvent(eventType string, o entities.Order) OrderEvent {
	return OrderEvent{
		Type:        eventType,
		OrderUID:    o.UID.String(),
		OrderID:     o.NumericID,
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		OccurredAt:  time.Now().UTC(),
	}
}
