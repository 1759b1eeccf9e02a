package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ecomlab/storefront-admin/internal/entities"
	"github.com/ecomlab/storefront-admin/internal/events"
	"github.com/ecomlab/storefront-admin/internal/query"
	"github.com/ecomlab/storefront-admin/pkg/trm"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type OrderRepo interface {
	ListOrders(ctx context.Context, list query.OrderList) ([]entities.Order, int64, error)
	SearchOrders(ctx context.Context, columns []string, term string, limit int) ([]entities.Order, error)

	GetOrderByUID(ctx context.Context, uid uuid.UUID) (entities.Order, error)
	GetOrderByNumericID(ctx context.Context, id int64) (entities.Order, error)

	InsertOrder(ctx context.Context, o entities.Order) (uuid.UUID, int64, error)
	InsertOrderItems(ctx context.Context, orderUID uuid.UUID, items []entities.OrderItem) error
	UpdateOrderByUID(ctx context.Context, uid uuid.UUID, upd entities.OrderUpdate, updatedAt time.Time) (entities.Order, error)
	DeleteOrderItems(ctx context.Context, orderUID uuid.UUID) error
	DeleteOrderByUID(ctx context.Context, uid uuid.UUID) error

	OrderOverview(ctx context.Context) (entities.OrderStats, error)
	CountOrdersByStatus(ctx context.Context) (map[string]int64, error)
	CountOrdersSince(ctx context.Context, since time.Time) (int64, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.OrderEvent) error
}

const (
	searchResultCap  = 20
	recentOrdersSpan = 30 * 24 * time.Hour
)

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	publisher EventPublisher
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, publisher EventPublisher) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		publisher: publisher,
	}
}

func (s *orderService) ListOrders(ctx context.Context, list query.OrderList) ([]entities.Order, int64, error) {
	return s.repo.ListOrders(ctx, list)
}

// ListOrdersByUser pages through the orders owned by the given numeric user
// id, newest first, optionally narrowed to one status.
func (s *orderService) ListOrdersByUser(ctx context.Context, userID int64, status string, page query.Page) ([]entities.Order, int64, error) {
	list := query.OrderList{
		Clauses: []query.Clause{query.Equal{Column: "user_id", Value: userID}},
		Sort:    query.Sort{Column: "created_at", Desc: true},
		Page:    page,
	}
	if status != "" {
		list.Clauses = append(list.Clauses, query.Equal{Column: "status", Value: status})
	}
	return s.repo.ListOrders(ctx, list)
}

func (s *orderService) SearchOrders(ctx context.Context, fields, term string) ([]entities.Order, error) {
	return s.repo.SearchOrders(ctx, query.ParseSearchFields(fields), term, searchResultCap)
}

// GetOrderByRef resolves a dual identifier. The UID interpretation always wins
// when the raw id parses as one; the numeric id field is only consulted after
// a UID miss.
func (s *orderService) GetOrderByRef(ctx context.Context, ref entities.OrderRef) (entities.Order, entities.ResolvedBy, error) {
	if ref.UID != nil {
		order, err := s.repo.GetOrderByUID(ctx, *ref.UID)
		if err == nil {
			return order, entities.ResolvedByUID, nil
		}
		if !errors.Is(err, entities.ErrOrderNotFound) {
			return entities.Order{}, 0, err
		}
	}

	if ref.NumericID != nil {
		order, err := s.repo.GetOrderByNumericID(ctx, *ref.NumericID)
		if err == nil {
			return order, entities.ResolvedByNumericID, nil
		}
		if !errors.Is(err, entities.ErrOrderNotFound) {
			return entities.Order{}, 0, err
		}
	}

	return entities.Order{}, 0, entities.ErrOrderNotFound
}

// CreateOrder assigns the order number and defaults, then persists the order
// and its items in one transaction.
func (s *orderService) CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	now := time.Now().UTC()

	order.OrderNumber = fmt.Sprintf("ORD-%d", now.UnixMilli())
	if order.Status == "" {
		order.Status = entities.StatusPending
	}
	order.CreatedAt = now
	order.UpdatedAt = now

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		uid, id, err := s.repo.InsertOrder(ctx, order)
		if err != nil {
			return err
		}
		order.UID = uid
		order.NumericID = id
		return s.repo.InsertOrderItems(ctx, uid, order.Items)
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.DebugContext(ctx, "order created",
		slog.String("uid", order.UID.String()), slog.String("order_number", order.OrderNumber))
	s.publish(ctx, events.NewOrderEvent(events.TypeOrderCreated, order))

	return order, nil
}

// UpdateOrder resolves the order per GetOrderByRef, applies the update and
// stamps updated_at.
func (s *orderService) UpdateOrder(ctx context.Context, ref entities.OrderRef, upd entities.OrderUpdate) (entities.Order, error) {
	order, _, err := s.GetOrderByRef(ctx, ref)
	if err != nil {
		return entities.Order{}, err
	}

	updated, err := s.repo.UpdateOrderByUID(ctx, order.UID, upd, time.Now().UTC())
	if err != nil {
		return entities.Order{}, err
	}

	s.publish(ctx, events.NewOrderEvent(events.TypeOrderUpdated, updated))
	return updated, nil
}

// DeleteOrder resolves the order per GetOrderByRef and removes it together
// with its items. There is no soft delete.
func (s *orderService) DeleteOrder(ctx context.Context, ref entities.OrderRef) (uuid.UUID, error) {
	order, _, err := s.GetOrderByRef(ctx, ref)
	if err != nil {
		return uuid.Nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteOrderItems(ctx, order.UID); err != nil {
			return err
		}
		return s.repo.DeleteOrderByUID(ctx, order.UID)
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.publish(ctx, events.NewOrderEvent(events.TypeOrderDeleted, order))
	return order.UID, nil
}

// OrderStats gathers the aggregate overview, the per-status counts and the
// trailing 30 day count. The three queries run concurrently.
func (s *orderService) OrderStats(ctx context.Context) (entities.OrderStats, error) {
	var (
		stats     entities.OrderStats
		breakdown map[string]int64
		recent    int64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.repo.OrderOverview(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		breakdown, err = s.repo.CountOrdersByStatus(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.repo.CountOrdersSince(ctx, time.Now().UTC().Add(-recentOrdersSpan))
		return err
	})

	if err := g.Wait(); err != nil {
		return entities.OrderStats{}, err
	}

	stats.StatusBreakdown = breakdown
	stats.RecentOrders = recent
	return stats, nil
}

// publish is fire and forget: event delivery never fails the request.
func (s *orderService) publish(ctx context.Context, event events.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order event",
			slog.String("type", event.Type), slog.Any("error", err))
	}
}
