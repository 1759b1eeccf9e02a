package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecomlab/storefront-admin/internal/entities"
	"github.com/ecomlab/storefront-admin/internal/query"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var orderColumns = []string{
	"uid", "id", "user_id", "order_number", "status", "total_amount",
	"customer_name", "customer_email", "created_at", "updated_at",
}

// ListOrders returns the requested page of matching orders together with the
// total count computed from the same clauses. Count and fetch are two
// statements; a write in between may make the count stale for this response.
func (r *postgresRepo) ListOrders(ctx context.Context, list query.OrderList) ([]entities.Order, int64, error) {
	countQuery, args := query.Apply(r.qb.Select("COUNT(*)").From("orders"), list.Clauses).MustSql()

	var total int64
	if err := r.getContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	selectQuery, args := query.Apply(r.qb.Select(orderColumns...).From("orders"), list.Clauses).
		OrderBy(list.Sort.OrderBy()).
		Offset(list.Page.Offset()).
		Limit(list.Page.Limit()).
		MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, selectQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select orders: %w", err)
	}

	orders, err := r.attachItems(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// SearchOrders runs a case-insensitive substring match over the given columns,
// capped at limit results.
func (r *postgresRepo) SearchOrders(ctx context.Context, columns []string, term string, limit int) ([]entities.Order, error) {
	match := query.Match{Columns: columns, Term: term}

	selectQuery, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(match.Predicate()).
		Limit(uint64(limit)).
		MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, selectQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to search orders: %w", err)
	}

	return r.attachItems(ctx, rows)
}

func (r *postgresRepo) GetOrderByUID(ctx context.Context, uid uuid.UUID) (entities.Order, error) {
	return r.getOrderBy(ctx, sq.Eq{"uid": uid})
}

func (r *postgresRepo) GetOrderByNumericID(ctx context.Context, id int64) (entities.Order, error) {
	return r.getOrderBy(ctx, sq.Eq{"id": id})
}

func (r *postgresRepo) getOrderBy(ctx context.Context, pred sq.Sqlizer) (entities.Order, error) {
	selectQuery, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(pred).
		MustSql()

	var row Order
	err := r.getContext(ctx, &row, selectQuery, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.loadItems(ctx, []uuid.UUID{row.UID})
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(row, items[row.UID]), nil
}

// InsertOrder persists the order row. The store assigns uid and the
// application-level numeric id; both are returned.
func (r *postgresRepo) InsertOrder(ctx context.Context, o entities.Order) (uuid.UUID, int64, error) {
	insertQuery, args := r.qb.Insert("orders").
		Columns("user_id", "order_number", "status", "total_amount",
			"customer_name", "customer_email", "created_at", "updated_at").
		Values(o.UserID, o.OrderNumber, o.Status, o.TotalAmount,
			nullString(o.CustomerName), nullString(o.CustomerEmail), o.CreatedAt, o.CreatedAt).
		Suffix("RETURNING uid, id").
		MustSql()

	var row struct {
		UID uuid.UUID `db:"uid"`
		ID  int64     `db:"id"`
	}
	if err := r.getContext(ctx, &row, insertQuery, args...); err != nil {
		return uuid.Nil, 0, fmt.Errorf("failed to insert order: %w", err)
	}
	return row.UID, row.ID, nil
}

func (r *postgresRepo) InsertOrderItems(ctx context.Context, orderUID uuid.UUID, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_uid", "product_id", "name", "quantity", "price")
	for _, it := range items {
		q = q.Values(orderUID, nullInt64(it.ProductID), it.Name, it.Quantity, it.Price)
	}

	insertQuery, args := q.MustSql()
	if _, err := r.execContext(ctx, insertQuery, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

// UpdateOrderByUID applies the non-nil update fields and the updated_at stamp,
// returning the updated order.
func (r *postgresRepo) UpdateOrderByUID(ctx context.Context, uid uuid.UUID, upd entities.OrderUpdate, updatedAt time.Time) (entities.Order, error) {
	q := r.qb.Update("orders").
		Set("updated_at", updatedAt).
		Where(sq.Eq{"uid": uid}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", "))

	if upd.Status != nil {
		q = q.Set("status", *upd.Status)
	}
	if upd.TotalAmount != nil {
		q = q.Set("total_amount", *upd.TotalAmount)
	}
	if upd.CustomerName != nil {
		q = q.Set("customer_name", nullString(*upd.CustomerName))
	}
	if upd.CustomerEmail != nil {
		q = q.Set("customer_email", nullString(*upd.CustomerEmail))
	}

	updateQuery, args := q.MustSql()

	var row Order
	err := r.getContext(ctx, &row, updateQuery, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
	}

	items, err := r.loadItems(ctx, []uuid.UUID{row.UID})
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(row, items[row.UID]), nil
}

func (r *postgresRepo) DeleteOrderItems(ctx context.Context, orderUID uuid.UUID) error {
	deleteQuery, args := r.qb.Delete("order_items").
		Where(sq.Eq{"order_uid": orderUID}).
		MustSql()

	if _, err := r.execContext(ctx, deleteQuery, args...); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteOrderByUID(ctx context.Context, uid uuid.UUID) error {
	deleteQuery, args := r.qb.Delete("orders").
		Where(sq.Eq{"uid": uid}).
		MustSql()

	res, err := r.execContext(ctx, deleteQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) OrderOverview(ctx context.Context) (entities.OrderStats, error) {
	overviewQuery, args := r.qb.Select(
		"COUNT(*) AS total_orders",
		"COALESCE(SUM(total_amount), 0) AS total_revenue",
		"COALESCE(AVG(total_amount), 0) AS average_order_value",
		"COALESCE(MAX(total_amount), 0) AS max_order_value",
		"COALESCE(MIN(total_amount), 0) AS min_order_value",
	).From("orders").MustSql()

	var row struct {
		TotalOrders       int64   `db:"total_orders"`
		TotalRevenue      float64 `db:"total_revenue"`
		AverageOrderValue float64 `db:"average_order_value"`
		MaxOrderValue     float64 `db:"max_order_value"`
		MinOrderValue     float64 `db:"min_order_value"`
	}
	if err := r.getContext(ctx, &row, overviewQuery, args...); err != nil {
		return entities.OrderStats{}, fmt.Errorf("failed to get order overview: %w", err)
	}

	return entities.OrderStats{
		TotalOrders:       row.TotalOrders,
		TotalRevenue:      row.TotalRevenue,
		AverageOrderValue: row.AverageOrderValue,
		MaxOrderValue:     row.MaxOrderValue,
		MinOrderValue:     row.MinOrderValue,
	}, nil
}

func (r *postgresRepo) CountOrdersByStatus(ctx context.Context) (map[string]int64, error) {
	statusQuery, args := r.qb.Select("status", "COUNT(*) AS count").
		From("orders").
		GroupBy("status").
		MustSql()

	var rows []struct {
		Status string `db:"status"`
		Count  int64  `db:"count"`
	}
	if err := r.selectContext(ctx, &rows, statusQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *postgresRepo) CountOrdersSince(ctx context.Context, since time.Time) (int64, error) {
	countQuery, args := r.qb.Select("COUNT(*)").
		From("orders").
		Where(sq.GtOrEq{"created_at": since}).
		MustSql()

	var count int64
	if err := r.getContext(ctx, &count, countQuery, args...); err != nil {
		return 0, fmt.Errorf("failed to count recent orders: %w", err)
	}
	return count, nil
}

// attachItems batch-loads line items for the given order rows.
func (r *postgresRepo) attachItems(ctx context.Context, rows []Order) ([]entities.Order, error) {
	if len(rows) == 0 {
		return []entities.Order{}, nil
	}

	uids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		uids[i] = row.UID
	}

	itemsMap, err := r.loadItems(ctx, uids)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, OrderToEntity(row, itemsMap[row.UID]))
	}
	return orders, nil
}

func (r *postgresRepo) loadItems(ctx context.Context, uids []uuid.UUID) (map[uuid.UUID][]OrderItem, error) {
	itemsQuery, args := r.qb.Select("order_uid", "product_id", "name", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_uid": uids}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, itemsQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	itemsMap := make(map[uuid.UUID][]OrderItem, len(uids))
	for _, item := range items {
		itemsMap[item.OrderUID] = append(itemsMap[item.OrderUID], item)
	}
	return itemsMap, nil
}
