package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ecomlab/storefront-admin/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var userColumns = []string{
	"uid", "id", "first_name", "last_name", "email", "age", "gender",
	"state", "street_address", "postal_code", "city", "country",
	"latitude", "longitude", "traffic_source", "created_at",
}

func (r *postgresRepo) ListUsers(ctx context.Context) ([]entities.User, error) {
	listQuery, args := r.qb.Select(userColumns...).
		From("users").
		OrderBy("id").
		MustSql()

	var rows []User
	if err := r.selectContext(ctx, &rows, listQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}

	users := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, UserToEntity(row))
	}
	return users, nil
}

func (r *postgresRepo) GetUserByUID(ctx context.Context, uid uuid.UUID) (entities.User, error) {
	getQuery, args := r.qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"uid": uid}).
		MustSql()

	var row User
	err := r.getContext(ctx, &row, getQuery, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(row), nil
}
