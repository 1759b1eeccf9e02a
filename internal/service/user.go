package service

import (
	"context"
	"log/slog"

	"github.com/ecomlab/storefront-admin/internal/entities"

	"github.com/google/uuid"
)

type UserRepo interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUserByUID(ctx context.Context, uid uuid.UUID) (entities.User, error)
}

type userService struct {
	logger *slog.Logger
	repo   UserRepo
}

func NewUserService(logger *slog.Logger, repo UserRepo) *userService {
	return &userService{
		logger: logger.With(slog.String("service", "user")),
		repo:   repo,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]entities.User, error) {
	return s.repo.ListUsers(ctx)
}

// GetUserByID resolves users by their store identifier only; the numeric id
// fallback applies to orders, not users.
func (s *userService) GetUserByID(ctx context.Context, raw string) (entities.User, error) {
	uid, err := uuid.Parse(raw)
	if err != nil {
		return entities.User{}, entities.ErrUserNotFound
	}
	return s.repo.GetUserByUID(ctx, uid)
}
