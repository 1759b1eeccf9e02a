package service

import (
	"context"
	"log/slog"

	"github.com/ecomlab/storefront-admin/internal/entities"
)

type ProductRepo interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
}

type productService struct {
	logger *slog.Logger
	repo   ProductRepo
}

func NewProductService(logger *slog.Logger, repo ProductRepo) *productService {
	return &productService{
		logger: logger.With(slog.String("service", "product")),
		repo:   repo,
	}
}

func (s *productService) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return s.repo.ListProducts(ctx)
}
