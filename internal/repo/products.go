package repo

import (
	"context"
	"fmt"

	"github.com/ecomlab/storefront-admin/internal/entities"
)

var productColumns = []string{
	"uid", "id", "name", "brand", "category", "department", "sku",
	"cost", "retail_price", "distribution_center_id",
}

func (r *postgresRepo) ListProducts(ctx context.Context) ([]entities.Product, error) {
	listQuery, args := r.qb.Select(productColumns...).
		From("products").
		OrderBy("id").
		MustSql()

	var rows []Product
	if err := r.selectContext(ctx, &rows, listQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	products := make([]entities.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, ProductToEntity(row))
	}
	return products, nil
}
