package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecomlab/storefront-admin/internal/entities"
	"github.com/ecomlab/storefront-admin/internal/handler"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductService struct {
	listProducts func(ctx context.Context) ([]entities.Product, error)
}

func (f *fakeProductService) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return f.listProducts(ctx)
}

func TestListProducts(t *testing.T) {
	router := func(svc handler.ProductService) chi.Router {
		r := chi.NewRouter()
		handler.NewProductHandler(testLogger(), svc, false).Init(r)
		return r
	}

	t.Run("success", func(t *testing.T) {
		uid := uuid.New()
		svc := &fakeProductService{
			listProducts: func(context.Context) ([]entities.Product, error) {
				return []entities.Product{{
					UID:                  uid,
					NumericID:            9,
					Name:                 "Trail Jacket",
					Brand:                "Northline",
					Category:             "Outerwear",
					Department:           "Women",
					SKU:                  "NL-TJ-09",
					Cost:                 42.10,
					RetailPrice:          89.99,
					DistributionCenterID: 2,
				}}, nil
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		router(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var res handler.ProductsResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.True(t, res.Success)
		require.Len(t, res.Data, 1)
		assert.Equal(t, uid.String(), res.Data[0].UID)
		assert.Equal(t, "NL-TJ-09", res.Data[0].SKU)
		assert.Equal(t, 89.99, res.Data[0].RetailPrice)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc := &fakeProductService{
			listProducts: func(context.Context) ([]entities.Product, error) {
				return nil, errors.New("connection refused")
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		router(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Error fetching products", decodeError(t, rec).Message)
	})
}
