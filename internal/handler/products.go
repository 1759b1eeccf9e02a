package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ecomlab/storefront-admin/internal/entities"
	"github.com/ecomlab/storefront-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type ProductService interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
}

type ProductHandler struct {
	logger *slog.Logger
	svc    ProductService
	dev    bool
}

func NewProductHandler(logger *slog.Logger, svc ProductService, dev bool) *ProductHandler {
	return &ProductHandler{
		logger: logger.With(slog.String("handler", "products")),
		svc:    svc,
		dev:    dev,
	}
}

func (h *ProductHandler) Init(r chi.Router) {
	r.Get("/api/products", h.List)
}

// ProductsResponse wraps a product list
type ProductsResponse struct {
	Success bool      `json:"success"`
	Data    []Product `json:"data"`
}

// List returns all products.
// @Summary      List products
// @Tags         products
// @Success      200  {object}  ProductsResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.svc.ListProducts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list products", slog.Any("error", err))
		utils.WriteInternalError(w, "Error fetching products", err, h.dev)
		return
	}

	data := make([]Product, 0, len(products))
	for _, p := range products {
		data = append(data, ProductEntityToJSON(p))
	}
	utils.WriteJSON(w, ProductsResponse{Success: true, Data: data}, http.StatusOK)
}
