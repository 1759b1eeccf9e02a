package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ecomlab/storefront-admin/internal/entities"
	"github.com/ecomlab/storefront-admin/internal/query"
	"github.com/ecomlab/storefront-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrderService interface {
	ListOrders(ctx context.Context, list query.OrderList) ([]entities.Order, int64, error)
	ListOrdersByUser(ctx context.Context, userID int64, status string, page query.Page) ([]entities.Order, int64, error)
	SearchOrders(ctx context.Context, fields, term string) ([]entities.Order, error)
	GetOrderByRef(ctx context.Context, ref entities.OrderRef) (entities.Order, entities.ResolvedBy, error)
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	UpdateOrder(ctx context.Context, ref entities.OrderRef, upd entities.OrderUpdate) (entities.Order, error)
	DeleteOrder(ctx context.Context, ref entities.OrderRef) (uuid.UUID, error)
	OrderStats(ctx context.Context) (entities.OrderStats, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
	dev      bool
}

func NewOrderHandler(logger *slog.Logger, svc OrderService, dev bool) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		svc:      svc,
		dev:      dev,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/stats", h.Stats)
		r.Get("/search", h.Search)
		r.Get("/user/{userID}", h.ListByUser)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// ListOrdersResponse is the paginated order list envelope
type ListOrdersResponse struct {
	Success    bool           `json:"success"`
	Data       []Order        `json:"data"`
	Pagination Pagination     `json:"pagination"`
	Filter     map[string]any `json:"filter"`
}

// List returns a filtered, sorted page of orders.
// @Summary      List orders
// @Description  Paginated order list with optional status, owner, amount range, date range and free-text filters
// @Tags         orders
// @Param        status     query  string  false  "Exact status match"
// @Param        userId     query  int     false  "Owning user numeric id"
// @Param        minAmount  query  number  false  "Inclusive lower bound on totalAmount"
// @Param        maxAmount  query  number  false  "Inclusive upper bound on totalAmount"
// @Param        startDate  query  string  false  "Inclusive lower bound on createdAt"
// @Param        endDate    query  string  false  "Inclusive upper bound on createdAt"
// @Param        search     query  string  false  "Substring match on order number and customer info"
// @Param        sortBy     query  string  false  "Sort field"  default(createdAt)
// @Param        sortOrder  query  string  false  "asc or desc" default(desc)
// @Param        page       query  int     false  "1-indexed page" default(1)
// @Param        limit      query  int     false  "Page size" default(10)
// @Success      200  {object}  ListOrdersResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list := query.ParseOrderList(r.URL.Query())

	orders, total, err := h.svc.ListOrders(ctx, list)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteInternalError(w, "Error fetching orders", err, h.dev)
		return
	}

	utils.WriteJSON(w, ListOrdersResponse{
		Success:    true,
		Data:       OrdersEntityToJSON(orders),
		Pagination: NewPagination(list.Page, total),
		Filter:     list.Applied,
	}, http.StatusOK)
}

// OrderResponse wraps a single order
type OrderResponse struct {
	Success bool   `json:"success"`
	Data    Order  `json:"data"`
	Message string `json:"message,omitempty"`
}

// Get returns one order by store uid or numeric id.
// @Summary      Get order
// @Description  Resolves the path id as a store uid first, then as the numeric order id
// @Tags         orders
// @Param        id   path      string  true  "Order uid or numeric id"
// @Success      200  {object}  OrderResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ref, ok := h.orderRef(w, r)
	if !ok {
		return
	}

	order, resolvedBy, err := h.svc.GetOrderByRef(ctx, ref)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err))
		utils.WriteInternalError(w, "Error fetching order", err, h.dev)
		return
	}

	orderLookupsTotal.WithLabelValues(resolvedBy.String()).Inc()
	utils.WriteJSON(w, OrderResponse{Success: true, Data: OrderEntityToJSON(order)}, http.StatusOK)
}

// UserOrdersResponse is the per-user order list envelope
type UserOrdersResponse struct {
	Success    bool           `json:"success"`
	Data       []Order        `json:"data"`
	Pagination UserPagination `json:"pagination"`
}

// ListByUser returns the orders owned by a numeric user id.
// @Summary      List orders by user
// @Tags         orders
// @Param        userID  path   int     true   "Owning user numeric id"
// @Param        status  query  string  false  "Exact status match"
// @Param        page    query  int     false  "1-indexed page" default(1)
// @Param        limit   query  int     false  "Page size" default(10)
// @Success      200  {object}  UserOrdersResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/orders/user/{userID} [get]
func (h *OrderHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		utils.WriteError(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	page := query.ParsePage(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
	status := r.URL.Query().Get("status")

	orders, total, err := h.svc.ListOrdersByUser(ctx, userID, status, page)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list user orders",
			slog.Int64("user_id", userID), slog.Any("error", err))
		utils.WriteInternalError(w, "Error fetching user orders", err, h.dev)
		return
	}

	utils.WriteJSON(w, UserOrdersResponse{
		Success: true,
		Data:    OrdersEntityToJSON(orders),
		Pagination: UserPagination{
			CurrentPage: page.Number,
			TotalPages:  page.TotalPages(total),
			TotalOrders: total,
		},
	}, http.StatusOK)
}

// OrderStatsResponse wraps the aggregate statistics
type OrderStatsResponse struct {
	Success bool       `json:"success"`
	Data    OrderStats `json:"data"`
}

// Stats returns aggregate order statistics.
// @Summary      Order statistics
// @Description  Overview totals, per-status counts and the trailing 30 day order count
// @Tags         orders
// @Success      200  {object}  OrderStatsResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/orders/stats [get]
func (h *OrderHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.svc.OrderStats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order stats", slog.Any("error", err))
		utils.WriteInternalError(w, "Error fetching order statistics", err, h.dev)
		return
	}

	utils.WriteJSON(w, OrderStatsResponse{
		Success: true,
		Data:    OrderStatsEntityToJSON(stats),
	}, http.StatusOK)
}

// Create persists a new order.
// @Summary      Create order
// @Description  Requires userId, a non-empty items array and totalAmount; the order number and pending status are assigned server side
// @Tags         orders
// @Param        order  body      CreateOrderRequest  true  "Order to create"
// @Success      201  {object}  OrderResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		utils.WriteError(w, "Missing required fields: "+strings.Join(missing, ", "), http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		utils.WriteError(w, "Order must contain at least one item", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, CreateOrderRequestToEntity(req))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		utils.WriteInternalError(w, "Error creating order", err, h.dev)
		return
	}

	ordersCreatedTotal.Inc()
	utils.WriteJSON(w, OrderResponse{
		Success: true,
		Data:    OrderEntityToJSON(order),
		Message: "Order created successfully",
	}, http.StatusCreated)
}

// Update modifies an order resolved by store uid or numeric id.
// @Summary      Update order
// @Tags         orders
// @Param        id     path      string              true  "Order uid or numeric id"
// @Param        order  body      UpdateOrderRequest  true  "Fields to update"
// @Success      200  {object}  OrderResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ref, ok := h.orderRef(w, r)
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.UpdateOrder(ctx, ref, UpdateOrderRequestToEntity(req))
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update order", slog.Any("error", err))
		utils.WriteInternalError(w, "Error updating order", err, h.dev)
		return
	}

	ordersUpdatedTotal.Inc()
	utils.WriteJSON(w, OrderResponse{
		Success: true,
		Data:    OrderEntityToJSON(order),
		Message: "Order updated successfully",
	}, http.StatusOK)
}

// DeleteOrderResponse reports which order was removed
type DeleteOrderResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    DeletedOrderID `json:"data"`
}

type DeletedOrderID struct {
	ID string `json:"id"`
}

// Delete removes an order resolved by store uid or numeric id.
// @Summary      Delete order
// @Tags         orders
// @Param        id   path      string  true  "Order uid or numeric id"
// @Success      200  {object}  DeleteOrderResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ref, ok := h.orderRef(w, r)
	if !ok {
		return
	}

	uid, err := h.svc.DeleteOrder(ctx, ref)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete order", slog.Any("error", err))
		utils.WriteInternalError(w, "Error deleting order", err, h.dev)
		return
	}

	ordersDeletedTotal.Inc()
	utils.WriteJSON(w, DeleteOrderResponse{
		Success: true,
		Message: "Order deleted successfully",
		Data:    DeletedOrderID{ID: uid.String()},
	}, http.StatusOK)
}

// SearchOrdersResponse is the search result envelope
type SearchOrdersResponse struct {
	Success     bool    `json:"success"`
	Data        []Order `json:"data"`
	SearchQuery string  `json:"searchQuery"`
	ResultCount int     `json:"resultCount"`
}

// Search matches orders by substring across a caller-chosen field list.
// @Summary      Search orders
// @Tags         orders
// @Param        q       query  string  true   "Search term"
// @Param        fields  query  string  false  "Comma-separated field list"  default(orderNumber,customerInfo.name,customerInfo.email)
// @Success      200  {object}  SearchOrdersResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/orders/search [get]
func (h *OrderHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query().Get("q")
	if q == "" {
		utils.WriteError(w, "Search query is required", http.StatusBadRequest)
		return
	}

	orders, err := h.svc.SearchOrders(ctx, r.URL.Query().Get("fields"), q)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to search orders", slog.Any("error", err))
		utils.WriteInternalError(w, "Error searching orders", err, h.dev)
		return
	}

	data := OrdersEntityToJSON(orders)
	utils.WriteJSON(w, SearchOrdersResponse{
		Success:     true,
		Data:        data,
		SearchQuery: q,
		ResultCount: len(data),
	}, http.StatusOK)
}

// orderRef extracts and parses the id path parameter. An empty or whitespace
// id is a 400; an id that is neither a uid nor a non-negative integer cannot
// match anything and is reported as a 404.
func (h *OrderHandler) orderRef(w http.ResponseWriter, r *http.Request) (entities.OrderRef, bool) {
	raw := chi.URLParam(r, "id")
	if strings.TrimSpace(raw) == "" {
		utils.WriteError(w, "Order ID is required", http.StatusBadRequest)
		return entities.OrderRef{}, false
	}

	ref, err := entities.ParseOrderRef(raw)
	if err != nil {
		utils.WriteError(w, "Order not found", http.StatusNotFound)
		return entities.OrderRef{}, false
	}
	return ref, true
}
