package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ecomlab/storefront-admin/internal/entities"
	"github.com/ecomlab/storefront-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUserByID(ctx context.Context, raw string) (entities.User, error)
}

type UserHandler struct {
	logger *slog.Logger
	svc    UserService
	dev    bool
}

func NewUserHandler(logger *slog.Logger, svc UserService, dev bool) *UserHandler {
	return &UserHandler{
		logger: logger.With(slog.String("handler", "users")),
		svc:    svc,
		dev:    dev,
	}
}

func (h *UserHandler) Init(r chi.Router) {
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
	})
}

// UsersResponse wraps a user list
type UsersResponse struct {
	Success bool   `json:"success"`
	Data    []User `json:"data"`
}

// List returns all users.
// @Summary      List users
// @Tags         users
// @Success      200  {object}  UsersResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.svc.ListUsers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list users", slog.Any("error", err))
		utils.WriteInternalError(w, "Error fetching users", err, h.dev)
		return
	}

	data := make([]User, 0, len(users))
	for _, u := range users {
		data = append(data, UserEntityToJSON(u))
	}
	utils.WriteJSON(w, UsersResponse{Success: true, Data: data}, http.StatusOK)
}

// UserResponse wraps a single user
type UserResponse struct {
	Success bool `json:"success"`
	Data    User `json:"data"`
}

// Get returns one user by store uid.
// @Summary      Get user
// @Description  Users resolve by store uid only; there is no numeric id fallback
// @Tags         users
// @Param        id   path      string  true  "User uid"
// @Success      200  {object}  UserResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.svc.GetUserByID(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, entities.ErrUserNotFound) {
		utils.WriteError(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		utils.WriteInternalError(w, "Error fetching user", err, h.dev)
		return
	}

	utils.WriteJSON(w, UserResponse{Success: true, Data: UserEntityToJSON(user)}, http.StatusOK)
}
