package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecomlab/storefront-admin/internal/entities"
	"github.com/ecomlab/storefront-admin/internal/handler"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	listUsers   func(ctx context.Context) ([]entities.User, error)
	getUserByID func(ctx context.Context, raw string) (entities.User, error)
}

func (f *fakeUserService) ListUsers(ctx context.Context) ([]entities.User, error) {
	return f.listUsers(ctx)
}

func (f *fakeUserService) GetUserByID(ctx context.Context, raw string) (entities.User, error) {
	return f.getUserByID(ctx, raw)
}

func userRouter(svc handler.UserService) chi.Router {
	r := chi.NewRouter()
	handler.NewUserHandler(testLogger(), svc, false).Init(r)
	return r
}

func sampleUser(uid uuid.UUID) entities.User {
	return entities.User{
		UID:           uid,
		NumericID:     3,
		FirstName:     "Jane",
		LastName:      "Smith",
		Email:         "jane@example.com",
		Age:           34,
		Gender:        "F",
		State:         "Oregon",
		StreetAddress: "100 Main St",
		PostalCode:    "97201",
		City:          "Portland",
		Country:       "United States",
		TrafficSource: "Search",
		CreatedAt:     time.Date(2024, 11, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestListUsers(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uid := uuid.New()
		svc := &fakeUserService{
			listUsers: func(context.Context) ([]entities.User, error) {
				return []entities.User{sampleUser(uid)}, nil
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		userRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var res handler.UsersResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.True(t, res.Success)
		require.Len(t, res.Data, 1)
		assert.Equal(t, uid.String(), res.Data[0].UID)
		assert.Equal(t, "Jane", res.Data[0].FirstName)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc := &fakeUserService{
			listUsers: func(context.Context) ([]entities.User, error) {
				return nil, errors.New("connection refused")
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		userRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Error fetching users", decodeError(t, rec).Message)
	})
}

func TestGetUser(t *testing.T) {
	uid := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc := &fakeUserService{
			getUserByID: func(_ context.Context, raw string) (entities.User, error) {
				assert.Equal(t, uid.String(), raw)
				return sampleUser(uid), nil
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/"+uid.String(), nil)
		userRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var res handler.UserResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, uid.String(), res.Data.UID)
		assert.Equal(t, int64(3), res.Data.ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := &fakeUserService{
			getUserByID: func(context.Context, string) (entities.User, error) {
				return entities.User{}, entities.ErrUserNotFound
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/not-a-uid", nil)
		userRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", decodeError(t, rec).Message)
	})
}
