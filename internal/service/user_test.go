package service_test

import (
	"context"
	"testing"

	"github.com/ecomlab/storefront-admin/internal/entities"
	"github.com/ecomlab/storefront-admin/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	listUsers   func(ctx context.Context) ([]entities.User, error)
	getUserByUID func(ctx context.Context, uid uuid.UUID) (entities.User, error)
}

func (f *fakeUserRepo) ListUsers(ctx context.Context) ([]entities.User, error) {
	return f.listUsers(ctx)
}

func (f *fakeUserRepo) GetUserByUID(ctx context.Context, uid uuid.UUID) (entities.User, error) {
	return f.getUserByUID(ctx, uid)
}

func TestGetUserByID(t *testing.T) {
	uid := uuid.New()

	t.Run("resolves by uid", func(t *testing.T) {
		want := entities.User{UID: uid, NumericID: 3, FirstName: "Jane"}
		repo := &fakeUserRepo{
			getUserByUID: func(_ context.Context, got uuid.UUID) (entities.User, error) {
				assert.Equal(t, uid, got)
				return want, nil
			},
		}
		svc := service.NewUserService(testLogger(), repo)

		user, err := svc.GetUserByID(context.Background(), uid.String())

		require.NoError(t, err)
		assert.Equal(t, want, user)
	})

	t.Run("numeric ids never resolve users", func(t *testing.T) {
		repoCalled := false
		repo := &fakeUserRepo{
			getUserByUID: func(context.Context, uuid.UUID) (entities.User, error) {
				repoCalled = true
				return entities.User{}, nil
			},
		}
		svc := service.NewUserService(testLogger(), repo)

		_, err := svc.GetUserByID(context.Background(), "42")

		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.False(t, repoCalled)
	})
}

func TestListUsers(t *testing.T) {
	users := []entities.User{{UID: uuid.New(), FirstName: "Jane"}}
	repo := &fakeUserRepo{
		listUsers: func(context.Context) ([]entities.User, error) {
			return users, nil
		},
	}
	svc := service.NewUserService(testLogger(), repo)

	got, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, users, got)
}
