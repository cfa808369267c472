// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var errDB = errors.New("connection refused")

func newTestUserService(t *testing.T) (UserService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	return NewUserService(repo, hasher, logger.Nop()), repo, hasher
}

func strPtr(s string) *string { return &s }

// ── Register ─────────────────────────────────────────────────────────────────

func TestUserService_Register_NormalizesAndStores(t *testing.T) {
	svc, repo, hasher := newTestUserService(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().ExistsByUsername(ctx, "alice_99").Return(false, nil),
		repo.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(false, nil),
		hasher.EXPECT().Hash(" secret1 ").Return("$argon2id$hash", nil),
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "alice_99", u.Username)
				assert.Equal(t, "alice@example.com", u.Email)
				assert.Equal(t, "$argon2id$hash", u.PasswordHash)
				u.UserID = 1
				return u, nil
			},
		),
	)

	user, err := svc.Register(ctx, &models.NewUser{
		Username: "  alice_99 ",
		Email:    " Alice@Example.com ",
		Password: " secret1 ",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUserService_Register_InvalidInput(t *testing.T) {
	valid := models.NewUser{Username: "bob", Email: "bob@example.com", Password: "secret"}

	tests := []struct {
		name    string
		mutate  func(u *models.NewUser)
		wantErr error
	}{
		{name: "blank username", mutate: func(u *models.NewUser) { u.Username = "   " }, wantErr: validators.ErrEmptyUsername},
		{name: "short username", mutate: func(u *models.NewUser) { u.Username = "ab" }, wantErr: validators.ErrUsernameLength},
		{name: "long username", mutate: func(u *models.NewUser) { u.Username = strings.Repeat("a", 101) }, wantErr: validators.ErrUsernameLength},
		{name: "username with dash", mutate: func(u *models.NewUser) { u.Username = "bob-1" }, wantErr: validators.ErrUsernameCharacters},
		{name: "blank email", mutate: func(u *models.NewUser) { u.Email = "" }, wantErr: validators.ErrEmptyEmail},
		{name: "email without tld", mutate: func(u *models.NewUser) { u.Email = "bob@example" }, wantErr: validators.ErrEmailFormat},
		{name: "short password", mutate: func(u *models.NewUser) { u.Password = "12345" }, wantErr: validators.ErrPasswordLength},
		{name: "empty password", mutate: func(u *models.NewUser) { u.Password = "" }, wantErr: validators.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no repository calls are expected
			svc, _, _ := newTestUserService(t)

			in := valid
			tt.mutate(&in)

			_, err := svc.Register(context.Background(), &in)
			require.Error(t, err)
			assert.Equal(t, KindInvalidInput, KindOf(err))
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_Register_NilInput(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	_, err := svc.Register(context.Background(), nil)
	assert.Equal(t, KindInvalidInput, KindOf(err))
	assert.ErrorIs(t, err, validators.ErrNilInput)
}

func TestUserService_Register_Duplicates(t *testing.T) {
	t.Run("username taken", func(t *testing.T) {
		svc, repo, _ := newTestUserService(t)
		repo.EXPECT().ExistsByUsername(gomock.Any(), "bob").Return(true, nil)

		_, err := svc.Register(context.Background(), &models.NewUser{Username: "bob", Email: "bob@example.com", Password: "secret"})
		assert.Equal(t, KindInvalidInput, KindOf(err))
		assert.Equal(t, "username already exists: bob", Message(err))
	})

	t.Run("email taken ignoring case", func(t *testing.T) {
		svc, repo, _ := newTestUserService(t)
		repo.EXPECT().ExistsByUsername(gomock.Any(), "bob2").Return(false, nil)
		repo.EXPECT().ExistsByEmail(gomock.Any(), "bob@example.com").Return(true, nil)

		_, err := svc.Register(context.Background(), &models.NewUser{Username: "bob2", Email: "BOB@Example.com", Password: "secret"})
		assert.Equal(t, KindInvalidInput, KindOf(err))
		assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	})

	t.Run("constraint hit at write time", func(t *testing.T) {
		svc, repo, hasher := newTestUserService(t)
		repo.EXPECT().ExistsByUsername(gomock.Any(), "bob").Return(false, nil)
		repo.EXPECT().ExistsByEmail(gomock.Any(), "bob@example.com").Return(false, nil)
		hasher.EXPECT().Hash("secret").Return("h", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

		_, err := svc.Register(context.Background(), &models.NewUser{Username: "bob", Email: "bob@example.com", Password: "secret"})
		assert.Equal(t, KindInvalidInput, KindOf(err))
		assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	})
}

func TestUserService_Register_StoreFailure(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	repo.EXPECT().ExistsByUsername(gomock.Any(), "bob").Return(false, errDB)

	_, err := svc.Register(context.Background(), &models.NewUser{Username: "bob", Email: "bob@example.com", Password: "secret"})
	require.Error(t, err)
	assert.Equal(t, KindServiceFailure, KindOf(err))
	assert.ErrorIs(t, err, errDB)
	assert.Equal(t, "error saving user data: service failure: connection refused", err.Error())
	assert.Equal(t, "error saving user data", Message(err))
}

// ── lookups ──────────────────────────────────────────────────────────────────

func TestUserService_GetByID(t *testing.T) {
	t.Run("non-positive id", func(t *testing.T) {
		svc, _, _ := newTestUserService(t)
		_, err := svc.GetByID(context.Background(), 0)
		assert.Equal(t, KindInvalidInput, KindOf(err))
	})

	t.Run("missing", func(t *testing.T) {
		svc, repo, _ := newTestUserService(t)
		repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.GetByID(context.Background(), 5)
		assert.Equal(t, KindNotFound, KindOf(err))
		assert.Equal(t, "user not found with id: 5", err.Error())
	})

	t.Run("found", func(t *testing.T) {
		svc, repo, _ := newTestUserService(t)
		repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(models.User{UserID: 5, Username: "bob"}, nil)

		user, err := svc.GetByID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo, _ := newTestUserService(t)
		repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(models.User{}, errDB)

		_, err := svc.GetByID(context.Background(), 5)
		assert.Equal(t, KindServiceFailure, KindOf(err))
	})
}

func TestUserService_GetByUsernameAndEmail(t *testing.T) {
	t.Run("blank username", func(t *testing.T) {
		svc, _, _ := newTestUserService(t)
		_, _, err := svc.GetByUsername(context.Background(), " ")
		assert.Equal(t, KindInvalidInput, KindOf(err))
	})

	t.Run("absent username is not an error", func(t *testing.T) {
		svc, repo, _ := newTestUserService(t)
		repo.EXPECT().FindByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)

		_, found, err := svc.GetByUsername(context.Background(), "ghost")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("email is normalized before lookup", func(t *testing.T) {
		svc, repo, _ := newTestUserService(t)
		repo.EXPECT().FindByEmail(gomock.Any(), "bob@example.com").Return(models.User{UserID: 2}, nil)

		user, found, err := svc.GetByEmail(context.Background(), "  Bob@Example.COM ")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, int64(2), user.UserID)
	})

	t.Run("email store failure", func(t *testing.T) {
		svc, repo, _ := newTestUserService(t)
		repo.EXPECT().FindByEmail(gomock.Any(), "bob@example.com").Return(models.User{}, errDB)

		_, found, err := svc.GetByEmail(context.Background(), "bob@example.com")
		assert.False(t, found)
		assert.Equal(t, KindServiceFailure, KindOf(err))
	})
}

func TestUserService_ExistsChecks(t *testing.T) {
	svc, repo, _ := newTestUserService(t)

	repo.EXPECT().ExistsByUsername(gomock.Any(), "bob").Return(true, nil)
	repo.EXPECT().ExistsByEmail(gomock.Any(), "bob@example.com").Return(false, nil)

	ok, err := svc.ExistsByUsername(context.Background(), " bob ")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.ExistsByEmail(context.Background(), "BOB@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.ExistsByEmail(context.Background(), "")
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestUserService_Update(t *testing.T) {
	stored := models.User{UserID: 3, Username: "bob", Email: "bob@example.com"}

	t.Run("nil data", func(t *testing.T) {
		svc, _, _ := newTestUserService(t)
		_, err := svc.Update(context.Background(), 3, nil)
		assert.Equal(t, KindInvalidInput, KindOf(err))
	})

	t.Run("missing user", func(t *testing.T) {
		svc, repo, _ := newTestUserService(t)
		repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.Update(context.Background(), 3, &models.UserUpdate{Username: strPtr("bobby")})
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("resubmitting own values skips uniqueness checks", func(t *testing.T) {
		svc, repo, _ := newTestUserService(t)
		repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), stored).Return(stored, nil)

		user, err := svc.Update(context.Background(), 3, &models.UserUpdate{
			Username: strPtr(" bob "),
			Email:    strPtr("BOB@example.com"),
		})
		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("username taken by another user", func(t *testing.T) {
		svc, repo, _ := newTestUserService(t)
		repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(stored, nil)
		repo.EXPECT().ExistsByUsername(gomock.Any(), "alice").Return(true, nil)

		_, err := svc.Update(context.Background(), 3, &models.UserUpdate{Username: strPtr("alice")})
		assert.Equal(t, KindInvalidInput, KindOf(err))
		assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	})

	t.Run("changed email is validated", func(t *testing.T) {
		svc, repo, _ := newTestUserService(t)
		repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(stored, nil)

		_, err := svc.Update(context.Background(), 3, &models.UserUpdate{Email: strPtr("not-an-email")})
		assert.ErrorIs(t, err, validators.ErrEmailFormat)
	})

	t.Run("changes both fields", func(t *testing.T) {
		svc, repo, _ := newTestUserService(t)
		want := models.User{UserID: 3, Username: "bobby", Email: "bobby@example.com"}

		repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(stored, nil)
		repo.EXPECT().ExistsByUsername(gomock.Any(), "bobby").Return(false, nil)
		repo.EXPECT().ExistsByEmail(gomock.Any(), "bobby@example.com").Return(false, nil)
		repo.EXPECT().Update(gomock.Any(), want).Return(want, nil)

		user, err := svc.Update(context.Background(), 3, &models.UserUpdate{
			Username: strPtr("bobby"),
			Email:    strPtr(" Bobby@Example.com"),
		})
		require.NoError(t, err)
		assert.Equal(t, want, user)
	})

	t.Run("email constraint hit at write time", func(t *testing.T) {
		svc, repo, _ := newTestUserService(t)
		repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(stored, nil)
		repo.EXPECT().ExistsByEmail(gomock.Any(), "new@example.com").Return(false, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

		_, err := svc.Update(context.Background(), 3, &models.UserUpdate{Email: strPtr("new@example.com")})
		assert.Equal(t, KindInvalidInput, KindOf(err))
		assert.Equal(t, "email already exists: new@example.com", Message(err))
	})
}

func TestUserService_Delete(t *testing.T) {
	svc, repo, _ := newTestUserService(t)

	repo.EXPECT().DeleteByID(gomock.Any(), int64(3)).Return(nil)
	repo.EXPECT().DeleteByID(gomock.Any(), int64(4)).Return(store.ErrUserNotFound)
	repo.EXPECT().DeleteByID(gomock.Any(), int64(5)).Return(errDB)

	assert.NoError(t, svc.Delete(context.Background(), 3))
	assert.Equal(t, KindNotFound, KindOf(svc.Delete(context.Background(), 4)))
	assert.Equal(t, KindServiceFailure, KindOf(svc.Delete(context.Background(), 5)))
	assert.Equal(t, KindInvalidInput, KindOf(svc.Delete(context.Background(), -1)))
}

// ── counts, search, statistics ───────────────────────────────────────────────

func TestUserService_CountCreatedAfter(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().CountCreatedAfter(gomock.Any(), since).Return(int64(4), nil)

	n, err := svc.CountCreatedAfter(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	_, err = svc.CountCreatedAfter(context.Background(), time.Time{})
	assert.ErrorIs(t, err, validators.ErrZeroTimestamp)
}

func TestUserService_Search(t *testing.T) {
	svc, repo, _ := newTestUserService(t)

	repo.EXPECT().Search(gomock.Any(), "ali").Return([]models.User{{UserID: 1, Username: "alice"}}, nil)

	users, err := svc.Search(context.Background(), "  ali ")
	require.NoError(t, err)
	assert.Len(t, users, 1)

	_, err = svc.Search(context.Background(), " \t")
	assert.ErrorIs(t, err, validators.ErrEmptySearchTerm)
}

func TestUserService_IsActive(t *testing.T) {
	svc, repo, _ := newTestUserService(t)

	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, Username: "bob", Email: "bob@example.com"}, nil)
	repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(models.User{}, store.ErrUserNotFound)

	active, err := svc.IsActive(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, active)

	active, err = svc.IsActive(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, active)

	_, err = svc.IsActive(context.Background(), 0)
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestUserService_Statistics(t *testing.T) {
	t.Run("inactive is total minus active", func(t *testing.T) {
		svc, repo, _ := newTestUserService(t)
		repo.EXPECT().Count(gomock.Any()).Return(int64(5), nil)
		repo.EXPECT().CountActive(gomock.Any()).Return(int64(3), nil)

		stats, err := svc.Statistics(context.Background())
		require.NoError(t, err)
		assert.Equal(t, models.UserStatistics{TotalUsers: 5, ActiveUsers: 3, InactiveUsers: 2}, stats)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo, _ := newTestUserService(t)
		repo.EXPECT().Count(gomock.Any()).Return(int64(0), errDB)

		_, err := svc.Statistics(context.Background())
		assert.Equal(t, KindServiceFailure, KindOf(err))
	})
}

func TestUserService_ListAllAndCount(t *testing.T) {
	svc, repo, _ := newTestUserService(t)

	repo.EXPECT().FindAll(gomock.Any()).Return([]models.User{{UserID: 1}, {UserID: 2}}, nil)
	repo.EXPECT().Count(gomock.Any()).Return(int64(2), nil)

	users, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)

	n, err := svc.CountAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
