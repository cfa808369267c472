// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func newTestTodoService(t *testing.T) (TodoService, *mock.MockTodoRepository, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	todos := mock.NewMockTodoRepository(ctrl)
	users := mock.NewMockUserRepository(ctrl)

	return NewTodoService(todos, users, logger.Nop()), todos, users
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestTodoService_Create(t *testing.T) {
	t.Run("trims and links to owner", func(t *testing.T) {
		svc, todos, users := newTestTodoService(t)
		ctx := context.Background()

		users.EXPECT().ExistsByID(ctx, int64(1)).Return(true, nil)
		todos.EXPECT().Create(ctx, models.Todo{UserID: 1, Title: "Buy milk", Description: strPtr("2 litres")}).
			Return(models.Todo{TodoID: 10, UserID: 1, Title: "Buy milk", Description: strPtr("2 litres")}, nil)

		todo, err := svc.Create(ctx, &models.NewTodo{Title: "  Buy milk ", Description: strPtr(" 2 litres ")}, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(10), todo.TodoID)
		assert.False(t, todo.Done)
	})

	t.Run("owner missing", func(t *testing.T) {
		svc, _, users := newTestTodoService(t)
		users.EXPECT().ExistsByID(gomock.Any(), int64(9)).Return(false, nil)

		_, err := svc.Create(context.Background(), &models.NewTodo{Title: "x"}, 9)
		assert.Equal(t, KindNotFound, KindOf(err))
		assert.Equal(t, "user not found with id: 9", err.Error())
	})

	t.Run("owner deleted before insert", func(t *testing.T) {
		svc, todos, users := newTestTodoService(t)
		users.EXPECT().ExistsByID(gomock.Any(), int64(9)).Return(true, nil)
		todos.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Todo{}, store.ErrTodoOwnerNotFound)

		_, err := svc.Create(context.Background(), &models.NewTodo{Title: "x"}, 9)
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("store failure", func(t *testing.T) {
		svc, todos, users := newTestTodoService(t)
		users.EXPECT().ExistsByID(gomock.Any(), int64(1)).Return(true, nil)
		todos.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Todo{}, errDB)

		_, err := svc.Create(context.Background(), &models.NewTodo{Title: "x"}, 1)
		assert.Equal(t, KindServiceFailure, KindOf(err))
		assert.Equal(t, "error creating todo", Message(err))
	})
}

func TestTodoService_Create_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		in      *models.NewTodo
		userID  int64
		wantErr error
	}{
		{name: "nil data", in: nil, userID: 1, wantErr: validators.ErrNilInput},
		{name: "zero user", in: &models.NewTodo{Title: "x"}, userID: 0, wantErr: validators.ErrInvalidID},
		{name: "blank title", in: &models.NewTodo{Title: "   "}, userID: 1, wantErr: validators.ErrEmptyTitle},
		{name: "title of 101", in: &models.NewTodo{Title: strings.Repeat("t", 101)}, userID: 1, wantErr: validators.ErrTitleLength},
		{name: "description of 1001", in: &models.NewTodo{Title: "x", Description: strPtr(strings.Repeat("d", 1001))}, userID: 1, wantErr: validators.ErrDescriptionLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestTodoService(t)

			_, err := svc.Create(context.Background(), tt.in, tt.userID)
			assert.Equal(t, KindInvalidInput, KindOf(err))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTodoService_Create_LengthBoundaries(t *testing.T) {
	svc, todos, users := newTestTodoService(t)

	users.EXPECT().ExistsByID(gomock.Any(), int64(1)).Return(true, nil)
	todos.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, todo models.Todo) (models.Todo, error) {
			todo.TodoID = 1
			return todo, nil
		},
	)

	todo, err := svc.Create(context.Background(), &models.NewTodo{
		Title:       strings.Repeat("t", 100),
		Description: strPtr(strings.Repeat("d", 1000)),
	}, 1)
	require.NoError(t, err)
	assert.Len(t, todo.Title, 100)
}

// ── reads ────────────────────────────────────────────────────────────────────

func TestTodoService_GetByID(t *testing.T) {
	svc, todos, _ := newTestTodoService(t)

	todos.EXPECT().FindByID(gomock.Any(), int64(1)).Return(models.Todo{TodoID: 1, Title: "a"}, nil)
	todos.EXPECT().FindByID(gomock.Any(), int64(2)).Return(models.Todo{}, store.ErrTodoNotFound)

	todo, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "a", todo.Title)

	_, err = svc.GetByID(context.Background(), 2)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "todo not found with id: 2", err.Error())

	_, err = svc.GetByID(context.Background(), 0)
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestTodoService_ListByUser(t *testing.T) {
	t.Run("owner must exist", func(t *testing.T) {
		svc, _, users := newTestTodoService(t)
		users.EXPECT().ExistsByID(gomock.Any(), int64(4)).Return(false, nil)

		_, err := svc.ListByUser(context.Background(), 4)
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("by status", func(t *testing.T) {
		svc, todos, users := newTestTodoService(t)
		users.EXPECT().ExistsByID(gomock.Any(), int64(4)).Return(true, nil)
		todos.EXPECT().FindByUserAndDone(gomock.Any(), int64(4), true).Return([]models.Todo{{TodoID: 1, Done: true}}, nil)

		list, err := svc.ListByUserAndStatus(context.Background(), 4, true)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("owner check failure", func(t *testing.T) {
		svc, _, users := newTestTodoService(t)
		users.EXPECT().ExistsByID(gomock.Any(), int64(4)).Return(false, errDB)

		_, err := svc.ListByUser(context.Background(), 4)
		assert.Equal(t, KindServiceFailure, KindOf(err))
		assert.Equal(t, "error retrieving todos for user", Message(err))
	})

	t.Run("all todos", func(t *testing.T) {
		svc, todos, _ := newTestTodoService(t)
		todos.EXPECT().FindAll(gomock.Any()).Return([]models.Todo{{TodoID: 1}, {TodoID: 2}}, nil)

		list, err := svc.ListAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})
}

// ── writes ───────────────────────────────────────────────────────────────────

func TestTodoService_Update(t *testing.T) {
	stored := models.Todo{TodoID: 7, UserID: 1, Title: "Buy milk"}

	t.Run("changes only provided fields", func(t *testing.T) {
		svc, todos, _ := newTestTodoService(t)
		want := models.Todo{TodoID: 7, UserID: 1, Title: "Buy oat milk", Done: true}

		todos.EXPECT().FindByID(gomock.Any(), int64(7)).Return(stored, nil)
		todos.EXPECT().Update(gomock.Any(), want).Return(want, nil)

		done := true
		todo, err := svc.Update(context.Background(), 7, &models.TodoUpdate{Title: strPtr(" Buy oat milk "), Done: &done})
		require.NoError(t, err)
		assert.Equal(t, want, todo)
	})

	t.Run("invalid new title", func(t *testing.T) {
		svc, todos, _ := newTestTodoService(t)
		todos.EXPECT().FindByID(gomock.Any(), int64(7)).Return(stored, nil)

		_, err := svc.Update(context.Background(), 7, &models.TodoUpdate{Title: strPtr(" ")})
		assert.ErrorIs(t, err, validators.ErrEmptyTitle)
	})

	t.Run("missing todo", func(t *testing.T) {
		svc, todos, _ := newTestTodoService(t)
		todos.EXPECT().FindByID(gomock.Any(), int64(7)).Return(models.Todo{}, store.ErrTodoNotFound)

		_, err := svc.Update(context.Background(), 7, &models.TodoUpdate{})
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("nil data", func(t *testing.T) {
		svc, _, _ := newTestTodoService(t)
		_, err := svc.Update(context.Background(), 7, nil)
		assert.Equal(t, KindInvalidInput, KindOf(err))
	})
}

func TestTodoService_ToggleDone_Twice(t *testing.T) {
	svc, todos, _ := newTestTodoService(t)

	current := models.Todo{TodoID: 7, Title: "Buy milk"}
	todos.EXPECT().FindByID(gomock.Any(), int64(7)).DoAndReturn(
		func(context.Context, int64) (models.Todo, error) { return current, nil },
	).Times(2)
	todos.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, todo models.Todo) (models.Todo, error) {
			current = todo
			return todo, nil
		},
	).Times(2)

	first, err := svc.ToggleDone(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, first.Done)

	second, err := svc.ToggleDone(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, second.Done)
}

func TestTodoService_Delete(t *testing.T) {
	svc, todos, _ := newTestTodoService(t)

	todos.EXPECT().DeleteByID(gomock.Any(), int64(1)).Return(nil)
	todos.EXPECT().DeleteByID(gomock.Any(), int64(2)).Return(store.ErrTodoNotFound)

	assert.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, KindNotFound, KindOf(svc.Delete(context.Background(), 2)))
}

func TestTodoService_DeleteAllForUser(t *testing.T) {
	t.Run("deletes exactly the owner's todos", func(t *testing.T) {
		svc, todos, users := newTestTodoService(t)

		users.EXPECT().ExistsByID(gomock.Any(), int64(1)).Return(true, nil)
		todos.EXPECT().FindByUser(gomock.Any(), int64(1)).Return([]models.Todo{{TodoID: 3}, {TodoID: 8}}, nil)
		todos.EXPECT().DeleteAll(gomock.Any(), []int64{3, 8}).Return(int64(2), nil)

		n, err := svc.DeleteAllForUser(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("missing owner", func(t *testing.T) {
		svc, _, users := newTestTodoService(t)
		users.EXPECT().ExistsByID(gomock.Any(), int64(1)).Return(false, nil)

		_, err := svc.DeleteAllForUser(context.Background(), 1)
		assert.Equal(t, KindNotFound, KindOf(err))
	})
}

// ── counts and statistics ────────────────────────────────────────────────────

func TestTodoService_Counts(t *testing.T) {
	svc, todos, users := newTestTodoService(t)

	todos.EXPECT().Count(gomock.Any()).Return(int64(6), nil)
	users.EXPECT().ExistsByID(gomock.Any(), int64(1)).Return(true, nil).Times(2)
	todos.EXPECT().CountByUser(gomock.Any(), int64(1)).Return(int64(4), nil)
	todos.EXPECT().CountByUserAndDone(gomock.Any(), int64(1), true).Return(int64(1), nil)
	users.EXPECT().ExistsByID(gomock.Any(), int64(2)).Return(false, nil)

	n, err := svc.CountAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)

	n, err = svc.CountByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	n, err = svc.CountDoneByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = svc.CountDoneByUser(context.Background(), 2)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestTodoService_Statistics(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		done  int64
		want  models.TodoStatistics
	}{
		{name: "no todos", want: models.TodoStatistics{}},
		{name: "all done", total: 2, done: 2, want: models.TodoStatistics{TotalTodos: 2, DoneTodos: 2, CompletionRate: 100}},
		{name: "one of four", total: 4, done: 1, want: models.TodoStatistics{TotalTodos: 4, DoneTodos: 1, PendingTodos: 3, CompletionRate: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, todos, _ := newTestTodoService(t)
			todos.EXPECT().Count(gomock.Any()).Return(tt.total, nil)
			todos.EXPECT().CountByDone(gomock.Any(), true).Return(tt.done, nil)

			stats, err := svc.Statistics(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, stats)
			assert.Equal(t, stats.TotalTodos, stats.DoneTodos+stats.PendingTodos)
		})
	}
}
