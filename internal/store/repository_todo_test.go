// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

const selectTodosSQL = `SELECT todo_id, user_id, title, description, done, created_at, updated_at FROM todos`

var todoColumnsRow = []string{"todo_id", "user_id", "title", "description", "done", "created_at", "updated_at"}

func newTestTodoRepo(t *testing.T) (TodoRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewTodoRepository(db, logger.Nop()), mock
}

func strPtr(s string) *string { return &s }

func TestTodoRepository_Create(t *testing.T) {
	const insertSQL = `INSERT INTO todos (user_id,title,description,done,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6) RETURNING todo_id`

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestTodoRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
			WithArgs(int64(1), "Buy milk", nil, false, testNow, testNow).
			WillReturnRows(sqlmock.NewRows([]string{"todo_id"}).AddRow(11))

		todo, err := repo.Create(testContext(), models.Todo{UserID: 1, Title: "Buy milk"})
		require.NoError(t, err)
		assert.Equal(t, int64(11), todo.TodoID)
		assert.False(t, todo.Done)
		assert.Equal(t, testNow, todo.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("with description", func(t *testing.T) {
		repo, mock := newTestTodoRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
			WithArgs(int64(1), "Buy milk", "2 litres", true, testNow, testNow).
			WillReturnRows(sqlmock.NewRows([]string{"todo_id"}).AddRow(12))

		todo, err := repo.Create(testContext(), models.Todo{UserID: 1, Title: "Buy milk", Description: strPtr("2 litres"), Done: true})
		require.NoError(t, err)
		assert.Equal(t, int64(12), todo.TodoID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("owner missing", func(t *testing.T) {
		repo, mock := newTestTodoRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
			WillReturnError(pgError(pgerrcode.ForeignKeyViolation, "todos_user_id_fkey"))

		_, err := repo.Create(testContext(), models.Todo{UserID: 404, Title: "x"})
		assert.ErrorIs(t, err, ErrTodoOwnerNotFound)
	})

	t.Run("driver failure", func(t *testing.T) {
		repo, mock := newTestTodoRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).WillReturnError(errors.New("boom"))

		_, err := repo.Create(testContext(), models.Todo{UserID: 1, Title: "x"})
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestTodoRepository_FindByID(t *testing.T) {
	t.Run("nullable description", func(t *testing.T) {
		repo, mock := newTestTodoRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectTodosSQL + ` WHERE todo_id = $1 ORDER BY todo_id`)).
			WithArgs(int64(11)).
			WillReturnRows(sqlmock.NewRows(todoColumnsRow).
				AddRow(11, 1, "Buy milk", nil, false, testNow, testNow))

		todo, err := repo.FindByID(testContext(), 11)
		require.NoError(t, err)
		assert.Nil(t, todo.Description)
		assert.Equal(t, "Buy milk", todo.Title)
	})

	t.Run("with description", func(t *testing.T) {
		repo, mock := newTestTodoRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectTodosSQL)).
			WillReturnRows(sqlmock.NewRows(todoColumnsRow).
				AddRow(11, 1, "Buy milk", "2 litres", true, testNow, testNow))

		todo, err := repo.FindByID(testContext(), 11)
		require.NoError(t, err)
		require.NotNil(t, todo.Description)
		assert.Equal(t, "2 litres", *todo.Description)
		assert.True(t, todo.Done)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestTodoRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectTodosSQL)).WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByID(testContext(), 11)
		assert.ErrorIs(t, err, ErrTodoNotFound)
	})
}

func TestTodoRepository_FindByUserAndDone(t *testing.T) {
	repo, mock := newTestTodoRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectTodosSQL + ` WHERE user_id = $1 ORDER BY todo_id`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(todoColumnsRow).
			AddRow(1, 1, "a", nil, false, testNow, testNow).
			AddRow(2, 1, "b", nil, true, testNow, testNow))
	mock.ExpectQuery(regexp.QuoteMeta(selectTodosSQL + ` WHERE done = $1 AND user_id = $2 ORDER BY todo_id`)).
		WithArgs(true, int64(1)).
		WillReturnRows(sqlmock.NewRows(todoColumnsRow).
			AddRow(2, 1, "b", nil, true, testNow, testNow))
	mock.ExpectQuery(regexp.QuoteMeta(selectTodosSQL + ` ORDER BY todo_id`)).
		WillReturnRows(sqlmock.NewRows(todoColumnsRow))

	todos, err := repo.FindByUser(testContext(), 1)
	require.NoError(t, err)
	assert.Len(t, todos, 2)

	done, err := repo.FindByUserAndDone(testContext(), 1, true)
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, int64(2), done[0].TodoID)

	all, err := repo.FindAll(testContext())
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_Update(t *testing.T) {
	const updateSQL = `UPDATE todos SET title = $1, description = $2, done = $3, updated_at = $4 WHERE todo_id = $5`
	todo := models.Todo{TodoID: 11, UserID: 1, Title: "Buy oat milk", Done: true}

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestTodoRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(updateSQL)).
			WithArgs("Buy oat milk", nil, true, testNow, int64(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(selectTodosSQL + ` WHERE todo_id = $1`)).
			WithArgs(int64(11)).
			WillReturnRows(sqlmock.NewRows(todoColumnsRow).
				AddRow(11, 1, "Buy oat milk", nil, true, testNow, testNow))

		updated, err := repo.Update(testContext(), todo)
		require.NoError(t, err)
		assert.True(t, updated.Done)
		assert.Equal(t, "Buy oat milk", updated.Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newTestTodoRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(updateSQL)).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Update(testContext(), todo)
		assert.ErrorIs(t, err, ErrTodoNotFound)
	})
}

func TestTodoRepository_Delete(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		repo, mock := newTestTodoRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM todos WHERE todo_id IN ($1)`)).
			WithArgs(int64(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM todos WHERE todo_id IN ($1)`)).
			WithArgs(int64(12)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, repo.DeleteByID(testContext(), 11))
		assert.ErrorIs(t, repo.DeleteByID(testContext(), 12), ErrTodoNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("all listed", func(t *testing.T) {
		repo, mock := newTestTodoRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM todos WHERE todo_id IN ($1,$2,$3)`)).
			WithArgs(int64(1), int64(2), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 3))

		n, err := repo.DeleteAll(testContext(), []int64{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing listed", func(t *testing.T) {
		repo, mock := newTestTodoRepo(t)

		n, err := repo.DeleteAll(testContext(), nil)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver failure", func(t *testing.T) {
		repo, mock := newTestTodoRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM todos`)).WillReturnError(errors.New("boom"))

		_, err := repo.DeleteAll(testContext(), []int64{1})
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestTodoRepository_Counts(t *testing.T) {
	repo, mock := newTestTodoRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM todos`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM todos WHERE done = $1`)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM todos WHERE user_id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM todos WHERE done = $1 AND user_id = $2`)).
		WithArgs(true, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1 FROM todos WHERE todo_id = $1 LIMIT 1`)).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	n, err := repo.Count(testContext())
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	n, err = repo.CountByDone(testContext(), true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.CountByUser(testContext(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = repo.CountByUserAndDone(testContext(), 1, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	ok, err := repo.ExistsByID(testContext(), 11)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}
