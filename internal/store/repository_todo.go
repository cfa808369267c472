// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// todoRepository is the SQL implementation of [TodoRepository].
type todoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts todo and returns it with TodoID, CreatedAt and UpdatedAt
// assigned. A missing owner yields [ErrTodoOwnerNotFound].
func (r *todoRepository) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	now := r.db.timestamp()
	todo.CreatedAt, todo.UpdatedAt = now, now

	query, args, err := buildInsertTodoQuery(r.db.builder(), todo)
	if err != nil {
		return models.Todo{}, buildError(ctx, "todoRepository.Create", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&todo.TodoID); err != nil {
		log.Err(err).
			Str("func", "todoRepository.Create").
			Int64("user_id", todo.UserID).
			Msg("failed to insert todo")
		return models.Todo{}, r.translateWriteError(err)
	}

	log.Debug().
		Str("func", "todoRepository.Create").
		Int64("todo_id", todo.TodoID).
		Int64("user_id", todo.UserID).
		Msg("todo inserted")

	return todo, nil
}

func (r *todoRepository) FindByID(ctx context.Context, id int64) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTodosQuery(r.db.builder(), sq.Eq{"todo_id": id})
	if err != nil {
		return models.Todo{}, buildError(ctx, "todoRepository.FindByID", err)
	}

	todo, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, ErrTodoNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.FindByID").
			Int64("todo_id", id).
			Msg("failed to scan todo row")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return todo, nil
}

func (r *todoRepository) FindAll(ctx context.Context) ([]models.Todo, error) {
	return r.findMany(ctx, "todoRepository.FindAll", nil)
}

func (r *todoRepository) FindByUser(ctx context.Context, userID int64) ([]models.Todo, error) {
	return r.findMany(ctx, "todoRepository.FindByUser", sq.Eq{"user_id": userID})
}

func (r *todoRepository) FindByUserAndDone(ctx context.Context, userID int64, done bool) ([]models.Todo, error) {
	return r.findMany(ctx, "todoRepository.FindByUserAndDone", sq.Eq{"user_id": userID, "done": done})
}

// Update saves Title, Description and Done of todo and refreshes UpdatedAt.
func (r *todoRepository) Update(ctx context.Context, todo models.Todo) (models.Todo, error) {
	todo.UpdatedAt = r.db.timestamp()

	query, args, err := buildUpdateTodoQuery(r.db.builder(), todo)
	if err != nil {
		return models.Todo{}, buildError(ctx, "todoRepository.Update", err)
	}

	affected, err := r.db.exec(ctx, "todoRepository.Update", query, args)
	if err != nil {
		return models.Todo{}, err
	}
	if affected == 0 {
		return models.Todo{}, ErrTodoNotFound
	}

	return r.FindByID(ctx, todo.TodoID)
}

func (r *todoRepository) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := buildDeleteTodosQuery(r.db.builder(), id)
	if err != nil {
		return buildError(ctx, "todoRepository.DeleteByID", err)
	}

	affected, err := r.db.exec(ctx, "todoRepository.DeleteByID", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}

// DeleteAll removes every listed todo in one statement. Ids that do not
// exist are ignored.
func (r *todoRepository) DeleteAll(ctx context.Context, ids []int64) (int64, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		log.Debug().
			Str("func", "todoRepository.DeleteAll").
			Msg("no todos to delete")
		return 0, nil
	}

	query, args, err := buildDeleteTodosQuery(r.db.builder(), ids...)
	if err != nil {
		return 0, buildError(ctx, "todoRepository.DeleteAll", err)
	}

	affected, err := r.db.exec(ctx, "todoRepository.DeleteAll", query, args)
	if err != nil {
		return 0, err
	}

	log.Debug().
		Str("func", "todoRepository.DeleteAll").
		Int("requested", len(ids)).
		Int64("deleted", affected).
		Msg("todos deleted")

	return affected, nil
}

func (r *todoRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query, args, err := buildTodoExistsQuery(r.db.builder(), id)
	if err != nil {
		return false, buildError(ctx, "todoRepository.ExistsByID", err)
	}
	return r.db.exists(ctx, "todoRepository.ExistsByID", query, args)
}

func (r *todoRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, "todoRepository.Count", nil)
}

func (r *todoRepository) CountByDone(ctx context.Context, done bool) (int64, error) {
	return r.count(ctx, "todoRepository.CountByDone", sq.Eq{"done": done})
}

func (r *todoRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	return r.count(ctx, "todoRepository.CountByUser", sq.Eq{"user_id": userID})
}

func (r *todoRepository) CountByUserAndDone(ctx context.Context, userID int64, done bool) (int64, error) {
	return r.count(ctx, "todoRepository.CountByUserAndDone", sq.Eq{"user_id": userID, "done": done})
}

func (r *todoRepository) translateWriteError(err error) error {
	if class, _ := r.db.classify(err); class == ForeignKeyViolation {
		return ErrTodoOwnerNotFound
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func (r *todoRepository) findMany(ctx context.Context, fn string, where sq.Sqlizer) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTodosQuery(r.db.builder(), where)
	if err != nil {
		return nil, buildError(ctx, fn, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query for todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0, 16)
	for rows.Next() {
		todo, scanErr := scanTodo(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return todos, nil
}

func (r *todoRepository) count(ctx context.Context, fn string, where sq.Sqlizer) (int64, error) {
	query, args, err := buildCountTodosQuery(r.db.builder(), where)
	if err != nil {
		return 0, buildError(ctx, fn, err)
	}
	return r.db.count(ctx, fn, query, args)
}

func scanTodo(row rowScanner) (models.Todo, error) {
	var todo models.Todo
	err := row.Scan(
		&todo.TodoID,
		&todo.UserID,
		&todo.Title,
		&todo.Description,
		&todo.Done,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	return todo, err
}
