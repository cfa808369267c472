// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// todoService is the concrete implementation of [TodoService].
// User-scoped operations first make sure the owner exists, so an unknown
// user is reported as not found instead of an empty result.
type todoService struct {
	todoRepository store.TodoRepository
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewTodoService(todoRepository store.TodoRepository, userRepository store.UserRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		userRepository: userRepository,
		validator:      validators.NewTodoValidator(),
		logger:         logger,
	}
}

// Create stores a new todo for an existing user. Title and description are
// trimmed before validation.
func (s *todoService) Create(ctx context.Context, newTodo *models.NewTodo, userID int64) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if newTodo == nil {
		log.Warn().Str("func", "todoService.Create").Msg("todo creation failed: data is nil")
		return models.Todo{}, invalidInput(validators.ErrNilInput)
	}
	if err := validators.ValidateID(userID); err != nil {
		log.Warn().Str("func", "todoService.Create").Int64("user_id", userID).Msg("invalid user id")
		return models.Todo{}, invalidInput(err)
	}

	in := validators.NormalizeNewTodo(*newTodo)
	if err := s.validator.Validate(ctx, in); err != nil {
		log.Warn().Err(err).Str("func", "todoService.Create").Int64("user_id", userID).Msg("todo creation failed: invalid data")
		return models.Todo{}, invalidInput(err)
	}

	log.Debug().Str("func", "todoService.Create").Int64("user_id", userID).Msg("creating todo")

	if err := s.requireUser(ctx, "todoService.Create", userID, "error creating todo"); err != nil {
		return models.Todo{}, err
	}

	todo, err := s.todoRepository.Create(ctx, models.Todo{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Done:        in.Done,
	})
	if errors.Is(err, store.ErrTodoOwnerNotFound) {
		log.Warn().Str("func", "todoService.Create").Int64("user_id", userID).Msg("owner deleted during todo creation")
		return models.Todo{}, notFound(err, "user not found with id: %d", userID)
	}
	if err != nil {
		log.Err(err).Str("func", "todoService.Create").Int64("user_id", userID).Msg("database error while creating todo")
		return models.Todo{}, failure("error creating todo", err)
	}

	log.Info().
		Str("func", "todoService.Create").
		Int64("todo_id", todo.TodoID).
		Int64("user_id", userID).
		Msg("todo created")
	return todo, nil
}

func (s *todoService) GetByID(ctx context.Context, id int64) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateID(id); err != nil {
		log.Warn().Str("func", "todoService.GetByID").Int64("todo_id", id).Msg("invalid todo id")
		return models.Todo{}, invalidInput(err)
	}

	todo, err := s.findTodo(ctx, "todoService.GetByID", id, "error accessing todo data")
	if err != nil {
		return models.Todo{}, err
	}

	log.Debug().Str("func", "todoService.GetByID").Int64("todo_id", id).Msg("todo retrieved")
	return todo, nil
}

func (s *todoService) ListByUser(ctx context.Context, userID int64) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateID(userID); err != nil {
		log.Warn().Str("func", "todoService.ListByUser").Int64("user_id", userID).Msg("invalid user id")
		return nil, invalidInput(err)
	}
	if err := s.requireUser(ctx, "todoService.ListByUser", userID, "error retrieving todos for user"); err != nil {
		return nil, err
	}

	todos, err := s.todoRepository.FindByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "todoService.ListByUser").Int64("user_id", userID).Msg("database error while retrieving todos")
		return nil, failure("error retrieving todos for user", err)
	}

	log.Info().Str("func", "todoService.ListByUser").Int64("user_id", userID).Int("count", len(todos)).Msg("todos retrieved")
	return todos, nil
}

func (s *todoService) ListByUserAndStatus(ctx context.Context, userID int64, done bool) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateID(userID); err != nil {
		log.Warn().Str("func", "todoService.ListByUserAndStatus").Int64("user_id", userID).Msg("invalid user id")
		return nil, invalidInput(err)
	}
	if err := s.requireUser(ctx, "todoService.ListByUserAndStatus", userID, "error retrieving todos by status"); err != nil {
		return nil, err
	}

	todos, err := s.todoRepository.FindByUserAndDone(ctx, userID, done)
	if err != nil {
		log.Err(err).Str("func", "todoService.ListByUserAndStatus").Int64("user_id", userID).Msg("database error while retrieving todos by status")
		return nil, failure("error retrieving todos by status", err)
	}

	log.Info().
		Str("func", "todoService.ListByUserAndStatus").
		Int64("user_id", userID).
		Bool("done", done).
		Int("count", len(todos)).
		Msg("todos retrieved")
	return todos, nil
}

func (s *todoService) ListAll(ctx context.Context) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	todos, err := s.todoRepository.FindAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "todoService.ListAll").Msg("database error while retrieving all todos")
		return nil, failure("error retrieving all todos", err)
	}

	log.Info().Str("func", "todoService.ListAll").Int("count", len(todos)).Msg("todos retrieved")
	return todos, nil
}

// Update applies the non-nil fields of update. Title and description are
// re-validated only when they change.
func (s *todoService) Update(ctx context.Context, id int64, update *models.TodoUpdate) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateID(id); err != nil {
		log.Warn().Str("func", "todoService.Update").Int64("todo_id", id).Msg("invalid todo id")
		return models.Todo{}, invalidInput(err)
	}
	if update == nil {
		log.Warn().Str("func", "todoService.Update").Int64("todo_id", id).Msg("todo update failed: data is nil")
		return models.Todo{}, invalidInput(validators.ErrNilInput)
	}

	log.Debug().Str("func", "todoService.Update").Int64("todo_id", id).Msg("updating todo")

	todo, err := s.findTodo(ctx, "todoService.Update", id, "error updating todo")
	if err != nil {
		return models.Todo{}, err
	}

	in := validators.NormalizeTodoUpdate(*update)

	if in.Title != nil && *in.Title != todo.Title {
		if err = s.validator.Validate(ctx, in, validators.FieldTitle); err != nil {
			log.Warn().Err(err).Str("func", "todoService.Update").Int64("todo_id", id).Msg("invalid title")
			return models.Todo{}, invalidInput(err)
		}
		todo.Title = *in.Title
	}

	if in.Description != nil && !sameDescription(in.Description, todo.Description) {
		if err = s.validator.Validate(ctx, in, validators.FieldDescription); err != nil {
			log.Warn().Err(err).Str("func", "todoService.Update").Int64("todo_id", id).Msg("invalid description")
			return models.Todo{}, invalidInput(err)
		}
		todo.Description = in.Description
	}

	if in.Done != nil && *in.Done != todo.Done {
		todo.Done = *in.Done
	}

	return s.save(ctx, "todoService.Update", todo, "error updating todo")
}

// ToggleDone flips the done flag and persists it.
func (s *todoService) ToggleDone(ctx context.Context, id int64) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateID(id); err != nil {
		log.Warn().Str("func", "todoService.ToggleDone").Int64("todo_id", id).Msg("invalid todo id")
		return models.Todo{}, invalidInput(err)
	}

	todo, err := s.findTodo(ctx, "todoService.ToggleDone", id, "error toggling todo status")
	if err != nil {
		return models.Todo{}, err
	}

	todo.Toggle()
	log.Debug().Str("func", "todoService.ToggleDone").Int64("todo_id", id).Bool("done", todo.Done).Msg("toggling todo")

	return s.save(ctx, "todoService.ToggleDone", todo, "error toggling todo status")
}

func (s *todoService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := validators.ValidateID(id); err != nil {
		log.Warn().Str("func", "todoService.Delete").Int64("todo_id", id).Msg("invalid todo id")
		return invalidInput(err)
	}

	err := s.todoRepository.DeleteByID(ctx, id)
	if errors.Is(err, store.ErrTodoNotFound) {
		log.Warn().Str("func", "todoService.Delete").Int64("todo_id", id).Msg("todo not found")
		return notFound(err, "todo not found with id: %d", id)
	}
	if err != nil {
		log.Err(err).Str("func", "todoService.Delete").Int64("todo_id", id).Msg("database error while deleting todo")
		return failure("error deleting todo", err)
	}

	log.Info().Str("func", "todoService.Delete").Int64("todo_id", id).Msg("todo deleted")
	return nil
}

// DeleteAllForUser removes exactly the todos owned by userID.
func (s *todoService) DeleteAllForUser(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateID(userID); err != nil {
		log.Warn().Str("func", "todoService.DeleteAllForUser").Int64("user_id", userID).Msg("invalid user id")
		return 0, invalidInput(err)
	}
	if err := s.requireUser(ctx, "todoService.DeleteAllForUser", userID, "error deleting todos for user"); err != nil {
		return 0, err
	}

	todos, err := s.todoRepository.FindByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "todoService.DeleteAllForUser").Int64("user_id", userID).Msg("database error while retrieving todos")
		return 0, failure("error deleting todos for user", err)
	}

	ids := make([]int64, 0, len(todos))
	for _, todo := range todos {
		ids = append(ids, todo.TodoID)
	}

	deleted, err := s.todoRepository.DeleteAll(ctx, ids)
	if err != nil {
		log.Err(err).Str("func", "todoService.DeleteAllForUser").Int64("user_id", userID).Msg("database error while deleting todos")
		return 0, failure("error deleting todos for user", err)
	}

	log.Info().
		Str("func", "todoService.DeleteAllForUser").
		Int64("user_id", userID).
		Int64("deleted", deleted).
		Msg("todos deleted for user")
	return deleted, nil
}

func (s *todoService) CountAll(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	count, err := s.todoRepository.Count(ctx)
	if err != nil {
		log.Err(err).Str("func", "todoService.CountAll").Msg("database error while counting todos")
		return 0, failure("error counting todos", err)
	}

	log.Info().Str("func", "todoService.CountAll").Int64("count", count).Msg("todos counted")
	return count, nil
}

func (s *todoService) CountByUser(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateID(userID); err != nil {
		log.Warn().Str("func", "todoService.CountByUser").Int64("user_id", userID).Msg("invalid user id")
		return 0, invalidInput(err)
	}
	if err := s.requireUser(ctx, "todoService.CountByUser", userID, "error counting todos for user"); err != nil {
		return 0, err
	}

	count, err := s.todoRepository.CountByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "todoService.CountByUser").Int64("user_id", userID).Msg("database error while counting todos")
		return 0, failure("error counting todos for user", err)
	}

	log.Info().Str("func", "todoService.CountByUser").Int64("user_id", userID).Int64("count", count).Msg("todos counted")
	return count, nil
}

func (s *todoService) CountDoneByUser(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateID(userID); err != nil {
		log.Warn().Str("func", "todoService.CountDoneByUser").Int64("user_id", userID).Msg("invalid user id")
		return 0, invalidInput(err)
	}
	if err := s.requireUser(ctx, "todoService.CountDoneByUser", userID, "error counting done todos for user"); err != nil {
		return 0, err
	}

	count, err := s.todoRepository.CountByUserAndDone(ctx, userID, true)
	if err != nil {
		log.Err(err).Str("func", "todoService.CountDoneByUser").Int64("user_id", userID).Msg("database error while counting done todos")
		return 0, failure("error counting done todos for user", err)
	}

	log.Info().Str("func", "todoService.CountDoneByUser").Int64("user_id", userID).Int64("count", count).Msg("done todos counted")
	return count, nil
}

func (s *todoService) Statistics(ctx context.Context) (models.TodoStatistics, error) {
	log := logger.FromContext(ctx)

	total, err := s.todoRepository.Count(ctx)
	if err != nil {
		log.Err(err).Str("func", "todoService.Statistics").Msg("database error while counting todos")
		return models.TodoStatistics{}, failure("error retrieving overall todo statistics", err)
	}

	done, err := s.todoRepository.CountByDone(ctx, true)
	if err != nil {
		log.Err(err).Str("func", "todoService.Statistics").Msg("database error while counting done todos")
		return models.TodoStatistics{}, failure("error retrieving overall todo statistics", err)
	}

	stats := models.NewTodoStatistics(total, done)

	log.Info().
		Str("func", "todoService.Statistics").
		Int64("total", stats.TotalTodos).
		Int64("done", stats.DoneTodos).
		Float64("completion_rate", stats.CompletionRate).
		Msg("todo statistics calculated")
	return stats, nil
}

// requireUser returns a not-found error when userID does not exist.
func (s *todoService) requireUser(ctx context.Context, fn string, userID int64, failMsg string) error {
	log := logger.FromContext(ctx)

	exists, err := s.userRepository.ExistsByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", fn).Int64("user_id", userID).Msg("database error while checking user existence")
		return failure(failMsg, err)
	}
	if !exists {
		log.Warn().Str("func", fn).Int64("user_id", userID).Msg("user not found")
		return notFound(store.ErrUserNotFound, "user not found with id: %d", userID)
	}

	return nil
}

func (s *todoService) findTodo(ctx context.Context, fn string, id int64, failMsg string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	todo, err := s.todoRepository.FindByID(ctx, id)
	if errors.Is(err, store.ErrTodoNotFound) {
		log.Warn().Str("func", fn).Int64("todo_id", id).Msg("todo not found")
		return models.Todo{}, notFound(err, "todo not found with id: %d", id)
	}
	if err != nil {
		log.Err(err).Str("func", fn).Int64("todo_id", id).Msg("database error while retrieving todo")
		return models.Todo{}, failure(failMsg, err)
	}

	return todo, nil
}

func (s *todoService) save(ctx context.Context, fn string, todo models.Todo, failMsg string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	saved, err := s.todoRepository.Update(ctx, todo)
	if errors.Is(err, store.ErrTodoNotFound) {
		log.Warn().Str("func", fn).Int64("todo_id", todo.TodoID).Msg("todo deleted during update")
		return models.Todo{}, notFound(err, "todo not found with id: %d", todo.TodoID)
	}
	if err != nil {
		log.Err(err).Str("func", fn).Int64("todo_id", todo.TodoID).Msg("database error while saving todo")
		return models.Todo{}, failure(failMsg, err)
	}

	log.Info().Str("func", fn).Int64("todo_id", saved.TodoID).Bool("done", saved.Done).Msg("todo saved")
	return saved, nil
}

func sameDescription(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
