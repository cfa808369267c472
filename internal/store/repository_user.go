// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository]. It works
// against either PostgreSQL or SQLite; dialect differences are carried by
// [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts user and returns it with UserID, CreatedAt and UpdatedAt
// assigned.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.db.timestamp()
	user.CreatedAt, user.UpdatedAt = now, now

	query, args, err := buildInsertUserQuery(r.db.builder(), user)
	if err != nil {
		return models.User{}, buildError(ctx, "userRepository.Create", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		log.Err(err).
			Str("func", "userRepository.Create").
			Str("username", user.Username).
			Msg("failed to insert user")
		return models.User{}, r.translateWriteError(err)
	}

	log.Debug().
		Str("func", "userRepository.Create").
		Int64("user_id", user.UserID).
		Msg("user inserted")

	return user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, "userRepository.FindByID", sq.Eq{"user_id": id})
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "userRepository.FindByUsername", sq.Eq{"username": username})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "userRepository.FindByEmail", sq.Eq{"email": email})
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	return r.findMany(ctx, "userRepository.FindAll", nil)
}

func (r *userRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "userRepository.ExistsByID", sq.Eq{"user_id": id})
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "userRepository.ExistsByUsername", sq.Eq{"username": username})
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "userRepository.ExistsByEmail", sq.Eq{"email": email})
}

// Update saves Username and Email of user and refreshes UpdatedAt. The
// returned user is re-read from the store.
func (r *userRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UpdatedAt = r.db.timestamp()

	query, args, err := buildUpdateUserQuery(r.db.builder(), user)
	if err != nil {
		return models.User{}, buildError(ctx, "userRepository.Update", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.Update").
			Int64("user_id", user.UserID).
			Msg("failed to update user")
		return models.User{}, r.translateWriteError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "userRepository.Update").
			Int64("user_id", user.UserID).
			Msg("user not found")
		return models.User{}, ErrUserNotFound
	}

	return r.FindByID(ctx, user.UserID)
}

// DeleteByID removes the user. Todos are removed by the ON DELETE CASCADE
// of todos.user_id.
func (r *userRepository) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := buildDeleteUserQuery(r.db.builder(), id)
	if err != nil {
		return buildError(ctx, "userRepository.DeleteByID", err)
	}

	affected, err := r.db.exec(ctx, "userRepository.DeleteByID", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, "userRepository.Count", nil)
}

func (r *userRepository) CountCreatedAfter(ctx context.Context, t time.Time) (int64, error) {
	return r.count(ctx, "userRepository.CountCreatedAfter", createdAtOrAfter(t.UTC()))
}

func (r *userRepository) Search(ctx context.Context, term string) ([]models.User, error) {
	return r.findMany(ctx, "userRepository.Search", userSearch(term))
}

func (r *userRepository) CountActive(ctx context.Context) (int64, error) {
	return r.count(ctx, "userRepository.CountActive", activeUser())
}

// translateWriteError maps unique violations onto the username/email
// sentinels. Which one is decided by the constraint (PostgreSQL) or column
// (SQLite) named in the driver error.
func (r *userRepository) translateWriteError(err error) error {
	class, name := r.db.classify(err)
	if class == UniqueViolation {
		if strings.Contains(name, "email") {
			return ErrEmailAlreadyExists
		}
		return ErrUsernameAlreadyExists
	}

	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func (r *userRepository) findOne(ctx context.Context, fn string, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.db.builder(), where)
	if err != nil {
		return models.User{}, buildError(ctx, fn, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (r *userRepository) findMany(ctx context.Context, fn string, where sq.Sqlizer) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.db.builder(), where)
	if err != nil {
		return nil, buildError(ctx, fn, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query for users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) exists(ctx context.Context, fn string, where sq.Sqlizer) (bool, error) {
	query, args, err := buildUserExistsQuery(r.db.builder(), where)
	if err != nil {
		return false, buildError(ctx, fn, err)
	}
	return r.db.exists(ctx, fn, query, args)
}

func (r *userRepository) count(ctx context.Context, fn string, where sq.Sqlizer) (int64, error) {
	query, args, err := buildCountUsersQuery(r.db.builder(), where)
	if err != nil {
		return 0, buildError(ctx, fn, err)
	}
	return r.db.count(ctx, fn, query, args)
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}
