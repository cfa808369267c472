// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/crypto"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// userService is the concrete implementation of [UserService].
//
// The username and email checks it runs before writing are a fast path
// only. Concurrent registrations are settled by the unique constraints of
// the store, whose violations are reported the same way.
type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator

	logger *logger.Logger
}

// NewUserService constructs a [UserService] persisting through
// userRepository and hashing passwords with hasher.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

// Register creates a new account.
//
// The username is trimmed and the email trimmed and lowercased before
// validation, so the stored values are always in that form. The password is
// validated as given and only its hash is stored.
//
// Returns the stored user or:
//   - invalid input for nil data, a rule violation, or a taken
//     username/email (including one taken concurrently).
//   - a service failure if the store or the hasher fails.
func (s *userService) Register(ctx context.Context, newUser *models.NewUser) (models.User, error) {
	log := logger.FromContext(ctx)

	if newUser == nil {
		log.Warn().Str("func", "userService.Register").Msg("user registration failed: data is nil")
		return models.User{}, invalidInput(validators.ErrNilInput)
	}

	in := validators.NormalizeNewUser(*newUser)
	if err := s.validator.Validate(ctx, in); err != nil {
		log.Warn().Err(err).
			Str("func", "userService.Register").
			Str("username", in.Username).
			Msg("user registration failed: invalid data")
		return models.User{}, invalidInput(err)
	}

	log.Debug().Str("func", "userService.Register").Str("username", in.Username).Msg("registering new user")

	taken, err := s.userRepository.ExistsByUsername(ctx, in.Username)
	if err != nil {
		log.Err(err).Str("func", "userService.Register").Msg("failed to check username existence")
		return models.User{}, failure("error saving user data", err)
	}
	if taken {
		log.Warn().Str("func", "userService.Register").Str("username", in.Username).Msg("username already exists")
		return models.User{}, duplicate(store.ErrUsernameAlreadyExists, "username already exists: %s", in.Username)
	}

	taken, err = s.userRepository.ExistsByEmail(ctx, in.Email)
	if err != nil {
		log.Err(err).Str("func", "userService.Register").Msg("failed to check email existence")
		return models.User{}, failure("error saving user data", err)
	}
	if taken {
		log.Warn().Str("func", "userService.Register").Str("email", in.Email).Msg("email already exists")
		return models.User{}, duplicate(store.ErrEmailAlreadyExists, "email already exists: %s", in.Email)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		log.Err(err).Str("func", "userService.Register").Msg("failed to hash password")
		return models.User{}, failure("error saving user data", err)
	}

	user, err := s.userRepository.Create(ctx, models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if dupErr := translateDuplicate(err, in.Username, in.Email); dupErr != nil {
			log.Warn().Err(err).Str("func", "userService.Register").Msg("user registration lost a uniqueness race")
			return models.User{}, dupErr
		}
		log.Err(err).Str("func", "userService.Register").Str("username", in.Username).Msg("database error while registering user")
		return models.User{}, failure("error saving user data", err)
	}

	log.Info().
		Str("func", "userService.Register").
		Int64("user_id", user.UserID).
		Str("username", user.Username).
		Msg("user registered")

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateID(id); err != nil {
		log.Warn().Str("func", "userService.GetByID").Int64("user_id", id).Msg("invalid user id")
		return models.User{}, invalidInput(err)
	}

	user, err := s.userRepository.FindByID(ctx, id)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("func", "userService.GetByID").Int64("user_id", id).Msg("user not found")
		return models.User{}, notFound(err, "user not found with id: %d", id)
	}
	if err != nil {
		log.Err(err).Str("func", "userService.GetByID").Int64("user_id", id).Msg("database error while retrieving user")
		return models.User{}, failure("error accessing user data", err)
	}

	log.Debug().Str("func", "userService.GetByID").Int64("user_id", id).Msg("user retrieved")
	return user, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	username = validators.NormalizeUsername(username)
	if username == "" {
		log.Warn().Str("func", "userService.GetByUsername").Msg("username is empty")
		return models.User{}, false, invalidInput(validators.ErrEmptyUsername)
	}

	user, err := s.userRepository.FindByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("func", "userService.GetByUsername").Str("username", username).Msg("user not found by username")
		return models.User{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "userService.GetByUsername").Msg("database error while searching user by username")
		return models.User{}, false, failure("error searching user by username", err)
	}

	log.Debug().Str("func", "userService.GetByUsername").Str("username", username).Msg("user found by username")
	return user, true, nil
}

// GetByEmail looks the user up by the normalized email.
func (s *userService) GetByEmail(ctx context.Context, email string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	email = validators.NormalizeEmail(email)
	if email == "" {
		log.Warn().Str("func", "userService.GetByEmail").Msg("email is empty")
		return models.User{}, false, invalidInput(validators.ErrEmptyEmail)
	}

	user, err := s.userRepository.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("func", "userService.GetByEmail").Str("email", email).Msg("user not found by email")
		return models.User{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "userService.GetByEmail").Msg("database error while searching user by email")
		return models.User{}, false, failure("error searching user by email", err)
	}

	log.Debug().Str("func", "userService.GetByEmail").Int64("user_id", user.UserID).Msg("user found by email")
	return user, true, nil
}

func (s *userService) ListAll(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.FindAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "userService.ListAll").Msg("database error while retrieving all users")
		return nil, failure("error retrieving all users", err)
	}

	log.Info().Str("func", "userService.ListAll").Int("count", len(users)).Msg("users retrieved")
	return users, nil
}

// Update changes username and/or email of an existing user.
//
// Each provided field is normalized first; a value equal to the stored one
// is accepted without checks, so a user may re-submit their own username or
// email. A changed value is validated and checked for uniqueness.
func (s *userService) Update(ctx context.Context, id int64, update *models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateID(id); err != nil {
		log.Warn().Str("func", "userService.Update").Int64("user_id", id).Msg("invalid user id")
		return models.User{}, invalidInput(err)
	}
	if update == nil {
		log.Warn().Str("func", "userService.Update").Int64("user_id", id).Msg("user update failed: data is nil")
		return models.User{}, invalidInput(validators.ErrNilInput)
	}

	log.Debug().Str("func", "userService.Update").Int64("user_id", id).Msg("updating user")

	user, err := s.userRepository.FindByID(ctx, id)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("func", "userService.Update").Int64("user_id", id).Msg("user not found")
		return models.User{}, notFound(err, "user not found with id: %d", id)
	}
	if err != nil {
		log.Err(err).Str("func", "userService.Update").Int64("user_id", id).Msg("database error while finding user")
		return models.User{}, failure("error updating user data", err)
	}

	in := validators.NormalizeUserUpdate(*update)

	if in.Username != nil && *in.Username != user.Username {
		if err = s.validator.Validate(ctx, in, validators.FieldUsername); err != nil {
			log.Warn().Err(err).Str("func", "userService.Update").Int64("user_id", id).Msg("invalid username")
			return models.User{}, invalidInput(err)
		}

		taken, err := s.userRepository.ExistsByUsername(ctx, *in.Username)
		if err != nil {
			log.Err(err).Str("func", "userService.Update").Msg("failed to check username existence")
			return models.User{}, failure("error updating user data", err)
		}
		if taken {
			log.Warn().Str("func", "userService.Update").Str("username", *in.Username).Msg("username already exists")
			return models.User{}, duplicate(store.ErrUsernameAlreadyExists, "username already exists: %s", *in.Username)
		}

		log.Debug().
			Str("func", "userService.Update").
			Str("from", user.Username).
			Str("to", *in.Username).
			Msg("changing username")
		user.Username = *in.Username
	}

	if in.Email != nil && *in.Email != user.Email {
		if err = s.validator.Validate(ctx, in, validators.FieldEmail); err != nil {
			log.Warn().Err(err).Str("func", "userService.Update").Int64("user_id", id).Msg("invalid email")
			return models.User{}, invalidInput(err)
		}

		taken, err := s.userRepository.ExistsByEmail(ctx, *in.Email)
		if err != nil {
			log.Err(err).Str("func", "userService.Update").Msg("failed to check email existence")
			return models.User{}, failure("error updating user data", err)
		}
		if taken {
			log.Warn().Str("func", "userService.Update").Str("email", *in.Email).Msg("email already exists")
			return models.User{}, duplicate(store.ErrEmailAlreadyExists, "email already exists: %s", *in.Email)
		}

		log.Debug().
			Str("func", "userService.Update").
			Str("from", user.Email).
			Str("to", *in.Email).
			Msg("changing email")
		user.Email = *in.Email
	}

	updated, err := s.userRepository.Update(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("func", "userService.Update").Int64("user_id", id).Msg("user deleted during update")
			return models.User{}, notFound(err, "user not found with id: %d", id)
		}
		if dupErr := translateDuplicate(err, user.Username, user.Email); dupErr != nil {
			log.Warn().Err(err).Str("func", "userService.Update").Msg("user update lost a uniqueness race")
			return models.User{}, dupErr
		}
		log.Err(err).Str("func", "userService.Update").Int64("user_id", id).Msg("database error while updating user")
		return models.User{}, failure("error updating user data", err)
	}

	log.Info().Str("func", "userService.Update").Int64("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := validators.ValidateID(id); err != nil {
		log.Warn().Str("func", "userService.Delete").Int64("user_id", id).Msg("invalid user id")
		return invalidInput(err)
	}

	err := s.userRepository.DeleteByID(ctx, id)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("func", "userService.Delete").Int64("user_id", id).Msg("user not found")
		return notFound(err, "user not found with id: %d", id)
	}
	if err != nil {
		log.Err(err).Str("func", "userService.Delete").Int64("user_id", id).Msg("database error while deleting user")
		return failure("error deleting user", err)
	}

	log.Info().Str("func", "userService.Delete").Int64("user_id", id).Msg("user deleted")
	return nil
}

func (s *userService) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	log := logger.FromContext(ctx)

	username = validators.NormalizeUsername(username)
	if username == "" {
		log.Warn().Str("func", "userService.ExistsByUsername").Msg("username is empty")
		return false, invalidInput(validators.ErrEmptyUsername)
	}

	exists, err := s.userRepository.ExistsByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("func", "userService.ExistsByUsername").Msg("database error while checking username existence")
		return false, failure("error checking username existence", err)
	}

	log.Debug().Str("func", "userService.ExistsByUsername").Str("username", username).Bool("exists", exists).Send()
	return exists, nil
}

func (s *userService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	email = validators.NormalizeEmail(email)
	if email == "" {
		log.Warn().Str("func", "userService.ExistsByEmail").Msg("email is empty")
		return false, invalidInput(validators.ErrEmptyEmail)
	}

	exists, err := s.userRepository.ExistsByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("func", "userService.ExistsByEmail").Msg("database error while checking email existence")
		return false, failure("error checking email existence", err)
	}

	log.Debug().Str("func", "userService.ExistsByEmail").Str("email", email).Bool("exists", exists).Send()
	return exists, nil
}

func (s *userService) CountAll(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	count, err := s.userRepository.Count(ctx)
	if err != nil {
		log.Err(err).Str("func", "userService.CountAll").Msg("database error while counting users")
		return 0, failure("error counting users", err)
	}

	log.Info().Str("func", "userService.CountAll").Int64("count", count).Msg("users counted")
	return count, nil
}

// CountCreatedAfter counts users whose creation time is at or after t.
func (s *userService) CountCreatedAfter(ctx context.Context, t time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateTimestamp(t); err != nil {
		log.Warn().Str("func", "userService.CountCreatedAfter").Msg("timestamp is empty")
		return 0, invalidInput(err)
	}

	count, err := s.userRepository.CountCreatedAfter(ctx, t)
	if err != nil {
		log.Err(err).Str("func", "userService.CountCreatedAfter").Msg("database error while counting users by date")
		return 0, failure("error counting users by date", err)
	}

	log.Info().
		Str("func", "userService.CountCreatedAfter").
		Time("created_after", t).
		Int64("count", count).
		Msg("users counted")
	return count, nil
}

// Search returns users whose username or email contains the trimmed term,
// ignoring case.
func (s *userService) Search(ctx context.Context, term string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateSearchTerm(term); err != nil {
		log.Warn().Str("func", "userService.Search").Msg("search term is empty")
		return nil, invalidInput(err)
	}
	term = strings.TrimSpace(term)

	users, err := s.userRepository.Search(ctx, term)
	if err != nil {
		log.Err(err).Str("func", "userService.Search").Str("term", term).Msg("database error while searching users")
		return nil, failure("error searching users", err)
	}

	log.Info().Str("func", "userService.Search").Str("term", term).Int("count", len(users)).Msg("users found")
	return users, nil
}

func (s *userService) IsActive(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateID(id); err != nil {
		log.Warn().Str("func", "userService.IsActive").Int64("user_id", id).Msg("invalid user id")
		return false, invalidInput(err)
	}

	user, err := s.userRepository.FindByID(ctx, id)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("func", "userService.IsActive").Int64("user_id", id).Msg("user not found")
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "userService.IsActive").Int64("user_id", id).Msg("database error while checking user activity")
		return false, failure("error checking user activity", err)
	}

	active := user.IsActive()
	log.Debug().Str("func", "userService.IsActive").Int64("user_id", id).Bool("active", active).Send()
	return active, nil
}

func (s *userService) Statistics(ctx context.Context) (models.UserStatistics, error) {
	log := logger.FromContext(ctx)

	total, err := s.userRepository.Count(ctx)
	if err != nil {
		log.Err(err).Str("func", "userService.Statistics").Msg("database error while counting users")
		return models.UserStatistics{}, failure("error retrieving user statistics", err)
	}

	active, err := s.userRepository.CountActive(ctx)
	if err != nil {
		log.Err(err).Str("func", "userService.Statistics").Msg("database error while counting active users")
		return models.UserStatistics{}, failure("error retrieving user statistics", err)
	}

	stats := models.UserStatistics{
		TotalUsers:    total,
		ActiveUsers:   active,
		InactiveUsers: total - active,
	}

	log.Info().
		Str("func", "userService.Statistics").
		Int64("total", stats.TotalUsers).
		Int64("active", stats.ActiveUsers).
		Msg("user statistics calculated")
	return stats, nil
}

// translateDuplicate maps the store's unique-constraint errors onto invalid
// input. It returns nil for any other error.
func translateDuplicate(err error, username, email string) error {
	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return duplicate(err, "username already exists: %s", username)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return duplicate(err, "email already exists: %s", email)
	}
	return nil
}
