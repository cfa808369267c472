// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var newUser models.NewUser
	if err := decodeJSON(r, &newUser); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Register(r.Context(), &newUser)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("user registered")
	h.writeJSON(w, r, user, http.StatusCreated)
}

// listUsers lists every user, or only the matching ones when ?search= is set.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	var (
		users []models.User
		err   error
	)

	query := r.URL.Query()
	if query.Has("search") {
		users, err = h.services.UserService.Search(r.Context(), query.Get("search"))
	} else {
		users, err = h.services.UserService.ListAll(r.Context())
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, nonNil(users), http.StatusOK)
}

func (h *Handler) userStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.UserService.Statistics(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, stats, http.StatusOK)
}

func (h *Handler) countUsers(w http.ResponseWriter, r *http.Request) {
	createdAfter, filtered, err := timeFromQuery(r, "created_after")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var count int64
	if filtered {
		count, err = h.services.UserService.CountCreatedAfter(r.Context(), createdAfter)
	} else {
		count, err = h.services.UserService.CountAll(r.Context())
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.CountResponse{Count: count}, http.StatusOK)
}

// userExists answers ?username= or ?email=; username wins when both are set.
func (h *Handler) userExists(w http.ResponseWriter, r *http.Request) {
	var (
		exists bool
		err    error
	)

	query := r.URL.Query()
	switch {
	case query.Has("username"):
		exists, err = h.services.UserService.ExistsByUsername(r.Context(), query.Get("username"))
	case query.Has("email"):
		exists, err = h.services.UserService.ExistsByEmail(r.Context(), query.Get("email"))
	default:
		err = fmt.Errorf("%w: username or email", ErrMissingQueryParam)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.ExistsResponse{Exists: exists}, http.StatusOK)
}

func (h *Handler) getUserByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, found, err := h.services.UserService.GetByUsername(r.Context(), username)
	h.writeLookup(w, r, user, found, err, "user not found with username: "+username)
}

func (h *Handler) getUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, found, err := h.services.UserService.GetByEmail(r.Context(), email)
	h.writeLookup(w, r, user, found, err, "user not found with email: "+email)
}

func (h *Handler) writeLookup(w http.ResponseWriter, r *http.Request, user models.User, found bool, err error, notFoundMsg string) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !found {
		h.writeJSON(w, r, models.ErrorResponse{Error: notFoundMsg}, http.StatusNotFound)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, userIDParam)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, userIDParam)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var update models.UserUpdate
	if err = decodeJSON(r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Update(r.Context(), id, &update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, userIDParam)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.UserService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) userActive(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, userIDParam)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	active, err := h.services.UserService.IsActive(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.ActiveResponse{UserID: id, Active: active}, http.StatusOK)
}

// nonNil makes empty lists encode as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
