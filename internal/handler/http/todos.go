// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// listUserTodos lists the todos of a user, filtered by ?done= when present.
func (h *Handler) listUserTodos(w http.ResponseWriter, r *http.Request) {
	userID, err := idFromPath(r, userIDParam)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	done, filtered, err := boolFromQuery(r, "done")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var todos []models.Todo
	if filtered {
		todos, err = h.services.TodoService.ListByUserAndStatus(r.Context(), userID, done)
	} else {
		todos, err = h.services.TodoService.ListByUser(r.Context(), userID)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, nonNil(todos), http.StatusOK)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	userID, err := idFromPath(r, userIDParam)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var newTodo models.NewTodo
	if err = decodeJSON(r, &newTodo); err != nil {
		h.writeError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.Create(r.Context(), &newTodo, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("todo_id", todo.TodoID).Int64("user_id", userID).Msg("todo created")
	h.writeJSON(w, r, todo, http.StatusCreated)
}

func (h *Handler) deleteUserTodos(w http.ResponseWriter, r *http.Request) {
	userID, err := idFromPath(r, userIDParam)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	deleted, err := h.services.TodoService.DeleteAllForUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.DeletedResponse{Deleted: deleted}, http.StatusOK)
}

// countUserTodos counts every todo of a user; ?done=true counts the done
// ones and ?done=false the pending ones.
func (h *Handler) countUserTodos(w http.ResponseWriter, r *http.Request) {
	userID, err := idFromPath(r, userIDParam)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	done, filtered, err := boolFromQuery(r, "done")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var count int64
	switch {
	case !filtered:
		count, err = h.services.TodoService.CountByUser(r.Context(), userID)
	case done:
		count, err = h.services.TodoService.CountDoneByUser(r.Context(), userID)
	default:
		count, err = h.countPendingByUser(r, userID)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.CountResponse{Count: count}, http.StatusOK)
}

func (h *Handler) countPendingByUser(r *http.Request, userID int64) (int64, error) {
	total, err := h.services.TodoService.CountByUser(r.Context(), userID)
	if err != nil {
		return 0, err
	}
	done, err := h.services.TodoService.CountDoneByUser(r.Context(), userID)
	if err != nil {
		return 0, err
	}
	return total - done, nil
}

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.services.TodoService.ListAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, nonNil(todos), http.StatusOK)
}

func (h *Handler) todoStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.TodoService.Statistics(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, stats, http.StatusOK)
}

func (h *Handler) countTodos(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.TodoService.CountAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.CountResponse{Count: count}, http.StatusOK)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, todoIDParam)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, todo, http.StatusOK)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, todoIDParam)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var update models.TodoUpdate
	if err = decodeJSON(r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.Update(r.Context(), id, &update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, todo, http.StatusOK)
}

func (h *Handler) toggleTodo(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, todoIDParam)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.ToggleDone(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, todo, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, todoIDParam)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.TodoService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
