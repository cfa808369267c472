// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withGZipRequest, middleware.Compress(compressionLevel))

	router.Get("/", h.home)
	router.Get("/api/health", h.health)
	router.Get("/api/version/", h.getServerVersion)

	// users
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.registerUser)
		r.Get("/api/users", h.listUsers)
		r.Get("/api/users/statistics", h.userStatistics)
		r.Get("/api/users/count", h.countUsers)
		r.Get("/api/users/exists", h.userExists)
		r.Get("/api/users/by-username/{username}", h.getUserByUsername)
		r.Get("/api/users/by-email/{email}", h.getUserByEmail)
		r.Get("/api/users/{userID}", h.getUser)
		r.Patch("/api/users/{userID}", h.updateUser)
		r.Delete("/api/users/{userID}", h.deleteUser)
		r.Get("/api/users/{userID}/active", h.userActive)
	})

	// todos of a user
	router.Group(func(r chi.Router) {
		r.Get("/api/users/{userID}/todos", h.listUserTodos)
		r.Post("/api/users/{userID}/todos", h.createTodo)
		r.Delete("/api/users/{userID}/todos", h.deleteUserTodos)
		r.Get("/api/users/{userID}/todos/count", h.countUserTodos)
	})

	// todos
	router.Group(func(r chi.Router) {
		r.Get("/api/todos", h.listTodos)
		r.Get("/api/todos/statistics", h.todoStatistics)
		r.Get("/api/todos/count", h.countTodos)
		r.Get("/api/todos/{todoID}", h.getTodo)
		r.Patch("/api/todos/{todoID}", h.updateTodo)
		r.Post("/api/todos/{todoID}/toggle", h.toggleTodo)
		r.Delete("/api/todos/{todoID}", h.deleteTodo)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
