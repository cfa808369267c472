// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of
// [ServerAdapter]. The base URL comes from adapterCfg.HTTPAddress; a bare
// "host:port" gets the http scheme.
//
// Returns an error if the address is empty or is not a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.SetError(models.ErrorResponse{})

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidURL
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Register(ctx context.Context, newUser models.NewUser) (models.User, error) {
	var user models.User
	resp, err := h.request(ctx).
		SetBody(newUser).
		SetResult(&user).
		Post("/api/users")
	if err = h.check("register", resp, err); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) FindUser(ctx context.Context, username string) (models.User, error) {
	var user models.User
	resp, err := h.request(ctx).
		SetPathParam("username", username).
		SetResult(&user).
		Get("/api/users/by-username/{username}")
	if err = h.check("find user", resp, err); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) ListTodos(ctx context.Context, userID int64, done *bool) ([]models.Todo, error) {
	var todos []models.Todo
	req := h.userRequest(ctx, userID).SetResult(&todos)
	if done != nil {
		req.SetQueryParam("done", strconv.FormatBool(*done))
	}

	resp, err := req.Get("/api/users/{userID}/todos")
	if err = h.check("list todos", resp, err); err != nil {
		return nil, err
	}

	return todos, nil
}

func (h *httpServerAdapter) CreateTodo(ctx context.Context, userID int64, newTodo models.NewTodo) (models.Todo, error) {
	var todo models.Todo
	resp, err := h.userRequest(ctx, userID).
		SetBody(newTodo).
		SetResult(&todo).
		Post("/api/users/{userID}/todos")
	if err = h.check("create todo", resp, err); err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

func (h *httpServerAdapter) UpdateTodo(ctx context.Context, todoID int64, update models.TodoUpdate) (models.Todo, error) {
	var todo models.Todo
	resp, err := h.todoRequest(ctx, todoID).
		SetBody(update).
		SetResult(&todo).
		Patch("/api/todos/{todoID}")
	if err = h.check("update todo", resp, err); err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

func (h *httpServerAdapter) ToggleTodo(ctx context.Context, todoID int64) (models.Todo, error) {
	var todo models.Todo
	resp, err := h.todoRequest(ctx, todoID).
		SetResult(&todo).
		Post("/api/todos/{todoID}/toggle")
	if err = h.check("toggle todo", resp, err); err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

func (h *httpServerAdapter) DeleteTodo(ctx context.Context, todoID int64) error {
	resp, err := h.todoRequest(ctx, todoID).Delete("/api/todos/{todoID}")
	return h.check("delete todo", resp, err)
}

func (h *httpServerAdapter) DeleteAllTodos(ctx context.Context, userID int64) (int64, error) {
	var deleted models.DeletedResponse
	resp, err := h.userRequest(ctx, userID).
		SetResult(&deleted).
		Delete("/api/users/{userID}/todos")
	if err = h.check("delete all todos", resp, err); err != nil {
		return 0, err
	}

	return deleted.Deleted, nil
}

func (h *httpServerAdapter) CountTodos(ctx context.Context, userID int64, done *bool) (int64, error) {
	var count models.CountResponse
	req := h.userRequest(ctx, userID).SetResult(&count)
	if done != nil {
		req.SetQueryParam("done", strconv.FormatBool(*done))
	}

	resp, err := req.Get("/api/users/{userID}/todos/count")
	if err = h.check("count todos", resp, err); err != nil {
		return 0, err
	}

	return count.Count, nil
}

func (h *httpServerAdapter) Statistics(ctx context.Context) (models.TodoStatistics, error) {
	var stats models.TodoStatistics
	resp, err := h.request(ctx).
		SetResult(&stats).
		Get("/api/todos/statistics")
	if err = h.check("todo statistics", resp, err); err != nil {
		return models.TodoStatistics{}, err
	}

	return stats, nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err = h.check("server version", resp, err); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpServerAdapter) userRequest(ctx context.Context, userID int64) *resty.Request {
	return h.request(ctx).SetPathParam("userID", strconv.FormatInt(userID, 10))
}

func (h *httpServerAdapter) todoRequest(ctx context.Context, todoID int64) *resty.Request {
	return h.request(ctx).SetPathParam("todoID", strconv.FormatInt(todoID, 10))
}

// check wraps a transport error or maps an error status, logging either.
func (h *httpServerAdapter) check(op string, resp *resty.Response, err error) error {
	if err != nil {
		h.logger.Err(err).Str("op", op).Msg("request failed")
		return fmt.Errorf("%s request: %w", op, err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("server rejected request")
		return err
	}

	h.logger.Debug().Str("op", op).Int("status", resp.StatusCode()).Msg("request done")
	return nil
}
