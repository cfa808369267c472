// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/crypto"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

type Services struct {
	UserService    UserService
	TodoService    TodoService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	hasher := crypto.NewPasswordHasher(cfg.App.PasswordHashMemory, cfg.App.PasswordHashIterations)

	return &Services{
		UserService:    NewUserService(storages.UserRepository, hasher, logger),
		TodoService:    NewTodoService(storages.TodoRepository, storages.UserRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
