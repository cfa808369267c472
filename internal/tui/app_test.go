// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRoot(t *testing.T) (RootModel, *mock.MockServerAdapter) {
	t.Helper()
	api := mock.NewMockServerAdapter(gomock.NewController(t))
	ctx := context.Background()
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageSignIn:   NewSignInModel(ctx, api),
		pageRegister: NewRegisterModel(ctx, api),
	}
	return NewRootModel(pages, pageMenu, models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123")), api
}

func TestRootModel_MenuNavigation(t *testing.T) {
	root, _ := newTestRoot(t)

	model := feed(root, runeKey("j"), enterKey)
	r := model.(RootModel)
	_, ok := r.current.(*RegisterModel)
	assert.True(t, ok, "second menu item opens registration")

	model = feed(r, escKey)
	r = model.(RootModel)
	assert.True(t, r.isMenuPage())

	model = feed(r, enterKey)
	r = model.(RootModel)
	_, ok = r.current.(*SignInModel)
	assert.True(t, ok, "first menu item opens sign in")
}

func TestRootModel_MenuCursorResetsOnReturn(t *testing.T) {
	root, _ := newTestRoot(t)

	model := feed(root, runeKey("j"), enterKey, escKey)
	r := model.(RootModel)

	menu, ok := r.current.(*MenuModel)
	require.True(t, ok)
	assert.Equal(t, 0, menu.idx)
	assert.Contains(t, r.View(), "> 1")
}

func TestRootModel_UnknownPageIsIgnored(t *testing.T) {
	root, _ := newTestRoot(t)

	model := feed(root, NavigateTo{Page: "missing"})
	assert.True(t, model.(RootModel).isMenuPage())
}

func TestRootModel_BuildInfoOverlay(t *testing.T) {
	root, _ := newTestRoot(t)

	model := feed(root, runeKey("v"))
	r := model.(RootModel)
	require.True(t, r.showBuildInfo)
	assert.Contains(t, r.View(), "Версия: v1.2.3")
	assert.Contains(t, r.View(), "Коммит: abc123")

	// Keys other than esc are swallowed while the overlay is open.
	model = feed(r, enterKey)
	r = model.(RootModel)
	assert.True(t, r.showBuildInfo)
	assert.True(t, r.isMenuPage())

	model = feed(r, escKey)
	assert.False(t, model.(RootModel).showBuildInfo)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _ := newTestRoot(t)

	model, cmd := root.Update(ctrlCKey)
	assert.True(t, isQuit(cmd))
	assert.True(t, model.(RootModel).quitByUser)
}

func TestRootModel_SignInSucceeds(t *testing.T) {
	root, _ := newTestRoot(t)
	user := models.User{UserID: 5, Username: "bob"}

	model, cmd := root.Update(SignInResult{User: user})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, user, model.(RootModel).user)
	assert.False(t, model.(RootModel).quitByUser)
}

func TestRootModel_SignInErrorGoesToPage(t *testing.T) {
	root, _ := newTestRoot(t)

	model := feed(root, enterKey)
	model = feed(model, SignInResult{Err: errors.New("boom")})
	r := model.(RootModel)

	page, ok := r.current.(*SignInModel)
	require.True(t, ok)
	assert.Equal(t, "boom", page.errMsg)
	assert.Zero(t, r.user.UserID)
}
