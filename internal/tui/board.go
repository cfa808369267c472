// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests; headless machines have no clipboard.
var writeClipboard = clipboard.WriteAll

var statusTTL = 3 * time.Second

type todoFilter int

const (
	filterAll todoFilter = iota
	filterPending
	filterDone
)

func (f todoFilter) next() todoFilter {
	return (f + 1) % 3
}

// done is the value of the ?done query for f; nil means no filter.
func (f todoFilter) done() *bool {
	switch f {
	case filterPending:
		v := false
		return &v
	case filterDone:
		v := true
		return &v
	default:
		return nil
	}
}

func (f todoFilter) String() string {
	switch f {
	case filterPending:
		return "в работе"
	case filterDone:
		return "выполненные"
	default:
		return "все"
	}
}

type boardMode int

const (
	modeList boardMode = iota
	modeAdd
	modeConfirmDelete
	modeConfirmDeleteAll
	modeError
)

// BoardModel lists the todos of one user and edits them in place.
type BoardModel struct {
	ctx  context.Context
	api  adapter.ServerAdapter
	user models.User

	todos  []models.Todo
	cursor int
	filter todoFilter
	total  int64
	done   int64

	mode    boardMode
	inputs  []textinput.Model
	focus   int
	confirm *confirmModel
	failure *errorOverlayModel

	loading bool
	status  string
	width   int

	logout bool
}

func NewBoardModel(ctx context.Context, api adapter.ServerAdapter, user models.User) *BoardModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 255
	title.Width = 40

	description := textinput.New()
	description.Placeholder = "description (optional)"
	description.Width = 40

	return &BoardModel{
		ctx:     ctx,
		api:     api,
		user:    user,
		inputs:  []textinput.Model{title, description},
		loading: true,
		width:   80,
	}
}

func (m *BoardModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadTodos(), m.cmdLoadCounts())
}

func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case todosLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.todos = msg.todos
		m.clampCursor()
		return m, nil

	case countsLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.total, m.done = msg.total, msg.done
		return m, nil

	case todoChangedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.loading = true
		return m, tea.Batch(m.setStatus(msg.status), m.cmdLoadTodos(), m.cmdLoadCounts())

	case copiedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		return m, m.setStatus("Скопировано: " + fitText(msg.title, 40))

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeConfirmDelete, modeConfirmDeleteAll:
			return m.updateConfirm(msg)
		case modeError:
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.mode = modeList
				m.failure = nil
			}
			return m, nil
		default:
			return m.updateList(msg)
		}
	}

	if m.mode == modeAdd {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *BoardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.todos)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.filter):
		m.filter = m.filter.next()
		m.cursor = 0
		m.loading = true
		return m, m.cmdLoadTodos()
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, tea.Batch(m.cmdLoadTodos(), m.cmdLoadCounts())
	case key.Matches(msg, keys.newItem):
		m.mode = modeAdd
		m.resetForm()
		return m, textinput.Blink
	case key.Matches(msg, keys.deleteAll):
		if m.total == 0 {
			return m, nil
		}
		m.mode = modeConfirmDeleteAll
		m.confirm = confirmDeleteAll(m.total)
	}

	todo, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.toggle):
		return m, m.cmdToggle(todo.TodoID)
	case key.Matches(msg, keys.delete):
		m.mode = modeConfirmDelete
		m.confirm = confirmDelete(todo.Title)
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(todo.Title)
	}
	return m, nil
}

func (m *BoardModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		mode := m.mode
		m.mode = modeList
		m.confirm = nil
		if mode == modeConfirmDeleteAll {
			return m, m.cmdDeleteAll()
		}
		if todo, ok := m.selected(); ok {
			return m, m.cmdDelete(todo.TodoID)
		}
	case key.Matches(msg, keys.no):
		m.mode = modeList
		m.confirm = nil
	}
	return m, nil
}

func (m *BoardModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		m.resetForm()
		return m, nil
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.inputs)
		m.inputs[m.focus].Focus()
		return m, nil
	case key.Matches(msg, keys.enter):
		title := strings.TrimSpace(m.inputs[0].Value())
		if title == "" {
			m.status = "Название обязательно"
			return m, nil
		}
		newTodo := models.NewTodo{Title: title}
		if description := strings.TrimSpace(m.inputs[1].Value()); description != "" {
			newTodo.Description = &description
		}
		m.mode = modeList
		m.resetForm()
		return m, m.cmdCreate(newTodo)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *BoardModel) View() string {
	title := fmt.Sprintf("ЗАДАЧИ: %s", m.user.Username)

	switch m.mode {
	case modeAdd:
		return renderPage(title, m.formView(), "esc: отмена │ tab: след. поле │ enter: сохранить")
	case modeConfirmDelete, modeConfirmDeleteAll:
		return renderPage(title, m.listView(), "") + "\n\n" + m.confirm.View()
	case modeError:
		return renderPage(title, m.listView(), "") + "\n\n" + m.failure.View()
	}

	return renderPage(title, m.listView(),
		"↑/↓: навигация │ space: отметить │ n: новая │ d: удалить │ D: удалить все │ c: копировать │ f: фильтр │ r: обновить │ l: выйти из аккаунта │ q: выход")
}

func (m *BoardModel) listView() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Фильтр: %s │ Всего: %d │ Выполнено: %d │ Осталось: %d\n\n",
		m.filter, m.total, m.done, m.total-m.done))

	switch {
	case m.loading && len(m.todos) == 0:
		b.WriteString("Загрузка...\n")
	case len(m.todos) == 0:
		b.WriteString("Задач нет\n")
	}

	titleWidth := m.width - 12
	if titleWidth < 20 {
		titleWidth = 20
	}
	for i, todo := range m.todos {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		mark := "[ ]"
		if todo.Done {
			mark = "[x]"
		}
		line := fitText(todo.Title, titleWidth)
		switch {
		case i == m.cursor:
			line = selectedStyle.Render(line)
		case todo.Done:
			line = doneStyle.Render(line)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, mark, line))
	}

	if todo, ok := m.selected(); ok {
		b.WriteString("\nОписание: ")
		b.WriteString(valueOrDash(todo.Description))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *BoardModel) formView() string {
	var b strings.Builder
	b.WriteString("Поле           │ Значение\n")
	b.WriteString("───────────────┼────────────────────────────────────\n")
	b.WriteString("Название       │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Описание       │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *BoardModel) fail(err error) (tea.Model, tea.Cmd) {
	m.loading = false
	m.mode = modeError
	m.failure = newErrorOverlay(err)
	return m, nil
}

func (m *BoardModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *BoardModel) selected() (models.Todo, bool) {
	if m.cursor < 0 || m.cursor >= len(m.todos) {
		return models.Todo{}, false
	}
	return m.todos[m.cursor], true
}

func (m *BoardModel) clampCursor() {
	if m.cursor >= len(m.todos) {
		m.cursor = len(m.todos) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *BoardModel) resetForm() {
	m.status = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *BoardModel) cmdLoadTodos() tea.Cmd {
	ctx, api, userID, done := m.ctx, m.api, m.user.UserID, m.filter.done()
	return func() tea.Msg {
		todos, err := api.ListTodos(ctx, userID, done)
		return todosLoadedMsg{todos: todos, err: err}
	}
}

func (m *BoardModel) cmdLoadCounts() tea.Cmd {
	ctx, api, userID := m.ctx, m.api, m.user.UserID
	return func() tea.Msg {
		total, err := api.CountTodos(ctx, userID, nil)
		if err != nil {
			return countsLoadedMsg{err: err}
		}
		onlyDone := true
		done, err := api.CountTodos(ctx, userID, &onlyDone)
		return countsLoadedMsg{total: total, done: done, err: err}
	}
}

func (m *BoardModel) cmdCreate(newTodo models.NewTodo) tea.Cmd {
	ctx, api, userID := m.ctx, m.api, m.user.UserID
	return func() tea.Msg {
		todo, err := api.CreateTodo(ctx, userID, newTodo)
		return todoChangedMsg{status: "Добавлено: " + fitText(todo.Title, 40), err: err}
	}
}

func (m *BoardModel) cmdToggle(todoID int64) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		todo, err := api.ToggleTodo(ctx, todoID)
		status := "Возвращено в работу: "
		if todo.Done {
			status = "Выполнено: "
		}
		return todoChangedMsg{status: status + fitText(todo.Title, 40), err: err}
	}
}

func (m *BoardModel) cmdDelete(todoID int64) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		err := api.DeleteTodo(ctx, todoID)
		return todoChangedMsg{status: "Задача удалена", err: err}
	}
}

func (m *BoardModel) cmdDeleteAll() tea.Cmd {
	ctx, api, userID := m.ctx, m.api, m.user.UserID
	return func() tea.Msg {
		deleted, err := api.DeleteAllTodos(ctx, userID)
		return todoChangedMsg{status: "Удалено задач: " + formatCount(deleted), err: err}
	}
}

func cmdCopy(title string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{title: title, err: writeClipboard(title)}
	}
}
