// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func init() {
	statusTTL = time.Millisecond
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey    = tea.KeyMsg{Type: tea.KeyEnter}
	escKey      = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTabKey = tea.KeyMsg{Type: tea.KeyShiftTab}
	spaceKey    = tea.KeyMsg{Type: tea.KeySpace}
	ctrlCKey    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

// drain runs cmd and every batched command it produces, returning the
// messages produced by this package. Cursor blinks and timers are dropped.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, drain(c)...)
		}
		return out
	case NavigateTo, SignInResult, todosLoadedMsg, countsLoadedMsg, todoChangedMsg, copiedMsg:
		return []tea.Msg{msg}
	default:
		return nil
	}
}

// feed delivers msgs to m one by one, following every command it returns.
func feed(m tea.Model, msgs ...tea.Msg) tea.Model {
	for len(msgs) > 0 {
		msg := msgs[0]
		msgs = msgs[1:]
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		msgs = append(msgs, drain(cmd)...)
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
