// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// confirmModel is a yes/no question drawn over the board.
type confirmModel struct {
	prompt string
}

func confirmDelete(title string) *confirmModel {
	return &confirmModel{prompt: "Удалить \"" + fitText(title, 40) + "\"?"}
}

func confirmDeleteAll(count int64) *confirmModel {
	if count <= 0 {
		return &confirmModel{prompt: "Удалить все задачи?"}
	}
	return &confirmModel{prompt: "Удалить все задачи (" + formatCount(count) + ")?"}
}

func (m confirmModel) View() string {
	content := m.prompt + "\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
