package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todoboard/internal/model"
)

func (m Model) handleInputKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.enterListMode()
		return m
	case "enter":
		m.addFromDraft()
		return m
	case "tab":
		m.Board.CycleDraftCategory(1)
		return m
	case "shift+tab":
		m.Board.CycleDraftCategory(-1)
		return m
	}
	var cmd tea.Cmd
	m.draftInput, cmd = m.draftInput.Update(msg)
	_ = cmd
	m.Board.SetDraftText(m.draftInput.Value())
	return m
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	switch keyStr {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Palette:
		m.openPalette()
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.setStatus("help shown", false)
		} else {
			m.setStatus("help hidden", false)
		}
		return m, nil
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Board.FilteredView())-1 {
			m.Cursor++
		}
	case " ", "x":
		if task, ok := m.selectedTask(); ok {
			m.toggleTask(task.ID)
		}
	case "d", "delete", "backspace":
		if task, ok := m.selectedTask(); ok {
			m.deleteTask(task.ID)
		}
	case "1", "2", "3", "4", "5":
		idx := int(keyStr[0] - '1')
		m.setFilter(model.Categories()[idx])
	case "h", "left":
		m.cycleFilter(-1)
	case "l", "right":
		m.cycleFilter(1)
	case "t":
		m.toggleTheme()
	case "y":
		m.copySelected()
	case "tab":
		m.Board.CycleDraftCategory(1)
	case "shift+tab":
		m.Board.CycleDraftCategory(-1)
	case "i", "a", "enter":
		m.enterInputMode()
	default:
		if msg.Type == tea.KeyRunes {
			// typing from the list starts a new draft
			m.enterInputMode()
			m.draftInput.SetValue(m.draftInput.Value() + string(msg.Runes))
			m.draftInput.CursorEnd()
			m.Board.SetDraftText(m.draftInput.Value())
		}
	}
	return m, nil
}

func (m *Model) enterInputMode() {
	m.Mode = ModeInput
	m.draftInput.Focus()
}

func (m *Model) enterListMode() {
	m.Mode = ModeList
	m.draftInput.Blur()
	m.clampCursor()
}

func (m *Model) addFromDraft() {
	task, ok := m.Board.AddTask()
	if !ok {
		return
	}
	m.draftInput.SetValue("")
	m.selectTask(task.ID)
	m.setStatus(fmt.Sprintf("task added: %s", task.Text), false)
	m.log().Debug("task added", "id", task.ID, "category", task.Category)
}

func (m *Model) toggleTask(id string) {
	if !m.Board.ToggleTask(id) {
		m.log().Debug("toggle ignored", "id", id)
		return
	}
	task, _ := m.Board.Task(id)
	if task.Completed {
		m.setStatus(fmt.Sprintf("completed: %s", task.Text), false)
	} else {
		m.setStatus(fmt.Sprintf("reopened: %s", task.Text), false)
	}
	m.log().Debug("task toggled", "id", id, "completed", task.Completed)
}

func (m *Model) deleteTask(id string) {
	task, ok := m.Board.Task(id)
	if !ok || !m.Board.DeleteTask(id) {
		m.log().Debug("delete ignored", "id", id)
		return
	}
	m.clampCursor()
	m.setStatus(fmt.Sprintf("deleted: %s", task.Text), false)
	m.log().Debug("task deleted", "id", id)
}

func (m *Model) setFilter(c model.Category) {
	if err := m.Board.SetActiveCategory(c); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.Cursor = 0
	m.clampCursor()
	m.log().Debug("filter changed", "filter", c)
}

func (m *Model) cycleFilter(step int) {
	c := m.Board.CycleActiveCategory(step)
	m.Cursor = 0
	m.clampCursor()
	m.log().Debug("filter changed", "filter", c)
}

func (m *Model) toggleTheme() {
	theme := m.Board.ToggleTheme()
	m.setStatus(fmt.Sprintf("theme: %s", theme), false)
	m.log().Debug("theme toggled", "theme", theme)
}

func (m *Model) copySelected() {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	if err := m.copyText(task.Text); err != nil {
		m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
		m.log().Warn("clipboard write failed", "id", task.ID, "err", err)
		return
	}
	m.setStatus(fmt.Sprintf("copied: %s", task.Text), false)
}

func (m Model) selectedTask() (model.Task, bool) {
	visible := m.Board.FilteredView()
	if m.Cursor < 0 || m.Cursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[m.Cursor], true
}

// selectTask moves the cursor onto id when it is visible.
func (m *Model) selectTask(id string) {
	for i, t := range m.Board.FilteredView() {
		if t.ID == id {
			m.Cursor = i
			return
		}
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.Board.FilteredView())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
