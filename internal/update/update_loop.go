package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todoboard/internal/model"
	"github.com/sandeepkv93/todoboard/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Mode == ModeInput {
		return textinput.Blink
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		keyStr := typed.String()
		if keyStr == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		if keyStr == m.Keys.Theme {
			m.toggleTheme()
			return m, nil
		}
		if m.Mode == ModeInput {
			return m.handleInputKey(typed), nil
		}
		next, cmd := m.handleListKey(typed)
		return next, cmd
	case tea.WindowSizeMsg:
		if w := typed.Width - 24; w > 16 {
			m.draftInput.Width = min(w, 48)
		}
		return m, nil
	case AddTaskMsg:
		m.addFromDraft()
		return m, nil
	case SetDraftMsg:
		m.Board.SetDraftText(typed.Text)
		m.draftInput.SetValue(typed.Text)
		if typed.Category != "" {
			if err := m.Board.SetDraftCategory(typed.Category); err != nil {
				m.setStatus(err.Error(), true)
			}
		}
		return m, nil
	case ToggleTaskMsg:
		m.toggleTask(typed.ID)
		return m, nil
	case DeleteTaskMsg:
		m.deleteTask(typed.ID)
		return m, nil
	case SetFilterMsg:
		m.setFilter(typed.Category)
		return m, nil
	case ToggleThemeMsg:
		m.toggleTheme()
		return m, nil
	case SetStatusMsg:
		m.setStatus(typed.Text, typed.IsError)
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.setStatus(typed.Err.Error(), true)
			m.log().Error("app error", "err", typed.Err)
		}
		return m, nil
	}

	// cursor blink and other component messages
	var cmd tea.Cmd
	if m.Palette.Active {
		m.commandInput, cmd = m.commandInput.Update(msg)
	} else if m.Mode == ModeInput {
		m.draftInput, cmd = m.draftInput.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	visible := m.Board.FilteredView()
	rows := make([]views.TaskRowData, 0, len(visible))
	for i, t := range visible {
		rows = append(rows, views.TaskRowData{
			ID:        t.ID,
			Text:      t.Text,
			Category:  string(t.Category),
			Completed: t.Completed,
			Selected:  m.Mode == ModeList && i == m.Cursor,
		})
	}
	completed, total := m.Board.Counts()
	dark := m.Board.Theme() == model.ThemeDark

	return views.RenderBoard(views.BoardData{
		Dark:          dark,
		InputView:     m.draftInput.View(),
		InputFocused:  m.Mode == ModeInput,
		DraftCategory: string(m.Board.DraftCategory()),
		DraftOptions:  categoryLabels(model.TaskCategories()),
		Filters:       categoryLabels(model.Categories()),
		ActiveFilter:  string(m.Board.ActiveCategory()),
		Completed:     completed,
		Total:         total,
		Rows:          rows,
		StatusLine:    status,
		StatusError:   m.Status.IsError,
		PaletteView:   m.renderCommandPalette(),
		HelpView:      m.renderHelpIfVisible(),
		Footer:        m.footer(),
	})
}

func (m Model) footer() string {
	if m.Mode == ModeInput {
		return fmt.Sprintf("keys: enter add | tab category | esc list | %s theme | ctrl+c quit", m.Keys.Theme)
	}
	return fmt.Sprintf("keys: j/k move | space toggle | d delete | 1-5 filter | t theme | y copy | i input | %s cmd | %s help | %s quit",
		m.Keys.Palette, m.Keys.Help, m.Keys.Quit)
}
