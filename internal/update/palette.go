package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todoboard/internal/commands"
	"github.com/sandeepkv93/todoboard/internal/model"
	"github.com/sandeepkv93/todoboard/internal/views"
)

func (m *Model) openPalette() {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.setStatus("command palette active", false)
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.setStatus("command palette closed", false)
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.setStatus(err.Error(), true)
		m.closePalette()
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			category := m.Board.DraftCategory()
			if a.Category != "" {
				c, err := model.ParseCategory(a.Category)
				if err != nil || !c.IsTaskCategory() {
					return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown task category: %s", a.Category)}
				}
				category = c
			}
			task, ok := m.Board.Add(a.Text, category)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "add requires task text"}
			}
			m.selectTask(task.ID)
			m.log().Debug("task added", "id", task.ID, "category", task.Category, "source", "palette")
			return commands.Result{Message: fmt.Sprintf("task added: %s [%s]", task.Text, task.Category)}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			c, err := model.ParseCategory(f.Category)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown category: %s", f.Category)}
			}
			m.setFilter(c)
			return commands.Result{Message: fmt.Sprintf("filter: %s", c)}, nil
		},
		Toggle: func(t commands.TargetArgs) (commands.Result, error) {
			task, err := m.resolveTarget(t)
			if err != nil {
				return commands.Result{}, err
			}
			m.toggleTask(task.ID)
			return commands.Result{Message: m.Status.Text}, nil
		},
		Delete: func(t commands.TargetArgs) (commands.Result, error) {
			task, err := m.resolveTarget(t)
			if err != nil {
				return commands.Result{}, err
			}
			m.deleteTask(task.ID)
			return commands.Result{Message: m.Status.Text}, nil
		},
		Theme: func(t commands.ThemeArgs) (commands.Result, error) {
			if t.Theme == "" {
				m.toggleTheme()
				return commands.Result{Message: m.Status.Text}, nil
			}
			theme, err := model.ParseTheme(t.Theme)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			_ = m.Board.SetTheme(theme)
			m.log().Debug("theme set", "theme", theme)
			return commands.Result{Message: fmt.Sprintf("theme: %s", theme)}, nil
		},
	})
	if err != nil {
		m.setStatus(err.Error(), true)
		m.log().Warn("command failed", "input", raw, "err", err)
	} else {
		m.setStatus(res.Message, false)
	}

	m.closePalette()
	return m
}

func (m Model) resolveTarget(t commands.TargetArgs) (model.Task, error) {
	if t.Position == 0 {
		task, ok := m.selectedTask()
		if !ok {
			return model.Task{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no task selected"}
		}
		return task, nil
	}
	visible := m.Board.FilteredView()
	if t.Position > len(visible) {
		return model.Task{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task at position %d", t.Position)}
	}
	return visible[t.Position-1], nil
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}
