package update

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todoboard/internal/model"
	"github.com/sandeepkv93/todoboard/internal/views"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		next, ok := updated.(Model)
		if !ok {
			t.Fatalf("unexpected model type %T", updated)
		}
		m = next
	}
	return m
}

func counter(m Model) string {
	done, total := m.Board.Counts()
	return views.FormatCounter(done, total)
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel()
	if m.Mode != ModeInput {
		t.Fatalf("expected input mode, got %q", m.Mode)
	}
	if m.Board.Len() != 5 || m.Board.ActiveCategory() != model.CategoryAll {
		t.Fatalf("unexpected board defaults: len=%d filter=%q", m.Board.Len(), m.Board.ActiveCategory())
	}
	if m.Keys.Quit != "q" || m.Keys.Theme != "ctrl+t" {
		t.Fatalf("unexpected keys: %+v", m.Keys)
	}
	if m.Init() == nil {
		t.Fatal("expected blink command in input mode")
	}
}

func TestNewModelWithConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.Theme = "dark"
	cfg.DraftCategory = "study"
	cfg.Empty = true
	m := NewModelWithConfig(cfg, nil)
	if m.Board.Theme() != model.ThemeDark || m.Board.DraftCategory() != model.CategoryStudy {
		t.Fatalf("config not applied: theme=%q draft=%q", m.Board.Theme(), m.Board.DraftCategory())
	}
	out := m.View()
	if !strings.Contains(out, views.EmptyPlaceholder) {
		t.Fatalf("expected empty placeholder: %q", out)
	}
	if !strings.Contains(out, views.ToLightLabel) {
		t.Fatalf("expected light-mode toggle label in dark theme: %q", out)
	}
}

func TestSeedScenarioThroughKeys(t *testing.T) {
	m := NewModel()
	if !strings.Contains(m.View(), "完成: 1 / 总数: 5") {
		t.Fatalf("expected 1/5 counter in view: %q", m.View())
	}

	m = send(t, m, keyEsc, runes("4"))
	if m.Board.ActiveCategory() != model.CategoryStudy {
		t.Fatalf("expected study filter, got %q", m.Board.ActiveCategory())
	}
	view := m.Board.FilteredView()
	if len(view) != 2 || view[0].Text != "学习React Hooks" || view[1].Text != "阅读技术文章" {
		t.Fatalf("unexpected study view: %+v", view)
	}
	out := m.View()
	if strings.Contains(out, "完成项目报告") || !strings.Contains(out, "完成: 1 / 总数: 5") {
		t.Fatalf("filtered view should hide other tasks but keep counter: %q", out)
	}

	m = send(t, m, runes("1"), runes("i"), runes("  "), keyEnter)
	if m.Board.Len() != 5 {
		t.Fatalf("expected whitespace add to be ignored, got %d tasks", m.Board.Len())
	}

	m = send(t, m, keyTab, keyTab, keyTab, runes("Test"), keyEnter)
	if m.Board.Len() != 6 {
		t.Fatalf("expected 6 tasks, got %d", m.Board.Len())
	}
	tasks := m.Board.Tasks()
	added := tasks[5]
	if added.Text != "Test" || added.Completed || added.Category != model.CategoryHealth {
		t.Fatalf("unexpected added task: %+v", added)
	}
	if m.Board.DraftText() != "" || m.draftInput.Value() != "" {
		t.Fatalf("expected draft cleared, got %q / %q", m.Board.DraftText(), m.draftInput.Value())
	}
	if m.Board.DraftCategory() != model.CategoryHealth {
		t.Fatalf("expected draft category kept, got %q", m.Board.DraftCategory())
	}

	first := tasks[0].ID
	m = send(t, m, ToggleTaskMsg{ID: first})
	if counter(m) != "完成: 2 / 总数: 6" {
		t.Fatalf("expected 2/6, got %s", counter(m))
	}
	m = send(t, m, ToggleTaskMsg{ID: first})
	if counter(m) != "完成: 1 / 总数: 6" {
		t.Fatalf("expected 1/6, got %s", counter(m))
	}

	m = send(t, m, DeleteTaskMsg{ID: added.ID})
	if m.Board.Len() != 5 {
		t.Fatalf("expected 5 tasks after delete, got %d", m.Board.Len())
	}
}

func TestListModeToggleAndDelete(t *testing.T) {
	m := send(t, NewModel(), keyEsc, keySpace)
	if !m.Board.Tasks()[0].Completed {
		t.Fatal("expected first task completed")
	}
	if m.Status.Text != "completed: 完成项目报告" {
		t.Fatalf("unexpected status: %+v", m.Status)
	}

	m = send(t, m, runes("j"), runes("j"), runes("j"), runes("j"), runes("j"))
	if m.Cursor != 4 {
		t.Fatalf("expected cursor clamped at 4, got %d", m.Cursor)
	}
	last := m.Board.Tasks()[4].ID
	m = send(t, m, runes("d"))
	if m.Board.Len() != 4 {
		t.Fatalf("expected 4 tasks, got %d", m.Board.Len())
	}
	if _, ok := m.Board.Task(last); ok {
		t.Fatal("expected selected task removed")
	}
	if m.Cursor != 3 {
		t.Fatalf("expected cursor clamped to 3, got %d", m.Cursor)
	}
}

func TestFilterKeysAndEmptyPlaceholder(t *testing.T) {
	m := send(t, NewModel(), keyEsc, runes("5"))
	if len(m.Board.FilteredView()) != 1 {
		t.Fatalf("expected one health task, got %d", len(m.Board.FilteredView()))
	}
	m = send(t, m, runes("d"))
	if !strings.Contains(m.View(), views.EmptyPlaceholder) {
		t.Fatalf("expected placeholder after emptying filter: %q", m.View())
	}
	if m.Board.Len() != 4 {
		t.Fatalf("expected 4 tasks overall, got %d", m.Board.Len())
	}

	m = send(t, m, runes("l"))
	if m.Board.ActiveCategory() != model.CategoryAll {
		t.Fatalf("expected filter to wrap to All, got %q", m.Board.ActiveCategory())
	}
	m = send(t, m, runes("h"))
	if m.Board.ActiveCategory() != model.CategoryHealth {
		t.Fatalf("expected filter to wrap back to health, got %q", m.Board.ActiveCategory())
	}
}

func TestThemeToggleKeys(t *testing.T) {
	m := send(t, NewModel(), tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.Board.Theme() != model.ThemeDark {
		t.Fatalf("expected dark theme, got %q", m.Board.Theme())
	}
	if !strings.Contains(m.View(), views.ToLightLabel) {
		t.Fatalf("expected toggle label to offer light mode: %q", m.View())
	}
	m = send(t, m, keyEsc, runes("t"))
	if m.Board.Theme() != model.ThemeLight {
		t.Fatalf("expected light theme, got %q", m.Board.Theme())
	}
	m = send(t, m, ToggleThemeMsg{})
	if m.Board.Theme() != model.ThemeDark || m.Board.Len() != 5 {
		t.Fatal("theme message should flip theme only")
	}
}

func TestTypingInListModeStartsDraft(t *testing.T) {
	m := send(t, NewModel(), keyEsc, runes("z"))
	if m.Mode != ModeInput {
		t.Fatalf("expected input mode, got %q", m.Mode)
	}
	if m.Board.DraftText() != "z" {
		t.Fatalf("expected draft z, got %q", m.Board.DraftText())
	}
}

func TestQuitKeys(t *testing.T) {
	m := send(t, NewModel(), runes("q"))
	if m.Quitting || m.Board.DraftText() != "q" {
		t.Fatalf("q should type in input mode, draft=%q", m.Board.DraftText())
	}

	updated, cmd := send(t, m, keyEsc).Update(runes("q"))
	if !updated.(Model).Quitting || cmd == nil {
		t.Fatal("expected quit in list mode")
	}

	updated, cmd = NewModel().Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !updated.(Model).Quitting || cmd == nil {
		t.Fatal("expected ctrl+c to quit")
	}
}

func TestPaletteAddFilterToggleDelete(t *testing.T) {
	m := send(t, NewModel(), keyEsc, runes("/"))
	if !m.Palette.Active {
		t.Fatal("expected palette active")
	}
	m = send(t, m, runes("add buy milk cat:life"), keyEnter)
	if m.Palette.Active {
		t.Fatal("expected palette closed after execute")
	}
	last := m.Board.Tasks()[m.Board.Len()-1]
	if last.Text != "buy milk" || last.Category != model.CategoryLife {
		t.Fatalf("unexpected palette task: %+v", last)
	}
	if m.Status.IsError {
		t.Fatalf("unexpected error status: %+v", m.Status)
	}

	m = send(t, m, runes("/"), runes("filter 生活"), keyEnter)
	if m.Board.ActiveCategory() != model.CategoryLife || len(m.Board.FilteredView()) != 2 {
		t.Fatalf("unexpected filter result: %q %d", m.Board.ActiveCategory(), len(m.Board.FilteredView()))
	}

	m = send(t, m, runes("/"), runes("toggle 1"), keyEnter)
	if counter(m) != "完成: 0 / 总数: 6" {
		t.Fatalf("expected seed life task reopened, got %s", counter(m))
	}

	m = send(t, m, runes("/"), runes("delete 2"), keyEnter)
	if m.Board.Len() != 5 {
		t.Fatalf("expected 5 tasks, got %d", m.Board.Len())
	}
	if _, ok := m.Board.Task(last.ID); ok {
		t.Fatal("expected palette-added task deleted")
	}

	m = send(t, m, runes("/"), runes("theme dark"), keyEnter)
	if m.Board.Theme() != model.ThemeDark {
		t.Fatalf("expected dark theme, got %q", m.Board.Theme())
	}
}

func TestPaletteErrors(t *testing.T) {
	cases := []string{"filter nope", "delete 9", "add x cat:全部", "frobnicate"}
	for _, input := range cases {
		m := send(t, NewModel(), keyEsc, runes("/"), runes(input), keyEnter)
		if !m.Status.IsError {
			t.Fatalf("%q: expected error status, got %+v", input, m.Status)
		}
		if m.Board.Len() != 5 || m.Board.ActiveCategory() != model.CategoryAll {
			t.Fatalf("%q: board should be unchanged", input)
		}
		if !strings.Contains(m.View(), "status: error:") {
			t.Fatalf("%q: expected error in view", input)
		}
	}
}

func TestPaletteEscCloses(t *testing.T) {
	m := send(t, NewModel(), keyEsc, runes("/"), runes("add x"), keyEsc)
	if m.Palette.Active || m.Board.Len() != 5 {
		t.Fatalf("expected palette closed without effect, active=%v len=%d", m.Palette.Active, m.Board.Len())
	}
}

func TestHelpToggle(t *testing.T) {
	m := send(t, NewModel(), keyEsc, runes("?"))
	if !m.HelpVisible {
		t.Fatal("expected help visible")
	}
	if !strings.Contains(m.View(), "open command palette") {
		t.Fatalf("expected help bindings in view: %q", m.View())
	}
	m = send(t, m, runes("?"))
	if m.HelpVisible {
		t.Fatal("expected help hidden")
	}
}

func TestMessagesDriveBoard(t *testing.T) {
	m := send(t, NewModel(), SetDraftMsg{Text: "  ", Category: model.CategoryLife}, AddTaskMsg{})
	if m.Board.Len() != 5 {
		t.Fatalf("blank draft must be ignored, got %d", m.Board.Len())
	}
	m = send(t, m, SetDraftMsg{Text: "water plants"}, AddTaskMsg{})
	last := m.Board.Tasks()[5]
	if last.Text != "water plants" || last.Category != model.CategoryLife {
		t.Fatalf("unexpected task: %+v", last)
	}

	before := m.Board.Tasks()
	m = send(t, m, ToggleTaskMsg{ID: "missing"}, DeleteTaskMsg{ID: "missing"})
	if m.Board.Len() != len(before) {
		t.Fatal("unknown ids must be no-ops")
	}

	m = send(t, m, SetFilterMsg{Category: model.Category("购物")})
	if !m.Status.IsError || m.Board.ActiveCategory() != model.CategoryAll {
		t.Fatalf("expected invalid filter rejected, status=%+v", m.Status)
	}

	m = send(t, m, SetDraftMsg{Text: "x", Category: model.CategoryAll})
	if !m.Status.IsError || m.Board.DraftCategory() != model.CategoryLife {
		t.Fatalf("expected All rejected as draft category, status=%+v", m.Status)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m := NewModel()
	m = send(t, m, SetStatusMsg{Text: "ready"})
	if m.Status.Text != "ready" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	if !strings.Contains(m.View(), "status: ready") {
		t.Fatalf("expected status in view: %q", m.View())
	}

	m = send(t, m, AppErrorMsg{Err: errors.New("boom")})
	if m.LastError == nil || m.LastError.Error() != "boom" {
		t.Fatalf("expected last error boom, got: %v", m.LastError)
	}
	if !m.Status.IsError || m.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", m.Status)
	}

	m = send(t, m, ClearStatusMsg{})
	if m.Status.Text != "" || m.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", m.Status)
	}
}

func TestCopySelectedTask(t *testing.T) {
	var copied string
	m := NewModel()
	m.copyText = func(s string) error {
		copied = s
		return nil
	}
	m = send(t, m, keyEsc, runes("j"), runes("y"))
	if copied != "购买生活用品" || m.Status.Text != "copied: 购买生活用品" {
		t.Fatalf("unexpected copy: %q status=%+v", copied, m.Status)
	}

	m.copyText = func(string) error { return errors.New("no clipboard") }
	m = send(t, m, runes("y"))
	if !m.Status.IsError || m.Board.Len() != 5 {
		t.Fatalf("expected copy failure in status, got %+v", m.Status)
	}
}
