package update

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/todoboard/internal/board"
	"github.com/sandeepkv93/todoboard/internal/logging"
	"github.com/sandeepkv93/todoboard/internal/model"
	"github.com/sandeepkv93/todoboard/internal/views"
)

type Mode string

const (
	ModeInput Mode = "input"
	ModeList  Mode = "list"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Theme   string
	Palette string
	Help    string
	Quit    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	Board       board.Board
	Mode        Mode
	Cursor      int
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error
	logger      *logging.Logger
	copyText    func(string) error
	// Bubble components
	draftInput   textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
}

// AddTaskMsg presses the add button: the current draft becomes a task.
type AddTaskMsg struct{}

type SetDraftMsg struct {
	Text     string
	Category model.Category
}

type ToggleTaskMsg struct {
	ID string
}

type DeleteTaskMsg struct {
	ID string
}

type SetFilterMsg struct {
	Category model.Category
}

type ToggleThemeMsg struct{}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel() Model {
	return newModel(board.New(board.Options{}), logging.Discard())
}

func NewModelWithConfig(cfg RuntimeConfig, logger *logging.Logger) Model {
	opts := board.Options{Empty: cfg.Empty}
	if theme, err := model.ParseTheme(cfg.Theme); err == nil {
		opts.Theme = theme
	}
	if c, err := model.ParseCategory(cfg.DraftCategory); err == nil {
		opts.DraftCategory = c
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return newModel(board.New(opts), logger)
}

func newModel(b board.Board, logger *logging.Logger) Model {
	m := Model{
		Board: b,
		Mode:  ModeInput,
		Keys: GlobalKeyMap{
			Theme:   "ctrl+t",
			Palette: "/",
			Help:    "?",
			Quit:    "q",
		},
		logger:   logger,
		copyText: clipboard.WriteAll,
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.draftInput = textinput.New()
	m.draftInput.Prompt = ""
	m.draftInput.Placeholder = views.InputPlaceholder
	m.draftInput.CharLimit = 256
	m.draftInput.Width = 48
	m.draftInput.SetValue(m.Board.DraftText())
	if m.Mode == ModeInput {
		m.draftInput.Focus()
	}

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
	m.helpModel.ShowAll = true
}

func (m *Model) log() *logging.Logger {
	if m.logger == nil {
		m.logger = logging.Discard()
	}
	return m.logger
}

func (m *Model) setStatus(text string, isErr bool) {
	m.Status = StatusBar{Text: strings.TrimSpace(text), IsError: isErr}
}
