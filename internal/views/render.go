package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	Title            = "待办事项"
	AddButtonLabel   = "添加"
	InputPlaceholder = "输入新的待办事项..."
	EmptyPlaceholder = "暂无待办事项"
	UsageHint        = "点击复选框标记完成，点击×删除项目"
	ToDarkLabel      = "🌙 深色模式"
	ToLightLabel     = "☀️ 浅色模式"
	CheckMark        = "✓"
	DeleteMark       = "×"
)

// ThemeToggleLabel names the theme the toggle switches to.
func ThemeToggleLabel(dark bool) string {
	if dark {
		return ToLightLabel
	}
	return ToDarkLabel
}

type palette struct {
	header      lipgloss.Style
	toggle      lipgloss.Style
	panel       lipgloss.Style
	button      lipgloss.Style
	activeBtn   lipgloss.Style
	addBtn      lipgloss.Style
	counter     lipgloss.Style
	row         lipgloss.Style
	cursor      lipgloss.Style
	text        lipgloss.Style
	doneText    lipgloss.Style
	check       lipgloss.Style
	badge       lipgloss.Style
	deleteMark  lipgloss.Style
	placeholder lipgloss.Style
	status      lipgloss.Style
	errorStatus lipgloss.Style
	hint        lipgloss.Style
	footer      lipgloss.Style
}

var (
	lightPalette = newPalette(false)
	darkPalette  = newPalette(true)
)

func newPalette(dark bool) palette {
	fg, muted, surface, chip, border := lipgloss.Color("235"), lipgloss.Color("243"), lipgloss.Color("255"), lipgloss.Color("254"), lipgloss.Color("250")
	if dark {
		fg, muted, surface, chip, border = lipgloss.Color("255"), lipgloss.Color("245"), lipgloss.Color("236"), lipgloss.Color("239"), lipgloss.Color("240")
	}
	blue := lipgloss.Color("33")
	return palette{
		header:      lipgloss.NewStyle().Bold(true).Foreground(fg),
		toggle:      lipgloss.NewStyle().Foreground(fg).Background(chip).Padding(0, 1),
		panel:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		button:      lipgloss.NewStyle().Foreground(fg).Background(chip).Padding(0, 1),
		activeBtn:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(blue).Padding(0, 1),
		addBtn:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(blue).Padding(0, 1),
		counter:     lipgloss.NewStyle().Foreground(fg).Background(chip).Padding(0, 1),
		row:         lipgloss.NewStyle().Foreground(fg).Background(surface),
		cursor:      lipgloss.NewStyle().Bold(true).Foreground(blue),
		text:        lipgloss.NewStyle().Foreground(fg),
		doneText:    lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
		check:       lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		badge:       lipgloss.NewStyle().Foreground(fg).Background(chip),
		deleteMark:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		placeholder: lipgloss.NewStyle().Foreground(muted).Italic(true),
		status:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		errorStatus: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		hint:        lipgloss.NewStyle().Foreground(muted),
		footer:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func paletteFor(dark bool) palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// RenderMarkdown renders md with the glamour style matching the theme and
// falls back to the source when rendering fails.
func RenderMarkdown(md string, dark bool) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if dark {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
