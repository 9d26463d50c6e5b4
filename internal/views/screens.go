package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TaskRowData struct {
	ID        string
	Text      string
	Category  string
	Completed bool
	Selected  bool
}

type BoardData struct {
	Dark          bool
	InputView     string
	InputFocused  bool
	DraftCategory string
	// DraftOptions are the selectable task categories.
	DraftOptions []string
	Filters      []string
	ActiveFilter string
	Completed    int
	Total        int
	Rows         []TaskRowData
	StatusLine   string
	StatusError  bool
	PaletteView  string
	HelpView     string
	Footer       string
}

const panelWidth = 72

func RenderBoard(data BoardData) string {
	p := paletteFor(data.Dark)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		p.header.Render(Title),
		"   ",
		p.toggle.Render(ThemeToggleLabel(data.Dark)),
	)

	body := []string{
		renderInputRow(p, data),
		renderFilterBar(p, data.Filters, data.ActiveFilter),
		p.counter.Render(FormatCounter(data.Completed, data.Total)),
		"",
		renderRows(p, data.Rows),
	}
	if data.PaletteView != "" {
		body = append(body, "", data.PaletteView)
	}
	main := p.panel.Width(panelWidth).Render(strings.Join(body, "\n"))
	if data.HelpView != "" {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, p.panel.Render(data.HelpView))
	}

	lines := []string{header, main}
	if data.StatusLine != "" {
		if data.StatusError {
			lines = append(lines, p.errorStatus.Render(data.StatusLine))
		} else {
			lines = append(lines, p.status.Render(data.StatusLine))
		}
	}
	lines = append(lines, p.hint.Render(UsageHint))
	if data.Footer != "" {
		lines = append(lines, p.footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func FormatCounter(completed, total int) string {
	return fmt.Sprintf("完成: %d / 总数: %d", completed, total)
}

func renderInputRow(p palette, data BoardData) string {
	options := make([]string, 0, len(data.DraftOptions))
	for _, opt := range data.DraftOptions {
		if opt == data.DraftCategory {
			options = append(options, p.activeBtn.Render(opt))
			continue
		}
		options = append(options, p.button.Render(opt))
	}
	marker := " "
	if data.InputFocused {
		marker = p.cursor.Render(">")
	}
	input := marker + " " + data.InputView
	selector := "分类: " + strings.Join(options, " ")
	return input + "\n" + selector + "  " + p.addBtn.Render(AddButtonLabel)
}

func renderFilterBar(p palette, filters []string, active string) string {
	out := make([]string, 0, len(filters))
	for i, f := range filters {
		label := fmt.Sprintf("%d %s", i+1, f)
		if f == active {
			out = append(out, p.activeBtn.Render(label))
			continue
		}
		out = append(out, p.button.Render(label))
	}
	return strings.Join(out, " ")
}

func renderRows(p palette, rows []TaskRowData) string {
	if len(rows) == 0 {
		return p.placeholder.Render(EmptyPlaceholder)
	}
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		cursor := " "
		if row.Selected {
			cursor = p.cursor.Render(">")
		}
		box := "( )"
		text := p.text.Render(row.Text)
		if row.Completed {
			box = "(" + p.check.Render(CheckMark) + ")"
			text = p.doneText.Render(row.Text)
		}
		lines = append(lines, fmt.Sprintf("%s %d. %s %s %s %s",
			cursor, i+1, box, text, p.badge.Render("["+row.Category+"]"), p.deleteMark.Render(DeleteMark)))
	}
	return strings.Join(lines, "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", input)
}

type HelpPanelData struct {
	Mode     string
	Bindings []string
	HelpView string
	Dark     bool
}

// HelpMarkdown is the markdown source of the help panel.
func HelpMarkdown(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("## Keys\n\n")
	fmt.Fprintf(&b, "mode: **%s**\n\n", data.Mode)
	for _, line := range data.Bindings {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n## Commands\n\n")
	b.WriteString("- `/add <text> [cat:<category>]`\n")
	b.WriteString("- `/filter <category>`\n")
	b.WriteString("- `/toggle <n|selected>`\n")
	b.WriteString("- `/delete <n|selected>`\n")
	b.WriteString("- `/theme [light|dark]`\n")
	return b.String()
}

func RenderHelpPanel(data HelpPanelData) string {
	return strings.TrimSpace(RenderMarkdown(HelpMarkdown(data), data.Dark) + "\n\n" + data.HelpView)
}
