package terminal

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	majorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	minorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	patchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// selectorModel is a multi-select list of updates. Every update starts
// selected, matching the non-interactive behaviour.
type selectorModel struct {
	updates   []entities.Update
	selected  []bool
	cursor    int
	confirmed bool
	cancelled bool
}

func newSelectorModel(updates []entities.Update) selectorModel {
	selected := make([]bool, len(updates))
	for i := range selected {
		selected[i] = true
	}
	return selectorModel{updates: updates, selected: selected}
}

func (m selectorModel) Init() tea.Cmd { return nil }

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "enter":
		m.confirmed = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.updates)-1 {
			m.cursor++
		}
	case " ", "x":
		if len(m.selected) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
	case "a":
		all := !m.allSelected()
		for i := range m.selected {
			m.selected[i] = all
		}
	}
	return m, nil
}

func (m selectorModel) View() string {
	if m.confirmed || m.cancelled {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Choose which packages to update") + "\n\n")
	for i, update := range m.updates {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("❯ ")
		}
		check := "◯"
		if m.selected[i] {
			check = "◉"
		}
		fmt.Fprintf(&sb, "%s%s %-30s %10s  →  %s\n",
			cursor, check,
			update.Dependency.Name,
			update.Dependency.VersionSpec,
			severityStyle(update.Severity).Render(update.Latest.String()),
		)
	}
	sb.WriteString("\n" + helpStyle.Render("space: toggle • a: toggle all • enter: confirm • q: cancel") + "\n")
	return sb.String()
}

func (m selectorModel) allSelected() bool {
	for _, s := range m.selected {
		if !s {
			return false
		}
	}
	return true
}

// chosen returns the selected updates in their original order.
func (m selectorModel) chosen() []entities.Update {
	if m.cancelled {
		return []entities.Update{}
	}
	result := make([]entities.Update, 0, len(m.updates))
	for i, update := range m.updates {
		if m.selected[i] {
			result = append(result, update)
		}
	}
	return result
}

func severityStyle(severity entities.Severity) lipgloss.Style {
	switch severity {
	case entities.SeverityMajor:
		return majorStyle
	case entities.SeverityMinor:
		return minorStyle
	default:
		return patchStyle
	}
}
