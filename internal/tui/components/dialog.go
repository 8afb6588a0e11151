package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/fittrack/internal/tui/styles"
)

// DialogID names a modal dialog
type DialogID int

const (
	DialogMealDetail DialogID = iota
	DialogWeightCheckIn
)

// DialogOpenChangeMsg asks the caller to change a dialog's open flag.
// Dialogs never close themselves.
type DialogOpenChangeMsg struct {
	Dialog DialogID
	Open   bool
}

func requestClose(d DialogID) tea.Cmd {
	return func() tea.Msg {
		return DialogOpenChangeMsg{Dialog: d, Open: false}
	}
}

// renderModal wraps content in the shared modal frame
func renderModal(width int, title string, body ...string) string {
	titleStyle := styles.ModalTitleStyle.Width(width)
	lineStyle := lipgloss.NewStyle().
		Width(width).
		Background(styles.SlateDark)

	rows := []string{titleStyle.Render(title), lineStyle.Render("")}
	for _, b := range body {
		rows = append(rows, lineStyle.Render(b))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Orange).
		Background(styles.SlateDark).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
