package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/fittrack/internal/domain"
	"github.com/mmcdole/fittrack/internal/tui/styles"
)

const checkInModalWidth = 36

// CheckInState is the state of the weight check-in flow
type CheckInState int

const (
	// CheckInIdle means the dialog is closed and holds no input
	CheckInIdle CheckInState = iota
	// CheckInEditing means the dialog is open with a text buffer and a unit
	CheckInEditing
)

// WeightSubmittedMsg carries a validated weight
type WeightSubmittedMsg struct {
	Value float64
	Unit  domain.WeightUnit
}

// WeightSkippedMsg means the user declined to log a weight today
type WeightSkippedMsg struct{}

// WeightDelayedMsg means the user asked to be reminded later
type WeightDelayedMsg struct{}

// WeightCheckInModal collects one weight. Idle → Editing on Open; from
// Editing, submit, skip and delay each emit one message. The caller closes.
type WeightCheckInModal struct {
	state       CheckInState
	input       textinput.Model
	unit        domain.WeightUnit
	defaultUnit domain.WeightUnit
}

// NewWeightCheckInModal creates an idle check-in
func NewWeightCheckInModal(defaultUnit domain.WeightUnit) WeightCheckInModal {
	if !defaultUnit.Valid() {
		defaultUnit = domain.UnitKg
	}

	ti := textinput.New()
	ti.Placeholder = "e.g. 72.5"
	ti.CharLimit = 8
	ti.Width = 12
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return WeightCheckInModal{
		input:       ti,
		unit:        defaultUnit,
		defaultUnit: defaultUnit,
	}
}

// Open enters Editing with an empty buffer and the default unit
func (m *WeightCheckInModal) Open() tea.Cmd {
	m.state = CheckInEditing
	m.unit = m.defaultUnit
	m.input.SetValue("")
	return m.input.Focus()
}

// Close returns to Idle and drops any typed text
func (m *WeightCheckInModal) Close() {
	m.state = CheckInIdle
	m.input.SetValue("")
	m.input.Blur()
}

// SetOpen applies the caller's open flag
func (m *WeightCheckInModal) SetOpen(open bool) tea.Cmd {
	if !open {
		m.Close()
		return nil
	}
	if m.state == CheckInEditing {
		return nil
	}
	return m.Open()
}

// State returns the current state
func (m WeightCheckInModal) State() CheckInState {
	return m.state
}

// IsVisible returns whether the modal is shown
func (m WeightCheckInModal) IsVisible() bool {
	return m.state == CheckInEditing
}

// Value returns the text buffer
func (m WeightCheckInModal) Value() string {
	return m.input.Value()
}

// Unit returns the selected unit
func (m WeightCheckInModal) Unit() domain.WeightUnit {
	return m.unit
}

// CanSubmit is recomputed from the buffer on every call
func (m WeightCheckInModal) CanSubmit() bool {
	return m.state == CheckInEditing && domain.CanSubmit(m.input.Value())
}

// Update handles input events while Editing
func (m WeightCheckInModal) Update(msg tea.Msg) (WeightCheckInModal, tea.Cmd) {
	if m.state != CheckInEditing {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, CheckInKeys.Submit):
			value, ok := domain.ParseWeight(m.input.Value())
			if !ok {
				return m, nil
			}
			unit := m.unit
			m.input.SetValue("")
			return m, func() tea.Msg {
				return WeightSubmittedMsg{Value: value, Unit: unit}
			}
		case key.Matches(keyMsg, CheckInKeys.ToggleUnit):
			m.unit = m.unit.Toggle()
			return m, nil
		case key.Matches(keyMsg, CheckInKeys.Skip):
			return m, func() tea.Msg { return WeightSkippedMsg{} }
		case key.Matches(keyMsg, CheckInKeys.Delay):
			return m, func() tea.Msg { return WeightDelayedMsg{} }
		case key.Matches(keyMsg, CheckInKeys.Close):
			return m, requestClose(DialogWeightCheckIn)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m WeightCheckInModal) renderUnits() string {
	render := func(u domain.WeightUnit) string {
		if u == m.unit {
			return styles.HighlightStyle.Render(string(u))
		}
		return styles.DimBadge(string(u))
	}
	return render(domain.UnitKg) + " " + render(domain.UnitLbs)
}

// View renders the check-in dialog
func (m WeightCheckInModal) View() string {
	if m.state != CheckInEditing {
		return ""
	}

	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(styles.DimGray)
	if m.CanSubmit() {
		inputStyle = inputStyle.BorderForeground(styles.Green)
	}

	save := styles.ButtonDisabledStyle.Render("Save")
	if m.CanSubmit() {
		save = styles.ButtonStyle.Render("Save")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		save, " ",
		styles.DimBadge("Skip today"), " ",
		styles.DimBadge("Later"),
	)

	return renderModal(checkInModalWidth, "Morning weigh-in",
		styles.SubtitleStyle.Render("How much do you weigh today?"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Bottom, inputStyle.Render(m.input.View()), "  ", m.renderUnits()),
		"",
		buttons,
		"",
		styles.RenderHelp(
			[2]string{"enter", "save"},
			[2]string{"tab", "unit"},
			[2]string{"C-s", "skip"},
			[2]string{"C-l", "later"},
		),
	)
}
