package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Route to active modal if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	if m.ShowHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.ShowHelp = false
		}
		return m, nil
	}

	active := m.section(m.focus)

	// A list that is typing a filter owns every key
	if active.List.IsFilterTyping() {
		cmd := active.List.Update(msg)
		active.syncPager()
		return m, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil

	case key.Matches(msg, Keys.SwitchSection):
		next := focusMeals
		if m.focus == focusMeals {
			next = focusExercises
		}
		m.setFocus(next)
		return m, nil

	case key.Matches(msg, Keys.Pager):
		if active.Pager.Focused() {
			active.Pager.Blur()
			active.List.Focus()
		} else {
			active.List.Blur()
			active.Pager.Focus()
		}
		return m, nil

	case key.Matches(msg, Keys.CheckIn):
		return m, m.CheckIn.Open()
	}

	if active.Pager.Focused() {
		if key.Matches(msg, Keys.Escape) {
			active.Pager.Blur()
			active.List.Focus()
			return m, nil
		}
		var cmd tea.Cmd
		active.Pager, cmd = active.Pager.Update(msg)
		return m, cmd
	}

	cmd := active.List.Update(msg)
	active.syncPager()
	return m, cmd
}

// routeToModal sends keys to the open dialog. Dialogs swallow all keys.
func (m Model) routeToModal(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if m.CheckIn.IsVisible() {
		var cmd tea.Cmd
		m.CheckIn, cmd = m.CheckIn.Update(msg)
		return true, m, cmd
	}
	if cmd, handled := m.MealDetail.HandleKeyMsg(msg); handled {
		return true, m, cmd
	}
	return false, m, nil
}

// handleMouseMsg hit-tests left presses against the two sections.
// Clicking a section also focuses it.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.CheckIn.IsVisible() || m.MealDetail.IsVisible() || m.ShowHelp {
		return m, nil
	}

	area, x, ok := m.layout().sectionAt(msg.X)
	if !ok {
		return m, nil
	}
	s := m.section(area)
	y := msg.Y - BodyTop

	switch {
	case y >= SectionListAt && y < s.pagerRow()-1:
		m.setFocus(area)
		cmd := s.List.HandleClick(x, y-SectionListAt)
		s.syncPager()
		return m, cmd

	case y == s.pagerRow():
		c, ok := s.Pager.ControlAt(x)
		if !ok {
			return m, nil
		}
		m.setFocus(area)
		return m, s.Pager.Activate(c)
	}
	return m, nil
}
