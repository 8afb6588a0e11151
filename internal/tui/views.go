package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/fittrack/internal/domain"
	"github.com/mmcdole/fittrack/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}
	if m.ShowHelp {
		return m.renderHelp()
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleBar(),
		"",
		m.renderBody(),
		"",
		m.renderFooter(),
	)

	// Dialogs replace the dashboard while open
	if m.CheckIn.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.CheckIn.View())
	} else if m.MealDetail.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.MealDetail.View())
	}

	return view
}

// renderTitleBar renders the app name and the day
func (m Model) renderTitleBar() string {
	return styles.AccentStyle.Bold(true).Render("fittrack") +
		styles.DimStyle.Render("  ·  "+m.Day)
}

// fixedWidth pads or truncates every line of s to exactly width
func fixedWidth(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Left,
		lipgloss.NewStyle().MaxWidth(width).Render(s))
}

// renderBody lays out the sidebar and both sections side by side
func (m Model) renderBody() string {
	l := m.layout()
	gutter := strings.Repeat(" ", Gutter)

	var cols []string
	if l.sidebarWidth > 0 {
		cols = append(cols, fixedWidth(m.renderSidebar(l.sidebarWidth), l.sidebarWidth), gutter)
	}
	cols = append(cols,
		fixedWidth(m.Exercises.View(l.sectionWidth), l.sectionWidth),
		gutter,
		fixedWidth(m.Meals.View(l.sectionWidth), l.sectionWidth),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// renderSidebar renders the hero, the overall ring and today's weight
func (m Model) renderSidebar(width int) string {
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
	}

	var rows []string
	if m.Config.UI.ShowHero {
		rows = append(rows, center(m.Hero.View()), "")
	}
	rows = append(rows, center(m.Ring.View()), "")

	var overall domain.CompletionAggregate
	if m.Plan != nil {
		_, _, overall = domain.PlanProgress(*m.Plan)
	}
	rows = append(rows,
		center(styles.TitleStyle.Render("Today")),
		center(styles.SubtitleStyle.Render(fmt.Sprintf("%d of %d done", overall.Completed, overall.Total))),
		"",
	)

	if m.Latest != nil {
		rows = append(rows, center(styles.SuccessStyle.Render(fmt.Sprintf("⚖ %g %s", m.Latest.Value, m.Latest.Unit))))
	} else {
		rows = append(rows, center(styles.DimStyle.Render("No weigh-in yet")))
	}
	return strings.Join(rows, "\n")
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
DASHBOARD                       CARDS
  tab        Workout / meals      space/x  Toggle done
  p          Page controls        enter    Open
  w          Weigh in             a        Do later
  ?          Help                 /        Filter
  q          Quit                 j/k      Up/down

PAGES                           WEIGH-IN
  h/l        Move                 enter    Save
  enter      Go to page           tab      kg / lbs
  esc        Back to cards        C-s      Skip today
                                  C-l      Remind later

Mouse: click a checkbox to toggle, a card to open,
a page number to jump.

Press ? or Esc to close
`
	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}
