package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/fittrack/internal/domain"
	"github.com/mmcdole/fittrack/internal/tui/styles"
)

// SectionHeader shows a title, the completed/total count, the percentage
// and a proportional bar. It is a pure function of its fields.
type SectionHeader struct {
	Title     string
	Aggregate domain.CompletionAggregate
	Width     int
}

// NewSectionHeader aggregates items for a header
func NewSectionHeader[T domain.TrackableItem](title string, items []T, width int) SectionHeader {
	return SectionHeader{Title: title, Aggregate: domain.Aggregate(items), Width: width}
}

// FilledCells is floor(width × percent / 100) with percent held to [0, 100]
func FilledCells(percent float64, width int) int {
	if width <= 0 || math.IsNaN(percent) {
		return 0
	}
	percent = math.Max(0, math.Min(100, percent))
	// Epsilon absorbs float error such as 1/3×100×3 = 99.999…
	return int(math.Floor(float64(width)*percent/100 + 1e-9))
}

// Emphasis is the success color exactly when the section is complete
func (h SectionHeader) Emphasis() lipgloss.Color {
	if h.Aggregate.IsComplete() {
		return styles.Green
	}
	return styles.Orange
}

// Bar renders only the progress bar
func (h SectionHeader) Bar() string {
	if h.Width <= 0 {
		return ""
	}
	filled := FilledCells(h.Aggregate.Percent(), h.Width)

	bar := progress.New(
		progress.WithSolidFill(string(h.Emphasis())),
		progress.WithoutPercentage(),
		progress.WithWidth(h.Width),
	)
	bar.EmptyColor = string(styles.SlateLight)

	// ViewAs rounds; feeding it an exact cell ratio keeps the floor
	return bar.ViewAs(float64(filled) / float64(h.Width))
}

// Summary is the "completed/total  NN%" text
func (h SectionHeader) Summary() string {
	return fmt.Sprintf("%d/%d  %s", h.Aggregate.Completed, h.Aggregate.Total, RingLabel(h.Aggregate.Percent()))
}

// View renders the title row above the bar
func (h SectionHeader) View() string {
	title := styles.TitleStyle.Render(h.Title)
	summary := lipgloss.NewStyle().Foreground(h.Emphasis()).Bold(h.Aggregate.IsComplete()).Render(h.Summary())

	gap := h.Width - lipgloss.Width(title) - lipgloss.Width(summary)
	if gap < 2 {
		gap = 2
	}
	row := title + lipgloss.NewStyle().Width(gap).Render("") + summary

	if bar := h.Bar(); bar != "" {
		return row + "\n" + bar
	}
	return row
}
