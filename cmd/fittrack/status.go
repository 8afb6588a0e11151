package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/fittrack/internal/domain"
	"github.com/mmcdole/fittrack/internal/tui/components"
	"github.com/mmcdole/fittrack/internal/tui/styles"
)

const (
	defaultStatusWidth = 60
	maxStatusWidth     = 80
)

// statusWidth is the terminal width clamped to something readable.
// Pipes and files get the default.
func statusWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultStatusWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultStatusWidth
	}
	return min(width, maxStatusWidth)
}

func NewStatusCommand() *cobra.Command {
	var svgPath string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's progress",
		Long:  `Show the progress ring, both section headers and every item for the day.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			plan, err := planFor(cmd.Context(), a)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _, overall := domain.PlanProgress(*plan)
			geometry := components.NewRingGeometry(overall.Percent(), a.cfg.Ring.Size, a.cfg.Ring.StrokeWidth)

			if svgPath != "" {
				if err := os.WriteFile(svgPath, []byte(geometry.SVG()), 0644); err != nil {
					return fmt.Errorf("failed to write svg: %w", err)
				}
				fmt.Fprintf(out, "Wrote %s\n", svgPath)
			}

			latest, _ := a.tracker.LatestWeight(a.day)
			fmt.Fprintln(out, renderStatus(plan, latest, geometry, a.cfg.Ring.CellWidth, a.cfg.Ring.CellHeight, statusWidth(out)))
			return nil
		},
	}

	cmd.Flags().StringVar(&svgPath, "svg", "", "also write the progress ring as SVG to this file")
	return cmd
}

// renderStatus is the non-interactive dashboard
func renderStatus(plan *domain.DayPlan, latest *domain.WeightEntry, g components.RingGeometry, cellW, cellH float64, width int) string {
	ring := components.NewRingView(g.Progress).WithGeometry(g)
	ring.CellWidth = cellW
	ring.CellHeight = cellH

	var b strings.Builder
	b.WriteString(styles.AccentStyle.Bold(true).Render("fittrack") + styles.DimStyle.Render("  ·  "+plan.Day))
	b.WriteString("\n\n")
	b.WriteString(ring.View())
	b.WriteString("\n")

	if latest != nil {
		b.WriteString(fmt.Sprintf("\nWeight: %g %s\n", latest.Value, latest.Unit))
	}

	b.WriteString("\n")
	b.WriteString(components.NewSectionHeader("Workout", plan.Exercises, width).View())
	b.WriteString("\n")
	for _, e := range plan.Exercises {
		b.WriteString(statusLine(e, e.Summary(), width))
	}

	b.WriteString("\n")
	b.WriteString(components.NewSectionHeader("Meals", plan.Meals, width).View())
	b.WriteString("\n")
	for _, m := range plan.Meals {
		b.WriteString(statusLine(m, m.Summary(), width))
	}

	return strings.TrimRight(b.String(), "\n")
}

func statusLine(item domain.TrackableItem, detail string, width int) string {
	name := styles.Truncate(item.ItemName(), width/2)
	line := styles.RenderCheckbox(item.IsCompleted()) + " " + name
	if detail != "" {
		gap := width - lipgloss.Width(line) - lipgloss.Width(detail)
		if gap < 2 {
			gap = 2
		}
		line += strings.Repeat(" ", gap) + styles.DimStyle.Render(detail)
	}
	return line + "\n"
}

// planFor loads the plan for the app's day with the command's context
func planFor(ctx context.Context, a *app) (*domain.DayPlan, error) {
	return a.tracker.Plan(ctx, a.day)
}
