package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmcdole/fittrack/internal/domain"
	"github.com/mmcdole/fittrack/internal/service"
	"github.com/mmcdole/fittrack/internal/tui/styles"
)

func NewFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find QUERY",
		Short: "Fuzzy search the day's exercises and meals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			plan, err := planFor(cmd.Context(), a)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			results := service.SearchPlan(*plan, query)

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintf(out, "No matches for %q\n", query)
				return nil
			}
			for _, r := range results {
				fmt.Fprintf(out, "%s %-8s %s %s\n",
					styles.RenderCheckbox(r.Done), r.Kind, r.Name, styles.DimStyle.Render("("+r.ID+")"))
			}
			return nil
		},
	}
}

// resolveItem finds an item by exact ID first, then by best search match
func resolveItem(plan domain.DayPlan, query string) (service.SearchResult, bool) {
	for _, e := range plan.Exercises {
		if e.ID == query {
			return service.SearchResult{Kind: domain.KindExercise, ID: e.ID, Name: e.Name, Done: e.Completed}, true
		}
	}
	for _, m := range plan.Meals {
		if m.ID == query {
			return service.SearchResult{Kind: domain.KindMeal, ID: m.ID, Name: m.Name, Done: m.Completed}, true
		}
	}

	results := service.SearchPlan(plan, query)
	if len(results) == 0 {
		return service.SearchResult{}, false
	}
	return results[0], true
}

func NewToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ITEM",
		Short: "Mark an exercise or meal done (or not done)",
		Long:  `Toggle completion of the item whose ID is ITEM, or else the best fuzzy match for ITEM.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			plan, err := planFor(cmd.Context(), a)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			item, ok := resolveItem(*plan, query)
			if !ok {
				return fmt.Errorf("%q: %w", query, domain.ErrItemNotFound)
			}

			plan, err = a.tracker.ToggleItem(cmd.Context(), a.day, item.Kind, item.ID)
			if err != nil {
				return err
			}

			state := "not done"
			if (item.Kind == domain.KindExercise && plan.FindExercise(item.ID).Completed) ||
				(item.Kind == domain.KindMeal && plan.FindMeal(item.ID).Completed) {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n", item.Name, state)
			return nil
		},
	}
}
