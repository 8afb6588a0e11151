package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/fittrack/internal/adapter"
	"github.com/mmcdole/fittrack/internal/domain"
	"github.com/mmcdole/fittrack/internal/service"
	"github.com/mmcdole/fittrack/internal/tui/components"
)

const statusTimeout = 3 * time.Second

// Model is the main Bubble Tea model for the application.
// It owns the day plan; components only render it and emit events.
type Model struct {
	Ready bool

	// Services
	Tracker *service.TrackerService
	Config  *adapter.Config

	// Data
	Day    string
	Plan   *domain.DayPlan
	Latest *domain.WeightEntry

	// UI Components
	Exercises  *Section
	Meals      *Section
	Ring       components.RingView
	Hero       components.Hero
	MealDetail components.MealDetailModal
	CheckIn    components.WeightCheckInModal

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
	ShowHelp    bool
	focus       focusArea
}

// NewModel creates a new application model for day
func NewModel(tracker *service.TrackerService, cfg *adapter.Config, day string) Model {
	if cfg == nil {
		cfg = adapter.DefaultConfig()
	}

	m := Model{
		Tracker:    tracker,
		Config:     cfg,
		Day:        day,
		Exercises:  NewSection(domain.KindExercise, "Workout", cfg.Pagination.PerPage),
		Meals:      NewSection(domain.KindMeal, "Meals", cfg.Pagination.PerPage),
		Hero:       components.NewHero(cfg.UI.HeroFrame),
		MealDetail: components.NewMealDetailModal(),
		CheckIn:    components.NewWeightCheckInModal(domain.WeightUnit(cfg.CheckIn.DefaultUnit)),
	}
	m.Ring = m.ringFor(0)
	m.Exercises.List.SetWidth(cfg.UI.CardWidth)
	m.Meals.List.SetWidth(cfg.UI.CardWidth)
	m.setFocus(focusExercises)
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{LoadPlanCmd(m.Tracker, m.Day)}
	if m.Config.UI.ShowHero {
		cmds = append(cmds, m.Hero.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case components.HeroTickMsg:
		if !m.Config.UI.ShowHero {
			return m, nil
		}
		var cmd tea.Cmd
		m.Hero, cmd = m.Hero.Update(msg)
		return m, cmd

	case PlanLoadedMsg:
		m.applyPlan(msg.Plan)
		m.Latest = msg.Latest
		if msg.NeedsCheckIn && m.Config.CheckIn.Enabled && !m.CheckIn.IsVisible() {
			return m, m.CheckIn.Open()
		}
		return m, nil

	case PlanUpdatedMsg:
		m.applyPlan(msg.Plan)
		if msg.Status != "" {
			return m.setStatus(msg.Status, false)
		}
		return m, nil

	case components.CardEventMsg:
		return m.handleCardEvent(msg)

	case components.PageSelectedMsg:
		m.section(m.focus).GoToPage(msg.Page)
		return m, nil

	case components.DialogOpenChangeMsg:
		switch msg.Dialog {
		case components.DialogMealDetail:
			if !msg.Open {
				m.MealDetail.Hide()
			}
		case components.DialogWeightCheckIn:
			return m, m.CheckIn.SetOpen(msg.Open)
		}
		return m, nil

	case components.WeightSubmittedMsg:
		return m, LogWeightCmd(m.Tracker, m.Day, msg.Value, msg.Unit)

	case components.WeightSkippedMsg:
		return m, SkipCheckInCmd(m.Tracker, m.Day)

	case components.WeightDelayedMsg:
		m.CheckIn.Close()
		delay := m.Config.CheckIn.Delay
		next, status := m.setStatus(fmt.Sprintf("Reminder in %s", delay), false)
		return next, tea.Batch(status, CheckInReminderCmd(m.Day, delay))

	case WeightLoggedMsg:
		m.CheckIn.Close()
		entry := msg.Entry
		m.Latest = &entry
		return m.setStatus(fmt.Sprintf("Logged %g %s", entry.Value, entry.Unit), false)

	case CheckInSkippedMsg:
		m.CheckIn.Close()
		return m.setStatus("Check-in skipped for today", false)

	case CheckInReminderMsg:
		if msg.Day != m.Day || m.CheckIn.IsVisible() || !m.Tracker.NeedsCheckIn(m.Day) {
			return m, nil
		}
		return m, m.CheckIn.Open()

	case ErrMsg:
		return m.setStatus(msg.Error(), true)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Blink and other internal messages go to whatever holds a text input
	if m.CheckIn.IsVisible() {
		var cmd tea.Cmd
		m.CheckIn, cmd = m.CheckIn.Update(msg)
		return m, cmd
	}
	return m, m.section(m.focus).List.Update(msg)
}

// applyPlan makes plan the authoritative state and refreshes every view of it
func (m *Model) applyPlan(plan *domain.DayPlan) {
	if plan == nil {
		return
	}
	m.Plan = plan
	m.Exercises.SetPlan(plan)
	m.Meals.SetPlan(plan)

	_, _, overall := domain.PlanProgress(*plan)
	m.Ring = m.ringFor(overall.Percent())

	if m.MealDetail.IsVisible() {
		m.MealDetail.SetMeal(plan.FindMeal(m.MealDetail.Meal().ID))
	}
}

// handleCardEvent applies a card gesture to the plan
func (m Model) handleCardEvent(msg components.CardEventMsg) (tea.Model, tea.Cmd) {
	if m.Plan == nil {
		return m, nil
	}

	switch msg.Kind {
	case components.EventToggle:
		return m, ToggleItemCmd(m.Tracker, m.Day, msg.ItemKind, msg.ID)

	case components.EventAction:
		if msg.ItemKind != domain.KindExercise {
			return m, nil
		}
		name := msg.ID
		if e := m.Plan.FindExercise(msg.ID); e != nil {
			name = e.Name
		}
		return m, DeferExerciseCmd(m.Tracker, m.Day, msg.ID, name)

	case components.EventOpen:
		switch msg.ItemKind {
		case domain.KindMeal:
			m.MealDetail.Show(m.Plan.FindMeal(msg.ID))
		case domain.KindExercise:
			if e := m.Plan.FindExercise(msg.ID); e != nil {
				return m.setStatus(exerciseStatus(*e), false)
			}
		}
	}
	return m, nil
}

func exerciseStatus(e domain.Exercise) string {
	s := e.Name
	if summary := e.Summary(); summary != "" {
		s += " · " + summary
	}
	if e.Notes != "" {
		s += " · " + e.Notes
	}
	return s
}

// setStatus shows a message in the footer and schedules its removal
func (m Model) setStatus(text string, isErr bool) (Model, tea.Cmd) {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return m, ClearStatusCmd(statusTimeout)
}

func (m Model) section(area focusArea) *Section {
	if area == focusMeals {
		return m.Meals
	}
	return m.Exercises
}

// setFocus moves keyboard focus to one section's card list
func (m *Model) setFocus(area focusArea) {
	m.focus = area
	m.Exercises.blur()
	m.Meals.blur()
	m.section(area).focus()
}

func (m Model) ringFor(progress float64) components.RingView {
	cfg := m.Config.Ring
	r := components.NewRingView(progress).
		WithGeometry(components.NewRingGeometry(progress, cfg.Size, cfg.StrokeWidth))
	r.CellWidth = cfg.CellWidth
	r.CellHeight = cfg.CellHeight
	return r
}
