package tui

// Screen geometry. Rows are counted from the top of the terminal.
const (
	SidebarWidth  = 30
	Gutter        = 2
	SectionPad    = 2 // room for two-digit page labels in the pager
	MinCardWidth  = 24
	BodyTop       = 2 // title bar + blank line
	SectionListAt = 3 // header title + bar + blank line
)

// screenLayout holds the x offsets and widths of the three columns
type screenLayout struct {
	sidebarWidth int // 0 if not shown
	cardWidth    int
	sectionWidth int
	exercisesX   int
	mealsX       int
}

// calculateLayout fits the sidebar and both sections into width.
// The sidebar goes first when space runs out, then cards shrink.
func calculateLayout(width, cardWidth int) screenLayout {
	l := screenLayout{cardWidth: cardWidth}

	full := cardWidth + SectionPad
	switch {
	case width >= SidebarWidth+2*(full+Gutter):
		l.sidebarWidth = SidebarWidth
	case width < 2*full+Gutter:
		l.cardWidth = max(MinCardWidth, (width-Gutter)/2-SectionPad)
	}

	l.sectionWidth = l.cardWidth + SectionPad
	if l.sidebarWidth > 0 {
		l.exercisesX = l.sidebarWidth + Gutter
	}
	l.mealsX = l.exercisesX + l.sectionWidth + Gutter
	return l
}

// sectionAt returns the section column under x
func (l screenLayout) sectionAt(x int) (focusArea, int, bool) {
	switch {
	case x >= l.exercisesX && x < l.exercisesX+l.sectionWidth:
		return focusExercises, x - l.exercisesX, true
	case x >= l.mealsX && x < l.mealsX+l.sectionWidth:
		return focusMeals, x - l.mealsX, true
	}
	return focusExercises, 0, false
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	l := m.layout()
	m.Exercises.List.SetWidth(l.cardWidth)
	m.Meals.List.SetWidth(l.cardWidth)
}

func (m Model) layout() screenLayout {
	return calculateLayout(m.Width, m.Config.UI.CardWidth)
}
