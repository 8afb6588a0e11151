package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Color palette
var (
	Orange     = lipgloss.Color("#F97316")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Orange)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Orange).
			Padding(0, 1)
)

// Raw completion characters (unstyled)
const (
	UncheckedChar = "☐"
	CheckedChar   = "☑"
)

// Completion indicator styles
var (
	UncheckedStyle = lipgloss.NewStyle().Foreground(LightGray)
	CheckedStyle   = lipgloss.NewStyle().Foreground(Green)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Orange).
			Padding(1, 2).
			Background(SlateDark)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(SlateDark).
			Bold(true)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Orange)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Button styles
var (
	ButtonStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Orange).
			Padding(0, 1)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(DimGray).
				Background(SlateLight).
				Padding(0, 1)
)

// Badge styles
var (
	DimBadgeStyle = lipgloss.NewStyle().
		Foreground(LightGray).
		Background(SlateLight).
		Padding(0, 1)
)

// DimBadge renders s as an inactive badge
func DimBadge(s string) string {
	return DimBadgeStyle.Render(s)
}

// Card styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Orange).
				Padding(0, 1)

	CardDoneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Padding(0, 1)
)

// Filter styles
var (
	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Orange).
				Bold(true)

	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(Orange).
				Bold(true)
)

// Helper functions

// Truncate truncates a string to the given display width with ellipsis.
// Wide runes count as two cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if width <= 3 {
		return ansi.Truncate(s, width, "")
	}
	return ansi.Truncate(s, width, "...")
}

// HighlightMatches renders text with the bytes at matched (fuzzy match
// offsets) in MatchHighlightStyle and everything else in base
func HighlightMatches(text string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(text)
	}

	matchSet := make(map[int]bool, len(matched))
	for _, idx := range matched {
		matchSet[idx] = true
	}

	var b, run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(base.Render(run.String()))
			run.Reset()
		}
	}
	for i, r := range text {
		if matchSet[i] {
			flush()
			b.WriteString(MatchHighlightStyle.Render(string(r)))
			continue
		}
		run.WriteRune(r)
	}
	flush()
	return b.String()
}

// RenderCheckbox renders the completion checkbox
func RenderCheckbox(checked bool) string {
	if checked {
		return CheckedStyle.Render(CheckedChar)
	}
	return UncheckedStyle.Render(UncheckedChar)
}

// RenderHelp renders "key desc" pairs separated by dots
func RenderHelp(pairs ...[2]string) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = HelpKeyStyle.Render(p[0]) + " " + HelpDescStyle.Render(p[1])
	}
	return strings.Join(parts, HelpDescStyle.Render(" · "))
}
