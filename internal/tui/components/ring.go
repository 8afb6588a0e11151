package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/fittrack/internal/tui/styles"
)

// Ring defaults, in pixels
const (
	DefaultRingSize        = 120.0
	DefaultRingStrokeWidth = 10.0
)

// RingGeometry holds the stroke-dash parameters that encode a percentage
// as a partial circle. Progress is not clamped.
type RingGeometry struct {
	Progress      float64
	Size          float64
	StrokeWidth   float64
	Radius        float64
	Circumference float64
	Offset        float64
}

// NewRingGeometry computes the ring for progress (percent)
func NewRingGeometry(progress, size, strokeWidth float64) RingGeometry {
	radius := (size - strokeWidth) / 2
	circumference := 2 * math.Pi * radius
	return RingGeometry{
		Progress:      progress,
		Size:          size,
		StrokeWidth:   strokeWidth,
		Radius:        radius,
		Circumference: circumference,
		Offset:        circumference - (progress/100)*circumference,
	}
}

// Center returns the x and y of the ring's center
func (g RingGeometry) Center() float64 {
	return g.Size / 2
}

// ArcLength is the visible part of the stroke
func (g RingGeometry) ArcLength() float64 {
	return g.Circumference - g.Offset
}

// Label returns the rounded percent, e.g. "43%"
func (g RingGeometry) Label() string {
	return RingLabel(g.Progress)
}

// RingLabel rounds progress half away from zero and appends a percent sign
func RingLabel(progress float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(progress)))
}

type ringCell int

const (
	ringEmpty ringCell = iota
	ringTrack
	ringArc
)

// RingView rasterizes a RingGeometry onto terminal cells.
// Cells are sampled at their centers; CellWidth and CellHeight give the
// pixel size of one terminal cell.
type RingView struct {
	Geometry   RingGeometry
	CellWidth  float64
	CellHeight float64

	ArcStyle   lipgloss.Style
	TrackStyle lipgloss.Style
	LabelStyle lipgloss.Style
}

// NewRingView creates a ring with the default size and stroke
func NewRingView(progress float64) RingView {
	return RingView{
		Geometry:   NewRingGeometry(progress, DefaultRingSize, DefaultRingStrokeWidth),
		CellWidth:  8,
		CellHeight: 16,
		ArcStyle:   styles.AccentStyle,
		TrackStyle: lipgloss.NewStyle().Foreground(styles.SlateLight),
		LabelStyle: styles.TitleStyle,
	}
}

// WithGeometry returns a copy drawing g instead
func (r RingView) WithGeometry(g RingGeometry) RingView {
	r.Geometry = g
	return r
}

// Dimensions returns the grid size in cells
func (r RingView) Dimensions() (cols, rows int) {
	if r.CellWidth <= 0 || r.CellHeight <= 0 || r.Geometry.Size <= 0 {
		return 0, 0
	}
	return int(math.Ceil(r.Geometry.Size / r.CellWidth)), int(math.Ceil(r.Geometry.Size / r.CellHeight))
}

// raster classifies every cell as empty, track or arc.
// Angles run clockwise from 12 o'clock. Round caps extend the arc by half
// the stroke width past both of its ends.
func (r RingView) raster() [][]ringCell {
	cols, rows := r.Dimensions()
	g := r.Geometry
	c := g.Center()

	sweep := 2 * math.Pi * g.ArcLength() / g.Circumference
	if g.Circumference == 0 {
		sweep = 0
	}
	capAngle := 0.0
	if g.Radius > 0 {
		capAngle = (g.StrokeWidth / 2) / g.Radius
	}

	grid := make([][]ringCell, rows)
	for row := 0; row < rows; row++ {
		grid[row] = make([]ringCell, cols)
		for col := 0; col < cols; col++ {
			dx := (float64(col)+0.5)*r.CellWidth - c
			dy := (float64(row)+0.5)*r.CellHeight - c
			dist := math.Hypot(dx, dy)
			if dist == 0 {
				continue
			}

			// Half the cell's extent along the radial direction
			reach := (math.Abs(dx)/dist)*r.CellWidth/2 + (math.Abs(dy)/dist)*r.CellHeight/2
			if math.Abs(dist-g.Radius) > g.StrokeWidth/2+reach {
				continue
			}

			theta := math.Atan2(dx, -dy)
			if theta < 0 {
				theta += 2 * math.Pi
			}

			switch {
			case sweep <= 0:
				grid[row][col] = ringTrack
			case sweep >= 2*math.Pi:
				grid[row][col] = ringArc
			case theta <= sweep+capAngle || theta >= 2*math.Pi-capAngle:
				grid[row][col] = ringArc
			default:
				grid[row][col] = ringTrack
			}
		}
	}
	return grid
}

// View renders the ring with its label centered
func (r RingView) View() string {
	grid := r.raster()
	if len(grid) == 0 {
		return ""
	}

	label := r.Geometry.Label()
	labelRow := len(grid) / 2
	cols := len(grid[0])
	labelStart := (cols - len(label)) / 2

	var b strings.Builder
	for row, cells := range grid {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < len(cells); col++ {
			if row == labelRow && col == labelStart && len(label) <= cols {
				b.WriteString(r.LabelStyle.Render(label))
				col += len(label) - 1
				continue
			}
			switch cells[col] {
			case ringArc:
				b.WriteString(r.ArcStyle.Render("█"))
			case ringTrack:
				b.WriteString(r.TrackStyle.Render("░"))
			default:
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}
