package components

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/fittrack/internal/tui/styles"
)

// HeroTickMsg advances the hero animation by one frame
type HeroTickMsg struct {
	Time time.Time
}

// HeroTickCmd schedules the next hero frame
func HeroTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return HeroTickMsg{Time: t}
	})
}

type vec3 struct{ x, y, z float64 }

type edge struct{ a, b int }

// dumbbell is two plates joined by a bar, in model space
var dumbbellVerts, dumbbellEdges = buildDumbbell()

func buildDumbbell() ([]vec3, []edge) {
	var verts []vec3
	var edges []edge

	cube := func(cx, hx, hy, hz float64) {
		base := len(verts)
		for i := 0; i < 8; i++ {
			sx, sy, sz := -1.0, -1.0, -1.0
			if i&1 != 0 {
				sx = 1
			}
			if i&2 != 0 {
				sy = 1
			}
			if i&4 != 0 {
				sz = 1
			}
			verts = append(verts, vec3{cx + sx*hx, sy * hy, sz * hz})
		}
		for i := 0; i < 8; i++ {
			for _, bit := range []int{1, 2, 4} {
				if j := i | bit; j != i {
					edges = append(edges, edge{base + i, base + j})
				}
			}
		}
	}

	cube(-1.1, 0.25, 0.8, 0.8)
	cube(1.1, 0.25, 0.8, 0.8)

	// Bar between the plate centers
	verts = append(verts, vec3{-0.85, 0, 0}, vec3{0.85, 0, 0})
	edges = append(edges, edge{len(verts) - 2, len(verts) - 1})

	return verts, edges
}

// Hero is a decorative rotating wireframe. It holds no business state.
type Hero struct {
	Width  int
	Height int

	frame time.Duration
	angle float64
}

// NewHero creates a hero that advances once per frame
func NewHero(frame time.Duration) Hero {
	if frame <= 0 {
		frame = 80 * time.Millisecond
	}
	return Hero{Width: 28, Height: 9, frame: frame}
}

// Init starts the animation
func (h Hero) Init() tea.Cmd {
	return HeroTickCmd(h.frame)
}

// Angle returns the current rotation in radians
func (h Hero) Angle() float64 {
	return h.angle
}

// Update advances on HeroTickMsg and schedules the next frame
func (h Hero) Update(msg tea.Msg) (Hero, tea.Cmd) {
	if _, ok := msg.(HeroTickMsg); !ok {
		return h, nil
	}
	h.angle = math.Mod(h.angle+0.12, 2*math.Pi)
	return h, HeroTickCmd(h.frame)
}

// project maps a model point onto the character grid.
// Terminal cells are about twice as tall as wide, hence the x stretch.
func (h Hero) project(v vec3) (int, int) {
	ay, ax := h.angle, h.angle*0.5

	// Rotate about Y
	x := v.x*math.Cos(ay) + v.z*math.Sin(ay)
	z := -v.x*math.Sin(ay) + v.z*math.Cos(ay)
	y := v.y

	// Rotate about X
	y, z = y*math.Cos(ax)-z*math.Sin(ax), y*math.Sin(ax)+z*math.Cos(ax)

	const camera = 4.0
	scale := camera / (camera + z)

	cx, cy := float64(h.Width)/2, float64(h.Height)/2
	px := cx + x*scale*float64(h.Width)/5
	py := cy - y*scale*float64(h.Height)/5
	return int(math.Round(px)), int(math.Round(py))
}

// Frame returns the current frame as plain rows
func (h Hero) Frame() []string {
	if h.Width <= 0 || h.Height <= 0 {
		return nil
	}

	grid := make([][]rune, h.Height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", h.Width))
	}

	plot := func(x, y int, r rune) {
		if x >= 0 && x < h.Width && y >= 0 && y < h.Height {
			grid[y][x] = r
		}
	}

	pts := make([][2]int, len(dumbbellVerts))
	for i, v := range dumbbellVerts {
		x, y := h.project(v)
		pts[i] = [2]int{x, y}
	}

	for _, e := range dumbbellEdges {
		drawLine(pts[e.a], pts[e.b], plot)
	}
	for _, p := range pts {
		plot(p[0], p[1], '●')
	}

	rows := make([]string, h.Height)
	for i, row := range grid {
		rows[i] = string(row)
	}
	return rows
}

// drawLine plots a Bresenham line choosing a glyph by slope
func drawLine(a, b [2]int, plot func(x, y int, r rune)) {
	x0, y0, x1, y1 := a[0], a[1], b[0], b[1]
	dx, dy := abs(x1-x0), -abs(y1-y0)

	glyph := '·'
	switch {
	case dy == 0:
		glyph = '─'
	case dx == 0:
		glyph = '│'
	case (x1-x0)*(y1-y0) > 0:
		glyph = '╲'
	default:
		glyph = '╱'
	}

	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		plot(x0, y0, glyph)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// View renders the current frame
func (h Hero) View() string {
	return lipgloss.NewStyle().Foreground(styles.Orange).Render(strings.Join(h.Frame(), "\n"))
}
