package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mpihlak/goracer/pkg/game/objects"
)

const (
	touchButtonSize = 64
	touchMargin     = 20
)

// TouchControls is an on-screen d-pad for touch devices. It stays hidden
// until the first touch is seen.
type TouchControls struct {
	pad     map[objects.Direction]TouchZone
	restart TouchZone

	held           map[objects.Direction]bool
	restartPressed bool
	hasTouchInput  bool
}

// TouchZone defines a rectangular touch area
type TouchZone struct {
	X, Y, Width, Height int
	Enabled             bool
}

// Contains checks if a point is within the touch zone
func (tz *TouchZone) Contains(x, y int) bool {
	return tz.Enabled &&
		x >= tz.X && x < tz.X+tz.Width &&
		y >= tz.Y && y < tz.Y+tz.Height
}

func NewTouchControls(screenWidth, screenHeight int) *TouchControls {
	tc := &TouchControls{
		held: make(map[objects.Direction]bool, 4),
	}
	tc.Resize(screenWidth, screenHeight)
	return tc
}

// Resize lays the d-pad out in the lower left corner and the restart button
// in the lower right one.
func (tc *TouchControls) Resize(screenWidth, screenHeight int) {
	s := touchButtonSize
	// Centre cell of a 3x3 grid
	cx := touchMargin + s
	cy := screenHeight - touchMargin - 2*s

	tc.pad = map[objects.Direction]TouchZone{
		objects.Up:    {X: cx, Y: cy - s, Width: s, Height: s, Enabled: true},
		objects.Down:  {X: cx, Y: cy + s, Width: s, Height: s, Enabled: true},
		objects.Left:  {X: cx - s, Y: cy, Width: s, Height: s, Enabled: true},
		objects.Right: {X: cx + s, Y: cy, Width: s, Height: s, Enabled: true},
	}
	tc.restart = TouchZone{
		X: screenWidth - touchMargin - s, Y: screenHeight - touchMargin - s,
		Width: s, Height: s,
		Enabled: tc.restart.Enabled,
	}
}

// SetRestartEnabled shows the restart button, used once the race is over.
func (tc *TouchControls) SetRestartEnabled(enabled bool) {
	tc.restart.Enabled = enabled
}

// Update processes touch input for the current frame
func (tc *TouchControls) Update() {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		tc.hasTouchInput = true
	}

	points := make([][2]int, 0, len(touchIDs))
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		points = append(points, [2]int{x, y})
	}
	var justPressed [][2]int
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		justPressed = append(justPressed, [2]int{x, y})
	}
	tc.apply(points, justPressed)
}

// apply resolves touch points against the zones: held touches drive the
// d-pad, fresh ones press the restart button.
func (tc *TouchControls) apply(held, justPressed [][2]int) {
	for d := range tc.pad {
		tc.held[d] = false
	}
	tc.restartPressed = false

	for _, p := range held {
		for d, zone := range tc.pad {
			if zone.Contains(p[0], p[1]) {
				tc.held[d] = true
			}
		}
	}
	for _, p := range justPressed {
		if tc.restart.Contains(p[0], p[1]) {
			tc.restartPressed = true
		}
	}
}

// Held reports whether the d-pad button of a direction is touched
func (tc *TouchControls) Held(d objects.Direction) bool {
	return tc.held[d]
}

func (tc *TouchControls) RestartPressed() bool {
	return tc.restartPressed
}

// Draw renders the touch controls, only on devices that produced touches
func (tc *TouchControls) Draw(screen *ebiten.Image) {
	if !tc.hasTouchInput {
		return
	}

	labels := map[objects.Direction]string{
		objects.Up: "^", objects.Down: "v", objects.Left: "<", objects.Right: ">",
	}
	for d, zone := range tc.pad {
		bg := color.RGBA{100, 100, 100, 160}
		if tc.held[d] {
			bg = color.RGBA{150, 150, 150, 200} // Highlighted when pressed
		}
		drawButton(screen, zone, labels[d], bg)
	}
	drawButton(screen, tc.restart, "R", color.RGBA{150, 100, 100, 200})
}

// drawButton draws a simple button with text
func drawButton(screen *ebiten.Image, zone TouchZone, text string, bg color.RGBA) {
	if !zone.Enabled {
		return
	}

	vector.DrawFilledRect(screen,
		float32(zone.X), float32(zone.Y),
		float32(zone.Width), float32(zone.Height),
		bg, false)
	vector.StrokeRect(screen,
		float32(zone.X), float32(zone.Y),
		float32(zone.Width), float32(zone.Height),
		2, color.RGBA{255, 255, 255, 150}, false)

	ebitenutil.DebugPrintAt(screen, text, zone.X+zone.Width/2-3, zone.Y+zone.Height/2-8)
}
