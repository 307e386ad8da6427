package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mpihlak/goracer/log"
	"github.com/mpihlak/goracer/pkg/dashboard"
	"github.com/mpihlak/goracer/pkg/geometry"
	"github.com/mpihlak/goracer/pkg/race"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	// How long the START label stays up once the race is running
	startBannerSeconds = 1.0
)

// GameState adapts a race to ebiten: it feeds input into the race, drives
// frames through race.Driver and draws the result.
type GameState struct {
	Settings  race.Settings
	Race      *race.Race
	Driver    *race.Driver
	Dashboard *dashboard.Dashboard

	touch      *TouchControls
	scoreboard *Scoreboard
	// Pre-rendered tile grid, reused every frame
	trackImage *ebiten.Image

	width, height int
	reported      bool
}

// NewGame returns a game whose track is generated on the first Layout call,
// once the window size is known.
func NewGame(s race.Settings) *GameState {
	return &GameState{
		Settings:   s,
		touch:      NewTouchControls(ScreenWidth, ScreenHeight),
		scoreboard: NewScoreboard(),
	}
}

// fitSettings sizes the grid to the window, replacing the configured Cols
// and Rows. The ring is thinned when the window is too small for the
// configured thickness.
func fitSettings(s race.Settings, width, height int) race.Settings {
	cols := int(float64(width) / s.TileSize)
	rows := int(float64(height) / s.TileSize)
	if cols < 2 || rows < 2 {
		return s
	}
	s.Cols, s.Rows = cols, rows
	s.RingThickness = min(s.RingThickness, cols/2, rows/2)
	return s
}

func (g *GameState) newRace() error {
	s := fitSettings(g.Settings, g.width, g.height)
	if s.Cols != g.Settings.Cols || s.Rows != g.Settings.Rows {
		log.Info("track fitted to window",
			log.Int("configuredCols", g.Settings.Cols),
			log.Int("configuredRows", g.Settings.Rows),
			log.Int("width", g.width),
			log.Int("height", g.height))
	}
	r, err := race.New(s, race.WithBounds(geometry.Size{W: float64(g.width), H: float64(g.height)}))
	if err != nil {
		return fmt.Errorf("new race: %w", err)
	}
	if g.Driver != nil {
		g.Driver.Stop()
	}

	g.Race = r
	g.Driver = race.NewDriver(r)
	g.Dashboard = &dashboard.Dashboard{Race: r}
	g.trackImage = nil
	g.reported = false
	g.scoreboard.Hide()
	g.touch.SetRestartEnabled(false)

	log.Info("race created",
		log.String("race", r.ID.String()),
		log.Int("cols", s.Cols),
		log.Int("rows", s.Rows),
		log.Int("ringThickness", s.RingThickness))
	return nil
}

func (g *GameState) Update() error {
	if g.Race == nil {
		return nil
	}

	// Handle quit key - in WASM there is nothing to quit to
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !IsWASM() {
		return ebiten.Termination
	}

	g.touch.Update()

	if g.Race.Phase().Terminal() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || g.touch.RestartPressed() {
			return g.newRace()
		}
		return nil
	}

	for d, held := range directionsHeld(ebiten.IsKeyPressed) {
		g.Race.SetInput(d, held || g.touch.Held(d))
	}
	if g.Race.Phase() == race.NotStarted && startRequested() {
		g.Race.Begin()
	}

	if !g.Driver.Poll(time.Now()) {
		g.finish()
	}
	return nil
}

// finish reports the result once, when the race turns terminal
func (g *GameState) finish() {
	if g.reported {
		return
	}
	g.reported = true
	res := g.Race.Result()
	g.Driver.Stop()
	g.scoreboard.Show(res)
	g.touch.SetRestartEnabled(true)

	log.Info("race finished",
		log.String("race", res.RaceID),
		log.String("winner", res.Winner),
		log.Float64("elapsed", res.Elapsed))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(grassColor)
	if g.Race == nil {
		return
	}

	track := g.Race.Arena.Track
	if g.trackImage == nil {
		size := track.PixelSize()
		g.trackImage = ebiten.NewImage(int(size.W), int(size.H))
		drawTrack(g.trackImage, track)
	}
	screen.DrawImage(g.trackImage, nil)

	drawCheckpoints(screen, g.Race.Arena.Checkpoints, track.TileSize)
	drawCar(screen, g.Race.AI.Car, aiColor)
	drawCar(screen, g.Race.Player.Car, playerColor)

	g.Dashboard.Draw(screen)
	g.touch.Draw(screen)

	switch g.Race.Phase() {
	case race.NotStarted:
		g.drawStartScreen(screen)
	case race.Countdown:
		drawBanner(screen, g.Race.CountdownLabel())
	case race.Running:
		if g.Race.Elapsed() < startBannerSeconds {
			drawBanner(screen, g.Race.CountdownLabel())
		}
	default:
		g.scoreboard.Draw(screen)
	}
}

func (g *GameState) drawStartScreen(screen *ebiten.Image) {
	quitText := "ESC to quit"
	if IsWASM() {
		quitText = ""
	}
	text := fmt.Sprintf(`RACE THE AI - %d LAPS

Drive through all four corner checkpoints to complete a lap.

  W / Up    - Up
  S / Down  - Down
  A / Left  - Left
  D / Right - Right

Press any key or click to start   %s`, g.Race.Settings.LapTarget, quitText)

	bounds := screen.Bounds()
	drawBanner(screen, "")
	screenX := bounds.Dx()/2 - 180
	screenY := bounds.Dy()/2 - 80
	ebitenutil.DebugPrintAt(screen, text, screenX, screenY)
}

// Layout is called on every frame with the window size. The first call
// builds the race; later calls only move the canvas bounds.
func (g *GameState) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		outsideWidth, outsideHeight = ScreenWidth, ScreenHeight
	}
	resized := outsideWidth != g.width || outsideHeight != g.height
	g.width, g.height = outsideWidth, outsideHeight

	if g.Race == nil {
		if err := g.newRace(); err != nil {
			log.Error("cannot create race", log.ErrorField(err))
		}
	} else if resized {
		g.Race.SetBounds(geometry.Size{W: float64(outsideWidth), H: float64(outsideHeight)})
	}
	if resized {
		g.touch.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
