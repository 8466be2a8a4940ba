// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/girders/internal/application/scene"
	"github.com/younwookim/girders/internal/application/state"
	"github.com/younwookim/girders/internal/application/system"
	"github.com/younwookim/girders/internal/domain/entity"
	"github.com/younwookim/girders/internal/infrastructure/config"
)

// hitFlashFrames is how long the screen stays tinted after a barrel hit
const hitFlashFrames = 20

// Playing is the main gameplay scene
type Playing struct {
	config   *config.GameConfig
	stageCfg *config.StageConfig
	session  *system.Session
	input    *system.InputSystem
	state    state.GameState
	screenW  int
	screenH  int
	bg       color.RGBA

	debug    bool
	hover    int // platform under the cursor while debugging, -1 for none
	hitFlash int

	// Deterministic RNG seed of the current session
	seed      int64
	fixedSeed bool

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene. A zero seed picks one from the clock.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, recordPath string, seed int64) (*Playing, error) {
	p := &Playing{
		config:         cfg,
		stageCfg:       stageCfg,
		input:          system.NewInputSystem(),
		state:          state.StatePlaying,
		screenW:        cfg.Physics.Display.ScreenWidth,
		screenH:        cfg.Physics.Display.ScreenHeight,
		bg:             parseHexColor(stageCfg.Background.Color, colorBG),
		debug:          cfg.Physics.Debug.Overlay,
		hover:          -1,
		seed:           seed,
		fixedSeed:      seed != 0,
		recordFilename: recordPath,
	}

	if err := p.start(); err != nil {
		return nil, err
	}
	return p, nil
}

// start builds the session and, when recording, the recorder
func (p *Playing) start() error {
	p.reseed()

	session, err := system.NewSession(p.config, p.stageCfg, p.seed)
	if err != nil {
		return fmt.Errorf("failed to start stage %s: %w", p.stageCfg.Name, err)
	}

	hits := session.Level.OnPlayerHit
	session.Level.OnPlayerHit = func(b *entity.Barrel) {
		hits(b)
		p.hitFlash = hitFlashFrames
		log.Printf("Player hit by barrel %d at (%.0f, %.0f), deaths: %d",
			b.ID, b.X, b.Y, session.Player.Deaths)
	}

	p.session = session
	p.begin()
	return nil
}

// restart saves any recording and replays the stage in place with a new seed
func (p *Playing) restart() {
	p.saveRecording()
	p.reseed()
	p.session.Reset(p.seed)
	p.begin()
	log.Printf("Stage %s restarted (seed: %d)", p.stageCfg.Name, p.seed)
}

func (p *Playing) reseed() {
	if !p.fixedSeed {
		p.seed = time.Now().UnixNano()
	}
}

// begin clears scene state for a new run and opens a new recording
func (p *Playing) begin() {
	p.state = state.StatePlaying
	p.hitFlash = 0

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.seed, p.stageCfg.ID)
		log.Printf("Recording enabled: %s (seed: %d)", p.recordFilename, p.seed)
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = p.state.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		p.debug = !p.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.restart()
	}

	if p.debug {
		p.pick(ebiten.CursorPosition())
	} else {
		p.hover = -1
	}

	if p.state == state.StatePlaying {
		p.step(p.input.GetInput())
	}

	return nil, nil // nil = stay on this scene
}

// step advances the session by one tick with the given input
func (p *Playing) step(input system.InputState) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.session.Step(input)

	if p.hitFlash > 0 {
		p.hitFlash--
	}
}

// pick selects the platform under the screen point (x, y) for the overlay
func (p *Playing) pick(x, y int) {
	p.hover = p.session.Level.PlatformAt(float64(x), float64(y))
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	log.Printf("Stage %s started (seed: %d, platforms: %d, ladders: %d)",
		p.stageCfg.Name, p.seed, len(p.session.Level.Platforms), len(p.session.Level.Ladders))
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// parseHexColor reads "#rrggbb", falling back to def
func parseHexColor(s string, def color.RGBA) color.RGBA {
	var r, g, b uint8
	if n, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil || n != 3 {
		return def
	}
	return color.RGBA{r, g, b, 255}
}
