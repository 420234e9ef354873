// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/invaders/internal/application/replay"
	"github.com/younwookim/invaders/internal/application/scene"
	"github.com/younwookim/invaders/internal/application/simulation"
	"github.com/younwookim/invaders/internal/application/state"
	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/event"
	"github.com/younwookim/invaders/internal/infrastructure/config"
	"github.com/younwookim/invaders/internal/infrastructure/input"
)

// Colors for rendering
var (
	colorPlayer          = color.RGBA{100, 220, 100, 255}
	colorEnemy           = color.RGBA{220, 220, 255, 255}
	colorPlayerMissile   = color.RGBA{255, 255, 120, 255}
	colorEnemyMissile    = color.RGBA{255, 100, 100, 255}
	colorPlayerExplosion = color.RGBA{255, 160, 60, 255}
	colorEnemyExplosion  = color.RGBA{255, 230, 120, 255}
)

// Options configures a Playing scene
type Options struct {
	Config  *config.GameConfig
	Machine *state.Machine
	Input   *input.Reader
	Events  *event.Dispatcher

	// Seed returns the RNG seed for each new session. Defaults to the clock.
	Seed func() int64
	// RecordPath, when set, saves each session's input there on exit.
	RecordPath string
	// Result builds the screen shown after a session ends.
	Result func(simulation.Outcome) scene.Scene
}

// visual is the presentation state of one explosion, keyed by entity id
type visual struct {
	kind  entity.Kind
	frame int
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	machine *state.Machine
	input   *input.Reader
	events  *event.Dispatcher
	sim     *simulation.Simulation

	seed       func() int64
	result     func(simulation.Outcome) scene.Scene
	recordPath string
	recorder   *replay.Recorder

	visuals map[entity.EntityID]*visual
	outcome *simulation.Outcome

	// Screen shake on player death
	shake    float64
	shakeRng *rand.Rand
}

// New creates a new Playing scene
func New(opts Options) *Playing {
	events := opts.Events
	if events == nil {
		events = event.NewDispatcher()
	}
	seed := opts.Seed
	if seed == nil {
		seed = func() int64 { return time.Now().UnixNano() }
	}

	p := &Playing{
		config:     opts.Config,
		machine:    opts.Machine,
		input:      opts.Input,
		events:     events,
		sim:        simulation.New(opts.Config, events),
		seed:       seed,
		result:     opts.Result,
		recordPath: opts.RecordPath,
		visuals:    make(map[entity.EntityID]*visual),
		shakeRng:   rand.New(rand.NewSource(1)),
	}
	p.sim.OnOutcome = p.conclude
	return p
}

// Simulation exposes the running session for overlays
func (p *Playing) Simulation() *simulation.Simulation {
	return p.sim
}

// OnEnter starts a new session for the machine's current token
func (p *Playing) OnEnter() {
	p.events.SubscribeAll(p, event.ExplosionSpawned, event.ExplosionRemoved, event.PlayerKilled)

	seed := p.seed()
	clear(p.visuals)
	p.outcome = nil
	p.shake = 0
	p.sim.Reset(p.machine.Session(), rand.New(rand.NewSource(seed)))

	if p.recordPath != "" {
		p.recorder = replay.NewRecorder(seed, p.frameDT())
	}
	log.Printf("Session %d started (seed %d)", p.machine.Session(), seed)
}

// OnExit stops listening and saves the recording
func (p *Playing) OnExit() {
	for _, t := range []event.EventType{event.ExplosionSpawned, event.ExplosionRemoved, event.PlayerKilled} {
		p.events.Unsubscribe(t, p)
	}
	p.saveRecording()
}

// OnEvent tracks explosion visuals by entity id
func (p *Playing) OnEvent(e event.Event) {
	d, ok := e.Data.(event.EntityData)
	if !ok {
		return
	}
	switch e.Type {
	case event.ExplosionSpawned:
		p.visuals[d.ID] = &visual{kind: d.Kind}
	case event.ExplosionRemoved:
		delete(p.visuals, d.ID)
	case event.PlayerKilled:
		p.shake = 8
	}
}

// Update samples input, ticks the simulation and advances animations
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	in := p.input.Sample()
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	p.sim.Tick(dt, in)
	p.animate()
	p.shake *= 0.9

	if p.outcome == nil {
		return nil, nil
	}
	o := *p.outcome
	p.outcome = nil
	if p.result == nil {
		return nil, fmt.Errorf("no result scene for %s", o.State)
	}
	return p.result(o), nil
}

func (p *Playing) conclude(o simulation.Outcome) {
	if err := p.machine.Conclude(o.Session, o.State); err != nil {
		log.Printf("Discarding outcome: %v", err)
		return
	}
	log.Printf("Session %d ended: %s score=%d bonus=%d", o.Session, o.State, o.Score, o.TimeBonus)
	p.outcome = &o
}

func (p *Playing) animate() {
	frames := p.config.Timing.ExplosionFrames
	for id, v := range p.visuals {
		v.frame++
		if v.frame >= frames {
			// Publishes ExplosionRemoved, which drops the visual.
			if !p.sim.ExplosionFinished(id) {
				delete(p.visuals, id)
			}
		}
	}
}

func (p *Playing) frameDT() float64 {
	return 1.0 / float64(p.config.Timing.Framerate)
}

func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}
	defer func() { p.recorder = nil }()

	if err := p.recorder.Save(p.recordPath); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", p.recordPath, p.recorder.FrameCount())
	}
}

// Draw renders the world centered on the screen, then the HUD
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(scene.ColorBG)

	ox := p.config.Stage.Width / 2
	oy := p.config.Stage.Height / 2
	if p.shake > 0.5 {
		ox += p.shake * (2*p.shakeRng.Float64() - 1)
		oy += p.shake * (2*p.shakeRng.Float64() - 1)
	}

	p.sim.World().Each(func(e entity.Entity) {
		p.drawEntity(screen, e.Head(), ox, oy)
	})
	p.drawHUD(screen)
}

func (p *Playing) drawEntity(screen *ebiten.Image, h *entity.Header, ox, oy float64) {
	b := h.Bounds()
	clr := colorFor(h.Kind)

	if v, ok := p.visuals[h.ID]; ok {
		// Explosions grow and fade over their lifetime.
		t := float64(v.frame) / float64(p.config.Timing.ExplosionFrames)
		grow := 1 + t
		b = entity.BoundsAt(h.Pos, entity.Size{W: h.Size.W * grow, H: h.Size.H * grow})
		clr = fade(clr, 1-t)
	}

	vector.DrawFilledRect(screen,
		float32(b.Left+ox), float32(b.Top+oy),
		float32(b.Width()), float32(b.Height()),
		clr, false)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	scene.DrawText(screen, fmt.Sprintf("SCORE %d", p.sim.Score()), 10, 8, 1.5, scene.ColorText)

	if combo := p.sim.Combo(); combo > 1 {
		label := fmt.Sprintf("COMBO x%d (%.1fx)", combo, p.sim.Multiplier())
		scene.DrawText(screen, label, 10, 30, 1, scene.ColorTitle)
	}

	enemies := fmt.Sprintf("INVADERS %d", p.sim.World().CountEnemies())
	scene.DrawText(screen, enemies, p.config.Stage.Width-120, 8, 1, scene.ColorDim)
}

func colorFor(k entity.Kind) color.RGBA {
	switch k {
	case entity.KindPlayer:
		return colorPlayer
	case entity.KindEnemy:
		return colorEnemy
	case entity.KindPlayerMissile:
		return colorPlayerMissile
	case entity.KindEnemyMissile:
		return colorEnemyMissile
	case entity.KindPlayerExplosion:
		return colorPlayerExplosion
	default:
		return colorEnemyExplosion
	}
}

// fade scales a premultiplied color by alpha a in [0,1]
func fade(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
