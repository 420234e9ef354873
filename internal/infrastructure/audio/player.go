package audio

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/event"
)

const amplitude = 8000

// CueFor maps a simulation event to its sound effect
func CueFor(e event.Event) (Cue, bool) {
	switch e.Type {
	case event.MissileFired:
		if d, ok := e.Data.(event.EntityData); ok && d.Kind == entity.KindEnemyMissile {
			return CueEnemyMissile, true
		}
		return CuePlayerMissile, true
	case event.EnemyKilled:
		return CueEnemyExplosion, true
	case event.PlayerKilled:
		return CuePlayerExplosion, true
	case event.Victory:
		return CueVictory, true
	case event.GameOver:
		return CueGameOver, true
	}
	return 0, false
}

// Player owns one audio player per cue
type Player struct {
	players map[Cue]*audio.Player
	volume  float64
	muted   bool
}

// NewPlayer synthesizes every cue on ctx.
// ctx must run at SampleRate.
func NewPlayer(ctx *audio.Context, volume float64) *Player {
	p := &Player{
		players: make(map[Cue]*audio.Player, len(Cues)),
		volume:  volume,
	}
	for _, c := range Cues {
		pl := ctx.NewPlayerFromBytes(Synthesize(Notes(c), SampleRate, amplitude))
		pl.SetVolume(volume)
		p.players[c] = pl
	}
	return p
}

// Attach subscribes p to every event with a cue
func (p *Player) Attach(d *event.Dispatcher) {
	d.SubscribeAll(p, event.MissileFired, event.EnemyKilled, event.PlayerKilled, event.Victory, event.GameOver)
}

// OnEvent implements event.Listener
func (p *Player) OnEvent(e event.Event) {
	if c, ok := CueFor(e); ok {
		p.Play(c)
	}
}

// Play restarts the clip for c unless muted
func (p *Player) Play(c Cue) {
	if p.muted {
		return
	}
	pl, ok := p.players[c]
	if !ok {
		return
	}
	_ = pl.SetPosition(0)
	pl.Play()
}

// SetMuted silences or restores playback
func (p *Player) SetMuted(muted bool) {
	p.muted = muted
	if muted {
		for _, pl := range p.players {
			pl.Pause()
		}
	}
}

// ToggleMute flips the mute state and returns the new value
func (p *Player) ToggleMute() bool {
	p.SetMuted(!p.muted)
	return p.muted
}

// Muted reports whether playback is silenced
func (p *Player) Muted() bool {
	return p.muted
}
