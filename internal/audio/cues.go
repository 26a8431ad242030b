// Package audio plays short synthesized tones for game events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"spacemax-td/internal/defs"
	"spacemax-td/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a sine beep of a fixed pitch and length.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

var (
	killTone     = Tone{Freq: 880, Duration: 40 * time.Millisecond}
	bossKillTone = Tone{Freq: 1320, Duration: 180 * time.Millisecond}
	breachTone   = Tone{Freq: 140, Duration: 220 * time.Millisecond}
	bossTone     = Tone{Freq: 220, Duration: 300 * time.Millisecond}
	placeTone    = Tone{Freq: 660, Duration: 60 * time.Millisecond}
	victoryTone  = Tone{Freq: 1047, Duration: 600 * time.Millisecond}
	gameOverTone = Tone{Freq: 110, Duration: 800 * time.Millisecond}
)

// CueFor maps an event to the tone announcing it. Regular spawns and waves
// are silent; boss spawns are not.
func CueFor(e event.Event) (Tone, bool) {
	switch e.Type {
	case event.EnemyKilled:
		if info, ok := e.Data.(event.EnemyInfo); ok && info.Boss != defs.BossNone {
			return bossKillTone, true
		}
		return killTone, true
	case event.EnemyBreached:
		return breachTone, true
	case event.EnemySpawned:
		if info, ok := e.Data.(event.EnemyInfo); ok && info.Boss != defs.BossNone {
			return bossTone, true
		}
	case event.TowerPlaced, event.TowerUpgraded:
		return placeTone, true
	case event.Victory:
		return victoryTone, true
	case event.GameOver:
		return gameOverTone, true
	}
	return Tone{}, false
}

// Streamer renders t as a finite beep stream.
func (t Tone) Streamer(rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, t.Freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.0fHz: %w", t.Freq, err)
	}
	return beep.Take(rate.N(t.Duration), sine), nil
}

// CuePlayer listens to the event dispatcher and plays a tone per cue.
type CuePlayer struct {
	mu     sync.Mutex
	play   func(beep.Streamer)
	muted  bool
	played int
}

var speakerOnce struct {
	sync.Once
	err error
}

// NewCuePlayer initializes the speaker. The error is non-fatal for callers:
// the game runs without sound.
func NewCuePlayer() (*CuePlayer, error) {
	speakerOnce.Do(func() {
		speakerOnce.err = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	if speakerOnce.err != nil {
		return nil, fmt.Errorf("init speaker: %w", speakerOnce.err)
	}
	return newCuePlayer(func(s beep.Streamer) { speaker.Play(s) }), nil
}

func newCuePlayer(play func(beep.Streamer)) *CuePlayer {
	return &CuePlayer{play: play}
}

// Attach subscribes the player to every event of d.
func (p *CuePlayer) Attach(d *event.Dispatcher) {
	d.SubscribeAll(p)
}

// SetMuted silences or restores cues.
func (p *CuePlayer) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Played is the number of cues sent to the output.
func (p *CuePlayer) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

func (p *CuePlayer) OnEvent(e event.Event) {
	tone, ok := CueFor(e)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted {
		return
	}
	s, err := tone.Streamer(sampleRate)
	if err != nil {
		return
	}
	p.played++
	p.play(s)
}
