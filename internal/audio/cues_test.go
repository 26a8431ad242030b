package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"spacemax-td/internal/defs"
	"spacemax-td/internal/event"
)

func TestCueForBossSpawnOnly(t *testing.T) {
	if _, ok := CueFor(event.Event{Type: event.EnemySpawned, Data: event.EnemyInfo{Boss: defs.BossNone}}); ok {
		t.Error("regular spawn should be silent")
	}
	tone, ok := CueFor(event.Event{Type: event.EnemySpawned, Data: event.EnemyInfo{Boss: defs.BossMain}})
	if !ok || tone != bossTone {
		t.Errorf("boss spawn cue = %+v, %v; want %+v", tone, ok, bossTone)
	}
	if _, ok := CueFor(event.Event{Type: event.WaveStarted, Data: event.WaveInfo{Stage: 1}}); ok {
		t.Error("wave start should be silent")
	}
}

func TestCueForKill(t *testing.T) {
	tone, _ := CueFor(event.Event{Type: event.EnemyKilled, Data: event.EnemyInfo{}})
	if tone != killTone {
		t.Errorf("kill cue = %+v, want %+v", tone, killTone)
	}
	tone, _ = CueFor(event.Event{Type: event.EnemyKilled, Data: event.EnemyInfo{Boss: defs.BossMid}})
	if tone != bossKillTone {
		t.Errorf("boss kill cue = %+v, want %+v", tone, bossKillTone)
	}
}

func TestToneStreamerLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	s, err := Tone{Freq: 100, Duration: 50 * time.Millisecond}.Streamer(rate)
	if err != nil {
		t.Fatalf("Streamer: %v", err)
	}
	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != 50 {
		t.Errorf("streamed %d samples, want 50", total)
	}
}

func TestCuePlayerMuted(t *testing.T) {
	var got int
	p := newCuePlayer(func(beep.Streamer) { got++ })
	d := event.NewDispatcher()
	p.Attach(d)

	d.Dispatch(event.Event{Type: event.EnemyBreached, Data: event.EnemyInfo{}})
	p.SetMuted(true)
	d.Dispatch(event.Event{Type: event.EnemyBreached, Data: event.EnemyInfo{}})

	if got != 1 || p.Played() != 1 {
		t.Errorf("played %d (counter %d), want 1", got, p.Played())
	}
}
