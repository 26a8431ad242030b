package system

import (
	"testing"

	"spacemax-td/internal/config"
	"spacemax-td/internal/defs"
	"spacemax-td/internal/event"
)

func TestWaveSize(t *testing.T) {
	cfg := config.Default()
	for stage, want := range map[int]int{1: 7, 5: 15, 30: 65} {
		if got := WaveSize(&cfg, stage); got != want {
			t.Errorf("WaveSize(%d) = %d, want %d", stage, got, want)
		}
	}
}

func TestBossTierFor(t *testing.T) {
	tests := map[int]defs.BossTier{
		1: defs.BossNone, 4: defs.BossNone, 5: defs.BossMid, 10: defs.BossMain,
		15: defs.BossMid, 20: defs.BossMain, 29: defs.BossNone, 30: defs.BossMain,
	}
	for stage, want := range tests {
		if got := BossTierFor(stage); got != want {
			t.Errorf("BossTierFor(%d) = %v, want %v", stage, got, want)
		}
	}
}

func TestEnemyHP(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		stage int
		boss  defs.BossTier
		want  float64
	}{
		{1, defs.BossNone, 160},
		{5, defs.BossNone, 400},
		{5, defs.BossMid, 3200},
		{10, defs.BossMain, 700 * 12},
	}
	for _, tt := range tests {
		if got := EnemyHP(&cfg, tt.stage, tt.boss); got != tt.want {
			t.Errorf("EnemyHP(%d, %v) = %g, want %g", tt.stage, tt.boss, got, tt.want)
		}
	}
}

func TestStartWaveQueuesEnemies(t *testing.T) {
	cfg := config.Default()
	ws, ecs, log := newWaveSystem(t, &cfg)

	ws.StartWave()
	if ecs.Wave.EnemiesToSpawn != 7 {
		t.Fatalf("queued %d, want 7", ecs.Wave.EnemiesToSpawn)
	}
	if ws.Cleared() {
		t.Error("wave with a queue reported cleared")
	}
	if log.count(event.WaveStarted) != 1 {
		t.Error("WaveStarted not dispatched")
	}

	ws.NextStage()
	if ecs.Wave.Stage != 2 || ecs.Wave.EnemiesToSpawn != 9 {
		t.Errorf("stage %d with %d queued, want 2 with 9", ecs.Wave.Stage, ecs.Wave.EnemiesToSpawn)
	}
}

func TestSpawnTimer(t *testing.T) {
	cfg := config.Default()
	ws, ecs, _ := newWaveSystem(t, &cfg)
	ws.StartWave()

	ws.Update(600)
	ws.Update(400) // exactly 1000: not past the interval yet
	if ecs.Enemies.Len() != 0 {
		t.Fatal("spawned before the interval passed")
	}
	ws.Update(1)
	if ecs.Enemies.Len() != 1 {
		t.Fatalf("%d enemies after 1001ms, want 1", ecs.Enemies.Len())
	}
	if ecs.Wave.SpawnTimerMs != 0 {
		t.Errorf("timer = %g after spawn, want 0", ecs.Wave.SpawnTimerMs)
	}

	id := ecs.Enemies.IDs()[0]
	start := cfg.PathWaypoints[0]
	if pos := ecs.Positions[id]; pos.X != start.X || pos.Y != start.Y {
		t.Errorf("spawned at %+v, want route start %+v", *pos, start)
	}
}

func TestLastSpawnOfBossStageIsBoss(t *testing.T) {
	cfg := config.Default()
	ws, ecs, log := newWaveSystem(t, &cfg)
	ecs.Wave.Stage = 5
	ws.StartWave()

	for ws.ecs.Wave.Spawning() {
		ws.SpawnEnemy()
	}
	if _, ok := ws.SpawnEnemy(); ok {
		t.Error("spawned with an empty queue")
	}

	ids := ecs.Enemies.IDs()
	if len(ids) != 15 {
		t.Fatalf("%d enemies, want 15", len(ids))
	}
	for i, id := range ids {
		enemy, _ := ecs.Enemies.Get(id)
		wantBoss := defs.BossNone
		if i == len(ids)-1 {
			wantBoss = defs.BossMid
		}
		if enemy.Boss != wantBoss {
			t.Errorf("enemy %d boss = %v, want %v", i, enemy.Boss, wantBoss)
		}
		if enemy.HP != enemy.MaxHP {
			t.Errorf("enemy %d spawned hurt", i)
		}
	}
	if log.count(event.EnemySpawned) != 15 {
		t.Errorf("%d spawn events, want 15", log.count(event.EnemySpawned))
	}
}
