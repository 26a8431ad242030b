// internal/component/wave.go
package component

// Wave is the wave manager's state. One per session.
type Wave struct {
	Stage          int
	EnemiesToSpawn int
	SpawnTimerMs   float64
}

// Spawning reports whether the current wave still has enemies queued.
func (w *Wave) Spawning() bool {
	return w.EnemiesToSpawn > 0
}
