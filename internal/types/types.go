// internal/types/types.go
package types

// EntityID identifies an entity in the ECS. IDs are handed out in increasing
// order and never reused, so a stale ID simply stops resolving once its
// entity is removed.
type EntityID uint64

// NoEntity is the zero ID; no live entity ever has it.
const NoEntity EntityID = 0
