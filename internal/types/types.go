// internal/types/types.go
package types

// EntityID identifies a live enemy instance within a game session.
// IDs are allocated by the entity registry and start at 1; 0 is never valid.
type EntityID uint64
