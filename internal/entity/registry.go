// internal/entity/registry.go
package entity

import "bastion/internal/types"

// Registry is the active-enemy set for the running session. It allocates
// entity IDs and tracks every spawned-but-not-yet-resolved enemy.
type Registry struct {
	nextID  types.EntityID
	enemies map[types.EntityID]*Enemy
}

// NewRegistry creates an empty registry. IDs start at 1.
func NewRegistry() *Registry {
	return &Registry{
		nextID:  1,
		enemies: make(map[types.EntityID]*Enemy),
	}
}

// Add assigns the enemy an ID and tracks it. Returns the new ID.
func (r *Registry) Add(enemy *Enemy) types.EntityID {
	id := r.nextID
	r.nextID++
	enemy.ID = id
	r.enemies[id] = enemy
	return id
}

// Get returns the tracked enemy, or nil.
func (r *Registry) Get(id types.EntityID) *Enemy {
	return r.enemies[id]
}

// Remove untracks and returns the enemy, or nil if it was not tracked.
// Kill and reached-end notifications both resolve enemies through here, so a
// duplicate notification for the same enemy is a no-op.
func (r *Registry) Remove(id types.EntityID) *Enemy {
	enemy, ok := r.enemies[id]
	if !ok {
		return nil
	}
	delete(r.enemies, id)
	return enemy
}

// IDs returns the IDs of all tracked enemies, in unspecified order.
func (r *Registry) IDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(r.enemies))
	for id := range r.enemies {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of tracked enemies.
func (r *Registry) Len() int {
	return len(r.enemies)
}

// Clear destroys all tracked enemy references. ID allocation keeps counting
// so IDs stay unique across waves within a session.
func (r *Registry) Clear() {
	r.enemies = make(map[types.EntityID]*Enemy)
}
