// internal/entity/enemy.go
package entity

import (
	"fmt"
	"math"

	"bastion/internal/component"
	"bastion/internal/defs"
	"bastion/internal/types"
)

// Enemy is one live enemy instance tracked by the wave scheduler. Movement
// and combat are handled by external collaborators; the core only needs the
// identity, the breach damage and the path handed over at spawn time.
type Enemy struct {
	ID       types.EntityID
	Kind     string
	Health   int
	Speed    float64
	Damage   int
	Position component.Vec2
	Path     []component.Vec2
}

// Factory instantiates enemies from a kind plus per-wave stat multipliers.
// The default implementation is backed by the defs enemy library; tests and
// collaborators may substitute their own.
type Factory interface {
	Spawn(kind string, at component.Vec2, healthMul, speedMul float64) (*Enemy, error)
}

// LibraryFactory builds enemies from a defs enemy library.
type LibraryFactory struct {
	library map[string]defs.EnemyDefinition
}

var _ Factory = (*LibraryFactory)(nil)

// NewLibraryFactory creates a factory over the given enemy library.
func NewLibraryFactory(library map[string]defs.EnemyDefinition) *LibraryFactory {
	return &LibraryFactory{library: library}
}

// Spawn builds an enemy of the given kind with its base stats scaled by the
// multipliers. An unknown kind is an error; the scheduler logs and skips it.
func (f *LibraryFactory) Spawn(kind string, at component.Vec2, healthMul, speedMul float64) (*Enemy, error) {
	def, ok := f.library[kind]
	if !ok {
		return nil, fmt.Errorf("enemy definition not found for ID: %s", kind)
	}
	if healthMul <= 0 || speedMul <= 0 {
		return nil, fmt.Errorf("non-positive stat multiplier for enemy %s", kind)
	}
	return &Enemy{
		Kind:     kind,
		Health:   int(math.Round(float64(def.Health) * healthMul)),
		Speed:    def.Speed * speedMul,
		Damage:   def.Damage,
		Position: at,
	}, nil
}
