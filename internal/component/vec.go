// internal/component/vec.go
package component

// Vec2 is a world position. Spawn points and waypoints are supplied by the
// map collaborator as Vec2 lists; the core never interprets the coordinates.
type Vec2 struct {
	X float64
	Y float64
}
