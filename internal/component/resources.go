// internal/component/resources.go
package component

// ResourceState holds the gold/score/lives counters for one game session.
// Values are mutated only through the economy ledger, which clamps every
// mutation into [0, max]; a negative value is never observable.
type ResourceState struct {
	Gold  int
	Score int
	Lives int
}
