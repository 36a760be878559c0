// Package dice provides the randomness abstraction used by every chance-based
// rule in the City of Wonders: event selection, discovery rolls, and rewards.
package dice

// Source is the randomness provider for all game rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
	// Float64 returns a random float in [0, 1).
	Float64() float64
}
