package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged game rolls.
// All rolls are logged at debug level with their purpose and outcome.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Below returns a uniform int in [0, bound).
//
// Precondition: bound > 0.
// Postcondition: 0 <= result < bound.
func (r *Roller) Below(purpose string, bound int) int {
	v := r.src.Intn(bound)
	r.logger.Debug("roll",
		zap.String("purpose", purpose),
		zap.Int("bound", bound),
		zap.Int("result", v),
	)
	return v
}

// Chance reports whether a uniform [0, 1) draw falls below p.
//
// Postcondition: p <= 0 never succeeds; p >= 1 always succeeds.
func (r *Roller) Chance(purpose string, p float64) bool {
	v := r.src.Float64()
	hit := v < p
	r.logger.Debug("chance",
		zap.String("purpose", purpose),
		zap.Float64("p", p),
		zap.Float64("draw", v),
		zap.Bool("hit", hit),
	)
	return hit
}
