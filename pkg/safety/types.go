// Package safety evaluates piezometric head measurements against the uplift
// failure criterion and classifies the result into risk tiers.
package safety

import "time"

// Tier represents the risk classification of an evaluation.
type Tier string

const (
	TierSafe    Tier = "safe"
	TierWarning Tier = "warning"
	TierDanger  Tier = "danger"
)

// warningFactor is the lower bound of the warning tier. At factors below it
// the actual head has passed the critical head, so it is a fixed property of
// the criterion rather than a configurable limit.
const warningFactor = 1.0

// Limits defines the configurable bounds used during evaluation.
type Limits struct {
	// SafeFactor is the warning/safe boundary for the safety factor.
	SafeFactor float64
	// MaxHead is the plausibility ceiling for head input, in meters.
	MaxHead float64
}

// DefaultLimits returns the default limit values.
func DefaultLimits() Limits {
	return Limits{
		SafeFactor: 1.10,
		MaxHead:    100.0,
	}
}

// Classify returns the risk tier for a safety factor. Boundaries are
// inclusive on the lower edge of each tier.
func (l Limits) Classify(factor float64) Tier {
	if factor >= l.SafeFactor {
		return TierSafe
	}
	if factor >= warningFactor {
		return TierWarning
	}
	return TierDanger
}

// Evaluation is the result of a successful evaluation of one head pair.
type Evaluation struct {
	ActualLevel   float64   `json:"actual_level"`
	CriticalLevel float64   `json:"critical_level"`
	Factor        float64   `json:"safety_factor"`
	Margin        float64   `json:"safety_margin"`
	TargetLevel   float64   `json:"target_level"`
	Tier          Tier      `json:"tier"`
	EvaluatedAt   time.Time `json:"evaluated_at"`
}

// ValidationError describes why an input pair was rejected. Message holds the
// fixed user-facing text for the failure kind.
type ValidationError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation failure kinds, in check order.
var (
	ErrNotANumber = &ValidationError{
		Kind:    "not_a_number",
		Message: "both head values must be entered as valid numbers.",
	}
	ErrNonPositive = &ValidationError{
		Kind:    "non_positive",
		Message: "head values must be positive.",
	}
	ErrOutOfRange = &ValidationError{
		Kind:    "out_of_range",
		Message: "head values appear unrealistically high; verify the input.",
	}
)

// ExitCode returns the appropriate exit code for an evaluation tier.
func ExitCode(tier Tier) int {
	switch tier {
	case TierSafe:
		return 0 // Margin meets the norm
	case TierWarning:
		return 1 // Margin below the norm
	case TierDanger:
		return 2 // Critical head exceeded
	default:
		return 3 // Tool error
	}
}
