package safety

import (
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Evaluator derives uplift safety evaluations from head measurements.
type Evaluator struct {
	limits Limits
	logger *logrus.Logger
}

// NewEvaluator creates a new evaluator.
func NewEvaluator(limits Limits, logger *logrus.Logger) *Evaluator {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}
	return &Evaluator{
		limits: limits,
		logger: logger,
	}
}

// EvaluateStrings parses two head values and evaluates the pair. A parse
// failure on either input reports ErrNotANumber before any other check runs.
func (e *Evaluator) EvaluateStrings(actualText, criticalText string) (Evaluation, error) {
	actual, errActual := strconv.ParseFloat(strings.TrimSpace(actualText), 64)
	critical, errCritical := strconv.ParseFloat(strings.TrimSpace(criticalText), 64)
	if errActual != nil || errCritical != nil {
		e.logger.WithFields(logrus.Fields{
			"actual":   actualText,
			"critical": criticalText,
		}).Debug("Head input failed to parse")
		return Evaluation{}, ErrNotANumber
	}
	return e.Evaluate(actual, critical)
}

// Evaluate validates a head pair and computes the safety evaluation.
// Validation short-circuits in a fixed order: numeric, positive, in range.
// The returned Evaluation is fully populated on success and zero otherwise.
func (e *Evaluator) Evaluate(actual, critical float64) (Evaluation, error) {
	// ParseFloat accepts "NaN" and "Inf", and NaN would slip through the
	// ordered comparisons below, so non-finite counts as not a number.
	if !isFinite(actual) || !isFinite(critical) {
		return Evaluation{}, e.reject(actual, critical, ErrNotANumber)
	}
	if actual <= 0 || critical <= 0 {
		return Evaluation{}, e.reject(actual, critical, ErrNonPositive)
	}
	if actual > e.limits.MaxHead || critical > e.limits.MaxHead {
		return Evaluation{}, e.reject(actual, critical, ErrOutOfRange)
	}

	eval := Evaluation{
		ActualLevel:   actual,
		CriticalLevel: critical,
		Factor:        critical / actual,
		Margin:        critical - actual,
		TargetLevel:   critical / e.limits.SafeFactor,
		EvaluatedAt:   clock.Now(),
	}
	eval.Tier = e.limits.Classify(eval.Factor)

	e.logger.WithFields(logrus.Fields{
		"factor": eval.Factor,
		"tier":   eval.Tier,
	}).Debug("Evaluated head pair")

	return eval, nil
}

// reject logs a validation failure and passes the sentinel through.
func (e *Evaluator) reject(actual, critical float64, verr *ValidationError) error {
	e.logger.WithFields(logrus.Fields{
		"actual":   actual,
		"critical": critical,
		"kind":     verr.Kind,
	}).Debug("Head pair rejected")
	return verr
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
