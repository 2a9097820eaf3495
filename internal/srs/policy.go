package srs

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 1440
)

// Policy holds every numeric constant of the scheduler. The same value is
// handed to Schedule and to Estimate so that the preview shown before a
// rating and the persisted result are computed from one source.
type Policy struct {
	// LearningSteps are the intervals, in minutes, a new card steps through
	// before it graduates.
	LearningSteps []int
	// RelearningSteps are the intervals used after a lapse.
	RelearningSteps []int
	// GraduatingInterval is the first review interval after the ladder.
	GraduatingInterval int
	// EasyInterval is the interval for an Easy rating while in a ladder.
	EasyInterval int

	StartingEase     float64
	MinimumEase      float64
	LapseEasePenalty float64
	HardEasePenalty  float64
	EasyEaseBonus    float64

	HardMultiplier float64
	EasyBonus      float64

	MaximumInterval int
	// MatureInterval is the interval at or beyond which a card counts as
	// mature in collection statistics.
	MatureInterval int
}

func DefaultPolicy() Policy {
	return Policy{
		LearningSteps:      []int{1, 10},
		RelearningSteps:    []int{10},
		GraduatingInterval: MinutesPerDay,
		EasyInterval:       4 * MinutesPerDay,
		StartingEase:       2.5,
		MinimumEase:        1.3,
		LapseEasePenalty:   0.2,
		HardEasePenalty:    0.15,
		EasyEaseBonus:      0.15,
		HardMultiplier:     1.2,
		EasyBonus:          1.3,
		MaximumInterval:    365 * MinutesPerDay,
		MatureInterval:     21 * MinutesPerDay,
	}
}

func (p Policy) Validate() error {
	if err := validateSteps("learning", p.LearningSteps); err != nil {
		return err
	}
	if err := validateSteps("relearning", p.RelearningSteps); err != nil {
		return err
	}
	switch {
	case p.GraduatingInterval <= 0:
		return fmt.Errorf("%w: graduating interval must be positive", ErrInvalidPolicy)
	case p.EasyInterval <= 0:
		return fmt.Errorf("%w: easy interval must be positive", ErrInvalidPolicy)
	case p.MinimumEase < 1.0:
		return fmt.Errorf("%w: minimum ease must be at least 1.0", ErrInvalidPolicy)
	case p.StartingEase < p.MinimumEase:
		return fmt.Errorf("%w: starting ease %.2f is below minimum ease %.2f",
			ErrInvalidPolicy, p.StartingEase, p.MinimumEase)
	case p.LapseEasePenalty < 0 || p.HardEasePenalty < 0 || p.EasyEaseBonus < 0:
		return fmt.Errorf("%w: ease adjustments cannot be negative", ErrInvalidPolicy)
	case p.HardMultiplier <= 0 || p.EasyBonus <= 0:
		return fmt.Errorf("%w: multipliers must be positive", ErrInvalidPolicy)
	case p.MaximumInterval < p.GraduatingInterval || p.MaximumInterval < p.EasyInterval:
		return fmt.Errorf("%w: maximum interval must cover the graduating and easy intervals",
			ErrInvalidPolicy)
	case p.MatureInterval <= 0:
		return fmt.Errorf("%w: mature interval must be positive", ErrInvalidPolicy)
	}
	return nil
}

func validateSteps(name string, steps []int) error {
	if len(steps) == 0 {
		return fmt.Errorf("%w: %s steps cannot be empty", ErrInvalidPolicy, name)
	}
	for _, s := range steps {
		if s <= 0 {
			return fmt.Errorf("%w: %s step %d must be positive", ErrInvalidPolicy, name, s)
		}
	}
	return nil
}

// ladder returns the step ladder used by a status that is in one.
func (p Policy) ladder(s Status) []int {
	if s == StatusRelearning {
		return p.RelearningSteps
	}
	return p.LearningSteps
}

// ParseSteps parses a comma-separated list of minute counts, e.g. "1,10".
func ParseSteps(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	steps := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: bad step %q", ErrInvalidPolicy, f)
		}
		steps = append(steps, n)
	}
	return steps, nil
}
