package srs

import (
	"fmt"
	"math"
	"time"
)

// Schedule applies one rating to a record and returns the updated record.
// It is the only function that advances persisted scheduling state; the
// input record is not modified.
func Schedule(p Policy, r ReviewRecord, rating Rating, now time.Time) (ReviewRecord, error) {
	if !rating.IsValid() {
		return r, fmt.Errorf("%w: got %d", ErrInvalidRating, int(rating))
	}
	next := r

	var err error
	switch r.Status {
	case StatusNew:
		err = scheduleNew(p, &next, rating)
	case StatusLearning, StatusRelearning:
		err = scheduleLadder(p, &next, rating)
	case StatusReview:
		err = scheduleReview(p, &next, rating)
	default:
		err = fmt.Errorf("%w: %d", ErrInvalidStatus, int(r.Status))
	}
	if err != nil {
		return r, err
	}

	reviewed := now
	next.ReviewCount++
	next.LastReviewedAt = &reviewed
	next.UpdatedAt = now
	next.DueAt = now.Add(time.Duration(next.Interval) * time.Minute)
	return next, nil
}

// A new card enters the learning ladder at its first step on anything but
// Easy.
func scheduleNew(p Policy, r *ReviewRecord, rating Rating) error {
	switch rating {
	case Again, Hard, Good:
		r.Status = StatusLearning
		r.LearningStep = 0
		r.Interval = p.LearningSteps[0]
	case Easy:
		graduate(r, p.EasyInterval)
	default:
		return fmt.Errorf("%w: got %d", ErrInvalidRating, int(rating))
	}
	return nil
}

func scheduleLadder(p Policy, r *ReviewRecord, rating Rating) error {
	steps := p.ladder(r.Status)
	switch rating {
	case Again, Hard:
		r.LearningStep = 0
		r.Interval = steps[0]
	case Good:
		r.LearningStep++
		if r.LearningStep >= len(steps) {
			graduate(r, p.GraduatingInterval)
		} else {
			r.Interval = steps[r.LearningStep]
		}
	case Easy:
		graduate(r, p.EasyInterval)
	default:
		return fmt.Errorf("%w: got %d", ErrInvalidRating, int(rating))
	}
	return nil
}

func scheduleReview(p Policy, r *ReviewRecord, rating Rating) error {
	switch rating {
	case Again:
		r.Status = StatusRelearning
		r.LearningStep = 0
		r.LapseCount++
		r.Interval = p.RelearningSteps[0]
		r.EaseFactor = math.Max(p.MinimumEase, r.EaseFactor-p.LapseEasePenalty)
	case Hard, Good, Easy:
		r.Interval = reviewInterval(p, r.Interval, r.EaseFactor, rating)
		switch rating {
		case Hard:
			r.EaseFactor = math.Max(p.MinimumEase, r.EaseFactor-p.HardEasePenalty)
		case Easy:
			r.EaseFactor += p.EasyEaseBonus
		}
	default:
		return fmt.Errorf("%w: got %d", ErrInvalidRating, int(rating))
	}
	return nil
}

func graduate(r *ReviewRecord, interval int) {
	r.Status = StatusReview
	r.LearningStep = 0
	r.Interval = interval
}

// reviewInterval is the ease-based growth shared by Schedule and Estimate.
// Again is handled by the callers since it does not grow the interval.
func reviewInterval(p Policy, interval int, ease float64, rating Rating) int {
	var f float64
	switch rating {
	case Hard:
		f = float64(interval) * p.HardMultiplier
	case Good:
		f = float64(interval) * ease
	case Easy:
		f = float64(interval) * ease * p.EasyBonus
	default:
		return interval
	}
	return clampInterval(p, roundMinutes(f))
}

// roundMinutes rounds half away from zero. Every interval computation uses
// it; there is no other rounding rule in the scheduler.
func roundMinutes(f float64) int {
	return int(math.Round(f))
}

func clampInterval(p Policy, minutes int) int {
	if minutes < 1 {
		return 1
	}
	if minutes > p.MaximumInterval {
		return p.MaximumInterval
	}
	return minutes
}
