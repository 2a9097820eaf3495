package srs

import "fmt"

// Estimate previews the interval, in minutes, that rating would produce.
// It never touches stored state and may be called any number of times.
//
// For ladder statuses the estimate ignores the ladder position: Again and
// Hard give the first learning step, Good the graduating interval and Easy
// the easy interval. Only Schedule knows whether a Good rating actually
// graduates the card, so the preview can be longer than the result there.
// For review status the growth is computed exactly as Schedule does.
func Estimate(p Policy, currentInterval int, ease float64, status Status, rating Rating) (int, error) {
	if !rating.IsValid() {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidRating, int(rating))
	}
	switch status {
	case StatusNew, StatusLearning, StatusRelearning:
		switch rating {
		case Again, Hard:
			return p.LearningSteps[0], nil
		case Good:
			return p.GraduatingInterval, nil
		case Easy:
			return p.EasyInterval, nil
		}
	case StatusReview:
		if rating == Again {
			return p.RelearningSteps[0], nil
		}
		return reviewInterval(p, currentInterval, ease, rating), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidStatus, int(status))
}

// EstimateAll returns the estimate for each rating, indexed by Rating.
func EstimateAll(p Policy, r ReviewRecord) ([4]int, error) {
	var out [4]int
	for _, rating := range AllRatings() {
		m, err := Estimate(p, r.Interval, r.EaseFactor, r.Status, rating)
		if err != nil {
			return out, err
		}
		out[rating] = m
	}
	return out, nil
}
