package srs

import (
	"fmt"
	"strings"
)

// Rating is the learner's self-reported recall quality.
type Rating int

const (
	Again Rating = 0 // failed to recall
	Hard  Rating = 1 // recalled with difficulty
	Good  Rating = 2 // recalled correctly
	Easy  Rating = 3 // recalled effortlessly
)

var ratingNames = [...]string{Again: "again", Hard: "hard", Good: "good", Easy: "easy"}

// AllRatings returns every rating in ordinal order.
func AllRatings() []Rating {
	return []Rating{Again, Hard, Good, Easy}
}

// ParseRating validates a raw rating value coming off the wire.
func ParseRating(v int) (Rating, error) {
	r := Rating(v)
	if !r.IsValid() {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidRating, v)
	}
	return r, nil
}

func (r Rating) IsValid() bool {
	return r >= Again && r <= Easy
}

func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// Label is the capitalized button label ("Again", "Hard", ...).
func (r Rating) Label() string {
	s := r.String()
	if !r.IsValid() {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (r Rating) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRating, int(r))
	}
	return []byte(ratingNames[r]), nil
}

func (r *Rating) UnmarshalText(text []byte) error {
	for i, name := range ratingNames {
		if name == strings.ToLower(string(text)) {
			*r = Rating(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidRating, text)
}
