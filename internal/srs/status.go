package srs

import (
	"database/sql/driver"
	"fmt"
)

// Status is the position of a card in the review state machine:
//
//	new -> learning -> review <-> relearning
//
// The set is closed. Code that branches on a Status switches over all four
// values and treats anything else as ErrInvalidStatus.
type Status int

const (
	StatusNew Status = iota + 1
	StatusLearning
	StatusReview
	StatusRelearning
)

var statusNames = [...]string{
	StatusNew:        "new",
	StatusLearning:   "learning",
	StatusReview:     "review",
	StatusRelearning: "relearning",
}

// AllStatuses returns every status. Tests walk this list against
// AllRatings so that a new status cannot slip in without transitions.
func AllStatuses() []Status {
	return []Status{StatusNew, StatusLearning, StatusReview, StatusRelearning}
}

func ParseStatus(s string) (Status, error) {
	for i, name := range statusNames {
		if i > 0 && name == s {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s Status) IsValid() bool {
	return s >= StatusNew && s <= StatusRelearning
}

func (s Status) String() string {
	if s.IsValid() {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// InLadder reports whether the status steps through a fixed ladder of short
// intervals rather than ease-based growth.
func (s Status) InLadder() bool {
	switch s {
	case StatusNew, StatusLearning, StatusRelearning:
		return true
	case StatusReview:
		return false
	}
	return false
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return []byte(statusNames[s]), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	v, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Value stores the status as its string name.
func (s Status) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return statusNames[s], nil
}

// Scan reads a status column written by Value.
func (s *Status) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return s.UnmarshalText([]byte(v))
	case []byte:
		return s.UnmarshalText(v)
	}
	return fmt.Errorf("%w: cannot scan %T", ErrInvalidStatus, src)
}
