package srs

import (
	"time"

	"github.com/google/uuid"
)

// ReviewRecord is the scheduling state of one flashcard for one learner.
type ReviewRecord struct {
	ID          uuid.UUID
	UserID      string
	FlashcardID uuid.UUID

	EaseFactor float64
	// Interval is in minutes.
	Interval     int
	DueAt        time.Time
	Status       Status
	LearningStep int
	ReviewCount  int
	LapseCount   int

	LastReviewedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Flashcard is filled in by queries that join the card for display.
	Flashcard *Flashcard
}

type Flashcard struct {
	ID           uuid.UUID
	CollectionID uuid.UUID
	Question     string
	Answer       string
	Type         string
}

// NewRecord returns the record a card gets the first time a learner starts a
// session on its collection. It is due immediately.
func NewRecord(p Policy, userID string, flashcardID uuid.UUID, now time.Time) ReviewRecord {
	return ReviewRecord{
		ID:          NewID(),
		UserID:      userID,
		FlashcardID: flashcardID,
		EaseFactor:  p.StartingEase,
		DueAt:       now,
		Status:      StatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func IsDue(r ReviewRecord, now time.Time) bool {
	return !r.DueAt.After(now)
}

// NewID returns a time-ordered id for new rows.
func NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
