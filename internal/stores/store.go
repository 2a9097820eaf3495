// Package stores defines the persistence contract of the review scheduler.
package stores

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/domino14/cardvault/internal/srs"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict means another writer changed the review between the read
	// and the write of ApplyReview. Nothing was written.
	ErrConflict = errors.New("review was modified concurrently")
)

// ApplyFunc computes the next state of a review. It runs inside the store's
// transaction while the record is locked; returning an error aborts the
// transaction.
type ApplyFunc func(current srs.ReviewRecord) (srs.ReviewRecord, error)

type ReviewStore interface {
	// CheckCollectionAccess returns ErrNotFound unless userID owns or
	// collaborates on the collection.
	CheckCollectionAccess(ctx context.Context, userID string, collectionID uuid.UUID) error
	FlashcardCollection(ctx context.Context, flashcardID uuid.UUID) (uuid.UUID, error)

	// EnsureReviews creates a new-status review for every flashcard of the
	// collection that the user has no review for yet. Existing reviews are
	// left alone.
	EnsureReviews(ctx context.Context, p srs.Policy, userID string, collectionID uuid.UUID, now time.Time) (int, error)
	// ListDue returns reviews with DueAt <= now, earliest first, ties broken
	// by creation time. A limit <= 0 means no limit.
	ListDue(ctx context.Context, userID string, collectionID uuid.UUID, now time.Time, limit int) ([]srs.ReviewRecord, error)
	ListReviews(ctx context.Context, userID string, collectionID uuid.UUID) ([]srs.ReviewRecord, error)
	GetReview(ctx context.Context, userID string, flashcardID uuid.UUID) (srs.ReviewRecord, error)
	// ApplyReview locks the user's review of a flashcard, creating a new one
	// if it does not exist, and writes whatever fn returns.
	ApplyReview(ctx context.Context, p srs.Policy, userID string, flashcardID uuid.UUID, now time.Time, fn ApplyFunc) (srs.ReviewRecord, error)
	// DeleteReviews removes every review of the user in the collection in a
	// single transaction.
	DeleteReviews(ctx context.Context, userID string, collectionID uuid.UUID) (int64, error)

	CreateCollection(ctx context.Context, ownerID, name string, now time.Time) (Collection, error)
	AddCollaborator(ctx context.Context, collectionID uuid.UUID, userID string, now time.Time) error
	AddFlashcards(ctx context.Context, collectionID uuid.UUID, cards []NewFlashcard, now time.Time) ([]srs.Flashcard, error)
	// ImportCollection creates a collection with its flashcards and
	// collaborators in one transaction. On error nothing is written.
	ImportCollection(ctx context.Context, seed CollectionSeed, now time.Time) (Collection, []srs.Flashcard, error)

	Close() error
}

type Collection struct {
	ID        uuid.UUID
	OwnerID   string
	Name      string
	CreatedAt time.Time
}

// CollectionSeed is a whole collection to create at once.
type CollectionSeed struct {
	OwnerID       string
	Name          string
	Cards         []NewFlashcard
	Collaborators []string
}

type NewFlashcard struct {
	Question string
	Answer   string
	Type     string
}

func (c NewFlashcard) CardType() string {
	if c.Type == "" {
		return "basic"
	}
	return c.Type
}
