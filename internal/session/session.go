// Package session runs the learner's side of a review: one due card at a
// time, flip, rate, advance.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/domino14/cardvault/internal/srs"
)

var (
	ErrBusy       = errors.New("a rating is already being submitted")
	ErrNotFlipped = errors.New("flip the card before rating it")
	ErrNoCard     = errors.New("no card to rate")
	// ErrNotDue is returned by a ReviewAPI when the scheduler refuses a
	// rating because the card is no longer due.
	ErrNotDue = errors.New("card is not due yet")
	// ErrAlreadyRecorded means an earlier submission of this card landed even
	// though its response was lost. The session has moved on.
	ErrAlreadyRecorded = errors.New("rating was already recorded")
)

// SubmitError is a rating that did not go through. The session did not
// advance; the learner may rate again.
type SubmitError struct {
	Rating srs.Rating
	Err    error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("could not submit %s rating: %v", e.Rating, e.Err)
}

func (e *SubmitError) Unwrap() error { return e.Err }

// ReviewAPI is the authoritative scheduler as the session sees it.
type ReviewAPI interface {
	StartSession(ctx context.Context, collectionID uuid.UUID) (int, error)
	DueCards(ctx context.Context, collectionID uuid.UUID) ([]srs.ReviewRecord, error)
	Stats(ctx context.Context, collectionID uuid.UUID) (*srs.CollectionStats, error)
	SubmitRating(ctx context.Context, flashcardID uuid.UUID, rating srs.Rating) (srs.ReviewRecord, error)
}

type Session struct {
	api          ReviewAPI
	policy       srs.Policy
	collectionID uuid.UUID

	mu       sync.Mutex
	cards    []srs.ReviewRecord
	index    int
	flipped  bool
	busy     bool
	reviewed int
	stats    *srs.CollectionStats
}

func New(api ReviewAPI, policy srs.Policy, collectionID uuid.UUID) *Session {
	return &Session{api: api, policy: policy, collectionID: collectionID}
}

// Start makes sure every card of the collection has a review, then loads
// the due cards. The due cards are loaded even if the first step fails.
func (s *Session) Start(ctx context.Context) error {
	created, err := s.api.StartSession(ctx, s.collectionID)
	if err != nil {
		log.Ctx(ctx).Err(err).Msg("start-session-failed")
	} else {
		log.Ctx(ctx).Debug().Int("created", created).Msg("session-started")
	}
	s.Load(ctx)
	return err
}

// Load fetches the due cards and the stats. Failures leave an empty card
// list or nil stats.
func (s *Session) Load(ctx context.Context) {
	cards, err := s.api.DueCards(ctx, s.collectionID)
	if err != nil {
		log.Ctx(ctx).Err(err).Msg("due-list-failed")
		cards = nil
	}
	srs.SortDue(cards)
	stats := s.fetchStats(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = cards
	s.index = 0
	s.flipped = false
	s.stats = stats
}

// Reset reloads the due cards and starts over from the first one.
func (s *Session) Reset(ctx context.Context) {
	s.Load(ctx)
	s.mu.Lock()
	s.reviewed = 0
	s.mu.Unlock()
}

func (s *Session) fetchStats(ctx context.Context) *srs.CollectionStats {
	stats, err := s.api.Stats(ctx, s.collectionID)
	if err != nil {
		log.Ctx(ctx).Err(err).Msg("stats-failed")
		return nil
	}
	return stats
}

// Current returns the card being shown, if any.
func (s *Session) Current() (srs.ReviewRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index >= len(s.cards) {
		return srs.ReviewRecord{}, false
	}
	return s.cards[s.index], true
}

// Flip toggles between question and answer.
func (s *Session) Flip() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index < len(s.cards) {
		s.flipped = !s.flipped
	}
}

func (s *Session) Flipped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flipped
}

func (s *Session) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index >= len(s.cards)
}

// Remaining counts the cards left including the current one.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cards) - s.index
}

func (s *Session) Reviewed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reviewed
}

func (s *Session) Stats() *srs.CollectionStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Preview labels the interval rating would give the current card.
func (s *Session) Preview(rating srs.Rating) (string, error) {
	card, ok := s.Current()
	if !ok {
		return "", ErrNoCard
	}
	m, err := srs.Estimate(s.policy, card.Interval, card.EaseFactor, card.Status, rating)
	if err != nil {
		return "", err
	}
	return srs.FormatInterval(m), nil
}

// Rate submits rating for the current card. Only one submission runs at a
// time and a failed submission is never retried here.
func (s *Session) Rate(ctx context.Context, rating srs.Rating) (srs.ReviewRecord, error) {
	if !rating.IsValid() {
		return srs.ReviewRecord{}, fmt.Errorf("%w: got %d", srs.ErrInvalidRating, int(rating))
	}
	s.mu.Lock()
	switch {
	case s.busy:
		s.mu.Unlock()
		return srs.ReviewRecord{}, ErrBusy
	case s.index >= len(s.cards):
		s.mu.Unlock()
		return srs.ReviewRecord{}, ErrNoCard
	case !s.flipped:
		s.mu.Unlock()
		return srs.ReviewRecord{}, ErrNotFlipped
	}
	s.busy = true
	index := s.index
	card := s.cards[index]
	s.mu.Unlock()

	updated, err := s.api.SubmitRating(ctx, card.FlashcardID, rating)

	s.mu.Lock()
	s.busy = false
	switch {
	case errors.Is(err, ErrNotDue):
		s.advance(index)
		s.mu.Unlock()
		log.Ctx(ctx).Warn().Str("flashcard", card.FlashcardID.String()).Msg("rating-already-recorded")
		return srs.ReviewRecord{}, ErrAlreadyRecorded
	case err != nil:
		s.mu.Unlock()
		log.Ctx(ctx).Err(err).Str("flashcard", card.FlashcardID.String()).Msg("rating-failed")
		return srs.ReviewRecord{}, &SubmitError{Rating: rating, Err: err}
	}
	if updated.Flashcard == nil {
		updated.Flashcard = card.Flashcard
	}
	s.cards[index] = updated
	s.advance(index)
	s.reviewed++
	s.mu.Unlock()

	if stats := s.fetchStats(ctx); stats != nil {
		s.mu.Lock()
		s.stats = stats
		s.mu.Unlock()
	}
	return updated, nil
}

// advance moves past the card at index unless a reload replaced the list
// while the submission was in flight.
func (s *Session) advance(index int) {
	if s.index == index {
		s.index++
		s.flipped = false
	}
}
