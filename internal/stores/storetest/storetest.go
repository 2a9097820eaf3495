// Package storetest holds behavior tests shared by every ReviewStore
// implementation.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/cardvault/internal/srs"
	"github.com/domino14/cardvault/internal/stores"
)

// Opener returns an empty, migrated store for one test.
type Opener func(t *testing.T) stores.ReviewStore

var baseTime = time.Date(2024, 9, 22, 23, 0, 0, 0, time.UTC)

func Run(t *testing.T, open Opener) {
	tests := []struct {
		name string
		fn   func(*testing.T, stores.ReviewStore)
	}{
		{"CollectionAccess", testCollectionAccess},
		{"EnsureReviewsIncremental", testEnsureReviewsIncremental},
		{"ListDueOrdering", testListDueOrdering},
		{"ListDueBreaksTiesByCreatedAt", testListDueBreaksTiesByCreatedAt},
		{"ApplyReviewImplicitCreate", testApplyReviewImplicitCreate},
		{"ApplyReviewAbortsOnError", testApplyReviewAbortsOnError},
		{"ApplyReviewConcurrent", testApplyReviewConcurrent},
		{"DeleteReviews", testDeleteReviews},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := open(t)
			t.Cleanup(func() { s.Close() })
			tc.fn(t, s)
		})
	}
}

func seedCollection(t *testing.T, s stores.ReviewStore, owner string, n int) (stores.Collection, []srs.Flashcard) {
	t.Helper()
	ctx := context.Background()
	c, err := s.CreateCollection(ctx, owner, "spanish verbs", baseTime)
	require.NoError(t, err)
	cards := make([]stores.NewFlashcard, n)
	for i := range cards {
		cards[i] = stores.NewFlashcard{Question: fmt.Sprintf("q%d", i), Answer: fmt.Sprintf("a%d", i)}
	}
	fcs, err := s.AddFlashcards(ctx, c.ID, cards, baseTime)
	require.NoError(t, err)
	return c, fcs
}

func schedule(p srs.Policy, rating srs.Rating, now time.Time) stores.ApplyFunc {
	return func(cur srs.ReviewRecord) (srs.ReviewRecord, error) {
		return srs.Schedule(p, cur, rating, now)
	}
}

func testCollectionAccess(t *testing.T, s stores.ReviewStore) {
	ctx := context.Background()
	c, fcs := seedCollection(t, s, "owner", 1)

	assert.NoError(t, s.CheckCollectionAccess(ctx, "owner", c.ID))
	assert.ErrorIs(t, s.CheckCollectionAccess(ctx, "stranger", c.ID), stores.ErrNotFound)
	assert.ErrorIs(t, s.CheckCollectionAccess(ctx, "owner", uuid.New()), stores.ErrNotFound)

	require.NoError(t, s.AddCollaborator(ctx, c.ID, "friend", baseTime))
	require.NoError(t, s.AddCollaborator(ctx, c.ID, "friend", baseTime))
	assert.NoError(t, s.CheckCollectionAccess(ctx, "friend", c.ID))

	cid, err := s.FlashcardCollection(ctx, fcs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, cid)
	_, err = s.FlashcardCollection(ctx, uuid.New())
	assert.ErrorIs(t, err, stores.ErrNotFound)
}

func testEnsureReviewsIncremental(t *testing.T, s stores.ReviewStore) {
	ctx := context.Background()
	p := srs.DefaultPolicy()
	c, fcs := seedCollection(t, s, "owner", 3)

	n, err := s.EnsureReviews(ctx, p, "owner", c.ID, baseTime)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = s.EnsureReviews(ctx, p, "owner", c.ID, baseTime.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// Progress on one card survives a later session start.
	reviewed, err := s.ApplyReview(ctx, p, "owner", fcs[0].ID, baseTime, schedule(p, srs.Easy, baseTime))
	require.NoError(t, err)

	_, err = s.AddFlashcards(ctx, c.ID, []stores.NewFlashcard{{Question: "q3", Answer: "a3"}, {Question: "q4", Answer: "a4"}}, baseTime)
	require.NoError(t, err)
	n, err = s.EnsureReviews(ctx, p, "owner", c.ID, baseTime.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := s.GetReview(ctx, "owner", fcs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, srs.StatusReview, got.Status)
	assert.Equal(t, 1, got.ReviewCount)
	assert.True(t, reviewed.DueAt.Equal(got.DueAt))

	all, err := s.ListReviews(ctx, "owner", c.ID)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	for _, r := range all {
		require.NotNil(t, r.Flashcard)
		assert.Equal(t, c.ID, r.Flashcard.CollectionID)
		assert.Equal(t, "basic", r.Flashcard.Type)
		if r.FlashcardID != fcs[0].ID {
			assert.Equal(t, srs.StatusNew, r.Status)
			assert.Equal(t, p.StartingEase, r.EaseFactor)
			assert.Nil(t, r.LastReviewedAt)
		}
	}

	// Another learner has separate progress.
	n, err = s.EnsureReviews(ctx, p, "friend", c.ID, baseTime)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func testListDueOrdering(t *testing.T, s stores.ReviewStore) {
	ctx := context.Background()
	p := srs.DefaultPolicy()
	c, fcs := seedCollection(t, s, "owner", 6)
	_, err := s.EnsureReviews(ctx, p, "owner", c.ID, baseTime)
	require.NoError(t, err)

	// Push some cards into the future by different amounts.
	ratings := map[int]srs.Rating{1: srs.Again, 3: srs.Good, 4: srs.Easy}
	for i, rating := range ratings {
		_, err := s.ApplyReview(ctx, p, "owner", fcs[i].ID, baseTime, schedule(p, rating, baseTime))
		require.NoError(t, err)
	}

	due, err := s.ListDue(ctx, "owner", c.ID, baseTime, 0)
	require.NoError(t, err)
	assert.Len(t, due, 3)
	for _, r := range due {
		assert.False(t, r.DueAt.After(baseTime))
	}

	later := baseTime.Add(2 * time.Minute)
	due, err = s.ListDue(ctx, "owner", c.ID, later, 0)
	require.NoError(t, err)
	require.Len(t, due, 6-1)
	sorted := append([]srs.ReviewRecord(nil), due...)
	srs.SortDue(sorted)
	for i := range due {
		assert.Equal(t, sorted[i].ID, due[i].ID)
		assert.False(t, due[i].DueAt.After(later))
	}
	// card 4 was Easy: four days out.
	for _, r := range due {
		assert.NotEqual(t, fcs[4].ID, r.FlashcardID)
	}

	limited, err := s.ListDue(ctx, "owner", c.ID, later, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, due[0].ID, limited[0].ID)
	assert.Equal(t, due[1].ID, limited[1].ID)

	none, err := s.ListDue(ctx, "stranger", c.ID, later, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

// dueAt pins a record's due time without otherwise changing it.
func dueAt(at time.Time) stores.ApplyFunc {
	return func(cur srs.ReviewRecord) (srs.ReviewRecord, error) {
		cur.DueAt = at
		return cur, nil
	}
}

func testListDueBreaksTiesByCreatedAt(t *testing.T, s stores.ReviewStore) {
	ctx := context.Background()
	p := srs.DefaultPolicy()
	c, fcs := seedCollection(t, s, "owner", 2)
	tie := baseTime.Add(-time.Hour)

	// Created in this order, the second record gets the larger id but the
	// earlier created_at.
	late, err := s.ApplyReview(ctx, p, "owner", fcs[0].ID, baseTime.Add(time.Hour), dueAt(tie))
	require.NoError(t, err)
	early, err := s.ApplyReview(ctx, p, "owner", fcs[1].ID, baseTime, dueAt(tie))
	require.NoError(t, err)
	require.Greater(t, early.ID.String(), late.ID.String())
	require.True(t, early.CreatedAt.Before(late.CreatedAt))

	due, err := s.ListDue(ctx, "owner", c.ID, baseTime.Add(2*time.Hour), 0)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.True(t, due[0].DueAt.Equal(due[1].DueAt))
	assert.Equal(t, early.ID, due[0].ID)
	assert.Equal(t, late.ID, due[1].ID)

	first, err := s.ListDue(ctx, "owner", c.ID, baseTime.Add(2*time.Hour), 1)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, early.ID, first[0].ID)
}

func testApplyReviewImplicitCreate(t *testing.T, s stores.ReviewStore) {
	ctx := context.Background()
	p := srs.DefaultPolicy()
	_, fcs := seedCollection(t, s, "owner", 1)

	_, err := s.GetReview(ctx, "owner", fcs[0].ID)
	assert.ErrorIs(t, err, stores.ErrNotFound)

	r, err := s.ApplyReview(ctx, p, "owner", fcs[0].ID, baseTime, schedule(p, srs.Good, baseTime))
	require.NoError(t, err)
	assert.Equal(t, srs.StatusLearning, r.Status)
	assert.Equal(t, 1, r.ReviewCount)
	assert.Equal(t, 1, r.Interval)

	got, err := s.GetReview(ctx, "owner", fcs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, r.Status, got.Status)
	assert.Equal(t, r.Interval, got.Interval)
	assert.Equal(t, r.ReviewCount, got.ReviewCount)
	assert.True(t, r.DueAt.Equal(got.DueAt))
	require.NotNil(t, got.LastReviewedAt)
	assert.True(t, got.DueAt.Equal(got.LastReviewedAt.Add(time.Duration(got.Interval)*time.Minute)))
	assert.Equal(t, "q0", got.Flashcard.Question)
}

func testApplyReviewAbortsOnError(t *testing.T, s stores.ReviewStore) {
	ctx := context.Background()
	p := srs.DefaultPolicy()
	c, fcs := seedCollection(t, s, "owner", 1)
	_, err := s.EnsureReviews(ctx, p, "owner", c.ID, baseTime)
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = s.ApplyReview(ctx, p, "owner", fcs[0].ID, baseTime, func(cur srs.ReviewRecord) (srs.ReviewRecord, error) {
		return cur, boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.GetReview(ctx, "owner", fcs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ReviewCount)
	assert.Equal(t, srs.StatusNew, got.Status)
}

func testApplyReviewConcurrent(t *testing.T, s stores.ReviewStore) {
	ctx := context.Background()
	p := srs.DefaultPolicy()
	c, fcs := seedCollection(t, s, "owner", 1)
	_, err := s.EnsureReviews(ctx, p, "owner", c.ID, baseTime)
	require.NoError(t, err)

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			now := baseTime.Add(time.Duration(i) * time.Second)
			_, err := s.ApplyReview(ctx, p, "owner", fcs[0].ID, now, schedule(p, srs.Again, now))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	applied := 0
	for err := range errs {
		if err == nil {
			applied++
			continue
		}
		assert.ErrorIs(t, err, stores.ErrConflict)
	}
	got, err := s.GetReview(ctx, "owner", fcs[0].ID)
	require.NoError(t, err)
	// Every accepted submission is counted exactly once.
	assert.Equal(t, applied, got.ReviewCount)
	assert.Positive(t, applied)
}

func testDeleteReviews(t *testing.T, s stores.ReviewStore) {
	ctx := context.Background()
	p := srs.DefaultPolicy()
	c1, _ := seedCollection(t, s, "owner", 3)
	c2, _ := seedCollection(t, s, "owner", 2)
	require.NoError(t, s.AddCollaborator(ctx, c1.ID, "friend", baseTime))
	for _, ensure := range []struct {
		user string
		c    uuid.UUID
	}{{"owner", c1.ID}, {"owner", c2.ID}, {"friend", c1.ID}} {
		_, err := s.EnsureReviews(ctx, p, ensure.user, ensure.c, baseTime)
		require.NoError(t, err)
	}

	n, err := s.DeleteReviews(ctx, "owner", c1.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	left, err := s.ListReviews(ctx, "owner", c1.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
	stats := srs.Aggregate(left, baseTime, p)
	assert.Equal(t, srs.CollectionStats{}, stats)

	left, err = s.ListReviews(ctx, "owner", c2.ID)
	require.NoError(t, err)
	assert.Len(t, left, 2)
	left, err = s.ListReviews(ctx, "friend", c1.ID)
	require.NoError(t, err)
	assert.Len(t, left, 3)

	n, err = s.DeleteReviews(ctx, "owner", c1.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}
