package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/cardvault/internal/srs"
)

var t0 = time.Date(2024, 9, 22, 23, 0, 0, 0, time.UTC)

// fakeAPI schedules locally with the real scheduler.
type fakeAPI struct {
	mu        sync.Mutex
	policy    srs.Policy
	records   map[uuid.UUID]srs.ReviewRecord
	order     []uuid.UUID
	now       time.Time
	dueErr    error
	statsErr  error
	submitErr error
	submits   int
	block     chan struct{}
}

func newFakeAPI(n int) *fakeAPI {
	f := &fakeAPI{policy: srs.DefaultPolicy(), records: map[uuid.UUID]srs.ReviewRecord{}, now: t0.Add(time.Minute)}
	for i := 0; i < n; i++ {
		fid := uuid.New()
		r := srs.NewRecord(f.policy, "u1", fid, t0.Add(time.Duration(i)*time.Second))
		r.Flashcard = &srs.Flashcard{ID: fid, Question: "q", Answer: "a"}
		f.records[fid] = r
		f.order = append(f.order, fid)
	}
	return f
}

func (f *fakeAPI) StartSession(context.Context, uuid.UUID) (int, error) { return 0, nil }

func (f *fakeAPI) DueCards(context.Context, uuid.UUID) ([]srs.ReviewRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dueErr != nil {
		return nil, f.dueErr
	}
	var out []srs.ReviewRecord
	// reverse insertion order; the session sorts
	for i := len(f.order) - 1; i >= 0; i-- {
		r := f.records[f.order[i]]
		if srs.IsDue(r, f.now) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAPI) Stats(context.Context, uuid.UUID) (*srs.CollectionStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	var all []srs.ReviewRecord
	for _, id := range f.order {
		all = append(all, f.records[id])
	}
	st := srs.Aggregate(all, f.now, f.policy)
	return &st, nil
}

func (f *fakeAPI) SubmitRating(_ context.Context, fid uuid.UUID, rating srs.Rating) (srs.ReviewRecord, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submits++
	if f.submitErr != nil {
		return srs.ReviewRecord{}, f.submitErr
	}
	r := f.records[fid]
	if !srs.IsDue(r, f.now) {
		return srs.ReviewRecord{}, ErrNotDue
	}
	next, err := srs.Schedule(f.policy, r, rating, f.now)
	if err != nil {
		return srs.ReviewRecord{}, err
	}
	f.records[fid] = next
	return next, nil
}

func newSession(api *fakeAPI) *Session {
	return New(api, srs.DefaultPolicy(), uuid.New())
}

func TestLoadSortsDueCards(t *testing.T) {
	api := newFakeAPI(3)
	s := newSession(api)
	require.NoError(t, s.Start(context.Background()))

	assert.Equal(t, 3, s.Remaining())
	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, api.order[0], cur.FlashcardID)
	require.NotNil(t, s.Stats())
	assert.Equal(t, 3, s.Stats().NewCards)
}

func TestLoadDegradesOnReadFailure(t *testing.T) {
	api := newFakeAPI(2)
	api.dueErr = errors.New("unavailable")
	api.statsErr = errors.New("unavailable")
	s := newSession(api)
	s.Load(context.Background())

	assert.True(t, s.Complete())
	assert.Nil(t, s.Stats())
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestRateRequiresFlip(t *testing.T) {
	api := newFakeAPI(1)
	s := newSession(api)
	s.Load(context.Background())

	_, err := s.Rate(context.Background(), srs.Good)
	assert.ErrorIs(t, err, ErrNotFlipped)
	_, err = s.Rate(context.Background(), srs.Rating(7))
	assert.ErrorIs(t, err, srs.ErrInvalidRating)
	assert.Zero(t, api.submits)
}

func TestRateAdvances(t *testing.T) {
	api := newFakeAPI(2)
	s := newSession(api)
	ctx := context.Background()
	s.Load(ctx)

	s.Flip()
	assert.True(t, s.Flipped())
	r, err := s.Rate(ctx, srs.Easy)
	require.NoError(t, err)
	assert.Equal(t, srs.StatusReview, r.Status)
	assert.NotNil(t, r.Flashcard)
	assert.False(t, s.Flipped())
	assert.Equal(t, 1, s.Reviewed())
	assert.Equal(t, 1, s.Remaining())
	assert.Equal(t, 1, s.Stats().ReviewCards)

	s.Flip()
	_, err = s.Rate(ctx, srs.Again)
	require.NoError(t, err)
	assert.True(t, s.Complete())
	_, err = s.Rate(ctx, srs.Good)
	assert.ErrorIs(t, err, ErrNoCard)
}

func TestRateFailureDoesNotAdvance(t *testing.T) {
	api := newFakeAPI(1)
	s := newSession(api)
	ctx := context.Background()
	s.Load(ctx)
	s.Flip()

	api.submitErr = errors.New("connection reset")
	_, err := s.Rate(ctx, srs.Good)
	var serr *SubmitError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, srs.Good, serr.Rating)
	assert.Equal(t, 1, api.submits)
	assert.Equal(t, 0, s.Reviewed())
	assert.True(t, s.Flipped())
	assert.Equal(t, 1, s.Remaining())

	api.submitErr = nil
	_, err = s.Rate(ctx, srs.Good)
	require.NoError(t, err)
	assert.Equal(t, 2, api.submits)
	assert.True(t, s.Complete())
}

func TestRateAfterLostResponse(t *testing.T) {
	api := newFakeAPI(1)
	s := newSession(api)
	ctx := context.Background()
	s.Load(ctx)
	s.Flip()

	// The first attempt lands on the server but its response is lost.
	cur, _ := s.Current()
	_, err := api.SubmitRating(ctx, cur.FlashcardID, srs.Good)
	require.NoError(t, err)

	_, err = s.Rate(ctx, srs.Good)
	assert.ErrorIs(t, err, ErrAlreadyRecorded)
	assert.True(t, s.Complete())
	assert.Equal(t, 0, s.Reviewed())
	assert.Equal(t, 1, api.records[cur.FlashcardID].ReviewCount)
}

func TestRateIsSerialized(t *testing.T) {
	api := newFakeAPI(2)
	api.block = make(chan struct{})
	s := newSession(api)
	ctx := context.Background()
	s.Load(ctx)
	s.Flip()

	done := make(chan error)
	go func() {
		_, err := s.Rate(ctx, srs.Good)
		done <- err
	}()
	require.Eventually(t, s.Busy, time.Second, time.Millisecond)

	_, err := s.Rate(ctx, srs.Good)
	assert.ErrorIs(t, err, ErrBusy)

	close(api.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, api.submits)
	assert.Equal(t, 1, s.Remaining())
}

func TestPreview(t *testing.T) {
	api := newFakeAPI(1)
	s := newSession(api)
	_, err := s.Preview(srs.Good)
	assert.ErrorIs(t, err, ErrNoCard)

	s.Load(context.Background())
	want := map[srs.Rating]string{srs.Again: "1m", srs.Hard: "1m", srs.Good: "1d", srs.Easy: "4d"}
	for rating, label := range want {
		got, err := s.Preview(rating)
		require.NoError(t, err)
		assert.Equal(t, label, got, rating.String())
	}
	assert.Zero(t, api.submits)
}

func TestReset(t *testing.T) {
	api := newFakeAPI(2)
	s := newSession(api)
	ctx := context.Background()
	s.Load(ctx)
	s.Flip()
	_, err := s.Rate(ctx, srs.Again)
	require.NoError(t, err)

	api.now = t0.Add(2 * time.Minute)
	s.Reset(ctx)
	assert.Equal(t, 0, s.Reviewed())
	assert.Equal(t, 2, s.Remaining())
	cur, _ := s.Current()
	assert.Equal(t, api.order[1], cur.FlashcardID)
}
