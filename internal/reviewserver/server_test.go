package reviewserver

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	pb "github.com/domino14/cardvault/api/rpc/cardvault"
	"github.com/domino14/cardvault/config"
	"github.com/domino14/cardvault/internal/auth"
	"github.com/domino14/cardvault/internal/readcache"
	"github.com/domino14/cardvault/internal/srs"
	"github.com/domino14/cardvault/internal/stores"
	"github.com/domino14/cardvault/internal/stores/sqlitestore"
)

type FakeNower struct{ fakenow time.Time }

func (f *FakeNower) Now() time.Time {
	return f.fakenow
}

func (f *FakeNower) advance(d time.Duration) {
	f.fakenow = f.fakenow.Add(d)
}

func ctxForTests(userID string) context.Context {
	ctx := context.Background()
	ctx = log.Logger.WithContext(ctx)
	return auth.StoreUserInContext(ctx, userID, userID)
}

type fixture struct {
	s     *Server
	store stores.ReviewStore
	clock *FakeNower
	coll  stores.Collection
	cards []srs.Flashcard
}

func newFixture(t *testing.T, ncards int) *fixture {
	t.Helper()
	store, err := sqlitestore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{Policy: srs.DefaultPolicy(), MaxDueCards: 100}
	cache := readcache.NewMemory(time.Hour)
	s := NewServer(cfg, store, cache)
	clock := &FakeNower{fakenow: time.Date(2024, 9, 22, 23, 0, 0, 0, time.UTC)}
	s.Nower = clock

	ctx := context.Background()
	coll, err := store.CreateCollection(ctx, "cesar", "capitals", clock.fakenow)
	require.NoError(t, err)
	var nf []stores.NewFlashcard
	for i := 0; i < ncards; i++ {
		nf = append(nf, stores.NewFlashcard{Question: "capital of " + string(rune('A'+i)), Answer: "?"})
	}
	cards, err := store.AddFlashcards(ctx, coll.ID, nf, clock.fakenow)
	require.NoError(t, err)
	return &fixture{s: s, store: store, clock: clock, coll: coll, cards: cards}
}

func (f *fixture) submit(ctx context.Context, card srs.Flashcard, rating srs.Rating) (*pb.Review, error) {
	res, err := f.s.SubmitReview(ctx, connect.NewRequest(&pb.SubmitReviewRequest{
		FlashcardId: card.ID.String(),
		Rating:      int32(rating),
	}))
	if err != nil {
		return nil, err
	}
	return res.Msg.Review, nil
}

func (f *fixture) due(t *testing.T, ctx context.Context) []*pb.Review {
	t.Helper()
	res, err := f.s.GetDueCards(ctx, connect.NewRequest(&pb.GetDueCardsRequest{
		CollectionId: f.coll.ID.String(),
	}))
	require.NoError(t, err)
	return res.Msg.Reviews
}

func TestUnauthenticated(t *testing.T) {
	f := newFixture(t, 1)
	_, err := f.s.StartSession(context.Background(), connect.NewRequest(&pb.StartSessionRequest{
		CollectionId: f.coll.ID.String(),
	}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = f.submit(context.Background(), f.cards[0], srs.Good)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestStartSessionIsIncremental(t *testing.T) {
	ctx := ctxForTests("cesar")
	f := newFixture(t, 3)

	res, err := f.s.StartSession(ctx, connect.NewRequest(&pb.StartSessionRequest{CollectionId: f.coll.ID.String()}))
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.Msg.Created)

	res, err = f.s.StartSession(ctx, connect.NewRequest(&pb.StartSessionRequest{CollectionId: f.coll.ID.String()}))
	require.NoError(t, err)
	assert.Zero(t, res.Msg.Created)

	due := f.due(t, ctx)
	require.Len(t, due, 3)
	for _, r := range due {
		assert.Equal(t, "new", r.Status)
		assert.Equal(t, 2.5, r.EaseFactor)
		require.NotNil(t, r.Flashcard)
	}
}

func TestNoAccess(t *testing.T) {
	f := newFixture(t, 1)
	ctx := ctxForTests("mallory")

	_, err := f.s.StartSession(ctx, connect.NewRequest(&pb.StartSessionRequest{CollectionId: f.coll.ID.String()}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
	_, err = f.submit(ctx, f.cards[0], srs.Good)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = f.s.StartSession(ctx, connect.NewRequest(&pb.StartSessionRequest{CollectionId: "not-a-uuid"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	require.NoError(t, f.store.AddCollaborator(context.Background(), f.coll.ID, "mallory", f.clock.fakenow))
	_, err = f.submit(ctx, f.cards[0], srs.Good)
	assert.NoError(t, err)
}

func TestInvalidRatingChangesNothing(t *testing.T) {
	ctx := ctxForTests("cesar")
	f := newFixture(t, 1)

	for _, rating := range []int32{-1, 4, 42} {
		_, err := f.s.SubmitReview(ctx, connect.NewRequest(&pb.SubmitReviewRequest{
			FlashcardId: f.cards[0].ID.String(),
			Rating:      rating,
		}))
		assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	}
	_, err := f.s.GetReview(ctx, connect.NewRequest(&pb.GetReviewRequest{FlashcardId: f.cards[0].ID.String()}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestLearningLadderOverRPC(t *testing.T) {
	ctx := ctxForTests("cesar")
	f := newFixture(t, 1)
	card := f.cards[0]
	_, err := f.s.StartSession(ctx, connect.NewRequest(&pb.StartSessionRequest{CollectionId: f.coll.ID.String()}))
	require.NoError(t, err)

	r, err := f.submit(ctx, card, srs.Good)
	require.NoError(t, err)
	assert.Equal(t, "learning", r.Status)
	assert.EqualValues(t, 1, r.Interval)
	assert.True(t, f.clock.fakenow.Add(time.Minute).Equal(r.DueAt.AsTime()))

	// A blind retry of the same submission is refused.
	_, err = f.submit(ctx, card, srs.Good)
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))
	assert.Empty(t, f.due(t, ctx))

	f.clock.advance(time.Minute)
	r, err = f.submit(ctx, card, srs.Good)
	require.NoError(t, err)
	assert.Equal(t, "learning", r.Status)
	assert.EqualValues(t, 10, r.Interval)
	assert.EqualValues(t, 2, r.ReviewCount)

	f.clock.advance(10 * time.Minute)
	r, err = f.submit(ctx, card, srs.Good)
	require.NoError(t, err)
	assert.Equal(t, "review", r.Status)
	assert.EqualValues(t, 1440, r.Interval)

	f.clock.advance(24 * time.Hour)
	r, err = f.submit(ctx, card, srs.Again)
	require.NoError(t, err)
	assert.Equal(t, "relearning", r.Status)
	assert.EqualValues(t, 10, r.Interval)
	assert.EqualValues(t, 1, r.LapseCount)
	assert.InDelta(t, 2.3, r.EaseFactor, 1e-9)

	got, err := f.s.GetReview(ctx, connect.NewRequest(&pb.GetReviewRequest{FlashcardId: card.ID.String()}))
	require.NoError(t, err)
	assert.Equal(t, r.Id, got.Msg.Id)
	assert.EqualValues(t, 4, got.Msg.ReviewCount)
	require.NotNil(t, got.Msg.LastReviewedAt)
	assert.True(t, got.Msg.LastReviewedAt.AsTime().Add(10*time.Minute).Equal(got.Msg.DueAt.AsTime()))
}

func TestSubmitCreatesMissingReview(t *testing.T) {
	ctx := ctxForTests("cesar")
	f := newFixture(t, 1)

	r, err := f.submit(ctx, f.cards[0], srs.Easy)
	require.NoError(t, err)
	assert.Equal(t, "review", r.Status)
	assert.EqualValues(t, 5760, r.Interval)
	assert.EqualValues(t, 1, r.ReviewCount)
}

func TestDueCacheIsInvalidatedBySubmit(t *testing.T) {
	ctx := ctxForTests("cesar")
	f := newFixture(t, 2)
	_, err := f.s.StartSession(ctx, connect.NewRequest(&pb.StartSessionRequest{CollectionId: f.coll.ID.String()}))
	require.NoError(t, err)

	due := f.due(t, ctx)
	require.Len(t, due, 2)
	stats, err := f.s.GetCollectionStats(ctx, connect.NewRequest(&pb.GetCollectionStatsRequest{CollectionId: f.coll.ID.String()}))
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Msg.NewCards)

	_, err = f.submit(ctx, f.cards[0], srs.Easy)
	require.NoError(t, err)

	due = f.due(t, ctx)
	require.Len(t, due, 1)
	assert.Equal(t, f.cards[1].ID.String(), due[0].FlashcardId)

	stats, err = f.s.GetCollectionStats(ctx, connect.NewRequest(&pb.GetCollectionStatsRequest{CollectionId: f.coll.ID.String()}))
	require.NoError(t, err)
	assert.True(t, proto.Equal(&pb.CollectionStats{
		TotalCards:   2,
		NewCards:     1,
		ReviewCards:  1,
		DueCards:     1,
		AverageEase:  2.5,
		TotalReviews: 1,
	}, stats.Msg), stats.Msg.String())
}

func TestGetDueCardsBreaksTiesByCreatedAt(t *testing.T) {
	ctx := ctxForTests("cesar")
	f := newFixture(t, 2)
	tie := f.clock.fakenow.Add(-3 * time.Hour)
	pin := func(cur srs.ReviewRecord) (srs.ReviewRecord, error) {
		cur.DueAt = tie
		return cur, nil
	}

	// The record created second has the larger id and the earlier created_at.
	late, err := f.store.ApplyReview(ctx, f.s.Policy, "cesar", f.cards[0].ID, f.clock.fakenow.Add(-time.Hour), pin)
	require.NoError(t, err)
	early, err := f.store.ApplyReview(ctx, f.s.Policy, "cesar", f.cards[1].ID, f.clock.fakenow.Add(-2*time.Hour), pin)
	require.NoError(t, err)
	require.Greater(t, early.ID.String(), late.ID.String())

	due := f.due(t, ctx)
	require.Len(t, due, 2)
	assert.Equal(t, early.ID.String(), due[0].Id)
	assert.Equal(t, late.ID.String(), due[1].Id)
	assert.True(t, due[0].CreatedAt.AsTime().Before(due[1].CreatedAt.AsTime()))

	res, err := f.s.GetDueCards(ctx, connect.NewRequest(&pb.GetDueCardsRequest{CollectionId: f.coll.ID.String(), Limit: 1}))
	require.NoError(t, err)
	require.Len(t, res.Msg.Reviews, 1)
	assert.Equal(t, early.ID.String(), res.Msg.Reviews[0].Id)
}

func TestGetDueCardsLimit(t *testing.T) {
	ctx := ctxForTests("cesar")
	f := newFixture(t, 5)
	f.s.MaxDueCards = 3
	_, err := f.s.StartSession(ctx, connect.NewRequest(&pb.StartSessionRequest{CollectionId: f.coll.ID.String()}))
	require.NoError(t, err)

	assert.Len(t, f.due(t, ctx), 3)
	res, err := f.s.GetDueCards(ctx, connect.NewRequest(&pb.GetDueCardsRequest{CollectionId: f.coll.ID.String(), Limit: 2}))
	require.NoError(t, err)
	assert.Len(t, res.Msg.Reviews, 2)

	_, err = f.s.GetDueCards(ctx, connect.NewRequest(&pb.GetDueCardsRequest{CollectionId: f.coll.ID.String(), Limit: -1}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestClearProgress(t *testing.T) {
	ctx := ctxForTests("cesar")
	f := newFixture(t, 3)
	_, err := f.s.StartSession(ctx, connect.NewRequest(&pb.StartSessionRequest{CollectionId: f.coll.ID.String()}))
	require.NoError(t, err)
	_, err = f.submit(ctx, f.cards[0], srs.Good)
	require.NoError(t, err)

	res, err := f.s.ClearProgress(ctx, connect.NewRequest(&pb.ClearProgressRequest{CollectionId: f.coll.ID.String()}))
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.Msg.Deleted)

	all, err := f.s.GetAllReviews(ctx, connect.NewRequest(&pb.GetAllReviewsRequest{CollectionId: f.coll.ID.String()}))
	require.NoError(t, err)
	assert.Empty(t, all.Msg.Reviews)
	stats, err := f.s.GetCollectionStats(ctx, connect.NewRequest(&pb.GetCollectionStatsRequest{CollectionId: f.coll.ID.String()}))
	require.NoError(t, err)
	assert.True(t, proto.Equal(&pb.CollectionStats{}, stats.Msg), stats.Msg.String())
}

func TestPreviewIntervals(t *testing.T) {
	ctx := ctxForTests("cesar")
	f := newFixture(t, 1)
	req := connect.NewRequest(&pb.PreviewIntervalsRequest{FlashcardId: f.cards[0].ID.String()})

	res, err := f.s.PreviewIntervals(ctx, req)
	require.NoError(t, err)
	want := []*pb.IntervalPreview{
		{Rating: 0, Label: "Again", Minutes: 1, Display: "1m"},
		{Rating: 1, Label: "Hard", Minutes: 1, Display: "1m"},
		{Rating: 2, Label: "Good", Minutes: 1440, Display: "1d"},
		{Rating: 3, Label: "Easy", Minutes: 5760, Display: "4d"},
	}
	require.Len(t, res.Msg.Previews, len(want))
	for i := range want {
		assert.True(t, proto.Equal(want[i], res.Msg.Previews[i]), res.Msg.Previews[i].String())
	}

	// Previewing never changes state.
	_, err = f.s.GetReview(ctx, connect.NewRequest(&pb.GetReviewRequest{FlashcardId: f.cards[0].ID.String()}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = f.submit(ctx, f.cards[0], srs.Easy)
	require.NoError(t, err)
	res, err = f.s.PreviewIntervals(ctx, req)
	require.NoError(t, err)
	// review card at 5760 minutes with ease 2.5
	assert.EqualValues(t, 10, res.Msg.Previews[0].Minutes)
	assert.EqualValues(t, 6912, res.Msg.Previews[1].Minutes)
	assert.EqualValues(t, 14400, res.Msg.Previews[2].Minutes)
	assert.EqualValues(t, 18720, res.Msg.Previews[3].Minutes)
	assert.Equal(t, "13d", res.Msg.Previews[3].Display)
}
