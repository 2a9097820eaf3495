package reviewserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/domino14/cardvault/api/rpc/cardvault"
	"github.com/domino14/cardvault/api/rpc/cardvault/cardvaultconnect"
	"github.com/domino14/cardvault/internal/auth"
	"github.com/domino14/cardvault/internal/srs"
)

// headerUser trusts an X-User header. Only for tests.
func headerUser() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if u := req.Header().Get("X-User"); u != "" {
				ctx = auth.StoreUserInContext(ctx, u, u)
			}
			return next(ctx, req)
		}
	}
}

func TestOverHTTP(t *testing.T) {
	f := newFixture(t, 2)
	path, handler := cardvaultconnect.NewReviewServiceHandler(f.s, connect.WithInterceptors(headerUser()))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := cardvaultconnect.NewReviewServiceClient(ts.Client(), ts.URL)
	ctx := context.Background()
	withUser := func(req connect.AnyRequest) {
		req.Header().Set("X-User", "cesar")
	}

	startReq := connect.NewRequest(&pb.StartSessionRequest{CollectionId: f.coll.ID.String()})
	_, err := client.StartSession(ctx, startReq)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	withUser(startReq)
	started, err := client.StartSession(ctx, startReq)
	require.NoError(t, err)
	assert.EqualValues(t, 2, started.Msg.Created)

	dueReq := connect.NewRequest(&pb.GetDueCardsRequest{CollectionId: f.coll.ID.String()})
	withUser(dueReq)
	due, err := client.GetDueCards(ctx, dueReq)
	require.NoError(t, err)
	require.Len(t, due.Msg.Reviews, 2)
	assert.Equal(t, "capital of A", due.Msg.Reviews[0].Flashcard.Question)

	subReq := connect.NewRequest(&pb.SubmitReviewRequest{FlashcardId: due.Msg.Reviews[0].FlashcardId, Rating: int32(srs.Good)})
	withUser(subReq)
	sub, err := client.SubmitReview(ctx, subReq)
	require.NoError(t, err)
	assert.Equal(t, "learning", sub.Msg.Review.Status)
	assert.True(t, sub.Msg.Review.DueAt.AsTime().Equal(f.clock.fakenow.Add(time.Minute)))

	_, err = client.SubmitReview(ctx, subReq)
	require.Error(t, err)
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))
	var cerr *connect.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "card is not due yet", cerr.Message())

	prevReq := connect.NewRequest(&pb.PreviewIntervalsRequest{FlashcardId: due.Msg.Reviews[1].FlashcardId})
	withUser(prevReq)
	prev, err := client.PreviewIntervals(ctx, prevReq)
	require.NoError(t, err)
	require.Len(t, prev.Msg.Previews, 4)
	assert.Equal(t, "4d", prev.Msg.Previews[3].Display)
}
