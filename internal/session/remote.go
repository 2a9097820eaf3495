package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"connectrpc.com/connect"
	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/domino14/cardvault/api/rpc/cardvault"
	"github.com/domino14/cardvault/internal/srs"
)

// Client is the subset of cardvaultconnect.ReviewServiceClient the session
// uses.
type Client interface {
	StartSession(context.Context, *connect.Request[pb.StartSessionRequest]) (*connect.Response[pb.StartSessionResponse], error)
	GetDueCards(context.Context, *connect.Request[pb.GetDueCardsRequest]) (*connect.Response[pb.Reviews], error)
	GetCollectionStats(context.Context, *connect.Request[pb.GetCollectionStatsRequest]) (*connect.Response[pb.CollectionStats], error)
	SubmitReview(context.Context, *connect.Request[pb.SubmitReviewRequest]) (*connect.Response[pb.SubmitReviewResponse], error)
}

// Remote adapts a ReviewService client to ReviewAPI. Reads are retried with
// exponential backoff; SubmitRating is sent exactly once.
type Remote struct {
	client   Client
	token    string
	maxTries uint
	backoff  func() backoff.BackOff
}

func NewRemote(client Client, token string) *Remote {
	return &Remote{
		client:   client,
		token:    token,
		maxTries: 4,
		backoff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 200 * time.Millisecond
			b.MaxInterval = 2 * time.Second
			return b
		},
	}
}

func request[T any](r *Remote, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	if r.token != "" {
		req.Header().Set("Authorization", "Bearer "+r.token)
	}
	return req
}

// retryable reports whether a read may succeed if sent again.
func retryable(err error) bool {
	switch connect.CodeOf(err) {
	case connect.CodeInvalidArgument, connect.CodeNotFound, connect.CodeUnauthenticated,
		connect.CodePermissionDenied, connect.CodeFailedPrecondition, connect.CodeUnimplemented,
		connect.CodeCanceled:
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func retryRead[T any](ctx context.Context, r *Remote, name string, op func() (T, error)) (T, error) {
	return backoff.Retry(ctx, func() (T, error) {
		v, err := op()
		if err != nil && !retryable(err) {
			return v, backoff.Permanent(err)
		}
		if err != nil {
			log.Ctx(ctx).Debug().Err(err).Str("call", name).Msg("retrying-read")
		}
		return v, err
	}, backoff.WithBackOff(r.backoff()), backoff.WithMaxTries(r.maxTries))
}

// StartSession is idempotent on the server, so it is retried like a read.
func (r *Remote) StartSession(ctx context.Context, collectionID uuid.UUID) (int, error) {
	return retryRead(ctx, r, "start-session", func() (int, error) {
		res, err := r.client.StartSession(ctx, request(r, &pb.StartSessionRequest{CollectionId: collectionID.String()}))
		if err != nil {
			return 0, err
		}
		return int(res.Msg.Created), nil
	})
}

func (r *Remote) DueCards(ctx context.Context, collectionID uuid.UUID) ([]srs.ReviewRecord, error) {
	return retryRead(ctx, r, "due-cards", func() ([]srs.ReviewRecord, error) {
		res, err := r.client.GetDueCards(ctx, request(r, &pb.GetDueCardsRequest{CollectionId: collectionID.String()}))
		if err != nil {
			return nil, err
		}
		recs, err := fromPBReviews(res.Msg.Reviews)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		return recs, nil
	})
}

func (r *Remote) Stats(ctx context.Context, collectionID uuid.UUID) (*srs.CollectionStats, error) {
	return retryRead(ctx, r, "stats", func() (*srs.CollectionStats, error) {
		res, err := r.client.GetCollectionStats(ctx, request(r, &pb.GetCollectionStatsRequest{CollectionId: collectionID.String()}))
		if err != nil {
			return nil, err
		}
		st := res.Msg
		return &srs.CollectionStats{
			TotalCards:    int(st.TotalCards),
			NewCards:      int(st.NewCards),
			LearningCards: int(st.LearningCards),
			ReviewCards:   int(st.ReviewCards),
			DueCards:      int(st.DueCards),
			AverageEase:   st.AverageEase,
			TotalReviews:  int(st.TotalReviews),
			TotalLapses:   int(st.TotalLapses),
			MatureCards:   int(st.MatureCards),
		}, nil
	})
}

func (r *Remote) SubmitRating(ctx context.Context, flashcardID uuid.UUID, rating srs.Rating) (srs.ReviewRecord, error) {
	res, err := r.client.SubmitReview(ctx, request(r, &pb.SubmitReviewRequest{
		FlashcardId: flashcardID.String(),
		Rating:      int32(rating),
	}))
	if err != nil {
		if connect.CodeOf(err) == connect.CodeFailedPrecondition {
			return srs.ReviewRecord{}, fmt.Errorf("%w: %w", ErrNotDue, err)
		}
		return srs.ReviewRecord{}, err
	}
	if res.Msg.Review == nil {
		return srs.ReviewRecord{}, errors.New("empty review in response")
	}
	return fromPBReview(res.Msg.Review)
}

func fromPBReviews(in []*pb.Review) ([]srs.ReviewRecord, error) {
	out := make([]srs.ReviewRecord, 0, len(in))
	for _, r := range in {
		rec, err := fromPBReview(r)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func fromPBReview(r *pb.Review) (srs.ReviewRecord, error) {
	id, err := uuid.Parse(r.Id)
	if err != nil {
		return srs.ReviewRecord{}, fmt.Errorf("review id: %w", err)
	}
	fid, err := uuid.Parse(r.FlashcardId)
	if err != nil {
		return srs.ReviewRecord{}, fmt.Errorf("flashcard id: %w", err)
	}
	status, err := srs.ParseStatus(r.Status)
	if err != nil {
		return srs.ReviewRecord{}, err
	}
	rec := srs.ReviewRecord{
		ID:           id,
		UserID:       r.UserId,
		FlashcardID:  fid,
		EaseFactor:   r.EaseFactor,
		Interval:     int(r.Interval),
		DueAt:        fromPBTime(r.DueAt),
		Status:       status,
		LearningStep: int(r.LearningStep),
		ReviewCount:  int(r.ReviewCount),
		LapseCount:   int(r.LapseCount),
		CreatedAt:    fromPBTime(r.CreatedAt),
		UpdatedAt:    fromPBTime(r.UpdatedAt),
	}
	if r.LastReviewedAt != nil {
		t := r.LastReviewedAt.AsTime()
		rec.LastReviewedAt = &t
	}
	if fc := r.Flashcard; fc != nil {
		cid, _ := uuid.Parse(fc.CollectionId)
		rec.Flashcard = &srs.Flashcard{
			ID:           fid,
			CollectionID: cid,
			Question:     fc.Question,
			Answer:       fc.Answer,
			Type:         fc.Type,
		}
	}
	return rec, nil
}

// fromPBTime maps an unset timestamp to the zero time rather than the epoch.
func fromPBTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
