// Package reviewserver is the authoritative scheduler behind the
// cardvault.v1.ReviewService RPCs.
package reviewserver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	pb "github.com/domino14/cardvault/api/rpc/cardvault"
	"github.com/domino14/cardvault/config"
	"github.com/domino14/cardvault/internal/auth"
	"github.com/domino14/cardvault/internal/readcache"
	"github.com/domino14/cardvault/internal/srs"
	"github.com/domino14/cardvault/internal/stores"
)

var errNotDue = errors.New("card is not due yet")

type nower interface {
	Now() time.Time
}

type RealNower struct{}

func (r RealNower) Now() time.Time {
	return time.Now()
}

type Server struct {
	Policy      srs.Policy
	MaxDueCards int
	Store       stores.ReviewStore
	Reads       *readcache.Loader
	Nower       nower
}

// NewServer builds a server over store. cache may be nil.
func NewServer(cfg *config.Config, store stores.ReviewStore, cache readcache.Cache) *Server {
	return &Server{
		Policy:      cfg.Policy,
		MaxDueCards: cfg.MaxDueCards,
		Store:       store,
		Reads:       readcache.NewLoader(cache),
		Nower:       RealNower{},
	}
}

func unauthenticated(msg string) *connect.Error {
	return connect.NewError(connect.CodeUnauthenticated, errors.New(msg))
}

func invalidArgError(msg string) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, errors.New(msg))
}

func storeError(err error) error {
	switch {
	case errors.Is(err, stores.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, stores.ErrConflict):
		return connect.NewError(connect.CodeAborted, err)
	case errors.Is(err, errNotDue):
		return connect.NewError(connect.CodeFailedPrecondition, errNotDue)
	}
	return err
}

// now is truncated to what every store can persist exactly, so that a
// stored DueAt is always LastReviewedAt plus the interval.
func (s *Server) now() time.Time {
	return s.Nower.Now().UTC().Truncate(time.Microsecond)
}

func (s *Server) collectionScope(ctx context.Context, user *auth.AuthedUser, id string) (readcache.Scope, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return readcache.Scope{}, invalidArgError("invalid collection id")
	}
	if err := s.Store.CheckCollectionAccess(ctx, user.ID, cid); err != nil {
		return readcache.Scope{}, storeError(err)
	}
	return readcache.Scope{UserID: user.ID, CollectionID: cid}, nil
}

func (s *Server) flashcardScope(ctx context.Context, user *auth.AuthedUser, id string) (uuid.UUID, readcache.Scope, error) {
	fid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, readcache.Scope{}, invalidArgError("invalid flashcard id")
	}
	cid, err := s.Store.FlashcardCollection(ctx, fid)
	if err != nil {
		return uuid.Nil, readcache.Scope{}, storeError(err)
	}
	if err := s.Store.CheckCollectionAccess(ctx, user.ID, cid); err != nil {
		return uuid.Nil, readcache.Scope{}, storeError(err)
	}
	return fid, readcache.Scope{UserID: user.ID, CollectionID: cid}, nil
}

func (s *Server) StartSession(ctx context.Context, req *connect.Request[pb.StartSessionRequest]) (
	*connect.Response[pb.StartSessionResponse], error) {

	user := auth.UserFromContext(ctx)
	if user == nil {
		return nil, unauthenticated("user not authenticated")
	}
	scope, err := s.collectionScope(ctx, user, req.Msg.CollectionId)
	if err != nil {
		return nil, err
	}
	created, err := s.Store.EnsureReviews(ctx, s.Policy, user.ID, scope.CollectionID, s.now())
	if err != nil {
		return nil, err
	}
	s.Reads.Invalidate(ctx, scope)
	log.Ctx(ctx).Info().Str("collection", scope.CollectionID.String()).
		Int("created", created).Msg("session-started")
	return connect.NewResponse(&pb.StartSessionResponse{Created: int32(created)}), nil
}

func (s *Server) GetDueCards(ctx context.Context, req *connect.Request[pb.GetDueCardsRequest]) (
	*connect.Response[pb.Reviews], error) {

	user := auth.UserFromContext(ctx)
	if user == nil {
		return nil, unauthenticated("user not authenticated")
	}
	if req.Msg.Limit < 0 {
		return nil, invalidArgError("limit cannot be negative")
	}
	scope, err := s.collectionScope(ctx, user, req.Msg.CollectionId)
	if err != nil {
		return nil, err
	}
	limit := int(req.Msg.Limit)
	if limit == 0 || limit > s.MaxDueCards {
		limit = s.MaxDueCards
	}
	records, err := readcache.Load(ctx, s.Reads, scope, fmt.Sprintf("due:%d", limit),
		func(ctx context.Context) ([]srs.ReviewRecord, error) {
			return s.Store.ListDue(ctx, user.ID, scope.CollectionID, s.now(), limit)
		})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.Reviews{Reviews: toPBReviews(records)}), nil
}

func (s *Server) GetCollectionStats(ctx context.Context, req *connect.Request[pb.GetCollectionStatsRequest]) (
	*connect.Response[pb.CollectionStats], error) {

	user := auth.UserFromContext(ctx)
	if user == nil {
		return nil, unauthenticated("user not authenticated")
	}
	scope, err := s.collectionScope(ctx, user, req.Msg.CollectionId)
	if err != nil {
		return nil, err
	}
	stats, err := readcache.Load(ctx, s.Reads, scope, "stats",
		func(ctx context.Context) (srs.CollectionStats, error) {
			records, err := s.Store.ListReviews(ctx, user.ID, scope.CollectionID)
			if err != nil {
				return srs.CollectionStats{}, err
			}
			return srs.Aggregate(records, s.now(), s.Policy), nil
		})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(toPBStats(stats)), nil
}

func (s *Server) SubmitReview(ctx context.Context, req *connect.Request[pb.SubmitReviewRequest]) (
	*connect.Response[pb.SubmitReviewResponse], error) {

	user := auth.UserFromContext(ctx)
	if user == nil {
		return nil, unauthenticated("user not authenticated")
	}
	rating, err := srs.ParseRating(int(req.Msg.Rating))
	if err != nil {
		return nil, invalidArgError("invalid rating")
	}
	fid, scope, err := s.flashcardScope(ctx, user, req.Msg.FlashcardId)
	if err != nil {
		return nil, err
	}
	now := s.now()
	var before srs.ReviewRecord
	after, err := s.Store.ApplyReview(ctx, s.Policy, user.ID, fid, now,
		func(cur srs.ReviewRecord) (srs.ReviewRecord, error) {
			if !srs.IsDue(cur, now) {
				return cur, errNotDue
			}
			before = cur
			return srs.Schedule(s.Policy, cur, rating, now)
		})
	if err != nil {
		return nil, storeError(err)
	}
	s.Reads.Invalidate(ctx, scope)

	log := log.Ctx(ctx)
	log.Info().Str("flashcard", fid.String()).
		Str("rating", rating.String()).
		Str("from", before.Status.String()).
		Str("to", after.Status.String()).
		Int("interval", after.Interval).
		Float64("ease", after.EaseFactor).
		Str("next-scheduled", after.DueAt.String()).Msg("card-scored")

	return connect.NewResponse(&pb.SubmitReviewResponse{Review: toPBReview(after)}), nil
}

func (s *Server) GetReview(ctx context.Context, req *connect.Request[pb.GetReviewRequest]) (
	*connect.Response[pb.Review], error) {

	user := auth.UserFromContext(ctx)
	if user == nil {
		return nil, unauthenticated("user not authenticated")
	}
	fid, _, err := s.flashcardScope(ctx, user, req.Msg.FlashcardId)
	if err != nil {
		return nil, err
	}
	r, err := s.Store.GetReview(ctx, user.ID, fid)
	if err != nil {
		return nil, storeError(err)
	}
	return connect.NewResponse(toPBReview(r)), nil
}

func (s *Server) GetAllReviews(ctx context.Context, req *connect.Request[pb.GetAllReviewsRequest]) (
	*connect.Response[pb.Reviews], error) {

	user := auth.UserFromContext(ctx)
	if user == nil {
		return nil, unauthenticated("user not authenticated")
	}
	scope, err := s.collectionScope(ctx, user, req.Msg.CollectionId)
	if err != nil {
		return nil, err
	}
	records, err := s.Store.ListReviews(ctx, user.ID, scope.CollectionID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.Reviews{Reviews: toPBReviews(records)}), nil
}

func (s *Server) ClearProgress(ctx context.Context, req *connect.Request[pb.ClearProgressRequest]) (
	*connect.Response[pb.ClearProgressResponse], error) {

	user := auth.UserFromContext(ctx)
	if user == nil {
		return nil, unauthenticated("user not authenticated")
	}
	scope, err := s.collectionScope(ctx, user, req.Msg.CollectionId)
	if err != nil {
		return nil, err
	}
	deleted, err := s.Store.DeleteReviews(ctx, user.ID, scope.CollectionID)
	if err != nil {
		return nil, err
	}
	s.Reads.Invalidate(ctx, scope)
	log.Ctx(ctx).Info().Str("collection", scope.CollectionID.String()).
		Int64("deleted", deleted).Msg("progress-cleared")
	return connect.NewResponse(&pb.ClearProgressResponse{Deleted: deleted}), nil
}

// PreviewIntervals estimates the interval each rating would give the card.
// A card the learner has never seen is previewed as a new card.
func (s *Server) PreviewIntervals(ctx context.Context, req *connect.Request[pb.PreviewIntervalsRequest]) (
	*connect.Response[pb.PreviewIntervalsResponse], error) {

	user := auth.UserFromContext(ctx)
	if user == nil {
		return nil, unauthenticated("user not authenticated")
	}
	fid, _, err := s.flashcardScope(ctx, user, req.Msg.FlashcardId)
	if err != nil {
		return nil, err
	}
	r, err := s.Store.GetReview(ctx, user.ID, fid)
	if errors.Is(err, stores.ErrNotFound) {
		r = srs.NewRecord(s.Policy, user.ID, fid, s.now())
	} else if err != nil {
		return nil, err
	}
	estimates, err := srs.EstimateAll(s.Policy, r)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.PreviewIntervalsResponse{Previews: toPBPreviews(estimates)}), nil
}
