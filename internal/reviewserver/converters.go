package reviewserver

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/domino14/cardvault/api/rpc/cardvault"
	"github.com/domino14/cardvault/internal/srs"
)

func toPBReview(r srs.ReviewRecord) *pb.Review {
	out := &pb.Review{
		Id:           r.ID.String(),
		UserId:       r.UserID,
		FlashcardId:  r.FlashcardID.String(),
		EaseFactor:   r.EaseFactor,
		Interval:     int32(r.Interval),
		DueAt:        timestamppb.New(r.DueAt),
		Status:       r.Status.String(),
		LearningStep: int32(r.LearningStep),
		ReviewCount:  int32(r.ReviewCount),
		LapseCount:   int32(r.LapseCount),
		CreatedAt:    timestamppb.New(r.CreatedAt),
		UpdatedAt:    timestamppb.New(r.UpdatedAt),
	}
	if r.LastReviewedAt != nil {
		out.LastReviewedAt = timestamppb.New(*r.LastReviewedAt)
	}
	if r.Flashcard != nil {
		out.Flashcard = &pb.Flashcard{
			Id:           r.Flashcard.ID.String(),
			CollectionId: r.Flashcard.CollectionID.String(),
			Question:     r.Flashcard.Question,
			Answer:       r.Flashcard.Answer,
			Type:         r.Flashcard.Type,
		}
	}
	return out
}

func toPBReviews(records []srs.ReviewRecord) []*pb.Review {
	out := make([]*pb.Review, len(records))
	for i := range records {
		out[i] = toPBReview(records[i])
	}
	return out
}

func toPBStats(s srs.CollectionStats) *pb.CollectionStats {
	return &pb.CollectionStats{
		TotalCards:    int32(s.TotalCards),
		NewCards:      int32(s.NewCards),
		LearningCards: int32(s.LearningCards),
		ReviewCards:   int32(s.ReviewCards),
		DueCards:      int32(s.DueCards),
		AverageEase:   s.AverageEase,
		TotalReviews:  int32(s.TotalReviews),
		TotalLapses:   int32(s.TotalLapses),
		MatureCards:   int32(s.MatureCards),
	}
}

func toPBPreviews(estimates [4]int) []*pb.IntervalPreview {
	out := make([]*pb.IntervalPreview, 0, len(estimates))
	for _, rating := range srs.AllRatings() {
		minutes := estimates[rating]
		out = append(out, &pb.IntervalPreview{
			Rating:  int32(rating),
			Label:   rating.Label(),
			Minutes: int32(minutes),
			Display: srs.FormatInterval(minutes),
		})
	}
	return out
}
