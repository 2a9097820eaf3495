package srs

import (
	"sort"
	"time"
)

// CollectionStats is a read-only snapshot over one learner's records in a
// collection.
type CollectionStats struct {
	TotalCards    int
	NewCards      int
	LearningCards int
	ReviewCards   int
	DueCards      int
	AverageEase   float64
	TotalReviews  int
	TotalLapses   int
	MatureCards   int
}

// Aggregate computes collection statistics. Relearning cards are counted as
// learning cards.
func Aggregate(records []ReviewRecord, now time.Time, p Policy) CollectionStats {
	stats := CollectionStats{TotalCards: len(records)}

	var totalEase float64
	var easeCount int
	for _, r := range records {
		switch r.Status {
		case StatusNew:
			stats.NewCards++
		case StatusLearning, StatusRelearning:
			stats.LearningCards++
		case StatusReview:
			stats.ReviewCards++
		}
		if IsDue(r, now) {
			stats.DueCards++
		}
		if r.EaseFactor > 0 {
			totalEase += r.EaseFactor
			easeCount++
		}
		stats.TotalReviews += r.ReviewCount
		stats.TotalLapses += r.LapseCount
		if r.Interval >= p.MatureInterval {
			stats.MatureCards++
		}
	}
	if easeCount > 0 {
		stats.AverageEase = totalEase / float64(easeCount)
	}
	return stats
}

// SortDue orders records earliest-due first, then by creation time, then by
// id so that equal timestamps still sort deterministically.
func SortDue(records []ReviewRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.DueAt.Equal(b.DueAt) {
			return a.DueAt.Before(b.DueAt)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
}
