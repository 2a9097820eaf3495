package srs

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/matryer/is"
)

func TestAggregate(t *testing.T) {
	is := is.New(t)
	p := DefaultPolicy()
	now := testNow

	mk := func(st Status, interval int, ease float64, due time.Time, reviews, lapses int) ReviewRecord {
		r := freshRecord(p)
		r.Status = st
		r.Interval = interval
		r.EaseFactor = ease
		r.DueAt = due
		r.ReviewCount = reviews
		r.LapseCount = lapses
		return r
	}
	records := []ReviewRecord{
		mk(StatusNew, 0, 2.5, now, 0, 0),
		mk(StatusLearning, 10, 2.5, now.Add(10*time.Minute), 2, 0),
		mk(StatusRelearning, 10, 2.1, now.Add(-time.Minute), 9, 2),
		mk(StatusReview, 30240, 2.7, now.Add(30240*time.Minute), 6, 0),
		mk(StatusReview, 4000, 2.2, now.Add(-time.Hour), 4, 1),
	}
	stats := Aggregate(records, now, p)
	is.Equal(stats.TotalCards, 5)
	is.Equal(stats.NewCards, 1)
	is.Equal(stats.LearningCards, 2)
	is.Equal(stats.ReviewCards, 2)
	is.Equal(stats.DueCards, 3)
	is.Equal(stats.TotalReviews, 21)
	is.Equal(stats.TotalLapses, 3)
	is.Equal(stats.MatureCards, 1)
	is.True(stats.AverageEase > 2.399 && stats.AverageEase < 2.401)

	is.Equal(Aggregate(nil, now, p), CollectionStats{})
}

func TestSortDue(t *testing.T) {
	is := is.New(t)
	base := testNow
	var records []ReviewRecord
	for i := 0; i < 30; i++ {
		records = append(records, ReviewRecord{
			ID:        uuid.New(),
			DueAt:     base.Add(time.Duration(i%4) * time.Minute),
			CreatedAt: base.Add(time.Duration(i%3) * time.Second),
		})
	}
	rand.Shuffle(len(records), func(i, j int) { records[i], records[j] = records[j], records[i] })
	SortDue(records)
	for i := 1; i < len(records); i++ {
		a, b := records[i-1], records[i]
		is.True(!b.DueAt.Before(a.DueAt))
		if a.DueAt.Equal(b.DueAt) {
			is.True(!b.CreatedAt.Before(a.CreatedAt))
		}
	}
}
