package srs

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/matryer/is"
)

var testNow = time.Date(2024, 9, 22, 23, 0, 0, 0, time.UTC)

func freshRecord(p Policy) ReviewRecord {
	return NewRecord(p, "user_1", uuid.New(), testNow)
}

func reviewRecord(interval int, ease float64) ReviewRecord {
	r := freshRecord(DefaultPolicy())
	r.Status = StatusReview
	r.Interval = interval
	r.EaseFactor = ease
	return r
}

func TestGraduationThroughLadder(t *testing.T) {
	is := is.New(t)
	p := DefaultPolicy()
	r := freshRecord(p)
	now := testNow

	r, err := Schedule(p, r, Good, now)
	is.NoErr(err)
	is.Equal(r.Status, StatusLearning)
	is.Equal(r.Interval, 1)
	is.Equal(r.LearningStep, 0)

	now = r.DueAt
	r, err = Schedule(p, r, Good, now)
	is.NoErr(err)
	is.Equal(r.Status, StatusLearning)
	is.Equal(r.Interval, 10)
	is.Equal(r.LearningStep, 1)

	now = r.DueAt
	r, err = Schedule(p, r, Good, now)
	is.NoErr(err)
	is.Equal(r.Status, StatusReview)
	is.Equal(r.Interval, p.GraduatingInterval)
	is.Equal(r.LearningStep, 0)
	is.Equal(r.ReviewCount, 3)
	is.Equal(r.LapseCount, 0)
}

func TestEasyGraduatesImmediately(t *testing.T) {
	is := is.New(t)
	p := DefaultPolicy()
	for _, st := range []Status{StatusNew, StatusLearning, StatusRelearning} {
		r := freshRecord(p)
		r.Status = st
		next, err := Schedule(p, r, Easy, testNow)
		is.NoErr(err)
		is.Equal(next.Status, StatusReview)
		is.Equal(next.Interval, p.EasyInterval)
	}
}

func TestAgainAndHardResetLadder(t *testing.T) {
	is := is.New(t)
	p := DefaultPolicy()
	for _, rating := range []Rating{Again, Hard} {
		r := freshRecord(p)
		r.Status = StatusLearning
		r.LearningStep = 1
		r.Interval = 10
		next, err := Schedule(p, r, rating, testNow)
		is.NoErr(err)
		is.Equal(next.Status, StatusLearning)
		is.Equal(next.LearningStep, 0)
		is.Equal(next.Interval, 1)
		is.Equal(next.LapseCount, 0)
	}
}

func TestLapseAndRecover(t *testing.T) {
	is := is.New(t)
	p := DefaultPolicy()
	r := reviewRecord(3600, 2.5)

	r, err := Schedule(p, r, Again, testNow)
	is.NoErr(err)
	is.Equal(r.Status, StatusRelearning)
	is.Equal(r.LapseCount, 1)
	is.Equal(r.LearningStep, 0)
	is.Equal(r.Interval, p.RelearningSteps[0])
	is.Equal(r.EaseFactor, 2.3)

	// Again while relearning is not another lapse.
	r, err = Schedule(p, r, Again, r.DueAt)
	is.NoErr(err)
	is.Equal(r.Status, StatusRelearning)
	is.Equal(r.LapseCount, 1)

	for r.Status == StatusRelearning {
		r, err = Schedule(p, r, Good, r.DueAt)
		is.NoErr(err)
	}
	is.Equal(r.Status, StatusReview)
	is.Equal(r.Interval, p.GraduatingInterval)
	is.Equal(r.LapseCount, 1)
	is.Equal(r.ReviewCount, 3)
}

func TestReviewGrowth(t *testing.T) {
	is := is.New(t)
	p := DefaultPolicy()

	tests := []struct {
		rating   Rating
		interval int
		ease     float64
	}{
		{Hard, 1728, 2.35},
		{Good, 3600, 2.5},
		{Easy, 4680, 2.65},
	}
	for _, tc := range tests {
		next, err := Schedule(p, reviewRecord(1440, 2.5), tc.rating, testNow)
		is.NoErr(err)
		is.Equal(next.Status, StatusReview)
		is.Equal(next.Interval, tc.interval)
		is.True(next.EaseFactor-tc.ease < 1e-9 && tc.ease-next.EaseFactor < 1e-9)
	}
}

func TestReviewIntervalCapped(t *testing.T) {
	is := is.New(t)
	p := DefaultPolicy()
	next, err := Schedule(p, reviewRecord(300*MinutesPerDay, 2.5), Easy, testNow)
	is.NoErr(err)
	is.Equal(next.Interval, p.MaximumInterval)
}

func TestEaseFloor(t *testing.T) {
	is := is.New(t)
	p := DefaultPolicy()
	r := reviewRecord(1440, 1.4)
	now := testNow
	for i := 0; i < 20; i++ {
		var err error
		r, err = Schedule(p, r, Again, now)
		is.NoErr(err)
		is.True(r.EaseFactor >= p.MinimumEase)
		// climb back to review so the next Again is a lapse again
		r, err = Schedule(p, r, Easy, r.DueAt)
		is.NoErr(err)
		r, err = Schedule(p, r, Hard, r.DueAt)
		is.NoErr(err)
		is.True(r.EaseFactor >= p.MinimumEase)
		now = r.DueAt
	}
	is.Equal(r.EaseFactor, p.MinimumEase)
	is.Equal(r.LapseCount, 20)
}

func TestCountersAndDueDate(t *testing.T) {
	is := is.New(t)
	p := DefaultPolicy()
	r := freshRecord(p)
	now := testNow
	seq := []Rating{Good, Again, Good, Good, Good, Hard, Again, Easy, Good, Again, Again, Hard, Good, Good, Easy}

	for i, rating := range seq {
		prev := r
		wasReview := r.Status == StatusReview
		var err error
		r, err = Schedule(p, r, rating, now)
		is.NoErr(err)

		is.Equal(r.ReviewCount, prev.ReviewCount+1)
		if wasReview && rating == Again {
			is.Equal(r.LapseCount, prev.LapseCount+1)
		} else {
			is.Equal(r.LapseCount, prev.LapseCount)
		}
		is.True(r.LastReviewedAt != nil)
		is.Equal(*r.LastReviewedAt, now)
		is.Equal(r.DueAt, now.Add(time.Duration(r.Interval)*time.Minute))
		is.True(!r.DueAt.Before(prev.DueAt) || i == 0)
		is.True(r.Interval >= 1)

		now = r.DueAt.Add(time.Duration(i) * time.Second)
	}
}

func TestScheduleDoesNotMutateInput(t *testing.T) {
	is := is.New(t)
	p := DefaultPolicy()
	r := reviewRecord(1440, 2.5)
	before := r
	_, err := Schedule(p, r, Again, testNow)
	is.NoErr(err)
	is.Equal(r, before)
}

func TestEveryStatusHandlesEveryRating(t *testing.T) {
	is := is.New(t)
	p := DefaultPolicy()
	for _, st := range AllStatuses() {
		for _, rating := range AllRatings() {
			r := freshRecord(p)
			r.Status = st
			r.Interval = 100
			next, err := Schedule(p, r, rating, testNow)
			is.NoErr(err)
			is.True(next.Status.IsValid())

			_, err = Estimate(p, r.Interval, r.EaseFactor, st, rating)
			is.NoErr(err)
		}
	}
}

func TestScheduleRejectsInvalidInput(t *testing.T) {
	is := is.New(t)
	p := DefaultPolicy()
	r := freshRecord(p)

	_, err := Schedule(p, r, Rating(4), testNow)
	is.True(errors.Is(err, ErrInvalidRating))

	r.Status = Status(0)
	got, err := Schedule(p, r, Good, testNow)
	is.True(errors.Is(err, ErrInvalidStatus))
	is.Equal(got.ReviewCount, 0)
}

func TestParseRating(t *testing.T) {
	is := is.New(t)
	for v := 0; v <= 3; v++ {
		r, err := ParseRating(v)
		is.NoErr(err)
		is.Equal(int(r), v)
	}
	for _, v := range []int{-1, 4, 17} {
		_, err := ParseRating(v)
		is.True(errors.Is(err, ErrInvalidRating))
	}
	is.Equal(Good.Label(), "Good")
	is.Equal(Rating(9).String(), "Rating(9)")
}

func TestStatusText(t *testing.T) {
	is := is.New(t)
	for _, st := range AllStatuses() {
		b, err := st.MarshalText()
		is.NoErr(err)
		var back Status
		is.NoErr(back.UnmarshalText(b))
		is.Equal(back, st)
	}
	_, err := ParseStatus("graduated")
	is.True(errors.Is(err, ErrInvalidStatus))

	var s Status
	is.NoErr(s.Scan([]byte("relearning")))
	is.Equal(s, StatusRelearning)
}

func TestPolicyValidate(t *testing.T) {
	is := is.New(t)
	is.NoErr(DefaultPolicy().Validate())

	bad := []func(*Policy){
		func(p *Policy) { p.LearningSteps = nil },
		func(p *Policy) { p.RelearningSteps = []int{0} },
		func(p *Policy) { p.MinimumEase = 0.5 },
		func(p *Policy) { p.StartingEase = 1.2 },
		func(p *Policy) { p.MaximumInterval = 100 },
		func(p *Policy) { p.HardMultiplier = 0 },
	}
	for _, mutate := range bad {
		p := DefaultPolicy()
		mutate(&p)
		is.True(errors.Is(p.Validate(), ErrInvalidPolicy))
	}

	steps, err := ParseSteps("1, 10,30")
	is.NoErr(err)
	is.Equal(steps, []int{1, 10, 30})
	_, err = ParseSteps("1,ten")
	is.True(errors.Is(err, ErrInvalidPolicy))
}
