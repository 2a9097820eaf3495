package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/domino14/cardvault/config"
	"github.com/domino14/cardvault/internal/srs"
)

// Walks one card through a sequence of ratings, to see what a policy does.
// The policy is read from the environment:
//
//	LEARNING_STEPS=1,5,20 cardvaulttoy good good again hard easy
func main() {
	cfg := &config.Config{}
	if err := cfg.Load(nil); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	ratings := os.Args[1:]
	if len(ratings) == 0 {
		ratings = []string{"good", "good", "good", "good", "again", "good", "hard", "easy"}
	}

	p := cfg.Policy
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	card := srs.NewRecord(p, "toy", uuid.New(), now)

	for _, name := range ratings {
		var rating srs.Rating
		if err := rating.UnmarshalText([]byte(name)); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		est, _ := srs.EstimateAll(p, card)
		next, err := srs.Schedule(p, card, rating, now)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("%-10s %-6s -> %-10s interval %-6s ease %.2f step %d lapses %d  (preview %s/%s/%s/%s)\n",
			card.Status, rating, next.Status, srs.FormatInterval(next.Interval), next.EaseFactor,
			next.LearningStep, next.LapseCount,
			srs.FormatInterval(est[srs.Again]), srs.FormatInterval(est[srs.Hard]),
			srs.FormatInterval(est[srs.Good]), srs.FormatInterval(est[srs.Easy]))
		card = next
		now = card.DueAt
	}
	fmt.Println("----")
	fmt.Println("reviews", card.ReviewCount, "due", card.DueAt)
}
