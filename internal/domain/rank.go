package domain

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
)

type RankStrategy string

const (
	// RankOrdinal assigns rank = position in sorted order; tied point
	// totals still get distinct consecutive ranks.
	RankOrdinal RankStrategy = "ordinal"
	// RankDense gives tied point totals the same rank, with no gaps.
	RankDense RankStrategy = "dense"
)

// Standing is one row of a weekly or overall leaderboard. JoinedAt is
// only the sort tiebreak and is not part of the wire shape.
type Standing struct {
	Rank     int       `json:"rank"`
	UserID   uuid.UUID `json:"userId"`
	UserName string    `json:"userName"`
	Points   int       `json:"points"`
	JoinedAt time.Time `json:"-"`
}

// RankStandings sorts entries by points descending (join time ascending
// as the deterministic tiebreak) and fills in Rank per the strategy.
func RankStandings(entries []Standing, strategy RankStrategy) []Standing {
	slices.SortStableFunc(entries, func(a, b Standing) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return a.JoinedAt.Compare(b.JoinedAt)
	})

	for i := range entries {
		switch {
		case i == 0:
			entries[i].Rank = 1
		case strategy == RankDense && entries[i].Points == entries[i-1].Points:
			entries[i].Rank = entries[i-1].Rank
		case strategy == RankDense:
			entries[i].Rank = entries[i-1].Rank + 1
		default:
			entries[i].Rank = i + 1
		}
	}
	return entries
}
