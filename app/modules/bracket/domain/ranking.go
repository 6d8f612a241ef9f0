package bracketdomain

import (
	"cmp"
	"slices"
)

// Totals are the two scores a competitor is ranked on.
type Totals struct {
	Actual      int
	Potential   int
	RoundScores []int
}

// Standing is one row of the rankings.
type Standing struct {
	Rank        int
	Name        string
	Actual      int
	Potential   int
	RoundScores []int
}

// Rank orders competitors by potential score, then actual score, both
// descending, and assigns competition ranks: tied rows share a rank and the
// next distinct row takes its 1-based position (1, 2, 2, 4).
//
// Names are sorted first so the order of fully tied competitors does not
// depend on map iteration.
func Rank(totals map[string]Totals) []Standing {
	if len(totals) == 0 {
		return nil
	}

	rows := make([]Standing, 0, len(totals))
	for name, t := range totals {
		rows = append(rows, Standing{Name: name, Actual: t.Actual, Potential: t.Potential, RoundScores: t.RoundScores})
	}
	slices.SortFunc(rows, func(a, b Standing) int { return cmp.Compare(a.Name, b.Name) })
	slices.SortStableFunc(rows, func(a, b Standing) int {
		if c := cmp.Compare(b.Potential, a.Potential); c != 0 {
			return c
		}
		return cmp.Compare(b.Actual, a.Actual)
	})

	for i := range rows {
		if i > 0 && rows[i].Potential == rows[i-1].Potential && rows[i].Actual == rows[i-1].Actual {
			rows[i].Rank = rows[i-1].Rank
			continue
		}
		rows[i].Rank = i + 1
	}
	return rows
}

// RankScorecards ranks the competitors of the given scorecards.
func RankScorecards(cards []Scorecard) []Standing {
	totals := make(map[string]Totals, len(cards))
	for _, card := range cards {
		totals[card.Competitor] = Totals{Actual: card.Actual, Potential: card.Potential, RoundScores: card.RoundScores()}
	}
	return Rank(totals)
}
