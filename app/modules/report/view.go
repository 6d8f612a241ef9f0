package report

import (
	"strings"
	"time"

	bracketservice "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/application"
	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
)

// Entry is one team box on a bracket page.
type Entry struct {
	Team bracketdomain.TeamID
	Name string
	Seed int
	// Won is whether the team won the round this column plays in the results.
	Won bool
	// Picked is false for boxes that are not a pick of the competitor, such as
	// qualifying entrants and seeded start-slot teams.
	Picked  bool
	Verdict bracketdomain.Verdict
	Empty   bool
}

// Class is the stylesheet class of the entry.
func (e Entry) Class() string {
	switch {
	case e.Empty:
		return "empty"
	case !e.Picked:
		return "entrant"
	default:
		return e.Verdict.String()
	}
}

// Column is one round of a bracket page.
type Column struct {
	Name    string
	Entries []Entry
}

// BracketView is the data of a competitor page.
type BracketView struct {
	Name        string
	Rank        int
	Actual      int
	Potential   int
	Pending     int
	RoundScores []RoundScore
	Columns     []Column
	RunID       string
	GeneratedAt time.Time
}

// RoundScore pairs a round name with points.
type RoundScore struct {
	Name  string
	Score int
}

// RankingRow is one line of the rankings table.
type RankingRow struct {
	Rank        int
	Name        string
	Page        string
	RoundScores []int
	Actual      int
	Potential   int
}

// RejectedRow lists a prediction dropped by the skip policy.
type RejectedRow struct {
	Competitor string
	File       string
	Reason     string
}

// RankingsView is the data of index.html.
type RankingsView struct {
	RoundNames  []string
	Rows        []RankingRow
	Rejected    []RejectedRow
	Chart       bool
	RunID       string
	GeneratedAt time.Time
}

// pageName is the competitor page file. Names made of "index" and trailing
// underscores gain one more underscore, so no page is index.html and no two
// competitors share a page.
func pageName(competitor string) string {
	if strings.TrimRight(competitor, "_")+".html" == IndexFile {
		competitor += "_"
	}
	return competitor + ".html"
}

// NewRankingsView builds the rankings table in standing order.
func NewRankingsView(o *bracketservice.Outcome, chart bool) RankingsView {
	view := RankingsView{
		RoundNames:  o.Topology.Config().RoundNames(),
		Rows:        make([]RankingRow, 0, len(o.Standings)),
		Chart:       chart && len(o.Standings) > 0,
		RunID:       o.RunID.String(),
		GeneratedAt: o.GeneratedAt,
	}
	for _, s := range o.Standings {
		view.Rows = append(view.Rows, RankingRow{
			Rank:        s.Rank,
			Name:        s.Name,
			Page:        pageName(s.Name),
			RoundScores: s.RoundScores,
			Actual:      s.Actual,
			Potential:   s.Potential,
		})
	}
	for _, r := range o.Rejected {
		view.Rejected = append(view.Rejected, RejectedRow{Competitor: r.Competitor, File: r.File, Reason: r.Reason()})
	}
	return view
}

// NewBracketView lays out one competitor's prediction as columns from the
// qualifying entrants to the champion. Verdicts come from the scorecard.
func NewBracketView(o *bracketservice.Outcome, card bracketdomain.Scorecard, standing bracketdomain.Standing) BracketView {
	t := o.Topology
	cfg := t.Config()
	rounds := cfg.Rounds()

	view := BracketView{
		Name:        card.Competitor,
		Rank:        standing.Rank,
		Actual:      card.Actual,
		Potential:   card.Potential,
		Pending:     card.Pending,
		Columns:     make([]Column, 0, rounds+1),
		RunID:       o.RunID.String(),
		GeneratedAt: o.GeneratedAt,
	}
	for _, rc := range card.Rounds {
		view.RoundScores = append(view.RoundScores, RoundScore{Name: rc.Name, Score: rc.Score})
	}

	entry := func(id bracketdomain.TeamID, round int) Entry {
		team, _ := t.Team(id)
		return Entry{Team: id, Name: team.Name, Seed: team.Seed, Won: o.Results.Won(round, id)}
	}
	picked := func(e Entry, round int) Entry {
		e.Picked = true
		e.Verdict, _ = card.Verdict(round, e.Team)
		return e
	}

	qualifying := Column{Name: cfg.RoundName(bracketdomain.QualifyingRound)}
	for _, pair := range t.QualifyingPairs() {
		for _, id := range pair {
			qualifying.Entries = append(qualifying.Entries, entry(id, bracketdomain.QualifyingRound))
		}
	}
	view.Columns = append(view.Columns, qualifying)

	// the first main-bracket column holds the seeded teams and the predicted
	// qualifying winners
	first := Column{Name: cfg.RoundName(1)}
	for _, slot := range t.Slots() {
		if !slot.Qualifying() {
			first.Entries = append(first.Entries, entry(slot.Teams[0], 1))
			continue
		}
		winner, ok := pickFrom(card, bracketdomain.QualifyingRound, slot.Teams)
		if !ok {
			first.Entries = append(first.Entries, Entry{Empty: true})
			continue
		}
		first.Entries = append(first.Entries, picked(entry(winner, 1), bracketdomain.QualifyingRound))
	}
	view.Columns = append(view.Columns, first)

	for c := 2; c <= rounds; c++ {
		prev := view.Columns[c-1].Entries
		name := "champion"
		if c < rounds {
			name = cfg.RoundName(c)
		}
		col := Column{Name: name, Entries: make([]Entry, 0, len(prev)/2)}
		for i := 0; i+1 < len(prev); i += 2 {
			winner, ok := pickFrom(card, c-1, []bracketdomain.TeamID{prev[i].Team, prev[i+1].Team})
			if !ok {
				col.Entries = append(col.Entries, Entry{Empty: true})
				continue
			}
			col.Entries = append(col.Entries, picked(entry(winner, c), c-1))
		}
		view.Columns = append(view.Columns, col)
	}
	return view
}

// pickFrom returns the candidate the competitor picked to win round.
func pickFrom(card bracketdomain.Scorecard, round int, candidates []bracketdomain.TeamID) (bracketdomain.TeamID, bool) {
	for _, id := range candidates {
		if id == "" {
			continue
		}
		if _, ok := card.Verdict(round, id); ok {
			return id, true
		}
	}
	return "", false
}
