package bracketdomain

import "slices"

// Verdict classifies one pick against the results record.
type Verdict int

const (
	VerdictPending Verdict = iota
	VerdictCorrect
	VerdictIncorrect
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	default:
		return "pending"
	}
}

// Pick is one predicted winner and what it earned.
type Pick struct {
	Team      TeamID
	Verdict   Verdict
	Points    int
	Potential int
}

// RoundCard holds the picks of one round in prediction order.
type RoundCard struct {
	Round     int
	Name      string
	Picks     []Pick
	Score     int
	Potential int
}

// Scorecard is the scoring of one competitor's prediction.
type Scorecard struct {
	Competitor string
	Rounds     []RoundCard
	Actual     int
	Potential  int
	Pending    int
}

// Verdict returns the verdict of the pick of team in round.
func (s Scorecard) Verdict(round int, team TeamID) (Verdict, bool) {
	if round < 0 || round >= len(s.Rounds) {
		return VerdictPending, false
	}
	for _, pick := range s.Rounds[round].Picks {
		if pick.Team == team {
			return pick.Verdict, true
		}
	}
	return VerdictPending, false
}

// RoundScores returns the actual score of each round.
func (s Scorecard) RoundScores() []int {
	out := make([]int, len(s.Rounds))
	for i, rc := range s.Rounds {
		out[i] = rc.Score
	}
	return out
}

// CountVerdicts tallies the picks of the whole card by verdict.
func (s Scorecard) CountVerdicts() map[Verdict]int {
	out := make(map[Verdict]int, 3)
	for _, rc := range s.Rounds {
		for _, pick := range rc.Picks {
			out[pick.Verdict]++
		}
	}
	return out
}

// pickChain remembers the verdict each team got in the previous round of one
// competitor's prediction. Incorrect is terminal: from round 2 on a team that
// was already wrong stays wrong without looking at the results.
type pickChain map[TeamID]Verdict

func (c pickChain) eliminated(team TeamID) bool {
	v, ok := c[team]
	return ok && v == VerdictIncorrect
}

// Scorer scores predictions against one read-only results record. It holds no
// per-competitor state and is safe for concurrent use.
type Scorer struct {
	topology *Topology
	results  Record
}

// NewScorer binds the topology and the authoritative results.
func NewScorer(t *Topology, results Record) *Scorer {
	return &Scorer{topology: t, results: results}
}

// Score walks the prediction round by round. The prediction is expected to
// have passed Validate in ModeFinal.
func (s *Scorer) Score(competitor string, prediction Record) Scorecard {
	cfg := s.topology.Config()
	rounds := cfg.Rounds()
	if len(prediction) < rounds {
		rounds = len(prediction)
	}

	card := Scorecard{Competitor: competitor, Rounds: make([]RoundCard, 0, rounds)}
	prev := pickChain{}

	for r := 0; r < rounds; r++ {
		value := cfg.PointValue(r)
		rc := RoundCard{Round: r, Name: cfg.RoundName(r), Picks: make([]Pick, 0, len(prediction[r]))}
		next := make(pickChain, len(prediction[r]))

		for _, team := range prediction[r] {
			pick := Pick{Team: team}
			switch {
			case r >= 2 && prev.eliminated(team):
				pick.Verdict = VerdictIncorrect
			case !HasConcluded(s.topology, s.results, team, r):
				pick.Verdict = VerdictPending
				pick.Potential = value
				card.Pending++
			case s.results.Won(r, team):
				pick.Verdict = VerdictCorrect
				pick.Points = value
				pick.Potential = value
			default:
				pick.Verdict = VerdictIncorrect
			}

			next[team] = pick.Verdict
			rc.Score += pick.Points
			rc.Potential += pick.Potential
			rc.Picks = append(rc.Picks, pick)
		}

		card.Actual += rc.Score
		card.Potential += rc.Potential
		card.Rounds = append(card.Rounds, rc)
		prev = next
	}
	return card
}

// ScoreAll scores every prediction and returns the scorecards in competitor
// name order.
func (s *Scorer) ScoreAll(predictions map[string]Record) []Scorecard {
	names := make([]string, 0, len(predictions))
	for name := range predictions {
		names = append(names, name)
	}
	slices.Sort(names)

	cards := make([]Scorecard, 0, len(names))
	for _, name := range names {
		cards = append(cards, s.Score(name, predictions[name]))
	}
	return cards
}
