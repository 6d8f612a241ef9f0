package bracketdomain

// Matchup is a group of contenders of which exactly one advances.
type Matchup []TeamID

// Contains reports whether team is a member of the matchup.
func (m Matchup) Contains(team TeamID) bool {
	for _, member := range m {
		if member == team {
			return true
		}
	}
	return false
}

// WinnersIn counts the members of the matchup present in winners.
func (m Matchup) WinnersIn(winners []TeamID) int {
	n := 0
	for _, member := range m {
		if containsTeam(winners, member) {
			n++
		}
	}
	return n
}

// MatchupResolver groups the candidates of one round into matchups. The
// qualifying round uses explicit pairs, every later round uses power-of-two
// windows over the start slots; both the oracle and the validator go through
// this interface so they always agree on the grouping.
type MatchupResolver interface {
	Round() int
	Matchups() []Matchup
	MatchupOf(team TeamID) (Matchup, bool)
}

type matchupIndex struct {
	round    int
	matchups []Matchup
	byTeam   map[TeamID]int
}

func newMatchupIndex(round int, matchups []Matchup) matchupIndex {
	idx := matchupIndex{
		round:    round,
		matchups: matchups,
		byTeam:   make(map[TeamID]int),
	}
	for i, m := range matchups {
		for _, team := range m {
			idx.byTeam[team] = i
		}
	}
	return idx
}

func (m matchupIndex) Round() int { return m.round }

func (m matchupIndex) Matchups() []Matchup {
	out := make([]Matchup, len(m.matchups))
	copy(out, m.matchups)
	return out
}

func (m matchupIndex) MatchupOf(team TeamID) (Matchup, bool) {
	i, ok := m.byTeam[team]
	if !ok {
		return nil, false
	}
	return m.matchups[i], true
}

// pairResolver groups the qualifying round by its explicit pairs.
type pairResolver struct {
	matchupIndex
}

func newPairResolver(pairs []Matchup) *pairResolver {
	return &pairResolver{matchupIndex: newMatchupIndex(QualifyingRound, pairs)}
}

// windowResolver groups round r into consecutive windows of 2^r start slots,
// with qualifying slots expanded to both of their teams.
type windowResolver struct {
	matchupIndex
}

func newWindowResolver(slots []Slot, round int) *windowResolver {
	width := 1 << round
	matchups := make([]Matchup, 0, len(slots)/width)
	for i := 0; i+width <= len(slots); i += width {
		var m Matchup
		for _, slot := range slots[i : i+width] {
			m = append(m, slot.Teams...)
		}
		matchups = append(matchups, m)
	}
	return &windowResolver{matchupIndex: newMatchupIndex(round, matchups)}
}

func containsTeam(list []TeamID, team TeamID) bool {
	for _, t := range list {
		if t == team {
			return true
		}
	}
	return false
}
