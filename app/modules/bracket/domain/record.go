package bracketdomain

// Record lists, per round, the teams that won through that round. The
// authoritative results record may be shorter than the bracket and its last
// round may be incomplete; a prediction always covers every round.
type Record [][]TeamID

// Reached reports whether the record has an entry for round r.
func (r Record) Reached(round int) bool {
	return round >= 0 && round < len(r)
}

// Won reports whether team is listed as a winner of round.
func (r Record) Won(round int, team TeamID) bool {
	if !r.Reached(round) {
		return false
	}
	return containsTeam(r[round], team)
}

// HasConcluded reports whether the matchup team plays in round has been
// decided in results. It is a query, not a check: an unreached round or a team
// outside every matchup of the round is reported as not concluded.
func HasConcluded(t *Topology, results Record, team TeamID, round int) bool {
	if !results.Reached(round) {
		return false
	}
	resolver, ok := t.Resolver(round)
	if !ok {
		return false
	}
	matchup, ok := resolver.MatchupOf(team)
	if !ok {
		return false
	}
	return matchup.WinnersIn(results[round]) == 1
}
