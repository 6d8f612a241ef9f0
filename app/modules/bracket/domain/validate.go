package bracketdomain

import "fmt"

// ValidationMode selects how much of a record must be present.
type ValidationMode int

const (
	// ModeFinal requires every round; used for predictions.
	ModeFinal ValidationMode = iota
	// ModeInProgress accepts a partial record whose last round is still being played.
	ModeInProgress
)

func (m ValidationMode) String() string {
	if m == ModeInProgress {
		return "in-progress"
	}
	return "final"
}

// Validate checks record against the topology and returns the first violated
// rule as a *ValidationError.
func Validate(t *Topology, record Record, mode ValidationMode) error {
	cfg := t.Config()
	rounds := cfg.Rounds()

	if len(record) > rounds {
		return &ValidationError{
			Rule:  RuleRoundCount,
			Round: len(record) - 1,
			msg:   fmt.Sprintf("bracket has %d rounds, at most %d allowed", len(record), rounds),
		}
	}
	if mode == ModeFinal && len(record) < rounds {
		return &ValidationError{
			Rule:  RuleRoundCount,
			Round: len(record),
			msg:   fmt.Sprintf("bracket does not have %d rounds", rounds),
		}
	}
	if len(record) == 0 {
		return nil
	}

	end := len(record)
	for r := 0; r < end; r++ {
		resolver, _ := t.Resolver(r)

		if err := checkRoster(t, resolver, record, r); err != nil {
			return err
		}
		if requiresDecision(cfg, record, mode, r) {
			if err := checkUniqueness(cfg, resolver, record, r); err != nil {
				return err
			}
		}
		if r > QualifyingRound {
			if err := checkLineage(t, record, r); err != nil {
				return err
			}
		}
	}
	return nil
}

// requiresDecision reports whether every matchup of round r must have its
// winner recorded. In-progress records only owe that for a fully populated
// qualifying round and for rounds before the last one present.
func requiresDecision(cfg BracketConfig, record Record, mode ValidationMode, r int) bool {
	if mode == ModeFinal {
		return true
	}
	if r == QualifyingRound {
		return len(record[r]) == cfg.ExpectedWinners(r)
	}
	return r != len(record)-1
}

func checkRoster(t *Topology, resolver MatchupResolver, record Record, r int) error {
	cfg := t.Config()
	name := cfg.RoundName(r)
	seen := make(map[TeamID]bool, len(record[r]))
	decided := make(map[TeamID]TeamID)

	for _, team := range record[r] {
		fail := func(format string, args ...any) *ValidationError {
			return &ValidationError{Rule: RuleRoster, Round: r, RoundName: name, Team: team, msg: fmt.Sprintf(format, args...)}
		}
		if !t.Has(team) {
			return fail("%s in %s is not in the field", team, name)
		}
		if seen[team] {
			return fail("%s is listed more than once in %s", team, name)
		}
		seen[team] = true

		matchup, ok := resolver.MatchupOf(team)
		if !ok {
			return fail("%s does not play in %s", team, name)
		}
		if other, taken := decided[matchup[0]]; taken {
			verr := fail("matchup %v has more than one winner in %s (%s and %s)", matchup, name, other, team)
			verr.Matchup = matchup
			return verr
		}
		decided[matchup[0]] = team
	}
	return nil
}

func checkUniqueness(cfg BracketConfig, resolver MatchupResolver, record Record, r int) error {
	name := cfg.RoundName(r)
	for _, matchup := range resolver.Matchups() {
		if matchup.WinnersIn(record[r]) != 1 {
			return &ValidationError{
				Rule:      RuleUniqueness,
				Round:     r,
				RoundName: name,
				Matchup:   matchup,
				msg:       fmt.Sprintf("matchup %v doesn't have exactly one winner in %s", matchup, name),
			}
		}
	}
	return nil
}

// checkLineage requires every winner of round r to have won round r-1. A
// round-1 winner that never played a qualifying game owes nothing to round 0.
func checkLineage(t *Topology, record Record, r int) error {
	cfg := t.Config()
	for _, team := range record[r] {
		if r == 1 && !t.IsQualifying(team) {
			continue
		}
		if !record.Won(r-1, team) {
			return &ValidationError{
				Rule:      RuleLineage,
				Round:     r,
				RoundName: cfg.RoundName(r),
				Team:      team,
				msg:       fmt.Sprintf("%s can't win in %s without having won in %s", team, cfg.RoundName(r), cfg.RoundName(r-1)),
			}
		}
	}
	return nil
}
