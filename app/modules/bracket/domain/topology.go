package bracketdomain

import "fmt"

// TeamID is the opaque identifier used in results and prediction records.
type TeamID string

// Team is one entrant of the field.
type Team struct {
	ID   TeamID
	Name string
	Seed int
}

// StartEntry is one parsed start slot before seeds are assigned. A slot with
// two teams is a qualifying matchup.
type StartEntry struct {
	Line  int
	Teams []Team
}

// Slot is a position in the main bracket.
type Slot struct {
	Teams []TeamID
	Seed  int
}

// Qualifying reports whether the slot is filled by a play-in game.
func (s Slot) Qualifying() bool { return len(s.Teams) == 2 }

// Topology is the fixed start layout every record is indexed against.
type Topology struct {
	cfg        BracketConfig
	slots      []Slot
	teams      map[TeamID]Team
	order      []TeamID
	qualifying map[TeamID]bool
	resolvers  []MatchupResolver
}

// NewTopology assigns seeds by slot position and checks the entries add up to
// the configured field.
func NewTopology(cfg BracketConfig, entries []StartEntry) (*Topology, error) {
	if len(entries) != cfg.SlotCount() {
		return nil, &TopologyError{Reason: fmt.Sprintf("expected %d start slots, got %d", cfg.SlotCount(), len(entries))}
	}

	t := &Topology{
		cfg:        cfg,
		slots:      make([]Slot, 0, len(entries)),
		teams:      make(map[TeamID]Team, cfg.TotalTeams()),
		order:      make([]TeamID, 0, cfg.TotalTeams()),
		qualifying: make(map[TeamID]bool, 2*cfg.QualifyingMatchups()),
	}

	var pairs []Matchup
	for i, entry := range entries {
		if len(entry.Teams) != 1 && len(entry.Teams) != 2 {
			return nil, &TopologyError{Line: entry.Line, Reason: fmt.Sprintf("has %d teams, want 1 or 2", len(entry.Teams))}
		}

		seed := cfg.SeedForSlot(i)
		slot := Slot{Seed: seed, Teams: make([]TeamID, 0, len(entry.Teams))}
		for _, team := range entry.Teams {
			if team.ID == "" {
				return nil, &TopologyError{Line: entry.Line, Reason: "has an empty team identifier"}
			}
			if _, dup := t.teams[team.ID]; dup {
				return nil, &TopologyError{Line: entry.Line, Reason: fmt.Sprintf("repeats team %s", team.ID)}
			}
			name := team.Name
			if name == "" {
				name = string(team.ID)
			}
			t.teams[team.ID] = Team{ID: team.ID, Name: name, Seed: seed}
			t.order = append(t.order, team.ID)
			slot.Teams = append(slot.Teams, team.ID)
		}

		if slot.Qualifying() {
			pairs = append(pairs, Matchup{slot.Teams[0], slot.Teams[1]})
			t.qualifying[slot.Teams[0]] = true
			t.qualifying[slot.Teams[1]] = true
		}
		t.slots = append(t.slots, slot)
	}

	if len(pairs) != cfg.QualifyingMatchups() {
		return nil, &TopologyError{Reason: fmt.Sprintf("expected %d qualifying matchups, got %d", cfg.QualifyingMatchups(), len(pairs))}
	}
	if len(t.order) != cfg.TotalTeams() {
		return nil, &TopologyError{Reason: fmt.Sprintf("expected %d teams, got %d", cfg.TotalTeams(), len(t.order))}
	}

	t.resolvers = make([]MatchupResolver, cfg.Rounds())
	t.resolvers[QualifyingRound] = newPairResolver(pairs)
	for r := 1; r < cfg.Rounds(); r++ {
		t.resolvers[r] = newWindowResolver(t.slots, r)
	}

	return t, nil
}

// Config returns the bracket shape the topology was built for.
func (t *Topology) Config() BracketConfig { return t.cfg }

// Slots returns a copy of the start slots.
func (t *Topology) Slots() []Slot {
	out := make([]Slot, len(t.slots))
	copy(out, t.slots)
	return out
}

// Team looks up an entrant.
func (t *Topology) Team(id TeamID) (Team, bool) {
	team, ok := t.teams[id]
	return team, ok
}

// Teams returns every entrant in start order.
func (t *Topology) Teams() []Team {
	out := make([]Team, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.teams[id])
	}
	return out
}

// Has reports whether id belongs to the field.
func (t *Topology) Has(id TeamID) bool {
	_, ok := t.teams[id]
	return ok
}

// IsQualifying reports whether id plays in the qualifying round.
func (t *Topology) IsQualifying(id TeamID) bool { return t.qualifying[id] }

// QualifyingPairs returns the play-in matchups in start order.
func (t *Topology) QualifyingPairs() []Matchup {
	return t.resolvers[QualifyingRound].Matchups()
}

// Resolver returns the matchup grouping for round r.
func (t *Topology) Resolver(r int) (MatchupResolver, bool) {
	if r < 0 || r >= len(t.resolvers) {
		return nil, false
	}
	return t.resolvers[r], true
}
