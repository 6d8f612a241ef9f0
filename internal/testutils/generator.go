package testutils

import (
	"fmt"
	"strings"
	"time"

	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
	"github.com/brianvoe/gofakeit/v7"
)

// TournamentGenerator builds random but structurally valid tournaments.
type TournamentGenerator struct {
	faker *gofakeit.Faker
	seed  uint64
	cfg   bracketdomain.BracketConfig
}

// NewTournamentGenerator creates a generator for cfg with an optional seed.
func NewTournamentGenerator(cfg bracketdomain.BracketConfig, seed ...uint64) *TournamentGenerator {
	var s uint64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = uint64(time.Now().UnixNano())
	}

	return &TournamentGenerator{
		faker: gofakeit.New(s),
		seed:  s,
		cfg:   cfg,
	}
}

// Seed returns the seed the generator was built with.
func (g *TournamentGenerator) Seed() uint64 { return g.seed }

// StartEntries returns one entry per slot. Qualifying matchups are spread
// evenly over the bracket, starting with the last slot of the first block.
func (g *TournamentGenerator) StartEntries() []bracketdomain.StartEntry {
	slots := g.cfg.SlotCount()
	qualifying := make(map[int]bool, g.cfg.QualifyingMatchups())
	if n := g.cfg.QualifyingMatchups(); n > 0 {
		block := slots / n
		for i := 0; i < n; i++ {
			qualifying[i*block+block-1] = true
		}
	}

	entries := make([]bracketdomain.StartEntry, 0, slots)
	next := 0
	for i := 0; i < slots; i++ {
		entry := bracketdomain.StartEntry{Line: i + 1}
		entry.Teams = append(entry.Teams, g.team(next))
		next++
		if qualifying[i] {
			entry.Teams = append(entry.Teams, g.team(next))
			next++
		}
		entries = append(entries, entry)
	}
	return entries
}

func (g *TournamentGenerator) team(i int) bracketdomain.Team {
	name := strings.ReplaceAll(g.faker.City()+" "+g.faker.Animal(), "/", " ")
	return bracketdomain.Team{
		ID:   bracketdomain.TeamID(fmt.Sprintf("t%02d", i)),
		Name: name,
	}
}

// CompetitorName returns a lower-case competitor name, unique per i.
func (g *TournamentGenerator) CompetitorName(i int) string {
	return fmt.Sprintf("%s-%02d", strings.ToLower(g.faker.FirstName()), i)
}

// Topology builds the topology for StartEntries.
func (g *TournamentGenerator) Topology() (*bracketdomain.Topology, error) {
	return bracketdomain.NewTopology(g.cfg, g.StartEntries())
}

// CompleteRecord returns a full record with a random winner for every matchup.
func (g *TournamentGenerator) CompleteRecord(t *bracketdomain.Topology) bracketdomain.Record {
	record := make(bracketdomain.Record, 0, g.cfg.Rounds())
	for r := 0; r < g.cfg.Rounds(); r++ {
		record = append(record, g.decideRound(t, record, r, -1))
	}
	return record
}

// PartialRecord returns the first rounds of a random record, with only
// decided matchups of the last round filled in.
func (g *TournamentGenerator) PartialRecord(t *bracketdomain.Topology, rounds, decided int) bracketdomain.Record {
	record := make(bracketdomain.Record, 0, rounds)
	for r := 0; r < rounds; r++ {
		limit := -1
		if r == rounds-1 {
			limit = decided
		}
		record = append(record, g.decideRound(t, record, r, limit))
	}
	return record
}

func (g *TournamentGenerator) decideRound(t *bracketdomain.Topology, record bracketdomain.Record, r, limit int) []bracketdomain.TeamID {
	resolver, _ := t.Resolver(r)
	var winners []bracketdomain.TeamID
	for _, matchup := range resolver.Matchups() {
		if limit >= 0 && len(winners) == limit {
			break
		}
		candidates := survivors(t, record, matchup, r)
		winners = append(winners, candidates[g.faker.Number(0, len(candidates)-1)])
	}
	return winners
}

// survivors returns the members of matchup still alive going into round r.
func survivors(t *bracketdomain.Topology, record bracketdomain.Record, matchup bracketdomain.Matchup, r int) []bracketdomain.TeamID {
	if r == bracketdomain.QualifyingRound {
		return matchup
	}
	var out []bracketdomain.TeamID
	for _, team := range matchup {
		if r == 1 && !t.IsQualifying(team) {
			out = append(out, team)
			continue
		}
		if record.Won(r-1, team) {
			out = append(out, team)
		}
	}
	return out
}

// StartText renders entries in the start.txt line format.
func StartText(entries []bracketdomain.StartEntry) string {
	var b strings.Builder
	for _, entry := range entries {
		parts := make([]string, 0, len(entry.Teams))
		for _, team := range entry.Teams {
			if team.Name == "" {
				parts = append(parts, string(team.ID))
				continue
			}
			parts = append(parts, string(team.ID)+" "+team.Name)
		}
		b.WriteString(strings.Join(parts, "/"))
		b.WriteString("\n")
	}
	return b.String()
}

// SmallBracketConfig is an 8-slot bracket with two qualifying games, handy
// for hand-written fixtures.
func SmallBracketConfig() bracketdomain.BracketConfig {
	cfg, err := bracketdomain.NewBracketConfig(8, 2,
		[]string{"play-in", "quarterfinal", "semifinal", "final"},
		[]int{1, 8, 4, 5, 3, 6, 2, 7},
	)
	if err != nil {
		panic(err)
	}
	return cfg
}
