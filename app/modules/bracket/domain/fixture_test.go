package bracketdomain_test

import (
	"testing"

	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
	"github.com/Black-And-White-Club/bracketeering/internal/testutils"
	"github.com/stretchr/testify/require"
)

// smallTopology is an 8-slot bracket:
//
//	a | b | c | q1/q2 | d | e | f | q3/q4
//
// quarterfinal matchups are [a b] [c q1 q2] [d e] [f q3 q4], semifinals
// [a b c q1 q2] [d e f q3 q4].
func smallTopology(t *testing.T) *bracketdomain.Topology {
	t.Helper()
	entries := []bracketdomain.StartEntry{
		{Line: 1, Teams: []bracketdomain.Team{{ID: "a", Name: "Alpha"}}},
		{Line: 2, Teams: []bracketdomain.Team{{ID: "b", Name: "Bravo"}}},
		{Line: 3, Teams: []bracketdomain.Team{{ID: "c"}}},
		{Line: 4, Teams: []bracketdomain.Team{{ID: "q1"}, {ID: "q2"}}},
		{Line: 5, Teams: []bracketdomain.Team{{ID: "d"}}},
		{Line: 6, Teams: []bracketdomain.Team{{ID: "e"}}},
		{Line: 7, Teams: []bracketdomain.Team{{ID: "f"}}},
		{Line: 8, Teams: []bracketdomain.Team{{ID: "q3"}, {ID: "q4"}}},
	}
	topology, err := bracketdomain.NewTopology(testutils.SmallBracketConfig(), entries)
	require.NoError(t, err)
	return topology
}

func smallFinal() bracketdomain.Record {
	return bracketdomain.Record{
		{"q1", "q4"},
		{"a", "q1", "e", "q4"},
		{"q1", "e"},
		{"e"},
	}
}

func defaultTopology(t *testing.T, seed uint64) (*bracketdomain.Topology, *testutils.TournamentGenerator) {
	t.Helper()
	gen := testutils.NewTournamentGenerator(bracketdomain.DefaultBracketConfig(), seed)
	topology, err := gen.Topology()
	require.NoError(t, err)
	return topology, gen
}
