package bracketdomain_test

import (
	"testing"

	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestHasConcluded(t *testing.T) {
	topology := smallTopology(t)
	results := bracketdomain.Record{{"q1", "q4"}, {"b"}}

	tests := []struct {
		name  string
		team  bracketdomain.TeamID
		round int
		want  bool
	}{
		{name: "play-in winner", team: "q1", round: 0, want: true},
		{name: "play-in loser", team: "q3", round: 0, want: true},
		{name: "decided quarterfinal loser", team: "a", round: 1, want: true},
		{name: "decided quarterfinal winner", team: "b", round: 1, want: true},
		{name: "undecided quarterfinal", team: "c", round: 1, want: false},
		{name: "round not reached", team: "b", round: 2, want: false},
		{name: "start-slot team has no play-in game", team: "a", round: 0, want: false},
		{name: "unknown team", team: "zz", round: 1, want: false},
		{name: "round outside the bracket", team: "b", round: 9, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, bracketdomain.HasConcluded(topology, results, tt.team, tt.round))
		})
	}

	t.Run("both members recorded is not concluded", func(t *testing.T) {
		require.False(t, bracketdomain.HasConcluded(topology, bracketdomain.Record{{"q1", "q2"}}, "q1", 0))
	})
}

func TestHasConcluded_MatchesResults(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		topology, gen := defaultTopology(t, seed)
		results := gen.PartialRecord(topology, 4, 3)

		for r := range results {
			resolver, _ := topology.Resolver(r)
			for _, matchup := range resolver.Matchups() {
				decided := matchup.WinnersIn(results[r]) == 1
				for _, team := range matchup {
					require.Equal(t, decided, bracketdomain.HasConcluded(topology, results, team, r),
						"seed %d round %d team %s", seed, r, team)
				}
			}
		}
	}
}

func TestScorer_Score(t *testing.T) {
	topology := smallTopology(t)
	results := bracketdomain.Record{{"q1", "q4"}, {"b"}}
	prediction := bracketdomain.Record{
		{"q1", "q3"},
		{"a", "q1", "e", "q3"},
		{"a", "e"},
		{"a"},
	}

	got := bracketdomain.NewScorer(topology, results).Score("alice", prediction)

	want := bracketdomain.Scorecard{
		Competitor: "alice",
		Rounds: []bracketdomain.RoundCard{
			{Round: 0, Name: "play-in", Score: 1, Potential: 1, Picks: []bracketdomain.Pick{
				{Team: "q1", Verdict: bracketdomain.VerdictCorrect, Points: 1, Potential: 1},
				{Team: "q3", Verdict: bracketdomain.VerdictIncorrect},
			}},
			// round 1 never short-circuits: q3 lost its play-in but its quarterfinal is still open
			{Round: 1, Name: "quarterfinal", Score: 0, Potential: 6, Picks: []bracketdomain.Pick{
				{Team: "a", Verdict: bracketdomain.VerdictIncorrect},
				{Team: "q1", Verdict: bracketdomain.VerdictPending, Potential: 2},
				{Team: "e", Verdict: bracketdomain.VerdictPending, Potential: 2},
				{Team: "q3", Verdict: bracketdomain.VerdictPending, Potential: 2},
			}},
			{Round: 2, Name: "semifinal", Score: 0, Potential: 4, Picks: []bracketdomain.Pick{
				{Team: "a", Verdict: bracketdomain.VerdictIncorrect},
				{Team: "e", Verdict: bracketdomain.VerdictPending, Potential: 4},
			}},
			{Round: 3, Name: "final", Score: 0, Potential: 0, Picks: []bracketdomain.Pick{
				{Team: "a", Verdict: bracketdomain.VerdictIncorrect},
			}},
		},
		Actual:    1,
		Potential: 11,
		Pending:   4,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Score() mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []int{1, 0, 0, 0}, got.RoundScores())

	v, ok := got.Verdict(2, "e")
	require.True(t, ok)
	require.Equal(t, bracketdomain.VerdictPending, v)
	_, ok = got.Verdict(2, "q1")
	require.False(t, ok)

	require.Equal(t, map[bracketdomain.Verdict]int{
		bracketdomain.VerdictCorrect:   1,
		bracketdomain.VerdictIncorrect: 4,
		bracketdomain.VerdictPending:   4,
	}, got.CountVerdicts())
}

func TestScorer_CompleteResults(t *testing.T) {
	topology := smallTopology(t)
	scorer := bracketdomain.NewScorer(topology, smallFinal())

	perfect := scorer.Score("perfect", smallFinal())
	require.Equal(t, 2*1+4*2+2*4+8, perfect.Actual)
	require.Equal(t, perfect.Actual, perfect.Potential)
	require.Zero(t, perfect.Pending)
}

func TestScorer_LiveTournament(t *testing.T) {
	topology, gen := defaultTopology(t, 2024)
	final := gen.CompleteRecord(topology)

	// qualifying round decided, first 16 of 32 second-round games decided
	results := bracketdomain.Record{final[0], final[1][:16]}
	require.NoError(t, bracketdomain.Validate(topology, results, bracketdomain.ModeInProgress))

	card := bracketdomain.NewScorer(topology, results).Score("oracle", final)

	require.Equal(t, 4, card.Rounds[0].Score)
	require.Equal(t, 4, card.Rounds[0].Potential)
	require.Equal(t, 32, card.Rounds[1].Score)
	require.Equal(t, 64, card.Rounds[1].Potential)
	for i, pick := range card.Rounds[1].Picks {
		if i < 16 {
			require.Equal(t, bracketdomain.VerdictCorrect, pick.Verdict)
			require.Equal(t, 2, pick.Points)
			continue
		}
		require.Equal(t, bracketdomain.VerdictPending, pick.Verdict)
		require.Zero(t, pick.Points)
		require.Equal(t, 2, pick.Potential)
	}
	require.Equal(t, 36, card.Actual)
	require.Equal(t, 36+32+5*64, card.Potential)
}

func TestScorer_EliminationPropagates(t *testing.T) {
	for seed := uint64(1); seed <= 15; seed++ {
		topology, gen := defaultTopology(t, seed)
		truth := gen.CompleteRecord(topology)
		results := bracketdomain.Record{truth[0], truth[1]}

		// an independent guess with a different seed
		_, guesser := defaultTopology(t, seed+1000)
		prediction := guesser.CompleteRecord(topology)
		require.NoError(t, bracketdomain.Validate(topology, prediction, bracketdomain.ModeFinal))

		card := bracketdomain.NewScorer(topology, results).Score("guesser", prediction)

		for r := 2; r < len(card.Rounds); r++ {
			for _, pick := range card.Rounds[r].Picks {
				prev, ok := card.Verdict(r-1, pick.Team)
				require.True(t, ok, "lineage guarantees a pick in round %d", r-1)
				if prev == bracketdomain.VerdictIncorrect {
					require.Equal(t, bracketdomain.VerdictIncorrect, pick.Verdict, "seed %d round %d team %s", seed, r, pick.Team)
					require.Zero(t, pick.Potential)
				}
			}
		}

		require.GreaterOrEqual(t, card.Potential, card.Actual)
		require.Equal(t, card.Pending == 0, card.Potential == card.Actual, "seed %d", seed)
	}
}

func TestScorer_EliminatedBeforeRoundIsKnown(t *testing.T) {
	topology := smallTopology(t)
	// b won the [a b] quarterfinal; no semifinal results yet
	results := bracketdomain.Record{{"q1", "q4"}, {"b", "q1", "e", "q4"}}
	prediction := bracketdomain.Record{{"q1", "q4"}, {"a", "q1", "e", "q4"}, {"a", "e"}, {"e"}}

	card := bracketdomain.NewScorer(topology, results).Score("bob", prediction)

	v, _ := card.Verdict(1, "a")
	require.Equal(t, bracketdomain.VerdictIncorrect, v)
	v, _ = card.Verdict(2, "a")
	require.Equal(t, bracketdomain.VerdictIncorrect, v)
	require.Equal(t, 4, card.Rounds[2].Potential, "only e is still alive in the semifinals")
}

func TestVerdict_String(t *testing.T) {
	require.Equal(t, "pending", bracketdomain.VerdictPending.String())
	require.Equal(t, "correct", bracketdomain.VerdictCorrect.String())
	require.Equal(t, "incorrect", bracketdomain.VerdictIncorrect.String())
}

func TestScorer_ScoreAll(t *testing.T) {
	topology := smallTopology(t)
	scorer := bracketdomain.NewScorer(topology, smallFinal())

	cards := scorer.ScoreAll(map[string]bracketdomain.Record{
		"zoe":   smallFinal(),
		"adam":  smallFinal(),
		"maria": smallFinal(),
	})

	require.Len(t, cards, 3)
	require.Equal(t, "adam", cards[0].Competitor)
	require.Equal(t, "maria", cards[1].Competitor)
	require.Equal(t, "zoe", cards[2].Competitor)
	require.Empty(t, scorer.ScoreAll(nil))
}
