package report

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	bracketservice "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/application"
	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
	"github.com/Black-And-White-Club/bracketeering/internal/observability"
	"github.com/Black-And-White-Club/bracketeering/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

// outcomeFixture scores two competitors on the 8-slot bracket
//
//	a | b | c | q1/q2 | d | e | f | q3/q4
//
// after the play-in games and the first quarterfinal.
func outcomeFixture(t *testing.T) *bracketservice.Outcome {
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

	results := bracketdomain.Record{{"q1", "q4"}, {"b"}}
	scorer := bracketdomain.NewScorer(topology, results)
	cards := []bracketdomain.Scorecard{
		scorer.Score("alice", bracketdomain.Record{{"q1", "q3"}, {"a", "q1", "e", "q3"}, {"a", "e"}, {"a"}}),
		scorer.Score("bob", bracketdomain.Record{{"q1", "q4"}, {"b", "q1", "e", "q4"}, {"b", "e"}, {"e"}}),
	}

	return &bracketservice.Outcome{
		RunID:       uuid.MustParse("0b7e7f6a-51c1-4d4b-a0a4-2f3e8c9d1e20"),
		GeneratedAt: time.Date(2026, 3, 20, 18, 30, 0, 0, time.UTC),
		Topology:    topology,
		Results:     results,
		Scorecards:  cards,
		Standings:   bracketdomain.RankScorecards(cards),
	}
}

func classes(col Column) []string {
	out := make([]string, 0, len(col.Entries))
	for _, e := range col.Entries {
		out = append(out, string(e.Team)+":"+e.Class())
	}
	return out
}

func TestNewBracketView(t *testing.T) {
	outcome := outcomeFixture(t)
	card, _ := outcome.Scorecard("alice")
	standing := outcome.Standings[1]
	require.Equal(t, "alice", standing.Name)

	view := NewBracketView(outcome, card, standing)

	require.Equal(t, 2, view.Rank)
	require.Equal(t, 1, view.Actual)
	require.Equal(t, 11, view.Potential)
	require.Len(t, view.Columns, 5)
	require.Equal(t, []string{"play-in", "quarterfinal", "semifinal", "final", "champion"}, []string{
		view.Columns[0].Name, view.Columns[1].Name, view.Columns[2].Name, view.Columns[3].Name, view.Columns[4].Name,
	})

	require.Equal(t, []string{"q1:entrant", "q2:entrant", "q3:entrant", "q4:entrant"}, classes(view.Columns[0]))
	require.Equal(t, []string{
		"a:entrant", "b:entrant", "c:entrant", "q1:correct", "d:entrant", "e:entrant", "f:entrant", "q3:incorrect",
	}, classes(view.Columns[1]))
	require.Equal(t, []string{"a:incorrect", "q1:pending", "e:pending", "q3:pending"}, classes(view.Columns[2]))
	require.Equal(t, []string{"a:incorrect", "e:pending"}, classes(view.Columns[3]))
	require.Equal(t, []string{"a:incorrect"}, classes(view.Columns[4]))

	// won marks what happened in the results, independent of the pick
	require.True(t, view.Columns[0].Entries[0].Won)
	require.False(t, view.Columns[0].Entries[1].Won)
	require.True(t, view.Columns[1].Entries[1].Won, "b won its quarterfinal")
	require.Equal(t, "Alpha", view.Columns[1].Entries[0].Name)
	require.Equal(t, 8, view.Columns[1].Entries[1].Seed)
}

func TestNewRankingsView(t *testing.T) {
	outcome := outcomeFixture(t)
	outcome.Rejected = []bracketservice.Rejection{{
		Competitor: "carol",
		File:       "carol.json",
		Err:        &bracketservice.RecordError{File: "carol.json", Err: errors.New("bracket does not have 4 rounds")},
	}}

	view := NewRankingsView(outcome, true)
	require.True(t, view.Chart)
	require.Len(t, view.Rows, 2)
	require.Equal(t, RankingRow{Rank: 1, Name: "bob", Page: "bob.html", RoundScores: []int{2, 2, 0, 0}, Actual: 4, Potential: 26}, view.Rows[0])
	require.Equal(t, []RejectedRow{{Competitor: "carol", File: "carol.json", Reason: "bracket does not have 4 rounds"}}, view.Rejected)

	outcome.Standings = nil
	require.False(t, NewRankingsView(outcome, true).Chart)
}

func TestPageName(t *testing.T) {
	tests := []struct {
		competitor string
		want       string
	}{
		{competitor: "alice", want: "alice.html"},
		{competitor: "index", want: "index_.html"},
		{competitor: "index_", want: "index__.html"},
		{competitor: "index__", want: "index___.html"},
		{competitor: "indexer", want: "indexer.html"},
		{competitor: "_index", want: "_index.html"},
	}
	seen := map[string]string{}
	for _, tt := range tests {
		got := pageName(tt.competitor)
		require.Equal(t, tt.want, got, tt.competitor)
		require.NotEqual(t, IndexFile, got)
		require.NotContains(t, seen, got, "%s and %s share a page", seen[got], tt.competitor)
		seen[got] = tt.competitor
	}
}

func TestWriter_Write(t *testing.T) {
	ctx := context.Background()
	outcome := outcomeFixture(t)
	dir := filepath.Join(t.TempDir(), "output")

	w := NewWriter(dir, Options{Chart: true, Spreadsheet: true}, observability.NopLogger())
	require.NoError(t, w.Write(ctx, outcome))

	index, err := os.ReadFile(filepath.Join(dir, IndexFile))
	require.NoError(t, err)
	html := string(index)
	require.Contains(t, html, `<a href="bob.html">bob</a>`)
	require.Contains(t, html, `<a href="alice.html">alice</a>`)
	require.Less(t, strings.Index(html, "bob.html"), strings.Index(html, "alice.html"))
	require.Contains(t, html, `src="standings.png"`)
	require.Contains(t, html, "Run 0b7e7f6a-51c1-4d4b-a0a4-2f3e8c9d1e20, generated 2026-03-20 18:30 UTC")

	page, err := os.ReadFile(filepath.Join(dir, "alice.html"))
	require.NoError(t, err)
	require.Contains(t, string(page), `class="team correct"`)
	require.Contains(t, string(page), `class="team incorrect"`)
	require.Contains(t, string(page), "Rank 2, 1 points, 11 potential, 4 picks pending")

	css, err := os.ReadFile(filepath.Join(dir, StylesheetFile))
	require.NoError(t, err)
	require.Contains(t, string(css), ".team.correct")

	png, err := os.ReadFile(filepath.Join(dir, ChartFile))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(png, pngMagic))

	f, err := excelize.OpenFile(filepath.Join(dir, SpreadsheetFile))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(standingsSheet)
	require.NoError(t, err)
	require.Equal(t, []string{"Rank", "Name", "play-in", "quarterfinal", "semifinal", "final", "Total", "Potential"}, rows[0])
	require.Equal(t, []string{"1", "bob", "2", "2", "0", "0", "4", "26"}, rows[1])
	require.Equal(t, -1, mustSheetIndex(t, f, rejectedSheet))
}

func TestWriter_NoCompetitors(t *testing.T) {
	outcome := outcomeFixture(t)
	outcome.Scorecards = nil
	outcome.Standings = nil
	dir := t.TempDir()

	require.NoError(t, NewWriter(dir, Options{Chart: true}, observability.NopLogger()).Write(context.Background(), outcome))

	index, err := os.ReadFile(filepath.Join(dir, IndexFile))
	require.NoError(t, err)
	require.Contains(t, string(index), `<td colspan="8">No brackets were scored.</td>`)
	require.NotContains(t, string(index), "standings.png")

	png, err := os.ReadFile(filepath.Join(dir, ChartFile))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(png, pngMagic), "placeholder chart")
}

func TestWriter_UnwritableOutput(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := NewWriter(filepath.Join(blocker, "output"), Options{}, observability.NopLogger()).Write(context.Background(), outcomeFixture(t))
	require.ErrorIs(t, err, ErrWriteFailed)
}

func TestGenerateStandingsChart_Empty(t *testing.T) {
	for _, standings := range [][]bracketdomain.Standing{nil, {}} {
		png, err := GenerateStandingsChart(standings, DefaultPalette)
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(png, pngMagic))
	}
}

func TestGenerateStandingsChart_AllZero(t *testing.T) {
	png, err := GenerateStandingsChart([]bracketdomain.Standing{
		{Rank: 1, Name: "a"}, {Rank: 1, Name: "b"},
	}, DefaultPalette)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestGenerateStandingsWorkbook_Rejected(t *testing.T) {
	data, err := GenerateStandingsWorkbook(RankingsView{
		RoundNames: []string{"r0"},
		Rejected:   []RejectedRow{{Competitor: "carol", File: "carol.json", Reason: "bad"}},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(rejectedSheet)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"Competitor", "File", "Reason"}, {"carol", "carol.json", "bad"}}, rows)
}

func mustSheetIndex(t *testing.T, f *excelize.File, name string) int {
	t.Helper()
	idx, err := f.GetSheetIndex(name)
	require.NoError(t, err)
	return idx
}
