package parsers

import (
	"strings"

	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
)

// TextParser reads the plain start format: one slot per line, "ID Name" for
// a seeded team and "ID Name/ID Name" for a qualifying matchup. Names are
// optional. Blank lines are ignored but still count for line numbers.
type TextParser struct{}

// NewTextParser creates a new start.txt parser
func NewTextParser() *TextParser {
	return &TextParser{}
}

// Parse parses start.txt data.
func (p *TextParser) Parse(data []byte) ([]bracketdomain.StartEntry, error) {
	lines := strings.Split(string(data), "\n")
	entries := make([]bracketdomain.StartEntry, 0, len(lines))

	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lineno := i + 1

		parts := strings.Split(line, "/")
		if len(parts) > 2 {
			return nil, &bracketdomain.TopologyError{Line: lineno, Reason: "has multiple slashes"}
		}

		entry := bracketdomain.StartEntry{Line: lineno, Teams: make([]bracketdomain.Team, 0, len(parts))}
		for _, part := range parts {
			team, ok := parseTeamToken(part)
			if !ok {
				return nil, &bracketdomain.TopologyError{Line: lineno, Reason: "has an empty team identifier"}
			}
			entry.Teams = append(entry.Teams, team)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// parseTeamToken splits "ID Name" on the first space.
func parseTeamToken(s string) (bracketdomain.Team, bool) {
	s = strings.TrimSpace(s)
	id, name, _ := strings.Cut(s, " ")
	if id == "" {
		return bracketdomain.Team{}, false
	}
	return bracketdomain.Team{ID: bracketdomain.TeamID(id), Name: strings.TrimSpace(name)}, true
}
