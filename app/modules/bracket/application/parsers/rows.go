package parsers

import (
	"fmt"
	"strings"

	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
)

// rowsToEntries converts tabular start data. Each row is "id, name" for a
// seeded slot or "id, name, id, name" for a qualifying matchup. A first row
// whose first cell is "id" is treated as a header.
func rowsToEntries(rows [][]string) ([]bracketdomain.StartEntry, error) {
	entries := make([]bracketdomain.StartEntry, 0, len(rows))

	for i, row := range rows {
		lineno := i + 1
		cells := trimRow(row)
		if len(cells) == 0 {
			continue
		}
		if i == 0 && strings.EqualFold(cells[0], "id") {
			continue
		}
		if len(cells) > 4 {
			return nil, &bracketdomain.TopologyError{Line: lineno, Reason: fmt.Sprintf("has %d columns, want at most 4", len(cells))}
		}

		entry := bracketdomain.StartEntry{Line: lineno}
		for c := 0; c < len(cells); c += 2 {
			id := cells[c]
			var name string
			if c+1 < len(cells) {
				name = cells[c+1]
			}
			if id == "" {
				if name == "" {
					continue
				}
				return nil, &bracketdomain.TopologyError{Line: lineno, Reason: "has an empty team identifier"}
			}
			entry.Teams = append(entry.Teams, bracketdomain.Team{ID: bracketdomain.TeamID(id), Name: name})
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// trimRow trims every cell and drops trailing empty cells.
func trimRow(row []string) []string {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = strings.TrimSpace(cell)
	}
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}
