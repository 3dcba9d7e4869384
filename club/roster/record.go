package roster

import (
	"encoding/csv"
	"fmt"
	"os"

	"fc-ssoa-api/club/models"
)

// recordHeader is the column layout of the team record summary file.
var recordHeader = []string{"matches", "wins", "draws", "losses", "goals_for", "goals_against"}

// LoadRecord reads the club's lifetime record summary. Only the first
// data row is used.
func LoadRecord(path string) (models.TeamRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.TeamRecord{}, fmt.Errorf("open team record: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return models.TeamRecord{}, fmt.Errorf("read team record: %w", err)
	}
	if len(rows) < 2 {
		return models.TeamRecord{}, fmt.Errorf("team record %s: no data row", path)
	}

	row := rows[1]
	if len(row) < len(recordHeader) {
		return models.TeamRecord{}, fmt.Errorf("team record %s: expected %d columns, got %d", path, len(recordHeader), len(row))
	}

	return models.TeamRecord{
		TotalMatches:  atoiOrZero(row[0]),
		Wins:          atoiOrZero(row[1]),
		Draws:         atoiOrZero(row[2]),
		Losses:        atoiOrZero(row[3]),
		GoalsScored:   atoiOrZero(row[4]),
		GoalsConceded: atoiOrZero(row[5]),
	}, nil
}
