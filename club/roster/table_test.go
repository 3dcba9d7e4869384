package roster

import (
	"os"
	"path/filepath"
	"testing"

	"fc-ssoa-api/club/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `position,number,name,goals,assists,points
FW,7,Seungmin Oh,14,6,20
MF,10,Hyunwoo Jang,9,4,13
GK,1,Minsu Kim,0,1,1
`

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stats_all.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpenLoadsRoster(t *testing.T) {
	table, err := Open(writeTable(t, sampleTable), 37)
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())

	p, err := table.Get("Seungmin Oh")
	require.NoError(t, err)
	assert.Equal(t, models.PositionForward, p.Position)
	assert.Equal(t, 14, p.Goals)
	assert.Equal(t, 6, p.Assists)
	assert.Equal(t, 37, p.MatchesPlayed)
	require.NotNil(t, p.JerseyNumber)
	assert.Equal(t, 7, *p.JerseyNumber)
}

func TestOpenMissingFileFails(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.csv"), 0)
	assert.Error(t, err)
}

func TestGetUnknownPlayer(t *testing.T) {
	table, err := Open(writeTable(t, sampleTable), 0)
	require.NoError(t, err)

	_, err = table.Get("Nobody")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPutOverwritesByName(t *testing.T) {
	table, err := Open(writeTable(t, sampleTable), 0)
	require.NoError(t, err)

	updated := models.Player{
		Name:     "Seungmin Oh",
		Position: models.PositionMidfielder,
		Goals:    20,
	}
	_, err = table.Put(updated)
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len(), "overwrite must not duplicate")

	p, err := table.Get("Seungmin Oh")
	require.NoError(t, err)
	assert.Equal(t, models.PositionMidfielder, p.Position)
	assert.Equal(t, 20, p.Goals)
	assert.Equal(t, "Seungmin Oh", p.ID)
}

func TestDeleteReportsRemoval(t *testing.T) {
	table, err := Open(writeTable(t, sampleTable), 0)
	require.NoError(t, err)

	removed, err := table.Delete("Minsu Kim")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = table.Delete("Minsu Kim")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestAddStats(t *testing.T) {
	table, err := Open(writeTable(t, sampleTable), 0)
	require.NoError(t, err)

	p, err := table.AddStats("Hyunwoo Jang", 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 11, p.Goals)
	assert.Equal(t, 5, p.Assists)

	// Zero deltas are valid.
	p, err = table.AddStats("Hyunwoo Jang", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 11, p.Goals)

	_, err = table.AddStats("Nobody", 1, 0)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestFlushRoundTrip(t *testing.T) {
	path := writeTable(t, sampleTable)

	table, err := Open(path, 37)
	require.NoError(t, err)

	jersey := 9
	_, err = table.Put(models.Player{
		Name:         "New Player",
		Position:     models.PositionDefender,
		JerseyNumber: &jersey,
	})
	require.NoError(t, err)
	require.NoError(t, table.Close())

	reloaded, err := Open(path, 37)
	require.NoError(t, err)
	assert.Equal(t, 4, reloaded.Len())

	p, err := reloaded.Get("New Player")
	require.NoError(t, err)
	assert.Equal(t, models.PositionDefender, p.Position)
	require.NotNil(t, p.JerseyNumber)
	assert.Equal(t, 9, *p.JerseyNumber)
	assert.Equal(t, 0, p.Goals)
}

func TestFlushWritesDerivedPoints(t *testing.T) {
	path := writeTable(t, sampleTable)

	table, err := Open(path, 0)
	require.NoError(t, err)
	_, err = table.AddStats("Minsu Kim", 3, 2)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "GK,1,Minsu Kim,3,3,6")
}

func TestLoadRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "team_stats.csv")
	require.NoError(t, os.WriteFile(path, []byte("matches,wins,draws,losses,goals_for,goals_against\n37,21,6,10,68,45\n"), 0o644))

	record, err := LoadRecord(path)
	require.NoError(t, err)
	assert.Equal(t, models.TeamRecord{
		TotalMatches:  37,
		Wins:          21,
		Draws:         6,
		Losses:        10,
		GoalsScored:   68,
		GoalsConceded: 45,
	}, record)
}

func TestLoadRecordMissingFileFails(t *testing.T) {
	_, err := LoadRecord(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
