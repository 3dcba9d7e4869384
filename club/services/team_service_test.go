package services

import (
	"testing"

	"fc-ssoa-api/club/models"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeamService(t *testing.T, record models.TeamRecord) (*TeamService, *MatchService) {
	t.Helper()

	players := NewPlayerService(newTestRoster(t))
	matches := NewMatchService(newTestDB(t), players, clockwork.NewFakeClock())
	team := NewTeamService(players, matches, record, "FC Ssoa", "2020", "early morning soccer club")
	return team, matches
}

func TestGetInfo(t *testing.T) {
	team, _ := newTeamService(t, models.TeamRecord{
		TotalMatches: 37,
		Wins:         21,
		Draws:        6,
		Losses:       10,
	})

	info := team.GetInfo()
	assert.Equal(t, "FC Ssoa", info.Name)
	assert.Equal(t, "2020", info.Founded)
	assert.Equal(t, 4, info.TotalPlayers)
	assert.Equal(t, 37, info.TotalMatches)
	assert.Equal(t, 21, info.Wins)
}

func TestGetStatsWinRateRoundedToTwoDecimals(t *testing.T) {
	team, _ := newTeamService(t, models.TeamRecord{
		TotalMatches:  37,
		Wins:          21,
		GoalsScored:   68,
		GoalsConceded: 45,
	})

	stats, err := team.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 56.76, stats.WinRate)
	assert.Equal(t, 68, stats.TotalGoalsScored)
	assert.Equal(t, 45, stats.TotalGoalsConceded)
}

func TestGetStatsWinRateExact(t *testing.T) {
	team, _ := newTeamService(t, models.TeamRecord{TotalMatches: 10, Wins: 6})

	stats, err := team.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 60.0, stats.WinRate)
}

func TestGetStatsZeroMatchesGuardsDivision(t *testing.T) {
	team, _ := newTeamService(t, models.TeamRecord{})

	stats, err := team.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.WinRate)
}

func TestGetStatsCountsUpcomingMatches(t *testing.T) {
	team, matches := newTeamService(t, models.TeamRecord{TotalMatches: 10, Wins: 6})

	scheduleMatch(t, matches, "A", "2025-03-01")
	m := scheduleMatch(t, matches, "B", "2025-04-01")
	_, err := matches.CompleteMatch(m.ID, models.CompleteMatchRequest{HomeScore: 1, AwayScore: 0})
	require.NoError(t, err)

	stats, err := team.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.UpcomingMatches)
}

func TestGetMembersReturnsFullRoster(t *testing.T) {
	team, _ := newTeamService(t, models.TeamRecord{})

	members := team.GetMembers()
	assert.Len(t, members, 4)
}
