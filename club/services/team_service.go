package services

import (
	"math"

	"fc-ssoa-api/club/models"
)

// TeamService is the read-only aggregator: it combines the roster, the
// match schedule and the lifetime record summary. Nothing is cached;
// every call recomputes from current store state.
type TeamService struct {
	players *PlayerService
	matches *MatchService
	record  models.TeamRecord

	name        string
	founded     string
	description string
}

func NewTeamService(players *PlayerService, matches *MatchService, record models.TeamRecord, name, founded, description string) *TeamService {
	return &TeamService{
		players:     players,
		matches:     matches,
		record:      record,
		name:        name,
		founded:     founded,
		description: description,
	}
}

func (s *TeamService) GetInfo() models.TeamInfo {
	return models.TeamInfo{
		Name:         s.name,
		Founded:      s.founded,
		Description:  s.description,
		TotalPlayers: s.players.CountPlayers(),
		TotalMatches: s.record.TotalMatches,
		Wins:         s.record.Wins,
		Draws:        s.record.Draws,
		Losses:       s.record.Losses,
	}
}

func (s *TeamService) GetStats() (models.TeamStats, error) {
	upcoming, err := s.matches.CountByStatus(models.StatusScheduled)
	if err != nil {
		return models.TeamStats{}, err
	}

	winRate := 0.0
	if s.record.TotalMatches > 0 {
		winRate = float64(s.record.Wins) / float64(s.record.TotalMatches) * 100
		winRate = math.Round(winRate*100) / 100
	}

	return models.TeamStats{
		TotalPlayers:       s.players.CountPlayers(),
		TotalMatches:       s.record.TotalMatches,
		Wins:               s.record.Wins,
		Draws:              s.record.Draws,
		Losses:             s.record.Losses,
		WinRate:            winRate,
		TotalGoalsScored:   s.record.GoalsScored,
		TotalGoalsConceded: s.record.GoalsConceded,
		UpcomingMatches:    int(upcoming),
	}, nil
}

func (s *TeamService) GetMembers() []models.Player {
	return s.players.GetPlayers(nil, "")
}
