package services

import (
	"errors"

	"fc-ssoa-api/club/models"
	"fc-ssoa-api/pkg/logger"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

type MatchService struct {
	db      *gorm.DB
	players *PlayerService
	clock   clockwork.Clock
}

func NewMatchService(db *gorm.DB, players *PlayerService, clock clockwork.Clock) *MatchService {
	return &MatchService{
		db:      db,
		players: players,
		clock:   clock,
	}
}

// GetMatches returns matches ordered by match date, newest first, with
// an optional status filter. A limit of 0 means no limit.
func (s *MatchService) GetMatches(status *models.MatchStatus, limit int) ([]models.Match, error) {
	var matches []models.Match

	query := s.db.Order("match_date DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (s *MatchService) GetMatch(id string) (*models.Match, error) {
	var match models.Match

	if err := s.db.First(&match, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &match, nil
}

// CreateMatch schedules a new match. Scores stay null until the
// completion transition fills them in.
func (s *MatchService) CreateMatch(req models.CreateMatchRequest) (*models.Match, error) {
	match := models.Match{
		ID:        uuid.NewString(),
		Opponent:  req.Opponent,
		MatchDate: req.MatchDate,
		Location:  req.Location,
		HomeAway:  req.HomeAway,
		Status:    models.StatusScheduled,
		Notes:     req.Notes,
		CreatedAt: s.clock.Now(),
	}

	if err := s.db.Create(&match).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

// UpdateMatch merges the non-nil fields of req into the stored match.
// Status changes go through the transition table; reaching "completed"
// this way is rejected, CompleteMatch is the only sanctioned path.
func (s *MatchService) UpdateMatch(id string, req models.UpdateMatchRequest) (*models.Match, error) {
	match, err := s.GetMatch(id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !match.Status.CanTransitionTo(*req.Status) {
		return nil, models.ErrInvalidTransition
	}

	if req.Opponent != nil {
		match.Opponent = *req.Opponent
	}
	if req.MatchDate != nil {
		match.MatchDate = *req.MatchDate
	}
	if req.Location != nil {
		match.Location = *req.Location
	}
	if req.HomeAway != nil {
		match.HomeAway = *req.HomeAway
	}
	if req.Status != nil {
		match.Status = *req.Status
	}
	if req.HomeScore != nil {
		match.HomeScore = req.HomeScore
	}
	if req.AwayScore != nil {
		match.AwayScore = req.AwayScore
	}
	if req.Notes != nil {
		match.Notes = req.Notes
	}

	if err := s.db.Save(match).Error; err != nil {
		return nil, err
	}
	return match, nil
}

func (s *MatchService) DeleteMatch(id string) error {
	result := s.db.Delete(&models.Match{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// CompleteMatch finalizes a match's score and credits the listed
// scorers and assisters. The match row is committed first; the roster
// updates fan out afterwards and are best-effort, so an unknown player
// name skips that entry instead of unwinding an already completed
// match.
func (s *MatchService) CompleteMatch(id string, req models.CompleteMatchRequest) (*models.Match, error) {
	match, err := s.GetMatch(id)
	if err != nil {
		return nil, err
	}
	if match.Status == models.StatusCompleted {
		return nil, models.ErrMatchCompleted
	}

	match.Status = models.StatusCompleted
	match.HomeScore = &req.HomeScore
	match.AwayScore = &req.AwayScore
	match.Goals = req.Goals
	match.Assists = req.Assists

	if err := s.db.Save(match).Error; err != nil {
		return nil, err
	}

	for _, entry := range req.Goals {
		if _, err := s.players.AddStats(entry.PlayerName, contributionCount(entry), 0); err != nil {
			logger.Log.Warn().Str("player", entry.PlayerName).Str("match_id", id).
				Msg("skipping goal credit for unknown player")
		}
	}
	for _, entry := range req.Assists {
		if _, err := s.players.AddStats(entry.PlayerName, 0, contributionCount(entry)); err != nil {
			logger.Log.Warn().Str("player", entry.PlayerName).Str("match_id", id).
				Msg("skipping assist credit for unknown player")
		}
	}

	return match, nil
}

func (s *MatchService) GetUpcomingMatches(limit int) ([]models.Match, error) {
	status := models.StatusScheduled
	return s.GetMatches(&status, limit)
}

func (s *MatchService) GetCompletedMatches(limit int) ([]models.Match, error) {
	status := models.StatusCompleted
	return s.GetMatches(&status, limit)
}

// CountByStatus counts matches currently in the given status.
func (s *MatchService) CountByStatus(status models.MatchStatus) (int64, error) {
	var count int64
	if err := s.db.Model(&models.Match{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// An omitted count on a goal or assist entry means a single credit.
func contributionCount(entry models.GoalContribution) int {
	if entry.Count <= 0 {
		return 1
	}
	return entry.Count
}
