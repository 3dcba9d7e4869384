package models

import "time"

type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusOngoing   MatchStatus = "ongoing"
	StatusCompleted MatchStatus = "completed"
	StatusCancelled MatchStatus = "cancelled"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// transitions lists the status changes a generic update may perform.
// "completed" is only reachable through the completion operation, and
// completed/cancelled are terminal.
var transitions = map[MatchStatus][]MatchStatus{
	StatusScheduled: {StatusOngoing, StatusCancelled},
	StatusOngoing:   {StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransitionTo reports whether a generic update may move a match
// from s to next. Setting the current status again is a no-op and is
// always allowed.
func (s MatchStatus) CanTransitionTo(next MatchStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// GoalContribution credits a named player with a number of goals or
// assists in a single match.
type GoalContribution struct {
	PlayerName string `json:"player_name" binding:"required,min=1,max=100"`
	Count      int    `json:"count" binding:"omitempty,gte=1"`
}

type Match struct {
	ID        string             `gorm:"primaryKey;size:36" json:"id"`
	Opponent  string             `gorm:"size:100;not null" json:"opponent"`
	MatchDate string             `gorm:"size:10;not null;index" json:"match_date"`
	Location  string             `gorm:"size:200;not null" json:"location"`
	HomeAway  string             `gorm:"size:10;not null" json:"home_away"`
	Status    MatchStatus        `gorm:"size:20;default:scheduled" json:"status"`
	HomeScore *int               `json:"home_score"`
	AwayScore *int               `json:"away_score"`
	Notes     *string            `json:"notes"`
	Goals     []GoalContribution `gorm:"serializer:json" json:"goals"`
	Assists   []GoalContribution `gorm:"serializer:json" json:"assists"`
	CreatedAt time.Time          `gorm:"autoCreateTime:false" json:"created_at"`
}

func (Match) TableName() string {
	return "matches"
}

type CreateMatchRequest struct {
	Opponent  string  `json:"opponent" binding:"required,min=1,max=100"`
	MatchDate string  `json:"match_date" binding:"required,datetime=2006-01-02"`
	Location  string  `json:"location" binding:"required,min=1,max=200"`
	HomeAway  string  `json:"home_away" binding:"required,oneof=home away"`
	Notes     *string `json:"notes"`
}

type UpdateMatchRequest struct {
	Opponent  *string      `json:"opponent" binding:"omitempty,min=1,max=100"`
	MatchDate *string      `json:"match_date" binding:"omitempty,datetime=2006-01-02"`
	Location  *string      `json:"location" binding:"omitempty,min=1,max=200"`
	HomeAway  *string      `json:"home_away" binding:"omitempty,oneof=home away"`
	Status    *MatchStatus `json:"status" binding:"omitempty,oneof=scheduled ongoing completed cancelled"`
	HomeScore *int         `json:"home_score" binding:"omitempty,gte=0"`
	AwayScore *int         `json:"away_score" binding:"omitempty,gte=0"`
	Notes     *string      `json:"notes"`
}

type CompleteMatchRequest struct {
	HomeScore int                `json:"home_score" binding:"gte=0"`
	AwayScore int                `json:"away_score" binding:"gte=0"`
	Goals     []GoalContribution `json:"goals" binding:"omitempty,dive"`
	Assists   []GoalContribution `json:"assists" binding:"omitempty,dive"`
}
