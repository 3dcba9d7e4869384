package models

type PlayerPosition string

const (
	PositionGoalkeeper PlayerPosition = "goalkeeper"
	PositionDefender   PlayerPosition = "defender"
	PositionMidfielder PlayerPosition = "midfielder"
	PositionForward    PlayerPosition = "forward"
)

// positionCodes maps a position to its short code in the roster CSV.
var positionCodes = map[PlayerPosition]string{
	PositionGoalkeeper: "GK",
	PositionDefender:   "DF",
	PositionMidfielder: "MF",
	PositionForward:    "FW",
}

// Code returns the two-letter roster code for the position.
func (p PlayerPosition) Code() string {
	if code, ok := positionCodes[p]; ok {
		return code
	}
	return "MF"
}

func (p PlayerPosition) Valid() bool {
	_, ok := positionCodes[p]
	return ok
}

// PositionFromCode maps a roster code back to a position. Unknown codes
// fall back to midfielder, matching how the roster file was curated.
func PositionFromCode(code string) PlayerPosition {
	for pos, c := range positionCodes {
		if c == code {
			return pos
		}
	}
	return PositionMidfielder
}

// Player is a roster entry. The name is the identity: re-creating a
// player with an existing name overwrites the previous entry.
type Player struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Position      PlayerPosition `json:"position"`
	JerseyNumber  *int           `json:"jersey_number"`
	Phone         *string        `json:"phone"`
	Email         *string        `json:"email"`
	JoinDate      *string        `json:"join_date"`
	Goals         int            `json:"goals"`
	Assists       int            `json:"assists"`
	MatchesPlayed int            `json:"matches_played"`
}

type CreatePlayerRequest struct {
	Name         string         `json:"name" binding:"required,min=1,max=100"`
	Position     PlayerPosition `json:"position" binding:"required,oneof=goalkeeper defender midfielder forward"`
	JerseyNumber *int           `json:"jersey_number" binding:"omitempty,gte=1,lte=99"`
	Phone        *string        `json:"phone"`
	Email        *string        `json:"email" binding:"omitempty,email"`
	JoinDate     *string        `json:"join_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdatePlayerRequest carries one optional slot per mutable attribute.
// A nil slot leaves the stored field untouched.
type UpdatePlayerRequest struct {
	Name         *string         `json:"name" binding:"omitempty,min=1,max=100"`
	Position     *PlayerPosition `json:"position" binding:"omitempty,oneof=goalkeeper defender midfielder forward"`
	JerseyNumber *int            `json:"jersey_number" binding:"omitempty,gte=1,lte=99"`
	Phone        *string         `json:"phone"`
	Email        *string         `json:"email" binding:"omitempty,email"`
	JoinDate     *string         `json:"join_date" binding:"omitempty,datetime=2006-01-02"`
}

// PlayerRef is the projection used when picking scorers and assisters
// for a completed match.
type PlayerRef struct {
	Name         string         `json:"name"`
	Position     PlayerPosition `json:"position"`
	JerseyNumber *int           `json:"jersey_number"`
}
