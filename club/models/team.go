package models

// TeamRecord is the club's lifetime aggregate, loaded once at startup
// from the record summary CSV. Read-only for the process lifetime.
type TeamRecord struct {
	TotalMatches  int `json:"total_matches"`
	Wins          int `json:"wins"`
	Draws         int `json:"draws"`
	Losses        int `json:"losses"`
	GoalsScored   int `json:"goals_scored"`
	GoalsConceded int `json:"goals_conceded"`
}

type TeamInfo struct {
	Name         string `json:"name"`
	Founded      string `json:"founded"`
	Description  string `json:"description"`
	TotalPlayers int    `json:"total_players"`
	TotalMatches int    `json:"total_matches"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
}

type TeamStats struct {
	TotalPlayers       int     `json:"total_players"`
	TotalMatches       int     `json:"total_matches"`
	Wins               int     `json:"wins"`
	Draws              int     `json:"draws"`
	Losses             int     `json:"losses"`
	WinRate            float64 `json:"win_rate"`
	TotalGoalsScored   int     `json:"total_goals_scored"`
	TotalGoalsConceded int     `json:"total_goals_conceded"`
	UpcomingMatches    int     `json:"upcoming_matches"`
}
