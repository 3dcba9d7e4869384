package services

import (
	"sort"

	"fc-ssoa-api/club/models"
	"fc-ssoa-api/club/roster"
)

type PlayerService struct {
	roster *roster.Table
}

func NewPlayerService(table *roster.Table) *PlayerService {
	return &PlayerService{
		roster: table,
	}
}

// GetPlayers returns the roster, optionally filtered by position and
// sorted by the requested field. The default order is by name.
func (s *PlayerService) GetPlayers(position *models.PlayerPosition, sortBy string) []models.Player {
	players := s.roster.All()

	if position != nil {
		filtered := players[:0]
		for _, p := range players {
			if p.Position == *position {
				filtered = append(filtered, p)
			}
		}
		players = filtered
	}

	switch sortBy {
	case "goals":
		sort.SliceStable(players, func(i, j int) bool { return players[i].Goals > players[j].Goals })
	case "assists":
		sort.SliceStable(players, func(i, j int) bool { return players[i].Assists > players[j].Assists })
	case "matches_played":
		sort.SliceStable(players, func(i, j int) bool { return players[i].MatchesPlayed > players[j].MatchesPlayed })
	default:
		sort.SliceStable(players, func(i, j int) bool { return players[i].Name < players[j].Name })
	}

	return players
}

func (s *PlayerService) GetPlayer(name string) (models.Player, error) {
	return s.roster.Get(name)
}

// CreatePlayer inserts a new roster entry, or overwrites the existing
// one when the name is already taken. Counters start at zero.
func (s *PlayerService) CreatePlayer(req models.CreatePlayerRequest) (models.Player, error) {
	player := models.Player{
		Name:         req.Name,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		Phone:        req.Phone,
		Email:        req.Email,
		JoinDate:     req.JoinDate,
	}
	return s.roster.Put(player)
}

// UpdatePlayer merges the non-nil fields of req into the stored player.
// Renaming re-keys the entry under the new name.
func (s *PlayerService) UpdatePlayer(name string, req models.UpdatePlayerRequest) (models.Player, error) {
	player, err := s.roster.Get(name)
	if err != nil {
		return models.Player{}, err
	}

	if req.Name != nil && *req.Name != name {
		if _, err := s.roster.Delete(name); err != nil {
			return models.Player{}, err
		}
		player.Name = *req.Name
	}
	if req.Position != nil {
		player.Position = *req.Position
	}
	if req.JerseyNumber != nil {
		player.JerseyNumber = req.JerseyNumber
	}
	if req.Phone != nil {
		player.Phone = req.Phone
	}
	if req.Email != nil {
		player.Email = req.Email
	}
	if req.JoinDate != nil {
		player.JoinDate = req.JoinDate
	}

	return s.roster.Put(player)
}

func (s *PlayerService) DeletePlayer(name string) (bool, error) {
	return s.roster.Delete(name)
}

// AddStats credits goal and assist deltas to the named player.
func (s *PlayerService) AddStats(name string, goals, assists int) (models.Player, error) {
	return s.roster.AddStats(name, goals, assists)
}

func (s *PlayerService) GetTopScorers(limit int) []models.Player {
	players := s.roster.All()
	sort.SliceStable(players, func(i, j int) bool { return players[i].Goals > players[j].Goals })
	return truncate(players, limit)
}

func (s *PlayerService) GetTopAssisters(limit int) []models.Player {
	players := s.roster.All()
	sort.SliceStable(players, func(i, j int) bool { return players[i].Assists > players[j].Assists })
	return truncate(players, limit)
}

func (s *PlayerService) CountPlayers() int {
	return s.roster.Len()
}

// GetPlayerRefs returns the name/position/jersey projection used by the
// match completion form to pick scorers and assisters.
func (s *PlayerService) GetPlayerRefs() []models.PlayerRef {
	players := s.GetPlayers(nil, "")
	refs := make([]models.PlayerRef, 0, len(players))
	for _, p := range players {
		refs = append(refs, models.PlayerRef{
			Name:         p.Name,
			Position:     p.Position,
			JerseyNumber: p.JerseyNumber,
		})
	}
	return refs
}

func truncate(players []models.Player, limit int) []models.Player {
	if limit > 0 && limit < len(players) {
		return players[:limit]
	}
	return players
}
