// Package club wires the four stores of the FC Ssoa backend — roster,
// matches, announcements and the team aggregate — into their HTTP
// routes.
package club

import (
	"fc-ssoa-api/club/handlers"
	"fc-ssoa-api/club/models"
	"fc-ssoa-api/club/roster"
	"fc-ssoa-api/club/services"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

// Identity is the club's static identity, served on /team/info.
type Identity struct {
	Name        string
	Founded     string
	Description string
}

type Module struct {
	PlayerHandler       *handlers.PlayerHandler
	PlayerService       *services.PlayerService
	MatchHandler        *handlers.MatchHandler
	MatchService        *services.MatchService
	AnnouncementHandler *handlers.AnnouncementHandler
	AnnouncementService *services.AnnouncementService
	TeamHandler         *handlers.TeamHandler
	TeamService         *services.TeamService

	table *roster.Table
}

func NewModule(db *gorm.DB, table *roster.Table, record models.TeamRecord, identity Identity, clock clockwork.Clock) *Module {
	playerService := services.NewPlayerService(table)
	playerHandler := handlers.NewPlayerHandler(playerService)

	matchService := services.NewMatchService(db, playerService, clock)
	matchHandler := handlers.NewMatchHandler(matchService, playerService)

	announcementService := services.NewAnnouncementService(db, clock)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)

	teamService := services.NewTeamService(playerService, matchService, record, identity.Name, identity.Founded, identity.Description)
	teamHandler := handlers.NewTeamHandler(teamService)

	return &Module{
		PlayerHandler:       playerHandler,
		PlayerService:       playerService,
		MatchHandler:        matchHandler,
		MatchService:        matchService,
		AnnouncementHandler: announcementHandler,
		AnnouncementService: announcementService,
		TeamHandler:         teamHandler,
		TeamService:         teamService,
		table:               table,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	players := r.Group("/players")
	{
		players.GET("", m.PlayerHandler.GetPlayers)
		players.POST("", m.PlayerHandler.CreatePlayer)
		players.GET("/top/scorers", m.PlayerHandler.GetTopScorers)
		players.GET("/top/assisters", m.PlayerHandler.GetTopAssisters)
		players.GET("/:id", m.PlayerHandler.GetPlayer)
		players.PUT("/:id", m.PlayerHandler.UpdatePlayer)
		players.DELETE("/:id", m.PlayerHandler.DeletePlayer)
	}

	matches := r.Group("/matches")
	{
		matches.GET("", m.MatchHandler.GetMatches)
		matches.POST("", m.MatchHandler.CreateMatch)
		matches.GET("/players-for-stats", m.MatchHandler.GetPlayersForStats)
		matches.GET("/upcoming/list", m.MatchHandler.GetUpcomingMatches)
		matches.GET("/completed/list", m.MatchHandler.GetCompletedMatches)
		matches.GET("/:id", m.MatchHandler.GetMatch)
		matches.PUT("/:id", m.MatchHandler.UpdateMatch)
		matches.POST("/:id/complete", m.MatchHandler.CompleteMatch)
		matches.DELETE("/:id", m.MatchHandler.DeleteMatch)
	}

	announcements := r.Group("/announcements")
	{
		announcements.GET("", m.AnnouncementHandler.GetAnnouncements)
		announcements.POST("", m.AnnouncementHandler.CreateAnnouncement)
		announcements.GET("/latest/list", m.AnnouncementHandler.GetLatestAnnouncements)
		announcements.GET("/:id", m.AnnouncementHandler.GetAnnouncement)
		announcements.PUT("/:id", m.AnnouncementHandler.UpdateAnnouncement)
		announcements.DELETE("/:id", m.AnnouncementHandler.DeleteAnnouncement)
	}

	team := r.Group("/team")
	{
		team.GET("/info", m.TeamHandler.GetInfo)
		team.GET("/stats", m.TeamHandler.GetStats)
		team.GET("/members", m.TeamHandler.GetMembers)
	}
}

// Close flushes the roster table a final time.
func (m *Module) Close() error {
	return m.table.Close()
}
