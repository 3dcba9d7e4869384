package handlers

import (
	"net/http"

	"fc-ssoa-api/club/services"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// GetInfo retrieves the club's identity and lifetime record
// @Summary Team info
// @Tags team
// @Produce json
// @Success 200 {object} models.TeamInfo
// @Router /team/info [get]
func (h *TeamHandler) GetInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.teamService.GetInfo())
}

// GetStats retrieves derived team statistics
// @Summary Team statistics
// @Description Win rate, goal totals and upcoming match count, recomputed on every call
// @Tags team
// @Produce json
// @Success 200 {object} models.TeamStats
// @Failure 500 {object} map[string]string
// @Router /team/stats [get]
func (h *TeamHandler) GetStats(c *gin.Context) {
	stats, err := h.teamService.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve team statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetMembers retrieves the full roster
// @Summary Team members
// @Tags team
// @Produce json
// @Success 200 {array} models.Player
// @Router /team/members [get]
func (h *TeamHandler) GetMembers(c *gin.Context) {
	c.JSON(http.StatusOK, h.teamService.GetMembers())
}
