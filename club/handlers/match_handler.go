package handlers

import (
	"errors"
	"net/http"

	"fc-ssoa-api/club/models"
	"fc-ssoa-api/club/services"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService  *services.MatchService
	playerService *services.PlayerService
}

func NewMatchHandler(matchService *services.MatchService, playerService *services.PlayerService) *MatchHandler {
	return &MatchHandler{
		matchService:  matchService,
		playerService: playerService,
	}
}

// GetMatches retrieves the match schedule
// @Summary List matches
// @Description Get all matches ordered by date (newest first) with optional status filter
// @Tags matches
// @Produce json
// @Param status query string false "Filter by match status" Enums(scheduled,ongoing,completed,cancelled)
// @Param limit query int false "Limit number of results (max: 100)"
// @Success 200 {array} models.Match
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	var status *models.MatchStatus
	if statusStr := c.Query("status"); statusStr != "" {
		s := models.MatchStatus(statusStr)
		if !s.Valid() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid status parameter"})
			return
		}
		status = &s
	}

	limit := 0
	if c.Query("limit") != "" {
		var ok bool
		limit, ok = parseLimit(c, 0, 100)
		if !ok {
			return
		}
	}

	matches, err := h.matchService.GetMatches(status, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve matches"})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetPlayersForStats lists players for the goal/assist selection form
// @Summary Players for match stats
// @Tags matches
// @Produce json
// @Success 200 {array} models.PlayerRef
// @Router /matches/players-for-stats [get]
func (h *MatchHandler) GetPlayersForStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.playerService.GetPlayerRefs())
}

// GetMatch retrieves a match by ID
// @Summary Get match
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} models.Match
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	match, err := h.matchService.GetMatch(c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, match)
}

// CreateMatch schedules a new match
// @Summary Create match
// @Description Create a match in "scheduled" status with null scores
// @Tags matches
// @Accept json
// @Produce json
// @Param match body models.CreateMatchRequest true "Match data"
// @Success 201 {object} models.Match
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.CreateMatch(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create match"})
		return
	}

	c.JSON(http.StatusCreated, match)
}

// UpdateMatch modifies a match
// @Summary Update match
// @Description Merge the provided fields; status changes must follow the allowed transitions
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param match body models.UpdateMatchRequest true "Fields to update"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /matches/{id} [put]
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	var req models.UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.UpdateMatch(c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		case errors.Is(err, models.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update match"})
		}
		return
	}

	c.JSON(http.StatusOK, match)
}

// CompleteMatch finalizes a match's score
// @Summary Complete match
// @Description Record the final score and credit goals/assists to the listed players
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param result body models.CompleteMatchRequest true "Final score with goal and assist entries"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /matches/{id}/complete [post]
func (h *MatchHandler) CompleteMatch(c *gin.Context) {
	var req models.CompleteMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.CompleteMatch(c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		case errors.Is(err, models.ErrMatchCompleted):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Match is already completed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete match"})
		}
		return
	}

	c.JSON(http.StatusOK, match)
}

// DeleteMatch removes a match
// @Summary Delete match
// @Tags matches
// @Param id path string true "Match ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	if err := h.matchService.DeleteMatch(c.Param("id")); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete match"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetUpcomingMatches retrieves scheduled matches
// @Summary Upcoming matches
// @Tags matches
// @Produce json
// @Param limit query int false "Number of matches to retrieve (default: 5, max: 50)"
// @Success 200 {array} models.Match
// @Failure 400 {object} map[string]string
// @Router /matches/upcoming/list [get]
func (h *MatchHandler) GetUpcomingMatches(c *gin.Context) {
	limit, ok := parseLimit(c, 5, 50)
	if !ok {
		return
	}

	matches, err := h.matchService.GetUpcomingMatches(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve upcoming matches"})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetCompletedMatches retrieves completed matches
// @Summary Completed matches
// @Tags matches
// @Produce json
// @Param limit query int false "Number of matches to retrieve (default: 10, max: 100)"
// @Success 200 {array} models.Match
// @Failure 400 {object} map[string]string
// @Router /matches/completed/list [get]
func (h *MatchHandler) GetCompletedMatches(c *gin.Context) {
	limit, ok := parseLimit(c, 10, 100)
	if !ok {
		return
	}

	matches, err := h.matchService.GetCompletedMatches(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve completed matches"})
		return
	}

	c.JSON(http.StatusOK, matches)
}
