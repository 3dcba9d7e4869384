package handlers

import (
	"errors"
	"net/http"

	"fc-ssoa-api/club/models"
	"fc-ssoa-api/club/services"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
}

func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// GetPlayers retrieves the roster
// @Summary List players
// @Description Get all players with optional position filter and sorting
// @Tags players
// @Produce json
// @Param position query string false "Filter by position" Enums(goalkeeper,defender,midfielder,forward)
// @Param sort_by query string false "Sort field: 'name', 'goals', 'assists', 'matches_played' (default: 'name')"
// @Success 200 {array} models.Player
// @Failure 422 {object} map[string]string
// @Router /players [get]
func (h *PlayerHandler) GetPlayers(c *gin.Context) {
	var position *models.PlayerPosition
	if positionStr := c.Query("position"); positionStr != "" {
		p := models.PlayerPosition(positionStr)
		if !p.Valid() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid position parameter"})
			return
		}
		position = &p
	}

	sortBy := c.DefaultQuery("sort_by", "name")

	c.JSON(http.StatusOK, h.playerService.GetPlayers(position, sortBy))
}

// GetPlayer retrieves a player by name
// @Summary Get player
// @Description Get a single player; the player's name is its identifier
// @Tags players
// @Produce json
// @Param id path string true "Player name"
// @Success 200 {object} models.Player
// @Failure 404 {object} map[string]string
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	player, err := h.playerService.GetPlayer(c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, player)
}

// CreatePlayer adds a player to the roster
// @Summary Create player
// @Description Create a roster entry; an existing entry with the same name is overwritten
// @Tags players
// @Accept json
// @Produce json
// @Param player body models.CreatePlayerRequest true "Player data"
// @Success 201 {object} models.Player
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req models.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.CreatePlayer(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create player"})
		return
	}

	c.JSON(http.StatusCreated, player)
}

// UpdatePlayer modifies a roster entry
// @Summary Update player
// @Description Merge the provided fields into the stored player; omitted fields are untouched
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player name"
// @Param player body models.UpdatePlayerRequest true "Fields to update"
// @Success 200 {object} models.Player
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /players/{id} [put]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	var req models.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.UpdatePlayer(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update player"})
		return
	}

	c.JSON(http.StatusOK, player)
}

// DeletePlayer removes a roster entry
// @Summary Delete player
// @Tags players
// @Param id path string true "Player name"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	removed, err := h.playerService.DeletePlayer(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete player"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTopScorers retrieves the top N goal scorers
// @Summary Top scorers
// @Tags players
// @Produce json
// @Param limit query int false "Number of players to retrieve (default: 10, max: 50)"
// @Success 200 {array} models.Player
// @Failure 400 {object} map[string]string
// @Router /players/top/scorers [get]
func (h *PlayerHandler) GetTopScorers(c *gin.Context) {
	limit, ok := parseLimit(c, 10, 50)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.playerService.GetTopScorers(limit))
}

// GetTopAssisters retrieves the top N assist providers
// @Summary Top assisters
// @Tags players
// @Produce json
// @Param limit query int false "Number of players to retrieve (default: 10, max: 50)"
// @Success 200 {array} models.Player
// @Failure 400 {object} map[string]string
// @Router /players/top/assisters [get]
func (h *PlayerHandler) GetTopAssisters(c *gin.Context) {
	limit, ok := parseLimit(c, 10, 50)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.playerService.GetTopAssisters(limit))
}
