package handlers

import (
	"errors"
	"net/http"

	"fc-ssoa-api/club/models"
	"fc-ssoa-api/club/services"

	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	announcementService *services.AnnouncementService
}

func NewAnnouncementHandler(announcementService *services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
	}
}

// GetAnnouncements retrieves announcements
// @Summary List announcements
// @Description Get announcements ordered by creation time (newest first)
// @Tags announcements
// @Produce json
// @Param limit query int false "Limit number of results (default: 20, max: 100)"
// @Success 200 {array} models.Announcement
// @Failure 400 {object} map[string]string
// @Router /announcements [get]
func (h *AnnouncementHandler) GetAnnouncements(c *gin.Context) {
	limit, ok := parseLimit(c, 20, 100)
	if !ok {
		return
	}

	announcements, err := h.announcementService.GetAnnouncements(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve announcements"})
		return
	}

	c.JSON(http.StatusOK, announcements)
}

// GetAnnouncement retrieves an announcement by ID
// @Summary Get announcement
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} models.Announcement
// @Failure 404 {object} map[string]string
// @Router /announcements/{id} [get]
func (h *AnnouncementHandler) GetAnnouncement(c *gin.Context) {
	announcement, err := h.announcementService.GetAnnouncement(c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, announcement)
}

// CreateAnnouncement posts a news announcement
// @Summary Create announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param announcement body models.CreateAnnouncementRequest true "Announcement data"
// @Success 201 {object} models.Announcement
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /announcements [post]
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req models.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	announcement, err := h.announcementService.CreateAnnouncement(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create announcement"})
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

// UpdateAnnouncement modifies an announcement
// @Summary Update announcement
// @Description Merge the provided fields; the updated timestamp always advances
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param announcement body models.UpdateAnnouncementRequest true "Fields to update"
// @Success 200 {object} models.Announcement
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /announcements/{id} [put]
func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	var req models.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	announcement, err := h.announcementService.UpdateAnnouncement(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update announcement"})
		return
	}

	c.JSON(http.StatusOK, announcement)
}

// DeleteAnnouncement removes an announcement
// @Summary Delete announcement
// @Tags announcements
// @Param id path string true "Announcement ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	if err := h.announcementService.DeleteAnnouncement(c.Param("id")); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete announcement"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetLatestAnnouncements retrieves the most recent announcements
// @Summary Latest announcements
// @Tags announcements
// @Produce json
// @Param limit query int false "Number of announcements to retrieve (default: 5, max: 20)"
// @Success 200 {array} models.Announcement
// @Failure 400 {object} map[string]string
// @Router /announcements/latest/list [get]
func (h *AnnouncementHandler) GetLatestAnnouncements(c *gin.Context) {
	limit, ok := parseLimit(c, 5, 20)
	if !ok {
		return
	}

	announcements, err := h.announcementService.GetAnnouncements(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve announcements"})
		return
	}

	c.JSON(http.StatusOK, announcements)
}
