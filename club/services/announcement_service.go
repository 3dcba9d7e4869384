package services

import (
	"errors"

	"fc-ssoa-api/club/models"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

type AnnouncementService struct {
	db    *gorm.DB
	clock clockwork.Clock
}

func NewAnnouncementService(db *gorm.DB, clock clockwork.Clock) *AnnouncementService {
	return &AnnouncementService{
		db:    db,
		clock: clock,
	}
}

// GetAnnouncements returns announcements newest first. A limit of 0
// means no limit.
func (s *AnnouncementService) GetAnnouncements(limit int) ([]models.Announcement, error) {
	var announcements []models.Announcement

	query := s.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

func (s *AnnouncementService) GetAnnouncement(id string) (*models.Announcement, error) {
	var announcement models.Announcement

	if err := s.db.First(&announcement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &announcement, nil
}

func (s *AnnouncementService) CreateAnnouncement(req models.CreateAnnouncementRequest) (*models.Announcement, error) {
	now := s.clock.Now()
	announcement := models.Announcement{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		Author:    req.Author,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.db.Create(&announcement).Error; err != nil {
		return nil, err
	}
	return &announcement, nil
}

// UpdateAnnouncement merges the non-nil fields of req. The updated
// timestamp is refreshed on every call, even when the partial is empty.
func (s *AnnouncementService) UpdateAnnouncement(id string, req models.UpdateAnnouncementRequest) (*models.Announcement, error) {
	announcement, err := s.GetAnnouncement(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		announcement.Title = *req.Title
	}
	if req.Content != nil {
		announcement.Content = *req.Content
	}
	if req.Author != nil {
		announcement.Author = *req.Author
	}
	announcement.UpdatedAt = s.clock.Now()

	if err := s.db.Save(announcement).Error; err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *AnnouncementService) DeleteAnnouncement(id string) error {
	result := s.db.Delete(&models.Announcement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
