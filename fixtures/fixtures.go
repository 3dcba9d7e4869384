package fixtures

import (
	"fmt"
	"time"

	"fc-ssoa-api/club/models"
	"fc-ssoa-api/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

// GenerateSeedData inserts the welcome announcements and a small match
// schedule so a fresh install has something to show.
func (f *Fixtures) GenerateSeedData() error {
	logger.Log.Info().Msg("generating seed data")

	if err := f.seedAnnouncements(); err != nil {
		return fmt.Errorf("failed to seed announcements: %w", err)
	}
	if err := f.seedMatches(); err != nil {
		return fmt.Errorf("failed to seed matches: %w", err)
	}

	return nil
}

// ClearAllData removes every match and announcement.
func (f *Fixtures) ClearAllData() error {
	logger.Log.Info().Msg("clearing seed data")

	if err := f.db.Exec("DELETE FROM matches").Error; err != nil {
		return err
	}
	return f.db.Exec("DELETE FROM announcements").Error
}

func (f *Fixtures) seedAnnouncements() error {
	now := time.Now()

	announcements := []models.Announcement{
		{
			ID:        uuid.NewString(),
			Title:     "Welcome to FC Ssoa!",
			Content:   "Welcome to our team website. Check the match schedule and team news here!",
			Author:    "Team Manager",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Title:     "Training this Saturday",
			Content:   "Training is at 7am this Saturday. Please arrive 15 minutes early.",
			Author:    "Coach",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	for _, a := range announcements {
		if err := f.db.Create(&a).Error; err != nil {
			return err
		}
	}
	return nil
}

func (f *Fixtures) seedMatches() error {
	now := time.Now()

	matches := []models.Match{
		{
			ID:        uuid.NewString(),
			Opponent:  "FC Thunder",
			MatchDate: now.AddDate(0, 0, 7).Format("2006-01-02"),
			Location:  "Riverside Pitch 2",
			HomeAway:  "home",
			Status:    models.StatusScheduled,
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Opponent:  "Dawn United",
			MatchDate: now.AddDate(0, 0, 14).Format("2006-01-02"),
			Location:  "Central Park Field",
			HomeAway:  "away",
			Status:    models.StatusScheduled,
			CreatedAt: now,
		},
	}

	for _, m := range matches {
		if err := f.db.Create(&m).Error; err != nil {
			return err
		}
	}
	return nil
}
