package services

import (
	"testing"
	"time"

	"fc-ssoa-api/club/models"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnnouncementService(t *testing.T) (*AnnouncementService, *clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClock()
	return NewAnnouncementService(newTestDB(t), clock), clock
}

func postAnnouncement(t *testing.T, svc *AnnouncementService, title string) *models.Announcement {
	t.Helper()

	announcement, err := svc.CreateAnnouncement(models.CreateAnnouncementRequest{
		Title:   title,
		Content: "some content",
		Author:  "Coach",
	})
	require.NoError(t, err)
	return announcement
}

func TestCreateAnnouncementTimestampsAreEqual(t *testing.T) {
	svc, _ := newAnnouncementService(t)

	announcement := postAnnouncement(t, svc, "Welcome")
	assert.NotEmpty(t, announcement.ID)
	assert.True(t, announcement.CreatedAt.Equal(announcement.UpdatedAt))
}

func TestGetAnnouncementsNewestFirst(t *testing.T) {
	svc, clock := newAnnouncementService(t)

	postAnnouncement(t, svc, "first")
	clock.Advance(time.Minute)
	postAnnouncement(t, svc, "second")
	clock.Advance(time.Minute)
	postAnnouncement(t, svc, "third")

	announcements, err := svc.GetAnnouncements(0)
	require.NoError(t, err)
	require.Len(t, announcements, 3)
	assert.Equal(t, "third", announcements[0].Title)
	assert.Equal(t, "first", announcements[2].Title)

	limited, err := svc.GetAnnouncements(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestUpdateAnnouncementMergesAndRefreshesTimestamp(t *testing.T) {
	svc, clock := newAnnouncementService(t)
	announcement := postAnnouncement(t, svc, "Training")

	clock.Advance(time.Hour)

	title := "Training moved"
	updated, err := svc.UpdateAnnouncement(announcement.ID, models.UpdateAnnouncementRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Training moved", updated.Title)
	assert.Equal(t, "some content", updated.Content)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestUpdateAnnouncementEmptyPartialStillAdvancesUpdatedAt(t *testing.T) {
	svc, clock := newAnnouncementService(t)
	announcement := postAnnouncement(t, svc, "Training")

	clock.Advance(time.Hour)

	updated, err := svc.UpdateAnnouncement(announcement.ID, models.UpdateAnnouncementRequest{})
	require.NoError(t, err)
	assert.Equal(t, announcement.Title, updated.Title)
	assert.Equal(t, announcement.Content, updated.Content)
	assert.True(t, updated.UpdatedAt.After(announcement.UpdatedAt))
}

func TestUpdateMissingAnnouncement(t *testing.T) {
	svc, _ := newAnnouncementService(t)

	_, err := svc.UpdateAnnouncement("no-such-id", models.UpdateAnnouncementRequest{})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteAnnouncement(t *testing.T) {
	svc, _ := newAnnouncementService(t)
	announcement := postAnnouncement(t, svc, "Bye")

	require.NoError(t, svc.DeleteAnnouncement(announcement.ID))
	assert.ErrorIs(t, svc.DeleteAnnouncement(announcement.ID), models.ErrNotFound)
}
