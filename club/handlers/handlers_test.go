package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fc-ssoa-api/club"
	"fc-ssoa-api/club/models"
	"fc-ssoa-api/club/roster"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testRosterCSV = `position,number,name,goals,assists,points
FW,7,Alice,10,2,12
MF,10,Bob,4,8,12
DF,3,Dave,1,0,1
`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Match{}, &models.Announcement{}))

	path := filepath.Join(t.TempDir(), "stats_all.csv")
	require.NoError(t, os.WriteFile(path, []byte(testRosterCSV), 0o644))
	table, err := roster.Open(path, 20)
	require.NoError(t, err)

	record := models.TeamRecord{TotalMatches: 10, Wins: 6, Draws: 2, Losses: 2, GoalsScored: 20, GoalsConceded: 12}
	identity := club.Identity{Name: "FC Ssoa", Founded: "2020", Description: "early morning soccer club"}

	module := club.NewModule(db, table, record, identity, clockwork.NewFakeClock())

	r := gin.New()
	module.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestCreateAndGetPlayer(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/players", `{"name":"Erin","position":"forward","jersey_number":9}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Player
	decode(t, rec, &created)
	assert.Equal(t, "Erin", created.Name)
	assert.Equal(t, 0, created.Goals)

	rec = doJSON(t, r, http.MethodGet, "/players/Erin", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched models.Player
	decode(t, rec, &fetched)
	assert.Equal(t, created, fetched)
}

func TestCreatePlayerValidation(t *testing.T) {
	r := newTestRouter(t)

	// Position outside the enum.
	rec := doJSON(t, r, http.MethodPost, "/players", `{"name":"Erin","position":"striker"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Jersey number out of range.
	rec = doJSON(t, r, http.MethodPost, "/players", `{"name":"Erin","position":"forward","jersey_number":120}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetPlayerNotFound(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/players/Nobody", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Player not found", body["error"])
}

func TestDeletePlayerReturnsNoContent(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodDelete, "/players/Alice", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doJSON(t, r, http.MethodDelete, "/players/Alice", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTopScorersLimit(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/players/top/scorers?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var players []models.Player
	decode(t, rec, &players)
	require.Len(t, players, 2)
	assert.Equal(t, "Alice", players[0].Name)

	rec = doJSON(t, r, http.MethodGet, "/players/top/scorers?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/matches", `{"opponent":"FC Thunder","match_date":"2025-07-12","location":"Riverside Pitch","home_away":"home"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var match models.Match
	decode(t, rec, &match)
	assert.Equal(t, models.StatusScheduled, match.Status)

	// Complete it, crediting Alice and Bob.
	rec = doJSON(t, r, http.MethodPost, "/matches/"+match.ID+"/complete",
		`{"home_score":3,"away_score":1,"goals":[{"player_name":"Alice","count":2}],"assists":[{"player_name":"Bob","count":1}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var completed models.Match
	decode(t, rec, &completed)
	assert.Equal(t, models.StatusCompleted, completed.Status)

	// A second completion is rejected.
	rec = doJSON(t, r, http.MethodPost, "/matches/"+match.ID+"/complete", `{"home_score":3,"away_score":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The roster reflects the credited stats.
	rec = doJSON(t, r, http.MethodGet, "/players/Alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var alice models.Player
	decode(t, rec, &alice)
	assert.Equal(t, 12, alice.Goals)

	rec = doJSON(t, r, http.MethodGet, "/matches/completed/list", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var matches []models.Match
	decode(t, rec, &matches)
	assert.Len(t, matches, 1)
}

func TestCreateMatchValidation(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/matches", `{"opponent":"FC Thunder","match_date":"12/07/2025","location":"Riverside","home_away":"home"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/matches", `{"opponent":"FC Thunder","match_date":"2025-07-12","location":"Riverside","home_away":"neutral"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateMatchInvalidTransition(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/matches", `{"opponent":"FC Thunder","match_date":"2025-07-12","location":"Riverside","home_away":"home"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var match models.Match
	decode(t, rec, &match)

	rec = doJSON(t, r, http.MethodPut, "/matches/"+match.ID, `{"status":"completed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPut, "/matches/"+match.ID, `{"status":"cancelled"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAnnouncementCRUDOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/announcements", `{"title":"Welcome","content":"Hello","author":"Coach"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var announcement models.Announcement
	decode(t, rec, &announcement)
	assert.NotEmpty(t, announcement.ID)

	rec = doJSON(t, r, http.MethodPut, "/announcements/"+announcement.ID, `{"title":"Welcome back"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Announcement
	decode(t, rec, &updated)
	assert.Equal(t, "Welcome back", updated.Title)
	assert.Equal(t, "Hello", updated.Content)

	rec = doJSON(t, r, http.MethodDelete, "/announcements/"+announcement.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/announcements/"+announcement.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTeamEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/team/info", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var info models.TeamInfo
	decode(t, rec, &info)
	assert.Equal(t, "FC Ssoa", info.Name)
	assert.Equal(t, 3, info.TotalPlayers)

	rec = doJSON(t, r, http.MethodGet, "/team/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.TeamStats
	decode(t, rec, &stats)
	assert.Equal(t, 60.0, stats.WinRate)
	assert.Equal(t, 0, stats.UpcomingMatches)

	rec = doJSON(t, r, http.MethodGet, "/team/members", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var members []models.Player
	decode(t, rec, &members)
	assert.Len(t, members, 3)
}
