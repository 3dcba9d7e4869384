package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fc-ssoa-api/club/models"
	"fc-ssoa-api/club/roster"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory sqlite database with the match
// and announcement tables migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Match{}, &models.Announcement{}))
	return db
}

const testRosterCSV = `position,number,name,goals,assists,points
FW,7,Alice,10,2,12
MF,10,Bob,4,8,12
MF,8,Carol,4,1,5
DF,3,Dave,1,0,1
`

// newTestRoster loads a small roster into a temp-backed table.
func newTestRoster(t *testing.T) *roster.Table {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stats_all.csv")
	require.NoError(t, os.WriteFile(path, []byte(testRosterCSV), 0o644))

	table, err := roster.Open(path, 20)
	require.NoError(t, err)
	return table
}
