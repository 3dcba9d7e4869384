package migrations

import "gorm.io/gorm"

func GetClubMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_06_01_000000_create_matches_table",
			Up: func(db *gorm.DB) error {
				// goals/assists hold the per-match scorer and assister
				// entry lists as embedded JSON text.
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS matches (
						id VARCHAR(36) PRIMARY KEY,
						opponent VARCHAR(100) NOT NULL,
						match_date VARCHAR(10) NOT NULL,
						location VARCHAR(200) NOT NULL,
						home_away VARCHAR(10) NOT NULL,
						status VARCHAR(20) DEFAULT 'scheduled',
						home_score INT NULL,
						away_score INT NULL,
						notes TEXT NULL,
						goals TEXT NULL,
						assists TEXT NULL,
						created_at TIMESTAMP DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_matches_match_date ON matches(match_date);
					CREATE INDEX IF NOT EXISTS idx_matches_status ON matches(status);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS matches").Error
			},
		},
		{
			Name: "2025_06_01_000001_create_announcements_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS announcements (
						id VARCHAR(36) PRIMARY KEY,
						title VARCHAR(200) NOT NULL,
						content TEXT NOT NULL,
						author VARCHAR(100) NOT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_announcements_created_at ON announcements(created_at);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS announcements").Error
			},
		},
	}
}
