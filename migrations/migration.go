package migrations

import (
	"fmt"
	"time"

	"fc-ssoa-api/pkg/logger"

	"gorm.io/gorm"
)

type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"unique;not null"`
	Batch     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type MigrationFunc func(*gorm.DB) error

type MigrationDefinition struct {
	Name string
	Up   MigrationFunc
	Down MigrationFunc
}

type Migrator struct {
	db         *gorm.DB
	migrations []MigrationDefinition
}

func NewMigrator(db *gorm.DB) *Migrator {
	db.AutoMigrate(&Migration{})
	return &Migrator{
		db:         db,
		migrations: []MigrationDefinition{},
	}
}

func (m *Migrator) AddMigration(migration MigrationDefinition) {
	m.migrations = append(m.migrations, migration)
}

func (m *Migrator) Migrate() error {
	logger.Log.Info().Msg("running database migrations")

	batch := m.getNextBatch()

	for _, migration := range m.migrations {
		if m.hasRun(migration.Name) {
			continue
		}

		logger.Log.Info().Str("migration", migration.Name).Msg("migrating")

		tx := m.db.Begin()

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %s failed: %w", migration.Name, err)
		}

		migrationRecord := Migration{
			Name:  migration.Name,
			Batch: batch,
		}

		if err := tx.Create(&migrationRecord).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", migration.Name, err)
		}

		tx.Commit()
	}

	logger.Log.Info().Msg("migrations completed")
	return nil
}

func (m *Migrator) Rollback(steps int) error {
	if steps <= 0 {
		steps = 1
	}

	logger.Log.Info().Int("steps", steps).Msg("rolling back migrations")

	batch := m.getLatestBatch()

	for i := 0; i < steps && batch > 0; i++ {
		var migrationsToRollback []Migration
		m.db.Where("batch = ?", batch).Order("id DESC").Find(&migrationsToRollback)

		for _, migrationRecord := range migrationsToRollback {
			migration := m.findMigration(migrationRecord.Name)
			if migration == nil {
				return fmt.Errorf("migration definition not found: %s", migrationRecord.Name)
			}

			if migration.Down == nil {
				return fmt.Errorf("rollback not defined for migration: %s", migrationRecord.Name)
			}

			logger.Log.Info().Str("migration", migrationRecord.Name).Msg("rolling back")

			tx := m.db.Begin()

			if err := migration.Down(tx); err != nil {
				tx.Rollback()
				return fmt.Errorf("rollback failed for %s: %w", migrationRecord.Name, err)
			}

			if err := tx.Delete(&migrationRecord).Error; err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to remove migration record %s: %w", migrationRecord.Name, err)
			}

			tx.Commit()
		}

		batch--
	}

	logger.Log.Info().Msg("rollback completed")
	return nil
}

func (m *Migrator) hasRun(name string) bool {
	var count int64
	m.db.Model(&Migration{}).Where("name = ?", name).Count(&count)
	return count > 0
}

func (m *Migrator) getNextBatch() int {
	var migration Migration
	m.db.Order("batch DESC").First(&migration)
	return migration.Batch + 1
}

func (m *Migrator) getLatestBatch() int {
	var migration Migration
	m.db.Order("batch DESC").First(&migration)
	return migration.Batch
}

func (m *Migrator) findMigration(name string) *MigrationDefinition {
	for _, migration := range m.migrations {
		if migration.Name == name {
			return &migration
		}
	}
	return nil
}
