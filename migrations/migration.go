package migrations

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;unique;not null"`
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

func NewMigrator(db *gorm.DB) (*Migrator, error) {
	if err := db.AutoMigrate(&Migration{}); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}
	return &Migrator{
		db:         db,
		migrations: []MigrationDefinition{},
	}, nil
}

// All returns every migration of the application in execution order.
func All() []MigrationDefinition {
	all := GetAuthMigrations()
	return append(all, GetCoreMigrations()...)
}

func (m *Migrator) AddMigration(migration MigrationDefinition) {
	m.migrations = append(m.migrations, migration)
}

func (m *Migrator) Migrate() error {
	fmt.Println("Running database migrations...")

	batch, err := m.latestBatch()
	if err != nil {
		return err
	}
	batch++

	for _, migration := range m.migrations {
		ran, err := m.hasRun(migration.Name)
		if err != nil {
			return err
		}
		if ran {
			continue
		}

		fmt.Printf("Migrating: %s\n", migration.Name)

		err = m.db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return fmt.Errorf("migration %s failed: %w", migration.Name, err)
			}
			record := Migration{Name: migration.Name, Batch: batch}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to record migration %s: %w", migration.Name, err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		fmt.Printf("Migrated: %s\n", migration.Name)
	}

	fmt.Println("Migration completed successfully")
	return nil
}

// Rollback reverts the last steps batches.
func (m *Migrator) Rollback(steps int) error {
	if steps <= 0 {
		steps = 1
	}

	fmt.Printf("Rolling back %d batch(es)...\n", steps)

	batch, err := m.latestBatch()
	if err != nil {
		return err
	}

	for i := 0; i < steps && batch > 0; i++ {
		var records []Migration
		if err := m.db.Where("batch = ?", batch).Order("id DESC").Find(&records).Error; err != nil {
			return err
		}

		for _, record := range records {
			migration := m.findMigration(record.Name)
			if migration == nil {
				return fmt.Errorf("migration definition not found: %s", record.Name)
			}
			if migration.Down == nil {
				return fmt.Errorf("rollback not defined for migration: %s", record.Name)
			}

			fmt.Printf("Rolling back: %s\n", record.Name)

			err := m.db.Transaction(func(tx *gorm.DB) error {
				if err := migration.Down(tx); err != nil {
					return fmt.Errorf("rollback failed for %s: %w", record.Name, err)
				}
				if err := tx.Delete(&record).Error; err != nil {
					return fmt.Errorf("failed to remove migration record %s: %w", record.Name, err)
				}
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Printf("Rolled back: %s\n", record.Name)
		}

		batch--
	}

	fmt.Println("Rollback completed successfully")
	return nil
}

// Status lists the migrations that have run, oldest first.
func (m *Migrator) Status() ([]Migration, error) {
	var records []Migration
	if err := m.db.Order("batch ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Pending lists the registered migrations that have not run yet.
func (m *Migrator) Pending() ([]string, error) {
	pending := make([]string, 0)
	for _, migration := range m.migrations {
		ran, err := m.hasRun(migration.Name)
		if err != nil {
			return nil, err
		}
		if !ran {
			pending = append(pending, migration.Name)
		}
	}
	return pending, nil
}

func (m *Migrator) hasRun(name string) (bool, error) {
	var count int64
	if err := m.db.Model(&Migration{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *Migrator) latestBatch() (int, error) {
	var batch int
	if err := m.db.Model(&Migration{}).Select("COALESCE(MAX(batch), 0)").Scan(&batch).Error; err != nil {
		return 0, err
	}
	return batch, nil
}

func (m *Migrator) findMigration(name string) *MigrationDefinition {
	for i := range m.migrations {
		if m.migrations[i].Name == name {
			return &m.migrations[i]
		}
	}
	return nil
}
