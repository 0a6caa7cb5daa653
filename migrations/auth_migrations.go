package migrations

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Table snapshots as they were when each migration was written.

type userTable struct {
	ID                  uuid.UUID `gorm:"type:char(36);primaryKey"`
	Email               string    `gorm:"size:255;uniqueIndex;not null"`
	Username            string    `gorm:"size:255;uniqueIndex;not null"`
	FirstName           string    `gorm:"size:255"`
	LastName            string    `gorm:"size:255"`
	Password            string    `gorm:"size:255;not null"`
	Enabled             bool      `gorm:"default:true"`
	Roles               string    `gorm:"type:text"`
	LastLogin           *time.Time
	NbConnexion         int     `gorm:"default:0"`
	ConfirmationToken   *string `gorm:"size:255;index"`
	PasswordRequestedAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (userTable) TableName() string { return "users" }

type refreshTokenTable struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;index"`
	Token     string    `gorm:"size:255;uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User userTable `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (refreshTokenTable) TableName() string { return "refresh_tokens" }

func GetAuthMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_05_01_000000_create_users_table",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&userTable{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&userTable{})
			},
		},
		{
			Name: "2025_05_01_000001_create_refresh_tokens_table",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&refreshTokenTable{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&refreshTokenTable{})
			},
		},
	}
}
