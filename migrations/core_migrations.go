package migrations

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type matchTable struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	HomeTeam  string    `gorm:"size:100;not null"`
	AwayTeam  string    `gorm:"size:100;not null"`
	MatchDate time.Time `gorm:"not null;index"`
	Stage     string    `gorm:"size:50;index"`
	HomeScore *int
	AwayScore *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (matchTable) TableName() string { return "matches" }

type predictionTable struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement"`
	UserID             uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_predictions_user_match"`
	MatchID            uint      `gorm:"not null;uniqueIndex:idx_predictions_user_match;index"`
	PredictedHomeScore int       `gorm:"not null"`
	PredictedAwayScore int       `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	User  userTable  `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Match matchTable `gorm:"foreignKey:MatchID;references:ID;constraint:OnDelete:CASCADE"`
}

func (predictionTable) TableName() string { return "predictions" }

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_05_02_000000_create_matches_table",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&matchTable{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&matchTable{})
			},
		},
		{
			Name: "2025_05_02_000001_create_predictions_table",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&predictionTable{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&predictionTable{})
			},
		},
	}
}
