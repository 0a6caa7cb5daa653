package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Roles []string

// Value implements driver.Valuer
func (r Roles) Value() (driver.Value, error) {
	if len(r) == 0 {
		r = GetDefaultRoles()
	}
	bytes, err := json.Marshal([]string(r))
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

// Scan implements sql.Scanner
func (r *Roles) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*r = GetDefaultRoles()
		return nil
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("cannot scan %T into Roles", value)
	}
}

type User struct {
	ID                  uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Email               string     `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Username            string     `json:"username" gorm:"size:255;uniqueIndex;not null"`
	FirstName           string     `json:"first_name" gorm:"size:255"`
	LastName            string     `json:"last_name" gorm:"size:255"`
	Password            string     `json:"-" gorm:"size:255;not null"`
	Enabled             bool       `json:"enabled" gorm:"default:true"`
	Roles               Roles      `json:"roles" gorm:"type:text"`
	LastLogin           *time.Time `json:"last_login"`
	NbConnexion         int        `json:"nb_connexion" gorm:"default:0"`
	ConfirmationToken   *string    `json:"-" gorm:"size:255;index"`
	PasswordRequestedAt *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a random identifier to new users.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if len(u.Roles) == 0 {
		u.Roles = GetDefaultRoles()
	}
	return nil
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u *User) AddRole(role string) {
	if !u.HasRole(role) {
		u.Roles = append(u.Roles, role)
	}
}

// DisplayName is the name shown on the leaderboard: "first last", or the
// username when the profile has no name yet.
func (u *User) DisplayName() string {
	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name
	}
	return u.Username
}

// IsPasswordRequestExpired reports whether the pending password reset is older than ttl.
func (u *User) IsPasswordRequestExpired(ttl time.Duration) bool {
	if u.PasswordRequestedAt == nil {
		return true
	}
	return time.Since(*u.PasswordRequestedAt) > ttl
}

// RecordLogin bumps the connection counter once per calendar day.
func (u *User) RecordLogin(now time.Time) {
	if u.LastLogin == nil || u.LastLogin.Format("2006-01-02") != now.Format("2006-01-02") {
		u.NbConnexion++
	}
	u.LastLogin = &now
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,min=3,max=64"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"omitempty,max=255"`
	LastName  string `json:"last_name" binding:"omitempty,max=255"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty" binding:"omitempty,max=255"`
	LastName  *string `json:"last_name,omitempty" binding:"omitempty,max=255"`
	Username  *string `json:"username,omitempty" binding:"omitempty,min=3,max=64"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type PasswordResetConfirmRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
