package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	Name          string    `gorm:"type:varchar(100)"`
	PictureURL    string    `gorm:"type:text"`
	AuthMethod    string    `gorm:"type:varchar(50);not null;default:'email'"`
	EmailVerified bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
	Documents       []DocumentModel       `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
