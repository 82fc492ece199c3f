package entities

import (
	"time"

	"github.com/google/uuid"
)

// User represents a mini-program account, created on first login.
// OpenID is the identity-provider-side handle for the user.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OpenID    string    `json:"open_id" gorm:"unique;not null"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}
