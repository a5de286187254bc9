package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can own stories. Email is nullable so that
// stories can be created anonymously; when present it is unique.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     *string   `json:"email" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"<-:false"`

	Stories []Story `json:"stories,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
}

func (User) TableName() string {
	return "users"
}
