package models

import (
	"time"

	"github.com/google/uuid"
)

// Story is the central record: a titled, geolocated, optionally dated
// and categorized piece of text, optionally attributed to a user.
//
// id, created_at and updated_at are generated by the database
// (gen_random_uuid(), now() defaults and the updated_at trigger), so
// the timestamp fields are read-only on the Go side and only populated
// after a round-trip.
type Story struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerID     *uuid.UUID     `json:"owner_id" gorm:"type:uuid"`
	Title       string         `json:"title" gorm:"not null"`
	Body        *string        `json:"body"`
	Category    *StoryCategory `json:"category" gorm:"type:text"`
	LocationLat float64        `json:"location_lat" gorm:"not null"`
	LocationLng float64        `json:"location_lng" gorm:"not null"`
	DateOfStory *Date          `json:"date_of_story"`
	CreatedAt   time.Time      `json:"created_at" gorm:"<-:false"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"<-:false"`

	Owner  *User   `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
	Photos []Photo `json:"photos" gorm:"foreignKey:StoryID;constraint:OnDelete:CASCADE"`
}

func (Story) TableName() string {
	return "stories"
}
