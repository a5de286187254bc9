package models

import (
	"time"

	"github.com/google/uuid"
)

// Photo is metadata for one image attached to a story. The image bytes
// live in external storage behind GCSURL; this system never touches
// them. Ordinal defines gallery order within a story and is neither
// unique nor contiguous.
type Photo struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoryID   uuid.UUID `json:"story_id" gorm:"type:uuid;not null"`
	GCSURL    string    `json:"gcs_url" gorm:"column:gcs_url;not null"`
	Filename  *string   `json:"filename"`
	Caption   *string   `json:"caption"`
	Ordinal   int       `json:"ordinal" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"<-:false"`
}

func (Photo) TableName() string {
	return "photos"
}
