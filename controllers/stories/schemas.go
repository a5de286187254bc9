package stories

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"geostory-backend/models"
)

const (
	maxTitleLen   = 500
	maxBodyLen    = 50000
	maxGCSURLLen  = 2048
	maxFileLen    = 255
	maxCaptionLen = 1000
)

// FieldError names one violated field with a human-readable reason.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every rule violation in a request. Checks
// are independent and never short-circuit, so a single bad request
// reports all of its problems at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() *ValidationError {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Optional distinguishes a JSON field that was absent from one that was
// explicitly null and from one carrying a value. Absent means "leave
// unchanged" in partial updates; null means "clear".
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func categoryMessage() string {
	values := make([]string, 0, len(models.StoryCategories()))
	for _, c := range models.StoryCategories() {
		values = append(values, string(c))
	}
	return "must be one of: " + strings.Join(values, ", ")
}

// StoryCreateRequest is the POST /api/stories/ payload.
type StoryCreateRequest struct {
	Title       string       `json:"title"`
	Body        *string      `json:"body"`
	Category    *string      `json:"category"`
	LocationLat *float64     `json:"location_lat"`
	LocationLng *float64     `json:"location_lng"`
	DateOfStory *models.Date `json:"date_of_story"`
}

// Validate checks every rule and reports all violations. today is the
// current calendar date at validation time; it is a parameter so tests
// can pin it.
func (r *StoryCreateRequest) Validate(today models.Date) *ValidationError {
	ve := &ValidationError{}

	if r.Title == "" {
		ve.add("title", "is required")
	} else if utf8.RuneCountInString(r.Title) > maxTitleLen {
		ve.add("title", fmt.Sprintf("must be at most %d characters", maxTitleLen))
	}

	if r.Body != nil && utf8.RuneCountInString(*r.Body) > maxBodyLen {
		ve.add("body", fmt.Sprintf("must be at most %d characters", maxBodyLen))
	}

	if r.Category != nil && !models.StoryCategory(*r.Category).Valid() {
		ve.add("category", categoryMessage())
	}

	if r.LocationLat == nil {
		ve.add("location_lat", "is required")
	} else if *r.LocationLat < -90 || *r.LocationLat > 90 {
		ve.add("location_lat", "must be between -90 and 90")
	}

	if r.LocationLng == nil {
		ve.add("location_lng", "is required")
	} else if *r.LocationLng < -180 || *r.LocationLng > 180 {
		ve.add("location_lng", "must be between -180 and 180")
	}

	if r.DateOfStory != nil && r.DateOfStory.After(today) {
		ve.add("date_of_story", "must not be in the future")
	}

	return ve.orNil()
}

// Story builds the entity for persistence. Call only after Validate.
func (r *StoryCreateRequest) Story() *models.Story {
	story := &models.Story{
		Title:       r.Title,
		Body:        r.Body,
		LocationLat: *r.LocationLat,
		LocationLng: *r.LocationLng,
		DateOfStory: r.DateOfStory,
	}
	if r.Category != nil {
		c := models.StoryCategory(*r.Category)
		story.Category = &c
	}
	return story
}

// StoryUpdateRequest is the PATCH /api/stories/{id} payload. Every
// field is optional; absent fields are left unchanged and explicit null
// clears a nullable field.
type StoryUpdateRequest struct {
	Title       Optional[string]      `json:"title"`
	Body        Optional[string]      `json:"body"`
	Category    Optional[string]      `json:"category"`
	LocationLat Optional[float64]     `json:"location_lat"`
	LocationLng Optional[float64]     `json:"location_lng"`
	DateOfStory Optional[models.Date] `json:"date_of_story"`
}

func (r *StoryUpdateRequest) Validate(today models.Date) *ValidationError {
	ve := &ValidationError{}

	if r.Title.Set {
		switch {
		case r.Title.Null:
			ve.add("title", "cannot be null")
		case r.Title.Value == "":
			ve.add("title", "must not be empty")
		case utf8.RuneCountInString(r.Title.Value) > maxTitleLen:
			ve.add("title", fmt.Sprintf("must be at most %d characters", maxTitleLen))
		}
	}

	if r.Body.Set && !r.Body.Null && utf8.RuneCountInString(r.Body.Value) > maxBodyLen {
		ve.add("body", fmt.Sprintf("must be at most %d characters", maxBodyLen))
	}

	if r.Category.Set && !r.Category.Null && !models.StoryCategory(r.Category.Value).Valid() {
		ve.add("category", categoryMessage())
	}

	if r.LocationLat.Set {
		switch {
		case r.LocationLat.Null:
			ve.add("location_lat", "cannot be null")
		case r.LocationLat.Value < -90 || r.LocationLat.Value > 90:
			ve.add("location_lat", "must be between -90 and 90")
		}
	}

	if r.LocationLng.Set {
		switch {
		case r.LocationLng.Null:
			ve.add("location_lng", "cannot be null")
		case r.LocationLng.Value < -180 || r.LocationLng.Value > 180:
			ve.add("location_lng", "must be between -180 and 180")
		}
	}

	if r.DateOfStory.Set && !r.DateOfStory.Null && r.DateOfStory.Value.After(today) {
		ve.add("date_of_story", "must not be in the future")
	}

	return ve.orNil()
}

// Fields maps the set fields to their target columns for a partial
// update; nil values clear nullable columns. Call only after Validate.
func (r *StoryUpdateRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Title.Set {
		fields["title"] = r.Title.Value
	}
	if r.Body.Set {
		if r.Body.Null {
			fields["body"] = nil
		} else {
			fields["body"] = r.Body.Value
		}
	}
	if r.Category.Set {
		if r.Category.Null {
			fields["category"] = nil
		} else {
			fields["category"] = r.Category.Value
		}
	}
	if r.LocationLat.Set {
		fields["location_lat"] = r.LocationLat.Value
	}
	if r.LocationLng.Set {
		fields["location_lng"] = r.LocationLng.Value
	}
	if r.DateOfStory.Set {
		if r.DateOfStory.Null {
			fields["date_of_story"] = nil
		} else {
			fields["date_of_story"] = r.DateOfStory.Value
		}
	}
	return fields
}

// PhotoCreateRequest is the POST /api/stories/{id}/photos payload.
type PhotoCreateRequest struct {
	GCSURL   string  `json:"gcs_url"`
	Filename *string `json:"filename"`
	Caption  *string `json:"caption"`
	Ordinal  *int    `json:"ordinal"`
}

func (r *PhotoCreateRequest) Validate() *ValidationError {
	ve := &ValidationError{}

	if r.GCSURL == "" {
		ve.add("gcs_url", "is required")
	} else if utf8.RuneCountInString(r.GCSURL) > maxGCSURLLen {
		ve.add("gcs_url", fmt.Sprintf("must be at most %d characters", maxGCSURLLen))
	}

	if r.Filename != nil && utf8.RuneCountInString(*r.Filename) > maxFileLen {
		ve.add("filename", fmt.Sprintf("must be at most %d characters", maxFileLen))
	}

	if r.Caption != nil && utf8.RuneCountInString(*r.Caption) > maxCaptionLen {
		ve.add("caption", fmt.Sprintf("must be at most %d characters", maxCaptionLen))
	}

	if r.Ordinal != nil && *r.Ordinal < 0 {
		ve.add("ordinal", "must be non-negative")
	}

	return ve.orNil()
}

// Photo builds the entity for persistence. Ordinal defaults to 0.
func (r *PhotoCreateRequest) Photo() *models.Photo {
	photo := &models.Photo{
		GCSURL:   r.GCSURL,
		Filename: r.Filename,
		Caption:  r.Caption,
	}
	if r.Ordinal != nil {
		photo.Ordinal = *r.Ordinal
	}
	return photo
}

// ListResponse is the GET /api/stories/ envelope.
type ListResponse struct {
	Items  []models.Story `json:"items"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
