package storage

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"geostory-backend/models"
)

// MemoryStore is an in-memory StoryStore used by handler tests and
// local development. It mirrors the database's constraint checking,
// returning the same constraint names the PostgreSQL schema would, so
// the HTTP error translation path behaves identically.
type MemoryStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]models.User
	stories map[uuid.UUID]models.Story
	photos  map[uuid.UUID]models.Photo
	clock   time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[uuid.UUID]models.User),
		stories: make(map[uuid.UUID]models.Story),
		photos:  make(map[uuid.UUID]models.Photo),
		clock:   time.Now().UTC().Truncate(time.Second),
	}
}

// tick advances the store clock so successive writes get distinct,
// strictly increasing timestamps.
func (s *MemoryStore) tick() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

// AddUser registers a user, enforcing email uniqueness the way the
// partial unique index on users.email does.
func (s *MemoryStore) AddUser(email *string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if email != nil {
		for _, u := range s.users {
			if u.Email != nil && *u.Email == *email {
				return nil, &ConstraintError{Constraint: "users_email_key", Err: errors.New("duplicate email")}
			}
		}
	}
	user := models.User{ID: uuid.New(), Email: email, CreatedAt: s.tick()}
	s.users[user.ID] = user
	return &user, nil
}

func (s *MemoryStore) checkStory(story *models.Story) error {
	if story.Category != nil && !story.Category.Valid() {
		return &ConstraintError{Constraint: "stories_category_check", Err: errors.New("check violation")}
	}
	if story.LocationLat < -90 || story.LocationLat > 90 {
		return &ConstraintError{Constraint: "stories_latitude_check", Err: errors.New("check violation")}
	}
	if story.LocationLng < -180 || story.LocationLng > 180 {
		return &ConstraintError{Constraint: "stories_longitude_check", Err: errors.New("check violation")}
	}
	if story.OwnerID != nil {
		if _, ok := s.users[*story.OwnerID]; !ok {
			return &ConstraintError{Constraint: "stories_owner_id_fkey", Err: errors.New("foreign key violation")}
		}
	}
	return nil
}

func (s *MemoryStore) CreateStory(_ context.Context, story *models.Story) (*models.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkStory(story); err != nil {
		return nil, err
	}

	now := s.tick()
	stored := *story
	stored.ID = uuid.New()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	stored.Photos = nil
	s.stories[stored.ID] = stored

	result := stored
	result.Photos = []models.Photo{}
	*story = result
	return story, nil
}

func (s *MemoryStore) storyPhotos(storyID uuid.UUID) []models.Photo {
	photos := []models.Photo{}
	for _, p := range s.photos {
		if p.StoryID == storyID {
			photos = append(photos, p)
		}
	}
	sort.SliceStable(photos, func(i, j int) bool {
		if photos[i].Ordinal != photos[j].Ordinal {
			return photos[i].Ordinal < photos[j].Ordinal
		}
		return photos[i].CreatedAt.Before(photos[j].CreatedAt)
	})
	return photos
}

func (s *MemoryStore) GetStory(_ context.Context, id uuid.UUID) (*models.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.stories[id]
	if !ok {
		return nil, ErrNotFound
	}
	result := stored
	result.Photos = s.storyPhotos(id)
	return &result, nil
}

func matchesFilter(story models.Story, f ListFilter) bool {
	if f.Category != nil && (story.Category == nil || *story.Category != *f.Category) {
		return false
	}
	if f.DateFrom != nil && (story.DateOfStory == nil || story.DateOfStory.Time.Before(f.DateFrom.Time)) {
		return false
	}
	if f.DateTo != nil && (story.DateOfStory == nil || story.DateOfStory.Time.After(f.DateTo.Time)) {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		title := strings.ToLower(story.Title)
		body := ""
		if story.Body != nil {
			body = strings.ToLower(*story.Body)
		}
		if !strings.Contains(title, q) && !strings.Contains(body, q) {
			return false
		}
	}
	return true
}

func (s *MemoryStore) ListStories(_ context.Context, f ListFilter) ([]models.Story, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []models.Story{}
	for _, story := range s.stories {
		if matchesFilter(story, f) {
			matched = append(matched, story)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if f.Order == OrderAsc {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	if offset >= len(matched) {
		return []models.Story{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]models.Story, 0, end-offset)
	for _, story := range matched[offset:end] {
		story.Photos = s.storyPhotos(story.ID)
		page = append(page, story)
	}
	return page, total, nil
}

func (s *MemoryStore) UpdateStory(_ context.Context, id uuid.UUID, fields map[string]any) (*models.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.stories[id]
	if !ok {
		return nil, ErrNotFound
	}

	updated := stored
	for column, value := range fields {
		switch column {
		case "title":
			updated.Title = value.(string)
		case "body":
			updated.Body = optString(value)
		case "category":
			if v := optString(value); v == nil {
				updated.Category = nil
			} else {
				c := models.StoryCategory(*v)
				updated.Category = &c
			}
		case "location_lat":
			updated.LocationLat = value.(float64)
		case "location_lng":
			updated.LocationLng = value.(float64)
		case "date_of_story":
			if value == nil {
				updated.DateOfStory = nil
			} else {
				d := value.(models.Date)
				updated.DateOfStory = &d
			}
		}
	}

	if err := s.checkStory(&updated); err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		updated.UpdatedAt = s.tick()
	}
	s.stories[id] = updated

	result := updated
	result.Photos = s.storyPhotos(id)
	return &result, nil
}

func (s *MemoryStore) DeleteStory(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stories[id]; !ok {
		return ErrNotFound
	}
	delete(s.stories, id)
	for photoID, p := range s.photos {
		if p.StoryID == id {
			delete(s.photos, photoID)
		}
	}
	return nil
}

// DeleteUser removes a user and nulls out owner_id on their stories,
// matching the ON DELETE SET NULL rule.
func (s *MemoryStore) DeleteUser(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	for storyID, story := range s.stories {
		if story.OwnerID != nil && *story.OwnerID == id {
			story.OwnerID = nil
			s.stories[storyID] = story
		}
	}
	return nil
}

// PhotosForStory returns the photos currently attached to a story, in
// ordinal order. Test hook for observing cascade deletes.
func (s *MemoryStore) PhotosForStory(storyID uuid.UUID) []models.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storyPhotos(storyID)
}

func (s *MemoryStore) AddPhoto(_ context.Context, photo *models.Photo) (*models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stories[photo.StoryID]; !ok {
		return nil, &ConstraintError{Constraint: "photos_story_id_fkey", Err: errors.New("foreign key violation")}
	}

	stored := *photo
	stored.ID = uuid.New()
	stored.CreatedAt = s.tick()
	s.photos[stored.ID] = stored

	*photo = stored
	return photo, nil
}

func optString(value any) *string {
	if value == nil {
		return nil
	}
	v := value.(string)
	return &v
}
