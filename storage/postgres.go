package storage

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"geostory-backend/models"
)

// GormStoryStore is the PostgreSQL-backed StoryStore. Identifier and
// timestamp generation is delegated to the database; every record
// returned from a write is re-read inside the same transaction so that
// server defaults and the updated_at trigger are reflected.
type GormStoryStore struct {
	db *gorm.DB
}

func NewGormStoryStore(db *gorm.DB) *GormStoryStore {
	return &GormStoryStore{db: db}
}

func photosInOrdinalOrder(db *gorm.DB) *gorm.DB {
	return db.Order("photos.ordinal ASC")
}

func (s *GormStoryStore) CreateStory(ctx context.Context, story *models.Story) (*models.Story, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(story).Error; err != nil {
			return err
		}
		// Refetch into a fresh struct; reusing story would fold its now
		// populated primary key into the query conditions.
		var created models.Story
		if err := tx.Preload("Photos", photosInOrdinalOrder).First(&created, "id = ?", story.ID).Error; err != nil {
			return err
		}
		*story = created
		return nil
	})
	if err != nil {
		return nil, wrapDBError(err)
	}
	if story.Photos == nil {
		story.Photos = []models.Photo{}
	}
	return story, nil
}

func (s *GormStoryStore) GetStory(ctx context.Context, id uuid.UUID) (*models.Story, error) {
	var story models.Story
	err := s.db.WithContext(ctx).
		Preload("Photos", photosInOrdinalOrder).
		First(&story, "id = ?", id).Error
	if err != nil {
		return nil, wrapDBError(err)
	}
	if story.Photos == nil {
		story.Photos = []models.Photo{}
	}
	return &story, nil
}

// applyFilter folds the present predicates of f into one AND-combined
// query. Both the count and the page query are built through it so the
// total always reflects the filtered-but-unpaginated set.
func applyFilter(tx *gorm.DB, f ListFilter) *gorm.DB {
	if f.Category != nil {
		tx = tx.Where("category = ?", *f.Category)
	}
	if f.DateFrom != nil {
		tx = tx.Where("date_of_story >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		tx = tx.Where("date_of_story <= ?", *f.DateTo)
	}
	if f.Query != "" {
		pattern := "%" + f.Query + "%"
		tx = tx.Where("title ILIKE ? OR body ILIKE ?", pattern, pattern)
	}
	return tx
}

func (s *GormStoryStore) ListStories(ctx context.Context, f ListFilter) ([]models.Story, int64, error) {
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
	order := "created_at DESC"
	if f.Order == OrderAsc {
		order = "created_at ASC"
	}

	var total int64
	if err := applyFilter(s.db.WithContext(ctx).Model(&models.Story{}), f).Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err)
	}

	stories := make([]models.Story, 0, limit)
	err := applyFilter(s.db.WithContext(ctx).Model(&models.Story{}), f).
		Order(order).
		Limit(limit).
		Offset(offset).
		Preload("Photos", photosInOrdinalOrder).
		Find(&stories).Error
	if err != nil {
		return nil, 0, wrapDBError(err)
	}

	for i := range stories {
		if stories[i].Photos == nil {
			stories[i].Photos = []models.Photo{}
		}
	}
	return stories, total, nil
}

func (s *GormStoryStore) UpdateStory(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Story, error) {
	var story models.Story
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Story
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			return err
		}
		if len(fields) > 0 {
			if err := tx.Model(&models.Story{}).Where("id = ?", id).Updates(fields).Error; err != nil {
				return err
			}
		}
		return tx.Preload("Photos", photosInOrdinalOrder).First(&story, "id = ?", id).Error
	})
	if err != nil {
		return nil, wrapDBError(err)
	}
	if story.Photos == nil {
		story.Photos = []models.Photo{}
	}
	return &story, nil
}

func (s *GormStoryStore) DeleteStory(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Story{}, "id = ?", id)
	if res.Error != nil {
		return wrapDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStoryStore) AddPhoto(ctx context.Context, photo *models.Photo) (*models.Photo, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(photo).Error; err != nil {
			return err
		}
		var created models.Photo
		if err := tx.First(&created, "id = ?", photo.ID).Error; err != nil {
			return err
		}
		*photo = created
		return nil
	})
	if err != nil {
		return nil, wrapDBError(err)
	}
	return photo, nil
}
