// Package stories implements the story HTTP endpoints: request
// validation, filter parsing and translation of store failures into
// status codes.
package stories

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"geostory-backend/models"
	"geostory-backend/storage"
)

// ownerHeader optionally attributes a created story to an existing
// user. Authentication is out of scope; the header only has to parse as
// a UUID and reference a real user.
const ownerHeader = "X-Owner-Id"

// CreateStory handles POST /api/stories/.
func CreateStory(w http.ResponseWriter, r *http.Request, store storage.StoryStore) {
	var req StoryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, &ValidationError{Fields: []FieldError{
			{Field: "request", Message: "malformed JSON body"},
		}})
		return
	}

	if ve := req.Validate(models.Today()); ve != nil {
		writeValidationError(w, ve)
		return
	}

	story := req.Story()
	if raw := r.Header.Get(ownerHeader); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, "Invalid owner id, must be a valid UUID")
			return
		}
		story.OwnerID = &ownerID
	}

	created, err := store.CreateStory(r.Context(), story)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListStories handles GET /api/stories/.
func ListStories(w http.ResponseWriter, r *http.Request, store storage.StoryStore) {
	filter, ve := ParseListQuery(r.URL.Query())
	if ve != nil {
		writeValidationError(w, ve)
		return
	}

	items, total, err := store.ListStories(r.Context(), filter)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ListResponse{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// GetStory handles GET /api/stories/{id}.
func GetStory(w http.ResponseWriter, r *http.Request, store storage.StoryStore) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid story id, must be a valid UUID")
		return
	}

	story, err := store.GetStory(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, story)
}

// UpdateStory handles PATCH /api/stories/{id}. Absent fields are left
// unchanged; explicit null clears nullable fields.
func UpdateStory(w http.ResponseWriter, r *http.Request, store storage.StoryStore) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid story id, must be a valid UUID")
		return
	}

	var req StoryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, &ValidationError{Fields: []FieldError{
			{Field: "request", Message: "malformed JSON body"},
		}})
		return
	}

	if ve := req.Validate(models.Today()); ve != nil {
		writeValidationError(w, ve)
		return
	}

	updated, err := store.UpdateStory(r.Context(), id, req.Fields())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteStory handles DELETE /api/stories/{id}. Photos go with the
// story via the cascade rule.
func DeleteStory(w http.ResponseWriter, r *http.Request, store storage.StoryStore) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid story id, must be a valid UUID")
		return
	}

	if err := store.DeleteStory(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddPhoto handles POST /api/stories/{id}/photos, attaching photo
// metadata to an existing story. The image itself lives in external
// storage; only its locator passes through here.
func AddPhoto(w http.ResponseWriter, r *http.Request, store storage.StoryStore) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid story id, must be a valid UUID")
		return
	}

	var req PhotoCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, &ValidationError{Fields: []FieldError{
			{Field: "request", Message: "malformed JSON body"},
		}})
		return
	}

	if ve := req.Validate(); ve != nil {
		writeValidationError(w, ve)
		return
	}

	if _, err := store.GetStory(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}

	photo := req.Photo()
	photo.StoryID = id

	created, err := store.AddPhoto(r.Context(), photo)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}
