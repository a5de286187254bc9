package stories

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"geostory-backend/storage"
)

// constraintMessages maps database constraint names to field-specific
// messages. The names come from the initial migration; a constraint the
// table does not know falls back to a generic message.
var constraintMessages = map[string]string{
	"stories_category_check":  "invalid category value",
	"stories_latitude_check":  "latitude must be between -90 and 90",
	"stories_longitude_check": "longitude must be between -180 and 180",
	"stories_owner_id_fkey":   "owner does not exist",
	"photos_story_id_fkey":    "story does not exist",
	"users_email_key":         "email is already in use",
}

func constraintMessage(name string) string {
	if msg, ok := constraintMessages[name]; ok {
		return msg
	}
	return "database constraint violation"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeValidationError(w http.ResponseWriter, ve *ValidationError) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": ve.Fields})
}

// writeStoreError translates a storage failure into a response. Errors
// not recognized as constraint, data-format or not-found failures are
// logged and reported without internal detail.
func writeStoreError(w http.ResponseWriter, err error) {
	var constraintErr *storage.ConstraintError
	var dataErr *storage.DataError
	switch {
	case errors.As(err, &constraintErr):
		writeDetail(w, http.StatusBadRequest, "Validation failed: "+constraintMessage(constraintErr.Constraint))
	case errors.As(err, &dataErr):
		writeDetail(w, http.StatusBadRequest, "Invalid data format: "+dataErr.Detail)
	case errors.Is(err, storage.ErrNotFound):
		writeDetail(w, http.StatusNotFound, "Story not found")
	default:
		log.Printf("store error: %v", err)
		writeDetail(w, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
