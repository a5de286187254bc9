package stories

import (
	"net/url"
	"strconv"
	"strings"

	"geostory-backend/models"
	"geostory-backend/storage"
)

// ParseListQuery translates the GET /api/stories/ query parameters into
// a filter specification.
//
// limit outside [1,100] is silently clamped into the range; a negative
// offset is always rejected, never clamped. An unknown category is not
// an error, it simply matches nothing.
func ParseListQuery(values url.Values) (storage.ListFilter, *ValidationError) {
	ve := &ValidationError{}
	filter := storage.ListFilter{
		Order:  storage.OrderDesc,
		Limit:  storage.DefaultLimit,
		Offset: 0,
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			ve.add("limit", "must be an integer")
		} else {
			if limit < 1 {
				limit = 1
			}
			if limit > storage.MaxLimit {
				limit = storage.MaxLimit
			}
			filter.Limit = limit
		}
	}

	if raw := values.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			ve.add("offset", "must be an integer")
		case offset < 0:
			ve.add("offset", "must be non-negative")
		default:
			filter.Offset = offset
		}
	}

	if raw := values.Get("category"); raw != "" {
		category := models.StoryCategory(raw)
		filter.Category = &category
	}

	if raw := values.Get("date_from"); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			ve.add("date_from", "must be a date in YYYY-MM-DD format")
		} else {
			filter.DateFrom = &date
		}
	}

	if raw := values.Get("date_to"); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			ve.add("date_to", "must be a date in YYYY-MM-DD format")
		} else {
			filter.DateTo = &date
		}
	}

	filter.Query = values.Get("q")

	if raw := values.Get("order"); raw != "" {
		order := strings.ToLower(raw)
		if order != storage.OrderAsc && order != storage.OrderDesc {
			ve.add("order", "must be 'asc' or 'desc'")
		} else {
			filter.Order = order
		}
	}

	return filter, ve.orNil()
}
