package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-tracker/internal/domain"
)

// taskIDParam is the path parameter holding a task ID. Routes constrain it
// to digits, so parse failures only occur on int64 overflow.
const taskIDParam = "id"

// getPathID extracts a task ID from the URL path parameters.
func getPathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, taskIDParam)
	if raw == "" {
		return 0, domain.NewValidationError(taskIDParam, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(taskIDParam, "has invalid format", domain.ErrInvalidID)
	}
	return id, nil
}
