package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// writeUseCaseError maps the usecase error taxonomy onto HTTP statuses.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var de *usecase.DomainError
	if ok := asDomainError(err, &de); ok {
		status := http.StatusBadRequest
		switch de.Code {
		case "CAMPAIGN_NOT_FOUND", "STEP_NOT_FOUND", "RESOURCE_NOT_FOUND", "LEAD_NOT_FOUND":
			status = http.StatusNotFound
		case "ALREADY_ACTIVE", "CAMPAIGN_COMPLETED":
			status = http.StatusConflict
		}
		writeErrorResponse(w, status, de.Code, de.Message)
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}

func asDomainError(err error, target **usecase.DomainError) bool {
	de, ok := err.(*usecase.DomainError)
	if ok {
		*target = de
	}
	return ok
}
