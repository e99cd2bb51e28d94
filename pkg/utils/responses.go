package utils

import (
	"encoding/json"
	"net/http"
)

// ResponseJSON writes any payload as JSON with a custom status code
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK with the payload as-is
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created with a message body
func ResponseCreated(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusCreated, map[string]string{"message": message})
}

// ------------- Error responses -------------

// returns 400 Bad Request with the per-field validation errors array
func ResponseBadRequest(w http.ResponseWriter, errors []ValidationError) {
	ResponseJSON(w, http.StatusBadRequest, map[string]any{"errors": errors})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusUnauthorized, map[string]string{"message": message})
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusForbidden, map[string]string{"message": message})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, map[string]string{"message": message})
}

// returns 409 Conflict listing the seats already held for the slot
func ResponseConflict(w http.ResponseWriter, message string, seats []string) {
	ResponseJSON(w, http.StatusConflict, map[string]any{
		"message":           message,
		"conflicting_seats": seats,
	})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, map[string]string{"message": message})
}
