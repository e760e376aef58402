package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

const dayFormat = "2006-01-02"

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// dayParam parses the required ?date=YYYY-MM-DD query parameter as a
// local calendar date.
func dayParam(r *http.Request) (time.Time, bool) {
	value := r.URL.Query().Get("date")
	if value == "" {
		return time.Time{}, false
	}
	day, err := time.ParseInLocation(dayFormat, value, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
