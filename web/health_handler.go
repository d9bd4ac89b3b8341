package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"
)

func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	sendJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
}

// sendJSON writes the payload with a Content-Length matching the exact byte
// length of the marshaled body.
func sendJSON(w http.ResponseWriter, status int, payload map[string]string) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).Error("Unable to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	w.Write(body)
}
