package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fintrackhq/fintrack-server/internal/logging"
)

type pinger interface {
	Ping() error
}

// Handler serves the liveness endpoint. Unlike the rest of the API it is a
// plain net/http handler mounted ahead of the router.
type Handler struct {
	DB pinger
}

func NewHandler(db pinger) Handler {
	return Handler{DB: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.DB != nil {
		if err := h.DB.Ping(); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": "Database unavailable",
			})
			return err
		}
		logData.AddData("database", "ok")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"message": "OK",
	})
}
