package status

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

// Pinger reports whether a dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	Database Pinger
}

func NewHandler(database Pinger) Handler {
	return Handler{Database: database}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.Database != nil {
		stopTimer := logData.AddTiming("databasePingMs")
		err := h.Database.PingContext(req.Context())
		stopTimer()
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return fmt.Errorf("status: database unreachable: %w", err)
		}
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
