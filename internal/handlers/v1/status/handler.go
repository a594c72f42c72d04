package status

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/carson-networks/shared-ledger/internal/logging"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	DB Pinger
}

func NewHandler(db Pinger) Handler {
	return Handler{DB: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(req.Context(), pingTimeout)
		defer cancel()

		stopTimer := logData.AddTiming("pingMs")
		err := h.DB.Ping(ctx)
		stopTimer()
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return fmt.Errorf("status: ping database: %w", err)
		}
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
