package status

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/carson-networks/session-ledger/internal/logging"
)

const pingTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Database pinger
}

func NewHandler(db pinger) Handler {
	return Handler{Database: db}
}

// Handler reports 200 when the database answers a ping and 503 when it does not.
func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	ctx, cancel := context.WithTimeout(req.Context(), pingTimeout)
	defer cancel()

	endTimer := logData.AddTiming("pingMs")
	err := h.Database.Ping(ctx)
	endTimer()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return err
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
