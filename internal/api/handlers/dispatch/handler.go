package dispatch

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/evently/notifier/internal/api/respond"
	"github.com/evently/notifier/internal/worker"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/dispatch/mock.go -package=mocks

type dispatchRunner interface {
	RunOnce(ctx context.Context) (worker.Result, error)
}

// Handler exposes the manual dispatch trigger.
type Handler struct {
	dispatcher dispatchRunner
}

// NewHandler creates a new dispatch handler.
func NewHandler(d dispatchRunner) *Handler {
	return &Handler{dispatcher: d}
}

// Trigger synchronously runs one dispatch pass and returns its aggregate
// result. Internal error detail is never surfaced to the caller.
func (h *Handler) Trigger(c *ginext.Context) {
	result, err := h.dispatcher.RunOnce(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("manual dispatch failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("processing failed"))
		return
	}

	respond.OK(c.Writer, result)
}
