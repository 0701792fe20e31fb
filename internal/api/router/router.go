package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/evently/notifier/internal/api/handlers/dispatch"
)

// New builds the HTTP engine. The trigger surface is POST-only; other methods
// on the route get a 405.
func New(handler *dispatch.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())
	e.HandleMethodNotAllowed = true

	api := e.Group("/api/dispatch")
	{
		api.POST("/run", handler.Trigger)
	}

	return e
}
