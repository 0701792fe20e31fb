package server

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

// New wraps the engine in an http.Server listening on addr.
func New(addr string, router *ginext.Engine) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: router,
	}
}
