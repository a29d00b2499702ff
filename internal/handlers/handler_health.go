package handlers

import (
	"net/http"

	"curiona-admin/internal/middlewares"
	"curiona-admin/internal/version"
)

// HandlerHealth always answers 200 while the console runs; "upstream" reflects
// the last reachability probe of the Curiona API.
func HandlerHealth(ctx *middlewares.AppContext) {
	response := map[string]string{
		"status":  "OK",
		"version": version.GetVersion(),
	}

	if ctx.Upstream != nil {
		response["upstream"] = "up"
		if !ctx.Upstream.Up() {
			response["upstream"] = "down"
		}
	}

	ctx.WriteJSON(http.StatusOK, response)
}
