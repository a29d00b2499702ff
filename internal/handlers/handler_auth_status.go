package handlers

import (
	"net/http"

	"curiona-admin/internal/middlewares"
	"curiona-admin/internal/models"
	"curiona-admin/internal/session"
)

type AuthStatusResponse struct {
	Authenticated bool            `json:"authenticated"`
	Expired       bool            `json:"expired,omitempty"`
	Session       *models.Session `json:"session,omitempty"`
}

// GETAuthStatusHandler lets the admin UI hydrate its auth state on load. An
// expired access token still returns the session so the caller can refresh.
func GETAuthStatusHandler(ctx *middlewares.AppContext) {
	response := AuthStatusResponse{
		Authenticated: false,
	}

	if !ctx.Session.Valid() {
		ctx.WriteJSON(http.StatusUnauthorized, response)
		return
	}

	response.Authenticated = true
	response.Expired = session.IsSessionExpired(ctx.Session)
	response.Session = ctx.Session
	ctx.WriteJSON(http.StatusOK, response)
}
