package handlers

import (
	"net/http"

	"curiona-admin/internal/middlewares"
)

// POSTLogoutHandler always signs the browser out. Revoking the refresh token
// upstream is attempted but its failure is only logged.
func POSTLogoutHandler(ctx *middlewares.AppContext) {
	logger := ctx.Logger

	if refreshToken := ctx.Sessions.RefreshToken(ctx.Request); refreshToken != "" {
		if err := ctx.AuthClient.Logout(ctx, refreshToken); err != nil {
			logger.Warn("remote logout failed", "error", err)
		}
	}

	if ctx.Session != nil {
		logger.Info("User logged out", "user_id", ctx.Session.User.ID, "email", RedactEmail(ctx.Session.User.Email))
	}

	clearSession(ctx)
	ctx.SetJSONStatus(http.StatusOK, "OK")
}
