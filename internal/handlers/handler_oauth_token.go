package handlers

import (
	"net/http"
	"strings"

	"curiona-admin/internal/metrics"
	"curiona-admin/internal/middlewares"
	"curiona-admin/internal/models"
)

// POSTOAuthTokenHandler signs in with a Google access token the caller already
// holds, for clients that run the OAuth flow themselves.
func POSTOAuthTokenHandler(ctx *middlewares.AppContext) {
	var body models.OAuthLoginRequest
	if err := ctx.ReadJSON(&body); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}

	token := strings.TrimSpace(body.OAuthToken)
	if token == "" {
		ctx.SetJSONError(http.StatusBadRequest, "oauth_token is required")
		return
	}

	out, err := ctx.AuthClient.LoginOAuth(ctx, token)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginMethodOAuth, metrics.ResultFailure).Inc()
		logLoginAttempt(ctx, metrics.LoginMethodOAuth, "", false)
		ctx.SetAPIError(err)
		return
	}

	s := out.Session()
	if err := establishSession(ctx, s, out.RefreshToken); err != nil {
		ctx.Logger.Error("failed to persist session", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to create session")
		return
	}

	metrics.LoginAttempts.WithLabelValues(metrics.LoginMethodOAuth, metrics.ResultSuccess).Inc()
	logLoginAttempt(ctx, metrics.LoginMethodOAuth, s.User.Email, true)

	ctx.WriteJSON(http.StatusOK, SessionResponse{Session: s})
}
