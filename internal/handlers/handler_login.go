package handlers

import (
	"net/http"
	"strings"

	"curiona-admin/internal/metrics"
	"curiona-admin/internal/middlewares"
	"curiona-admin/internal/models"
)

func POSTLoginHandler(ctx *middlewares.AppContext) {
	var credentials models.Credentials
	if err := ctx.ReadJSON(&credentials); err != nil {
		ctx.Logger.Debug("rejecting malformed login body", "error", err)
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}

	credentials.Email = strings.TrimSpace(credentials.Email)
	if err := credentials.Validate(); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, err.Error())
		return
	}

	out, err := ctx.AuthClient.LoginEmailPassword(ctx, credentials)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginMethodPassword, metrics.ResultFailure).Inc()
		logLoginAttempt(ctx, metrics.LoginMethodPassword, credentials.Email, false)
		ctx.SetAPIError(err)
		return
	}

	s := out.Session()
	if err := establishSession(ctx, s, out.RefreshToken); err != nil {
		ctx.Logger.Error("failed to persist session", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to create session")
		return
	}

	metrics.LoginAttempts.WithLabelValues(metrics.LoginMethodPassword, metrics.ResultSuccess).Inc()
	logLoginAttempt(ctx, metrics.LoginMethodPassword, credentials.Email, true)

	ctx.WriteJSON(http.StatusOK, SessionResponse{Session: s})
}
