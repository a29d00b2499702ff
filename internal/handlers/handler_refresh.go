package handlers

import (
	"context"
	"net/http"

	"curiona-admin/internal/apierror"
	"curiona-admin/internal/metrics"
	"curiona-admin/internal/middlewares"
	"curiona-admin/internal/models"

	"golang.org/x/sync/singleflight"
)

// refreshGroup coalesces concurrent refreshes of the same refresh token, e.g.
// several tabs waking up at once, into a single upstream call.
var refreshGroup singleflight.Group

func POSTRefreshHandler(ctx *middlewares.AppContext) {
	refreshToken := ctx.Sessions.RefreshToken(ctx.Request)
	if refreshToken == "" {
		metrics.TokenRefreshes.WithLabelValues(metrics.ResultFailure).Inc()
		clearSession(ctx)
		ctx.SetAPIError(apierror.ErrSessionExpired)
		return
	}

	// The shared call must outlive whichever request started it.
	upstreamCtx := context.WithoutCancel(ctx)
	result, err, shared := refreshGroup.Do(refreshToken, func() (interface{}, error) {
		return ctx.AuthClient.Refresh(upstreamCtx, refreshToken)
	})
	if err != nil {
		metrics.TokenRefreshes.WithLabelValues(metrics.ResultFailure).Inc()
		if apierror.IsAuth(err) {
			ctx.Logger.Info("refresh token rejected, clearing session")
			clearSession(ctx)
		} else {
			ctx.Logger.Warn("token refresh failed", "error", err)
		}
		ctx.SetAPIError(err)
		return
	}

	if shared {
		metrics.TokenRefreshes.WithLabelValues(metrics.ResultShared).Inc()
	} else {
		metrics.TokenRefreshes.WithLabelValues(metrics.ResultSuccess).Inc()
	}

	out := result.(*models.AuthRefreshOutput)
	s := out.Session()
	if s.User.ID == 0 && ctx.Session != nil {
		s.User = ctx.Session.User
	}

	if !s.Valid() {
		ctx.Logger.Error("refresh returned an incomplete session")
		ctx.SetAPIError(apierror.ErrInvalidResponse)
		return
	}

	if err := establishSession(ctx, s, out.RefreshToken); err != nil {
		ctx.Logger.Error("failed to persist refreshed session", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to create session")
		return
	}

	ctx.Logger.Debug("session refreshed", "user_id", s.User.ID, "expires_at", s.Tokens.AccessTokenExpiresAt)
	ctx.WriteJSON(http.StatusOK, SessionResponse{Session: s})
}
