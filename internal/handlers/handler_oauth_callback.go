package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"curiona-admin/internal/apierror"
	"curiona-admin/internal/auth"
	"curiona-admin/internal/metrics"
	"curiona-admin/internal/middlewares"
)

func GETOAuthCallbackHandler(ctx *middlewares.AppContext) {
	if ctx.OAuthProvider == nil {
		ctx.Redirect("/error?error=oauth_disabled", http.StatusFound)
		return
	}

	providerToken, err := ctx.OAuthProvider.HandleCallback(ctx)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginMethodOAuth, metrics.ResultFailure).Inc()

		var oauthErr *auth.OAuthError
		if errors.As(err, &oauthErr) {
			ctx.Logger.Warn("OAuth callback error", "error", oauthErr.Message)
			ctx.Redirect(oauthErr.RedirectURL, http.StatusFound)
			return
		}

		ctx.Logger.Error("Failed to handle OAuth callback", "error", err)
		ctx.Redirect("/error?error=auth_failed", http.StatusFound)
		return
	}

	out, err := ctx.AuthClient.LoginOAuth(ctx, providerToken)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginMethodOAuth, metrics.ResultFailure).Inc()
		logLoginAttempt(ctx, metrics.LoginMethodOAuth, "", false)
		ctx.Redirect("/error?error="+url.QueryEscape(apierror.Code(err))+
			"&error_description="+url.QueryEscape(apierror.Message(err)), http.StatusFound)
		return
	}

	s := out.Session()
	if err := establishSession(ctx, s, out.RefreshToken); err != nil {
		ctx.Logger.Error("failed to persist session", "error", err)
		ctx.Redirect("/error?error=server_error", http.StatusFound)
		return
	}

	metrics.LoginAttempts.WithLabelValues(metrics.LoginMethodOAuth, metrics.ResultSuccess).Inc()
	logLoginAttempt(ctx, metrics.LoginMethodOAuth, s.User.Email, true)

	redirectTo := ctx.Handshake.GetRedirectAfterLogin(ctx)
	if err := ctx.Handshake.Destroy(ctx); err != nil {
		ctx.Logger.Warn("failed to destroy oauth handshake", "error", err)
	}

	if redirectTo == "" {
		redirectTo = "/"
	}

	ctx.Redirect(redirectTo, http.StatusFound)
}
