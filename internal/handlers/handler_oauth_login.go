package handlers

import (
	"net/http"

	"curiona-admin/internal/middlewares"
	"curiona-admin/internal/session"
	"curiona-admin/internal/utils"
)

func GETOAuthLoginHandler(ctx *middlewares.AppContext) {
	if ctx.OAuthProvider == nil {
		ctx.SetJSONError(http.StatusNotFound, "OAuth sign-in is not enabled")
		return
	}

	if ctx.Session.Valid() && !session.IsSessionExpired(ctx.Session) {
		ctx.Logger.Debug("User already authenticated")
		ctx.SetJSONStatus(http.StatusOK, "ok")
		return
	}

	redirectTo := ctx.Request.URL.Query().Get("rd")
	if redirectTo == "" {
		redirectTo = ctx.Request.Header.Get("Referer")
	}
	redirectTo = utils.SafeRedirectPath(redirectTo)

	ctx.Handshake.SetRedirectAfterLogin(ctx, redirectTo)

	authURL, err := ctx.OAuthProvider.StartLogin(ctx)
	if err != nil {
		ctx.Logger.Error("Failed to start login", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Logger.Debug("Redirecting to OAuth Provider", "url", authURL)

	ctx.WriteJSON(http.StatusOK, map[string]string{
		"status":       "redirect_required",
		"redirect_url": authURL,
	})
}
