package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"curiona-admin/internal/middlewares"
	"curiona-admin/internal/models"
	"curiona-admin/internal/utils"

	"github.com/go-chi/chi/v5"
)

// RedactEmail is used to redact emails (mostly for logs)
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}

	localRunes := []rune(parts[0])
	domain := parts[1]

	if len(localRunes) <= 2 {
		return strings.Repeat("*", len(localRunes)) + "@" + domain
	}

	first := string(localRunes[0])
	last := string(localRunes[len(localRunes)-1])
	middle := strings.Repeat("*", len(localRunes)-2)

	return first + middle + last + "@" + domain
}

// SessionResponse is returned by every endpoint that establishes or renews a session.
type SessionResponse struct {
	Session *models.Session `json:"session"`
}

// establishSession persists the session cookie and the rotated refresh token.
func establishSession(ctx *middlewares.AppContext, s *models.Session, refreshToken string) error {
	if _, err := ctx.Sessions.CreateSession(ctx.Response, s); err != nil {
		return err
	}

	if refreshToken != "" {
		ctx.Sessions.SetRefreshToken(ctx.Response, refreshToken)
	}

	ctx.Session = s
	return nil
}

func clearSession(ctx *middlewares.AppContext) {
	ctx.Sessions.DestroySession(ctx.Response)
	ctx.Sessions.ClearRefreshToken(ctx.Response)
	ctx.Session = nil
}

// parseIDParam reads a positive integer route parameter, answering 400 otherwise.
func parseIDParam(ctx *middlewares.AppContext, name string) (int64, bool) {
	raw := chi.URLParam(ctx.Request, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}

func writeData(ctx *middlewares.AppContext, data any) {
	ctx.WriteJSON(http.StatusOK, models.APIResponse[any]{Data: data})
}

func writeMessage(ctx *middlewares.AppContext, message string) {
	ctx.WriteJSON(http.StatusOK, models.APIResponse[any]{Message: message})
}

// logLoginAttempt writes the audit line for a sign-in attempt.
func logLoginAttempt(ctx *middlewares.AppContext, method, email string, success bool) {
	ua := utils.ParseUserAgent(ctx.Request.UserAgent())
	audit := models.LoginAudit{
		Method:         method,
		Email:          RedactEmail(email),
		Success:        success,
		IPAddress:      middlewares.ClientAddr(ctx.Request),
		UserAgent:      ctx.Request.UserAgent(),
		BrowserName:    ua.BrowserName,
		BrowserVersion: ua.BrowserVersion,
		OSName:         ua.OSName,
		OSVersion:      ua.OSVersion,
		DeviceType:     ua.DeviceType,
		AttemptedAt:    time.Now().UTC(),
	}

	message := "login succeeded"
	logFn := ctx.Logger.Info
	if !success {
		message = "login failed"
		logFn = ctx.Logger.Warn
	}

	logFn(message,
		"method", audit.Method,
		"email", audit.Email,
		"ip_address", audit.IPAddress.String(),
		"browser", audit.BrowserName,
		"browser_version", audit.BrowserVersion,
		"os", audit.OSName,
		"os_version", audit.OSVersion,
		"device", audit.DeviceType,
		"attempted_at", audit.AttemptedAt,
	)
}
