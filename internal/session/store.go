package session

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"curiona-admin/internal/config"
	"curiona-admin/internal/crypto"
	"curiona-admin/internal/metrics"
	"curiona-admin/internal/models"
)

// Store keeps the session in a single encrypted, httpOnly cookie. The console
// holds no server-side session state.
type Store struct {
	codec       *crypto.Codec
	name        string
	refreshName string
	secure      bool
	maxAge      time.Duration
	logger      *slog.Logger
}

func NewStore(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	codec, err := crypto.NewCodec(cfg.Sessions.Name, cfg.Sessions.MaxAge, cfg.Sessions.KeyPairs()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create session codec: %w", err)
	}

	return &Store{
		codec:       codec,
		name:        cfg.Sessions.Name,
		refreshName: cfg.Sessions.RefreshCookieName,
		secure:      cfg.Server.IsProduction(),
		maxAge:      cfg.Sessions.MaxAge,
		logger:      logger,
	}, nil
}

// CreateSession encrypts the session, attaches it to the response and returns the payload.
func (s *Store) CreateSession(w http.ResponseWriter, session *models.Session) (string, error) {
	payload, err := s.codec.Encrypt(session)
	if err != nil {
		return "", err
	}

	http.SetCookie(w, s.cookie(s.name, url.QueryEscape(payload), s.maxAge))

	return payload, nil
}

// GetSession returns nil when the cookie is absent or unreadable. Unreadable
// cookies are logged and otherwise treated as anonymous.
func (s *Store) GetSession(r *http.Request) *models.Session {
	cookie, err := r.Cookie(s.name)
	if err != nil || cookie.Value == "" {
		return nil
	}

	payload, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		metrics.SessionDecryptFailures.Inc()
		s.logger.Error("failed to decode session cookie", "error", err)
		return nil
	}

	session, err := s.codec.Decrypt(payload)
	if err != nil {
		metrics.SessionDecryptFailures.Inc()
		s.logger.Error("failed to decrypt session cookie", "error", err)
		return nil
	}

	return session
}

func (s *Store) DestroySession(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie(s.name, "", 0))
}

// SetRefreshToken stores the refresh token issued by the remote API.
func (s *Store) SetRefreshToken(w http.ResponseWriter, token string) {
	http.SetCookie(w, s.cookie(s.refreshName, token, s.maxAge))
}

func (s *Store) RefreshToken(r *http.Request) string {
	cookie, err := r.Cookie(s.refreshName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

func (s *Store) ClearRefreshToken(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie(s.refreshName, "", 0))
}

// cookie builds a cookie with the shared attributes. A zero maxAge expires it immediately.
func (s *Store) cookie(name, value string, maxAge time.Duration) *http.Cookie {
	seconds := int(maxAge.Seconds())
	if seconds <= 0 {
		seconds = -1
	}

	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   seconds,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
