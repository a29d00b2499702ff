package session

import (
	"time"

	"curiona-admin/internal/models"
)

// IsSessionExpired is true for a nil session, a session without an expiry, or
// one whose access token expiry is at or before now.
func IsSessionExpired(s *models.Session) bool {
	return isExpiredAt(s, time.Now())
}

// ShouldRefreshToken only ever reports true for a session that has already
// expired and whose expiry is less than threshold ahead of now.
func ShouldRefreshToken(s *models.Session, threshold time.Duration) bool {
	now := time.Now()

	if s == nil || s.Tokens.AccessTokenExpiresAt.IsZero() || !isExpiredAt(s, now) {
		return false
	}

	return s.Tokens.AccessTokenExpiresAt.Sub(now) < threshold
}

func isExpiredAt(s *models.Session, now time.Time) bool {
	if s == nil || s.Tokens.AccessTokenExpiresAt.IsZero() {
		return true
	}

	return !now.Before(s.Tokens.AccessTokenExpiresAt)
}
