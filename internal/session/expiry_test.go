package session

import (
	"context"
	"testing"
	"time"

	"curiona-admin/internal/models"

	"github.com/stretchr/testify/assert"
)

func sessionExpiringIn(d time.Duration) *models.Session {
	return &models.Session{
		User:   models.User{ID: 1},
		Tokens: models.Tokens{AccessToken: "t1", AccessTokenExpiresAt: time.Now().Add(d)},
	}
}

func TestIsSessionExpired(t *testing.T) {
	tests := []struct {
		name     string
		session  *models.Session
		expected bool
	}{
		{"nil session", nil, true},
		{"missing expiry", &models.Session{User: models.User{ID: 1}, Tokens: models.Tokens{AccessToken: "t1"}}, true},
		{"expires in one hour", sessionExpiringIn(time.Hour), false},
		{"expired one second ago", sessionExpiringIn(-time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSessionExpired(tt.session))
		})
	}
}

func TestIsExpiredAt_Boundary(t *testing.T) {
	expiry := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := &models.Session{User: models.User{ID: 1}, Tokens: models.Tokens{AccessToken: "t1", AccessTokenExpiresAt: expiry}}

	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{"one nanosecond before expiry", expiry.Add(-time.Nanosecond), false},
		{"exactly at expiry", expiry, true},
		{"one nanosecond after expiry", expiry.Add(time.Nanosecond), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isExpiredAt(s, tt.now))
		})
	}
}

func TestShouldRefreshToken(t *testing.T) {
	threshold := 5 * time.Minute

	tests := []struct {
		name     string
		session  *models.Session
		expected bool
	}{
		{"nil session", nil, false},
		{"missing expiry", &models.Session{User: models.User{ID: 1}}, false},
		{"expires in ten minutes", sessionExpiringIn(10 * time.Minute), false},
		{"expires in two minutes is not yet expired", sessionExpiringIn(2 * time.Minute), false},
		{"expired one minute ago", sessionExpiringIn(-time.Minute), true},
		{"expired an hour ago", sessionExpiringIn(-time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShouldRefreshToken(tt.session, threshold))
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	s := sessionExpiringIn(time.Hour)

	assert.Nil(t, FromContext(context.Background()))
	assert.Same(t, s, FromContext(WithSession(context.Background(), s)))
}
