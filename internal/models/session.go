package models

import "time"

type Tokens struct {
	AccessToken          string    `json:"access_token"`
	AccessTokenExpiresAt time.Time `json:"access_token_expires_at"`
}

// Session is the authenticated identity persisted in the encrypted cookie.
type Session struct {
	User   User   `json:"user"`
	Tokens Tokens `json:"tokens"`
}

// Valid reports whether both the user and the access token are present.
// Half-populated sessions are never stored or returned.
func (s *Session) Valid() bool {
	if s == nil {
		return false
	}

	return s.User.ID != 0 && s.Tokens.AccessToken != ""
}

// Clone returns a copy that does not share state with s.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	clone := *s
	return &clone
}
