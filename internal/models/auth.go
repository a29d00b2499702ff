package models

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

const MinPasswordLength = 6

var (
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password must contain at least 6 characters")
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate applies the sign-in form rules before any request leaves the console.
func (c Credentials) Validate() error {
	address, err := mail.ParseAddress(strings.TrimSpace(c.Email))
	if err != nil || address.Address != strings.TrimSpace(c.Email) {
		return ErrInvalidEmail
	}

	if len(c.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}

type OAuthLoginRequest struct {
	OAuthToken string `json:"oauth_token"`
}

// AuthOutput is the payload returned by the remote API on a successful login.
type AuthOutput struct {
	AccessToken          string    `json:"access_token"`
	AccessTokenExpiresAt time.Time `json:"access_token_expires_at"`
	Account              User      `json:"account"`

	// RefreshToken is captured from the refresh_token cookie of the response.
	RefreshToken string `json:"-"`
}

// AuthRefreshOutput has the same shape as AuthOutput.
type AuthRefreshOutput = AuthOutput

func (o *AuthOutput) Session() *Session {
	return &Session{
		User: o.Account,
		Tokens: Tokens{
			AccessToken:          o.AccessToken,
			AccessTokenExpiresAt: o.AccessTokenExpiresAt,
		},
	}
}
