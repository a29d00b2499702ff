package authstate

import (
	"context"

	"curiona-admin/internal/models"
)

//go:generate mockgen -source=authenticator.go -destination=../mocks/authstate.go -package=mocks

// Authenticator performs the server-mediated session operations. The refresh
// token never passes through it; the implementation keeps it out of band.
type Authenticator interface {
	SignIn(ctx context.Context, credentials models.Credentials) (*models.Session, error)
	SignInOAuth(ctx context.Context, oauthToken string) (*models.Session, error)
	Refresh(ctx context.Context) (*models.Session, error)
	SignOut(ctx context.Context) error
}
