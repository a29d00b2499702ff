package middlewares

//go:generate mockgen -source=oauth_provider.go -destination=../mocks/oauth.go -package=mocks

type OAuthProvider interface {
	// StartLogin records state, nonce and PKCE verifier in the handshake and
	// returns the provider authorization URL.
	StartLogin(ctx *AppContext) (string, error)
	// HandleCallback validates the provider redirect and returns the provider
	// access token to forward to the Curiona API.
	HandleCallback(ctx *AppContext) (string, error)
}
