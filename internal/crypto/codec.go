package crypto

import (
	"errors"
	"fmt"
	"time"

	"curiona-admin/internal/models"

	"github.com/gorilla/securecookie"
)

// Codec seals sessions with AES-256 and authenticates them with HMAC-SHA256.
// The first key pair encrypts; every pair is tried on decrypt so keys can be rotated.
type Codec struct {
	name   string
	codecs []securecookie.Codec
}

// NewCodec builds a codec from alternating hash and block keys. name binds the
// payload to a cookie name so a value sealed for one cookie is rejected by another.
func NewCodec(name string, maxAge time.Duration, keyPairs ...[]byte) (*Codec, error) {
	if len(keyPairs) == 0 || len(keyPairs)%2 != 0 {
		return nil, fmt.Errorf("key pairs must be provided as hash and block keys")
	}

	for i := 0; i < len(keyPairs); i += 2 {
		if len(keyPairs[i]) < 32 {
			return nil, fmt.Errorf("hash key %d must be at least 32 bytes", i/2)
		}
		if len(keyPairs[i+1]) != 32 {
			return nil, fmt.Errorf("block key %d must be 32 bytes", i/2)
		}
	}

	codecs := securecookie.CodecsFromPairs(keyPairs...)
	for _, c := range codecs {
		if sc, ok := c.(*securecookie.SecureCookie); ok {
			sc.MaxAge(int(maxAge.Seconds()))
			sc.SetSerializer(securecookie.JSONEncoder{})
		}
	}

	return &Codec{name: name, codecs: codecs}, nil
}

// Encrypt turns a session into an opaque, URL-safe string.
func (c *Codec) Encrypt(session *models.Session) (string, error) {
	if !session.Valid() {
		return "", &EncryptionError{Err: ErrInvalidSession}
	}

	encoded, err := securecookie.EncodeMulti(c.name, session, c.codecs...)
	if err != nil {
		return "", &EncryptionError{Err: err}
	}

	return encoded, nil
}

// Decrypt reverses Encrypt. Any failure yields a DecryptionError and never a
// partially populated session.
func (c *Codec) Decrypt(payload string) (*models.Session, error) {
	if payload == "" {
		return nil, &DecryptionError{Err: errors.New("empty payload")}
	}

	var session models.Session
	if err := securecookie.DecodeMulti(c.name, payload, &session, c.codecs...); err != nil {
		return nil, &DecryptionError{Err: err}
	}

	if !session.Valid() {
		return nil, &DecryptionError{Err: ErrInvalidSession}
	}

	return &session, nil
}
