package crypto

import "errors"

var ErrInvalidSession = errors.New("session is missing user or access token")

// EncryptionError is returned when a session cannot be sealed.
type EncryptionError struct {
	Err error
}

func (e *EncryptionError) Error() string {
	return "failed to encrypt session: " + e.Err.Error()
}

func (e *EncryptionError) Unwrap() error {
	return e.Err
}

// DecryptionError is returned for malformed, tampered, expired or foreign payloads.
type DecryptionError struct {
	Err error
}

func (e *DecryptionError) Error() string {
	return "failed to decrypt session: " + e.Err.Error()
}

func (e *DecryptionError) Unwrap() error {
	return e.Err
}
