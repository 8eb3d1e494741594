package tokenpkg

import (
	"fmt"
	"time"
)

// Maker is an interface for managing tokens.
type Maker interface {
	// CreateToken creates a new token for the subject and duration.
	CreateToken(s Subject, duration time.Duration) (string, *Payload, error)

	// VerifyToken checks if the token is valid or not.
	VerifyToken(token string) (*Payload, error)
}

// Supported maker kinds.
const (
	KindJWT    = "jwt"
	KindPaseto = "paseto"
)

// NewMaker returns the Maker of the given kind.
func NewMaker(kind, symmetricKey string) (Maker, error) {
	switch kind {
	case KindJWT:
		return NewJWTMaker(symmetricKey)
	case "", KindPaseto:
		return NewPasetoMaker(symmetricKey)
	}

	return nil, fmt.Errorf("unsupported token kind %q", kind)
}
