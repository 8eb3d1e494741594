// Package tokenpkg issues and verifies bearer access tokens.
package tokenpkg

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Different types of error returned by the VerifyToken function.
var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token has expired")
)

// Roles carried by access tokens.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// Subject identifies the bearer of a token.
type Subject struct {
	Username string
	Role     string
	TenantID string
}

// Payload contains the payload data of the token.
type Payload struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	TenantID  string    `json:"tenant_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiredAt time.Time `json:"expired_at"`
}

// NewPayload creates a new token payload for the subject.
func NewPayload(s Subject, duration time.Duration) (*Payload, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	payload := &Payload{
		ID:        tokenID,
		Username:  s.Username,
		Role:      s.Role,
		TenantID:  s.TenantID,
		IssuedAt:  time.Now(),
		ExpiredAt: time.Now().Add(duration),
	}

	return payload, nil
}

// Valid checks if the token payload is valid or not.
func (payload *Payload) Valid() error {
	if time.Now().After(payload.ExpiredAt) {
		return ErrExpiredToken
	}

	return nil
}

// IsAdmin reports whether the bearer uses the back-office portal.
func (payload *Payload) IsAdmin() bool {
	return payload.Role == RoleAdmin
}
