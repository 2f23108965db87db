// Package receipt signs delivery receipts as JWTs so recipients can present
// a token that is verifiable without database access.
package receipt

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrSigningKeyIsRequired = errors.New("signing key is required")
	ErrInvalidReceiptToken  = errors.New("invalid receipt token")
)

// JWTSigner issues HS256-signed tokens wrapping the opaque receipt payload.
type JWTSigner struct {
	key []byte
}

// NewJWTSigner creates a signer with the given symmetric key.
func NewJWTSigner(key []byte) (*JWTSigner, error) {
	if len(key) == 0 {
		return nil, ErrSigningKeyIsRequired
	}

	return &JWTSigner{key: key}, nil
}

type receiptClaims struct {
	Receipt json.RawMessage `json:"receipt"`
	jwt.RegisteredClaims
}

// Sign wraps the payload in a signed token. The payload is carried as-is in
// the "receipt" claim.
func (s *JWTSigner) Sign(_ context.Context, payload []byte) (string, error) {
	claims := receiptClaims{
		Receipt: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Verify checks the token signature and returns the embedded receipt payload.
func (s *JWTSigner) Verify(_ context.Context, token string) ([]byte, error) {
	var claims receiptClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidReceiptToken
		}
		return s.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, ErrInvalidReceiptToken
	}

	return claims.Receipt, nil
}
