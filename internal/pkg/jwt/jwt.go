package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidSigningMethod is returned when the JWT signing method is not supported.
	ErrInvalidSigningMethod = errors.New("invalid JWT signing method")

	// ErrSigningKeyTooShort is returned when the HS512 signing key is less than 64 bytes.
	ErrSigningKeyTooShort = errors.New("HS512 signing key must be at least 64 bytes (512 bits)")

	// ErrTokenExpired is returned when the JWT token has expired.
	ErrTokenExpired = errors.New("JWT token has expired")

	// ErrInvalidToken is returned when the token is malformed or fails validation.
	ErrInvalidToken = errors.New("invalid token")
)

// JWT defines the minimal operations needed by the app: generate and verify a token.
type JWT interface {
	// Generate creates a signed token carrying the payload, valid for ttl.
	Generate(payload Payload, ttl time.Duration) (string, error)
	// Verify parses and validates the token and returns claims.
	Verify(tokenStr string) (Claims, error)
}

type clocker interface {
	Now() time.Time
}

type generator interface {
	Generate() string
}

type jwtContextKey struct{}

// Config defines the inputs for building a JWT implementation.
type Config struct {
	// Secret is the HMAC signing key.
	Secret []byte
	// Issuer is the token issuer value.
	Issuer string
	// Audiences are the accepted token audiences.
	Audiences []string
	// Clock provides the current time source.
	Clock clocker
	// UUID generates token IDs.
	UUID generator
}

// Payload is the application data embedded in a token.
//
// Challenge tokens carry only Phone and Purpose; session tokens additionally
// carry AccountID and Role with Purpose set to "login".
type Payload struct {
	// AccountID is the authenticated account identifier, zero for challenge tokens.
	AccountID int64
	// Phone is the phone number the token is bound to.
	Phone string
	// Role is the account role, empty for challenge tokens.
	Role string
	// Purpose states what a successful exchange of this token effects.
	Purpose string
}

// Claims wraps registered claims with the application payload.
type Claims struct {
	// RegisteredClaims holds the standard JWT claims.
	jwt.RegisteredClaims
	// AccountID is the authenticated account identifier.
	AccountID int64 `json:"account_id,string,omitempty"`
	// Phone is the phone number the token is bound to.
	Phone string `json:"phone"`
	// Role is the account role carried by session tokens.
	Role string `json:"role,omitempty"`
	// Purpose states what a successful exchange of this token effects.
	Purpose string `json:"purpose"`
}

// GetAuth returns the JWT claims stored in the context, if any.
func GetAuth(ctx context.Context) *Claims {
	clm, ok := ctx.Value(jwtContextKey{}).(Claims)
	if !ok {
		return nil
	}

	return &clm
}

// SetAuth stores JWT claims in the context.
func SetAuth(ctx context.Context, clm Claims) context.Context {
	return context.WithValue(ctx, jwtContextKey{}, clm)
}
