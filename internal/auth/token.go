package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is the static iss claim stamped into every token this tool signs.
const Issuer = "rule-engine"

// Roles accepted by the rule-engine API.
const (
	RoleAdmin    = "admin"
	RoleViewer   = "viewer"
	RoleExecutor = "executor"
)

var (
	// ErrSigningFailed indicates the signing primitive rejected the
	// algorithm or key.
	ErrSigningFailed = errors.New("failed to sign token")

	// ErrTokenExpired indicates a structurally valid token whose exp is in
	// the past.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid covers every other verification failure: bad
	// signature, wrong algorithm, malformed structure.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims carries the token claims understood by the rule-engine API.
type Claims struct {
	ClientID string `json:"clientId"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// ValidRole reports whether role is one of the accepted role values.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleViewer, RoleExecutor:
		return true
	}
	return false
}

// NewClaims builds the canonical claims set: clientId, role, iat, nbf equal
// to iat, exp at iat+ttl, and the static issuer. A non-positive ttl is
// passed through untouched and yields an already-expired token.
func NewClaims(clientID, role string, ttl time.Duration) Claims {
	now := time.Now()
	return Claims{
		ClientID: clientID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// Generate signs the canonical claims set with HS256.
func Generate(clientID, role, secret string, ttl time.Duration) (string, error) {
	return GenerateWithAlgorithm(clientID, role, secret, ttl, "HS256")
}

// GenerateWithAlgorithm signs the canonical claims set with the named
// algorithm. Only HMAC algorithms can succeed with a shared secret; anything
// else surfaces as ErrSigningFailed.
func GenerateWithAlgorithm(clientID, role, secret string, ttl time.Duration, algorithm string) (string, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return "", fmt.Errorf("%w: unknown algorithm %q", ErrSigningFailed, algorithm)
	}

	token := jwt.NewWithClaims(method, NewClaims(clientID, role, ttl))
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigningFailed, err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of tokenString and returns the
// decoded claims. Verification is pinned to HS256 regardless of what the
// token header declares.
func Verify(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
