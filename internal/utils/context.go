package utils

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey   ContextKey = "claims"
	TenantIDKey ContextKey = "tenant_id"
	UserIDKey   ContextKey = "user_id"
	EmailKey    ContextKey = "email"
)

var (
	ErrNoClaimsInContext = errors.New("no claims found in context")
	ErrInvalidClaimsType = errors.New("invalid claims type")
)

func claimsFromContext(c context.Context) (jwt.MapClaims, error) {
	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return nil, ErrNoClaimsInContext
	}
	return claims, nil
}

func stringClaim(c context.Context, key string) (string, error) {
	claims, err := claimsFromContext(c)
	if err != nil {
		return "", err
	}
	value, exists := claims[key]
	if !exists {
		return "", fmt.Errorf("no %s found in claims", key)
	}
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return str, nil
}

func GetTenantIDFromContext(c context.Context) (string, error) {
	return stringClaim(c, string(TenantIDKey))
}

func GetUserIDFromContext(c context.Context) (string, error) {
	return stringClaim(c, string(UserIDKey))
}

func GetEmailFromContext(c context.Context) (string, error) {
	return stringClaim(c, string(EmailKey))
}

// GetNameFromContext returns the principal's display name, or "" when the
// token carries none. Lazy provisioning falls back from there.
func GetNameFromContext(c context.Context) string {
	claims, err := claimsFromContext(c)
	if err != nil {
		return ""
	}
	name, _ := claims["name"].(string)
	return name
}
