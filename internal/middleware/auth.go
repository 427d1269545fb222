package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
	"github.com/rahul0401-coder/intraview-AI-career/internal/utils"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const identityKey contextKey = "identity"

var (
	ErrMissingAuthHeader = errors.New("missing or malformed Authorization header")
	ErrInvalidToken      = errors.New("invalid token")
)

// Identity is the resolved caller of a request. User is nil when the
// token subject has no user record yet ("authenticated but
// unregistered"); probe-style reads treat that as empty, not an error.
type Identity struct {
	Subject string
	User    *models.User
}

// Registered reports whether the subject resolved to a user record.
func (id *Identity) Registered() bool { return id != nil && id.User != nil }

// VerifyToken validates the caller's JWT and returns the subject claim.
// The token comes from the Authorization header, or from a "token" query
// parameter for WebSocket clients that cannot set headers.
func VerifyToken(r *http.Request, secret string) (string, error) {
	var tokenStr string
	if authz := r.Header.Get("Authorization"); authz != "" {
		if !strings.HasPrefix(authz, "Bearer ") {
			return "", ErrMissingAuthHeader
		}
		tokenStr = strings.TrimPrefix(authz, "Bearer ")
	} else if tokenStr = r.URL.Query().Get("token"); tokenStr == "" {
		return "", ErrMissingAuthHeader
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

func resolve(r *http.Request, users repositories.UserRepository, secret string) (*Identity, error) {
	subject, err := VerifyToken(r, secret)
	if err != nil {
		return nil, err
	}
	identity := &Identity{Subject: subject}
	user, err := users.GetByExternalID(r.Context(), subject)
	if err == nil {
		identity.User = user
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	return identity, nil
}

// RequireAuth rejects requests without a valid bearer token and stores
// the resolved identity in the request context.
func RequireAuth(users repositories.UserRepository, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := resolve(r, users, secret)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// OptionalAuth resolves the identity when a token is present but lets
// anonymous requests through; probe reads return empty results for them.
func OptionalAuth(users repositories.UserRepository, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if identity, err := resolve(r, users, secret); err == nil {
				r = r.WithContext(WithIdentity(r.Context(), identity))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFrom returns the caller identity stored by the auth middleware.
func IdentityFrom(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	return identity, ok
}
