// Package handlers implements the HTTP operation surface. Handlers call
// repositories directly and raise apperrors; the response helpers map
// error kinds to statuses.
package handlers

import (
	"net/http"

	"github.com/rahul0401-coder/intraview-AI-career/internal/apperrors"
	"github.com/rahul0401-coder/intraview-AI-career/internal/middleware"
	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
)

// identityFrom returns the caller identity or an Unauthorized error.
func identityFrom(r *http.Request) (*middleware.Identity, error) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		return nil, apperrors.Unauthorized("Unauthorized")
	}
	return identity, nil
}

// userFrom resolves the caller to a registered user. An authenticated
// subject with no user record gets "User not found"; missing or invalid
// tokens stay "Unauthorized".
func userFrom(r *http.Request) (*models.User, error) {
	identity, err := identityFrom(r)
	if err != nil {
		return nil, err
	}
	if identity.User == nil {
		return nil, apperrors.NotFound("User not found")
	}
	return identity.User, nil
}

// adminFrom resolves the caller and requires the admin role, re-derived
// from the store by the auth middleware on this very call. denied is the
// message returned to non-admin callers.
func adminFrom(r *http.Request, denied string) (*models.User, error) {
	user, err := userFrom(r)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleAdmin {
		return nil, apperrors.Unauthorized(denied)
	}
	return user, nil
}
