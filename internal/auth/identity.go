package auth

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hrflow/internal/errors"
	"hrflow/internal/model"
)

// identityContextKey is the echo context key the access gate stores the
// resolved identity under.
const identityContextKey = "identity"

// Identity is the resolved caller of a request, built once at the access
// gate and passed explicitly into every operation that needs it.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

// Admin reports whether the identity carries the admin role.
func (i Identity) Admin() bool {
	return i.Role == model.RoleAdmin
}

// RequireAdmin is the capability check every admin-only operation calls
// itself, on top of the coarse route gate.
func RequireAdmin(ident Identity) error {
	if !ident.Admin() {
		return errors.ErrUnauthorized
	}
	return nil
}

// StoreIdentity attaches the identity to the request context.
func StoreIdentity(c echo.Context, ident Identity) {
	c.Set(identityContextKey, ident)
}

// CurrentIdentity returns the identity resolved by the access gate.
func CurrentIdentity(c echo.Context) (Identity, bool) {
	ident, ok := c.Get(identityContextKey).(Identity)
	return ident, ok
}
