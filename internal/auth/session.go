package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionExpiry is the lifetime of an issued session token.
const SessionExpiry = 7 * 24 * time.Hour

// SessionClaims are the claims embedded in a session token.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionService issues and reads signed, stateless session tokens.
// There is no server-side revocation: a token stays valid until expiry and
// logout only clears the client cookie.
type SessionService struct {
	secret []byte
}

// NewSessionService creates a session service with the given signing secret.
func NewSessionService(secret string) *SessionService {
	return &SessionService{secret: []byte(secret)}
}

// Secret exposes the signing secret for middleware that parses tokens itself.
func (s *SessionService) Secret() []byte {
	return s.secret
}

// Issue produces a signed token carrying the user's id and role.
func (s *SessionService) Issue(userID uuid.UUID, role string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID: userID.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Read verifies a token and returns the identity it carries.
// Any failure (tampered, expired, malformed) yields nil: the caller is
// treated as anonymous, never handed an error.
func (s *SessionService) Read(tokenString string) *Identity {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil
	}
	return claims.Identity()
}

// Identity converts validated claims into an Identity, or nil when the
// embedded user id is not a UUID.
func (c *SessionClaims) Identity() *Identity {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return nil
	}
	return &Identity{UserID: userID, Role: c.Role}
}
