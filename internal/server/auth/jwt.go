// Package auth implements issuing and verifying the signed credentials that
// gate protected routes. Credentials are HS256 JWTs embedding the user's
// email and role; no server-side session state is kept, so a token remains
// valid for its full lifetime even if the stored role changes afterwards.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/common"
)

// Identity is the verified subject of a credential.
type Identity struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

// CanAccess applies the self-or-admin rule: an identity may act on a
// resource scoped to targetEmail only when it owns that email or is admin.
func (id Identity) CanAccess(targetEmail string) bool {
	return id.Email == targetEmail || id.IsAdmin()
}

// Roles recognized by the platform. New users always start as viewers.
const (
	RoleViewer = "viewer"
	RoleAdmin  = "admin"
)

// Claims embeds the registered claims plus the identity fields carried by
// every issued credential.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// GenerateToken signs a credential for the given identity, valid for
// validityDuration from now.
func GenerateToken(id Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Email: id.Email,
		Role:  id.Role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetIdentityFromToken parses and verifies a credential, returning the
// embedded identity. Expired, malformed, or mis-signed tokens return
// common.ErrInvalidToken so callers can map them uniformly to 403.
func GetIdentityFromToken(tokenString string, secretKey []byte) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return Identity{}, common.ErrInvalidToken
	}

	if !token.Valid {
		return Identity{}, common.ErrInvalidToken
	}

	return Identity{Email: claims.Email, Role: claims.Role}, nil
}
