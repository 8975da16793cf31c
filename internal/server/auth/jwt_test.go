package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	id := Identity{Email: "a@b.com", Role: RoleViewer}

	tok, err := GenerateToken(id, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	got, err := GetIdentityFromToken(tok, secret)
	if err != nil {
		t.Fatalf("GetIdentityFromToken error: %v", err)
	}
	if got != id {
		t.Fatalf("identity mismatch: got %+v want %+v", got, id)
	}
}

func TestGetIdentityFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken(Identity{Email: "a@b.com", Role: RoleViewer}, secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetIdentityFromToken(tok, secret)
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestGetIdentityFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(Identity{Email: "a@b.com", Role: RoleAdmin}, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetIdentityFromToken(tok, []byte("wrong-secret"))
	if err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestGetIdentityFromToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := GetIdentityFromToken("not.a.jwt", []byte("k"))
	if err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestIdentity_CanAccess(t *testing.T) {
	t.Parallel()

	viewer := Identity{Email: "me@x.com", Role: RoleViewer}
	admin := Identity{Email: "root@x.com", Role: RoleAdmin}

	if !viewer.CanAccess("me@x.com") {
		t.Fatalf("viewer must access own resources")
	}
	if viewer.CanAccess("other@x.com") {
		t.Fatalf("viewer must not access others' resources")
	}
	if !admin.CanAccess("other@x.com") {
		t.Fatalf("admin must access any resource")
	}
}
