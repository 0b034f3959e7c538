package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v4"

	"promptforge/internal/credits"
)

// signedWith builds a bearer token carrying the given claims. The signing
// key is irrelevant: resolution never checks the signature.
func signedWith(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-the-server-key"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return token
}

func TestSubjectFromToken(t *testing.T) {
	tests := []struct {
		name    string
		bearer  string
		want    string
		wantErr error
	}{
		{
			name:   "uid claim",
			bearer: signedWith(t, jwt.MapClaims{"uid": "u1"}),
			want:   "u1",
		},
		{
			name:   "user_id fallback",
			bearer: signedWith(t, jwt.MapClaims{"user_id": "u2"}),
			want:   "u2",
		},
		{
			name:   "uid preferred over user_id",
			bearer: signedWith(t, jwt.MapClaims{"uid": "u1", "user_id": "u2"}),
			want:   "u1",
		},
		{
			name:    "no subject claim",
			bearer:  signedWith(t, jwt.MapClaims{"email": "a@b.c"}),
			wantErr: ErrMalformedCredential,
		},
		{
			name:    "garbage",
			bearer:  "not-a-jwt",
			wantErr: ErrMalformedCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SubjectFromToken(tt.bearer)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SubjectFromToken() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SubjectFromToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolverResolve(t *testing.T) {
	store := credits.NewMemStore()
	store.PutUser(credits.UserRecord{ID: "u1", Email: "u1@example.com", Credits: 20})
	resolver := NewResolver(store)

	t.Run("known subject", func(t *testing.T) {
		got, err := resolver.Resolve(context.Background(), signedWith(t, jwt.MapClaims{"uid": "u1"}))
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if got != "u1" {
			t.Errorf("Resolve() = %q, want u1", got)
		}
	})

	t.Run("unknown subject", func(t *testing.T) {
		_, err := resolver.Resolve(context.Background(), signedWith(t, jwt.MapClaims{"uid": "nobody"}))
		if !errors.Is(err, ErrUnknownSubject) {
			t.Errorf("Resolve() error = %v, want ErrUnknownSubject", err)
		}
	})

	t.Run("empty credential", func(t *testing.T) {
		_, err := resolver.Resolve(context.Background(), "")
		if !errors.Is(err, ErrMissingCredential) {
			t.Errorf("Resolve() error = %v, want ErrMissingCredential", err)
		}
	})

	t.Run("disabled resolver", func(t *testing.T) {
		disabled := NewResolver(nil)
		if disabled.Enabled() {
			t.Error("resolver with nil store should report disabled")
		}
		_, err := disabled.Resolve(context.Background(), "anything")
		if !errors.Is(err, ErrBackendUnavailable) {
			t.Errorf("Resolve() error = %v, want ErrBackendUnavailable", err)
		}
	})
}

func TestSessionTokenRoundTrip(t *testing.T) {
	const secret = "session-secret"

	token, err := IssueSessionToken("u1", "u1@example.com", secret)
	if err != nil {
		t.Fatalf("IssueSessionToken() error = %v", err)
	}

	claims, err := ValidateSessionToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateSessionToken() error = %v", err)
	}
	if claims.UID != "u1" || claims.Email != "u1@example.com" {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := ValidateSessionToken(token, "wrong-secret"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong secret error = %v, want ErrInvalidToken", err)
	}

	// A session token is also a usable bearer credential for the resolver.
	uid, err := SubjectFromToken(token)
	if err != nil || uid != "u1" {
		t.Errorf("SubjectFromToken(session) = %q, %v", uid, err)
	}
}
