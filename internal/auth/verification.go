package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

// VerificationLifetime is the window in which an email verification link
// stays usable.
const VerificationLifetime = 24 * time.Hour

// tagLength is the number of hex characters of the SHA-256 integrity tag
// appended to the payload.
const tagLength = 16

// Codec issues and checks self-contained email verification tokens.
//
// A token is base64url(JSON payload) + "." + tag, where the tag is the first
// 16 hex characters of SHA-256("payload:secret"). Everything needed to check
// the token is inside it; nothing is persisted. There is no revocation list,
// so a token stays valid until its natural expiry even after a successful
// verification.
type Codec struct {
	secret string
	now    func() time.Time
}

// NewCodec creates a verification token codec over the server-held secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: secret, now: time.Now}
}

type verificationPayload struct {
	Email   string `json:"email"`
	Expires string `json:"expires"`
	Created string `json:"created"`
	Salt    string `json:"secret"`
}

// Issue creates a verification token for the email, valid for 24 hours.
func (c *Codec) Issue(email string) (string, error) {
	now := c.now().UTC()

	salt := c.secret
	if len(salt) > 16 {
		salt = salt[:16]
	}
	payload := verificationPayload{
		Email:   email,
		Expires: now.Add(VerificationLifetime).Format(time.RFC3339),
		Created: now.Format(time.RFC3339),
		Salt:    salt,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	encoded := base64.URLEncoding.EncodeToString(raw)

	return encoded + "." + c.tag(encoded), nil
}

// Check reports whether the token is authentic, belongs to the email, and
// has not expired. Any failure yields false; callers cannot distinguish a
// forged token from an expired one.
func (c *Codec) Check(email, token string) bool {
	if c.secret == "" || token == "" {
		return false
	}

	sep := strings.LastIndex(token, ".")
	if sep < 0 {
		return false
	}
	encoded, tag := token[:sep], token[sep+1:]

	// Verify the integrity tag before touching the payload.
	if c.tag(encoded) != tag {
		return false
	}

	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return false
	}
	var payload verificationPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return false
	}

	if payload.Email != email {
		return false
	}

	expires, err := time.Parse(time.RFC3339, payload.Expires)
	if err != nil {
		return false
	}
	return !c.now().UTC().After(expires)
}

func (c *Codec) tag(encoded string) string {
	sum := sha256.Sum256([]byte(encoded + ":" + c.secret))
	return hex.EncodeToString(sum[:])[:tagLength]
}
