package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// SessionTokenBytes is the entropy behind a session cookie. It encodes to 43
// base64url characters.
const SessionTokenBytes = 32

var b64 = base64.RawURLEncoding

// NewSessionToken returns a fresh opaque session token.
func NewSessionToken() (string, error) {
	return RandomToken(SessionTokenBytes)
}

// RandomToken returns n random bytes as unpadded base64url.
func RandomToken(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", n)
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random token: %w", err)
	}
	return b64.EncodeToString(buf), nil
}

// FingerprintToken is the SHA-256 of token in base64url. Sessions are stored
// by fingerprint so a database copy holds no usable cookies.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return b64.EncodeToString(sum[:])
}

// FingerprintCode binds a verification code to its address so the same
// digits sent to two people never collide.
func FingerprintCode(email, code string) string {
	return FingerprintToken(email + "\x00" + code)
}
