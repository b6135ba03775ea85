package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

// Configuration for PBKDF2-SHA256 hashing. Changing any of these invalidates
// every stored record, the encoded form carries only salt and key.
const (
	iterations = 100_000 // Iteration count
	keyLength  = 32      // Length of the derived key (256 bits)
	saltLength = 16      // Length of the salt (128 bits)
)

var (
	// ErrPasswordMismatch is returned when a password does not match the stored record.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrMalformedHash is returned when a stored record cannot be parsed. This
	// is a data integrity problem, not an authentication failure.
	ErrMalformedHash = errors.New("malformed password hash")
)

// HashPassword derives a key from password with a fresh random salt and
// returns it encoded as "hex(salt):hex(key)".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)

	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword compares a plaintext password against a "hex(salt):hex(key)"
// record. It returns nil on match, ErrPasswordMismatch on mismatch and an error
// wrapping ErrMalformedHash when the record cannot be decoded.
func VerifyPassword(password, encodedHash string) error {
	saltHex, keyHex, ok := strings.Cut(encodedHash, ":")
	if !ok || strings.Contains(keyHex, ":") {
		return fmt.Errorf("%w: expected salt:key", ErrMalformedHash)
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) == 0 {
		return fmt.Errorf("%w: invalid salt encoding", ErrMalformedHash)
	}
	expected, err := hex.DecodeString(keyHex)
	if err != nil || len(expected) != keyLength {
		return fmt.Errorf("%w: invalid key encoding", ErrMalformedHash)
	}

	computed := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)

	if subtle.ConstantTimeCompare(computed, expected) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}

var (
	dummyOnce sync.Once
	dummyHash string
)

// DummyHash returns a valid record for a random password nobody knows. Verify
// against it when there is no real record so the caller spends the same CPU
// time either way.
func DummyHash() string {
	dummyOnce.Do(func() {
		password, err := RandomToken(16)
		if err != nil {
			password = "dummy-password"
		}
		hash, err := HashPassword(password)
		if err != nil {
			// Salt of zeros still costs a full derivation.
			key := pbkdf2.Key([]byte(password), make([]byte, saltLength), iterations, keyLength, sha256.New)
			hash = hex.EncodeToString(make([]byte, saltLength)) + ":" + hex.EncodeToString(key)
		}
		dummyHash = hash
	})
	return dummyHash
}
