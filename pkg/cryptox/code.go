package cryptox

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
)

// CodeDigits is the length of one-time verification codes.
const CodeDigits = 6

const (
	codeSpace = 1_000_000

	// hotpFullWidth asks HOTP for ten digits, which leaves the 31-bit
	// truncated value unreduced.
	hotpFullWidth = otp.Digits(10)

	// unbiasedLimit is the largest multiple of codeSpace that fits in 31
	// bits. Values at or above it would favour the low codes.
	unbiasedLimit = (1 << 31) / codeSpace * codeSpace
)

// GenerateNumericCode returns a fresh uniformly distributed 6-digit code.
// Each draw derives an HOTP value from a new random secret and counter, and
// draws that would bias the reduction to six digits are discarded.
func GenerateNumericCode() (string, error) {
	for {
		value, err := drawHOTP()
		if err != nil {
			return "", err
		}
		if code, ok := codeFromHOTP(value); ok {
			return code, nil
		}
	}
}

func drawHOTP() (int64, error) {
	buf := make([]byte, 20+8)
	if _, err := rand.Read(buf); err != nil {
		return 0, fmt.Errorf("failed to generate code secret: %w", err)
	}

	secret := base32.StdEncoding.EncodeToString(buf[:20])
	counter := binary.BigEndian.Uint64(buf[20:])

	raw, err := hotp.GenerateCodeCustom(secret, counter, hotp.ValidateOpts{
		Digits:    hotpFullWidth,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to derive code: %w", err)
	}
	return strconv.ParseInt(raw, 10, 64)
}

// codeFromHOTP reduces a 31-bit HOTP value to a code, rejecting the tail
// above unbiasedLimit.
func codeFromHOTP(value int64) (string, bool) {
	if value < 0 || value >= unbiasedLimit {
		return "", false
	}
	return fmt.Sprintf("%0*d", CodeDigits, value%codeSpace), true
}

// IsNumericCode reports whether s is exactly CodeDigits ASCII digits.
func IsNumericCode(s string) bool {
	if len(s) != CodeDigits {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
