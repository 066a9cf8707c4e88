// Package credentials stores and verifies user passwords as a per-user random salt plus
// SHA-256(salt || password), both kept as base64 text next to the user record.
//
// All functions are pure apart from reading the random source and are safe for
// concurrent use.
package credentials

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/prepit-kitchen/prepit/internal/logger"
)

// SaltLength is the number of random bytes in a freshly generated salt.
const SaltLength = 16

// randReader is the secure random source; replaced in tests.
var randReader io.Reader = rand.Reader

// Credential is the stored form of a password.
type Credential struct {
	Salt string // base64 salt
	Hash string // base64 SHA-256(salt || password)
}

// GenerateSalt returns length random bytes. When the secure source fails it falls back to
// the bytes of a newly generated UUID string, which is weaker but still unpredictable.
func GenerateSalt(length int) []byte {
	salt := make([]byte, length)
	if _, err := io.ReadFull(randReader, salt); err != nil {
		logger.Log.Warnw("secure random source failed, using uuid salt", "error", err)
		return fallbackSalt()
	}
	return salt
}

func fallbackSalt() []byte {
	id, err := uuid.NewRandom()
	if err != nil {
		// v1 ids mix the clock and node id and do not need the random source.
		id, err = uuid.NewUUID()
		if err != nil {
			logger.Log.Errorw("uuid salt fallback failed", "error", err)
		}
	}
	return []byte(id.String())
}

// HashPassword computes SHA-256 over salt followed by the UTF-8 bytes of password.
// The order is fixed; changing it would invalidate every stored hash.
func HashPassword(password string, salt []byte) []byte {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(password))
	return h.Sum(nil)
}

// ToText encodes bytes with standard base64.
func ToText(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// FromText decodes standard base64. ok is false for malformed input.
func FromText(s string) (b []byte, ok bool) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return b, true
}

// Normalize trims leading and trailing whitespace, including newlines.
// It is applied identically when a credential is created and when it is verified.
func Normalize(password string) string {
	return strings.TrimSpace(password)
}

// CreateCredential normalizes password, draws a fresh salt and returns both salt and hash as text.
func CreateCredential(password string) Credential {
	salt := GenerateSalt(SaltLength)
	hash := HashPassword(Normalize(password), salt)
	return Credential{
		Salt: ToText(salt),
		Hash: ToText(hash),
	}
}

// Verify reports whether password matches the stored salt and hash.
// Malformed or empty stored values yield false, the same as a wrong password.
func Verify(password, saltText, hashText string) bool {
	salt, ok := FromText(saltText)
	if !ok || len(salt) == 0 {
		return false
	}
	stored, ok := FromText(hashText)
	if !ok || len(stored) == 0 {
		return false
	}

	candidate := HashPassword(Normalize(password), salt)
	return subtle.ConstantTimeCompare(candidate, stored) == 1
}
