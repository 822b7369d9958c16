package auth

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/desawisata/internal/common"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

const (
	DefaultIterations = 600000

	// iteration count assumed for "pbkdf2:<hash>" hashes without one
	legacyIterations = 260000
	saltLength       = 16
)

var digests = map[string]func() hash.Hash{
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"sha512": sha512.New,
}

// PasswordHasher produces salted PBKDF2-HMAC-SHA256 hashes in the
// "pbkdf2:sha256:<iterations>$<salt>$<hex digest>" form. Verify also accepts
// bcrypt hashes.
type PasswordHasher struct {
	iterations int
}

func NewPasswordHasher(iterations int) *PasswordHasher {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &PasswordHasher{iterations: iterations}
}

func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	salt, err := common.MakeRandAlnumString(saltLength)
	if err != nil {
		return "", fmt.Errorf("salt generation: %w", err)
	}
	sum := derive(sha256.New, plaintext, salt, h.iterations)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", h.iterations, salt, hex.EncodeToString(sum)), nil
}

// Verify reports whether plaintext matches encoded. Malformed or unknown
// hash formats never match.
func (h *PasswordHasher) Verify(plaintext, encoded string) bool {
	if strings.HasPrefix(encoded, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plaintext)) == nil
	}

	method, salt, want, ok := splitHash(encoded)
	if !ok {
		return false
	}

	newHash, iterations, ok := parseMethod(method)
	if !ok {
		return false
	}

	wantSum, err := hex.DecodeString(want)
	if err != nil || len(wantSum) == 0 {
		return false
	}

	got := derive(newHash, plaintext, salt, iterations)
	return subtle.ConstantTimeCompare(got, wantSum) == 1
}

func derive(newHash func() hash.Hash, plaintext, salt string, iterations int) []byte {
	return pbkdf2.Key([]byte(plaintext), []byte(salt), iterations, newHash().Size(), newHash)
}

func splitHash(encoded string) (method, salt, sum string, ok bool) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

// parseMethod understands "pbkdf2:<hash>" and "pbkdf2:<hash>:<iterations>".
func parseMethod(method string) (func() hash.Hash, int, bool) {
	parts := strings.Split(method, ":")
	if len(parts) < 2 || len(parts) > 3 || parts[0] != "pbkdf2" {
		return nil, 0, false
	}

	newHash, ok := digests[parts[1]]
	if !ok {
		return nil, 0, false
	}

	iterations := legacyIterations
	if len(parts) == 3 {
		n, err := strconv.Atoi(parts[2])
		if err != nil || n <= 0 {
			return nil, 0, false
		}
		iterations = n
	}

	return newHash, iterations, true
}
