package common

import "crypto/rand"

const saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// MakeRandAlnumString returns a random string of n ASCII letters and digits.
// Password salts are generated with it.
func MakeRandAlnumString(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = saltAlphabet[int(b[i])%len(saltAlphabet)]
	}
	return string(b), nil
}

// WipeByteArray overwrites b with zeros. Used to drop plaintext passwords
// from memory once they are hashed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
