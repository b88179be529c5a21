package generate

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// type8Iterations and type8SaltLen follow the IOS type 8 algorithm
// (PBKDF2-HMAC-SHA256, fixed iteration count, 14-character salt).
const (
	type8Iterations = 20000
	type8SaltLen    = 14
	type8KeyLen     = 32
)

// type8Alphabet is the IOS base64 variant used for both salt and digest.
const type8Alphabet = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Type8Secret hashes a plaintext secret into the IOS "$8$salt$hash" form so
// plans can carry enable secrets without storing the plaintext.
func Type8Secret(plaintext string) (string, error) {
	salt, err := randomSalt()
	if err != nil {
		return "", err
	}
	return type8WithSalt(plaintext, salt), nil
}

// type8WithSalt is the deterministic core, split out so tests can pin the salt.
func type8WithSalt(plaintext, salt string) string {
	key := pbkdf2.Key([]byte(plaintext), []byte(salt), type8Iterations, type8KeyLen, sha256.New)
	return fmt.Sprintf("$8$%s$%s", salt, encode64(key))
}

func randomSalt() (string, error) {
	raw := make([]byte, type8SaltLen)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("reading salt: %w", err)
	}
	salt := make([]byte, type8SaltLen)
	for i, b := range raw {
		salt[i] = type8Alphabet[int(b)%len(type8Alphabet)]
	}
	return string(salt), nil
}

// encode64 packs bytes into the IOS alphabet, three bytes to four characters,
// least significant six bits first within each group.
func encode64(src []byte) string {
	var out []byte
	for i := 0; i < len(src); i += 3 {
		var v, n uint
		for j := 0; j < 3 && i+j < len(src); j++ {
			v |= uint(src[i+j]) << (8 * uint(j))
			n++
		}
		for j := uint(0); j < n+1; j++ {
			out = append(out, type8Alphabet[v&0x3f])
			v >>= 6
		}
	}
	return string(out)
}
