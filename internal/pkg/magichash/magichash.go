// Package magichash generates the bearer tokens that authorize one-click
// reminder cancellation. Possession of a token is the whole credential, so
// tokens come from crypto/rand only.
package magichash

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

const (
	// ByteLength is the amount of entropy per token (256 bits).
	ByteLength = 32
	// Length is the length of the hex-encoded token.
	Length = ByteLength * 2
)

var format = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Generate returns a lower-case hex token with 256 bits of entropy. The
// alphabet is URL-safe, so the value can be embedded in a path segment as is.
func Generate() (string, error) {
	buf := make([]byte, ByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Valid reports whether s has the shape of a generated token. Handlers use it
// to reject garbage before touching the store.
func Valid(s string) bool {
	return format.MatchString(s)
}

// Generator adapts Generate to the use case layer, which takes the token
// source as a dependency so collisions can be simulated in tests.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate() (string, error) {
	return Generate()
}
