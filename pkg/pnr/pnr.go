// Package pnr generates public booking reference codes.
package pnr

import (
	"math/rand"
	"strings"
)

const (
	// Prefix is the fixed leading part of every PNR
	Prefix = "PNR"

	// alphabet holds the symbols the random part is drawn from
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// randomLength is the number of random symbols after the prefix
	randomLength = 7

	// Length is the total length of a PNR
	Length = len(Prefix) + randomLength
)

// Generator produces booking reference codes
type Generator struct{}

// NewGenerator creates a new PNR generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a new PNR: the fixed prefix followed by 7 symbols drawn
// uniformly from A-Z0-9. Uniqueness is not checked here; the unique index
// on the bookings table is authoritative and the caller retries on conflict.
func (g *Generator) Generate() string {
	var b strings.Builder
	b.Grow(Length)
	b.WriteString(Prefix)
	for i := 0; i < randomLength; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}

// IsValid reports whether s has the shape of a generated PNR
func IsValid(s string) bool {
	if len(s) != Length || !strings.HasPrefix(s, Prefix) {
		return false
	}
	for _, c := range s[len(Prefix):] {
		if !strings.ContainsRune(alphabet, c) {
			return false
		}
	}
	return true
}
