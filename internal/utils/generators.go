package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	ticketCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	TicketCodeLength   = 5
)

// GenerateTicketCode returns a random 5 character alphanumeric code.
func GenerateTicketCode() string {
	code := make([]byte, TicketCodeLength)
	limit := big.NewInt(int64(len(ticketCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic(err)
		}
		code[i] = ticketCodeAlphabet[n.Int64()]
	}
	return string(code)
}

// CodeGenerator mints ticket codes, retrying while taken reports a collision.
type CodeGenerator struct {
	Next       func() string
	MaxRetries int
}

// NewCodeGenerator uses GenerateTicketCode as its source.
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{Next: GenerateTicketCode, MaxRetries: 32}
}

// Generate returns the first code for which taken is false. A nil taken
// accepts the first code drawn. After MaxRetries collisions the last code is
// returned as is.
func (g *CodeGenerator) Generate(taken func(code string) bool) string {
	code := g.Next()
	for i := 0; taken != nil && taken(code) && i < g.MaxRetries; i++ {
		code = g.Next()
	}
	return code
}
