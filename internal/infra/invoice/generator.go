// Package invoice generates public invoice numbers.
package invoice

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"strings"

	"academy/internal/domain/service"
	"academy/internal/errors"
)

const (
	// Prefix starts every invoice number.
	Prefix = "INV-"

	randomBytes = 5
)

type generator struct {
	random io.Reader
}

// NewGenerator returns a generator of numbers shaped INV-XXXXXXXXXX, where
// the suffix is 40 random bits as uppercase hex.
func NewGenerator() service.InvoiceNumberGenerator {
	return &generator{random: rand.Reader}
}

func (g *generator) Generate() (string, error) {
	buf := make([]byte, randomBytes)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return Prefix + strings.ToUpper(hex.EncodeToString(buf)), nil
}
