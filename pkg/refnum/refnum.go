package refnum

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Length is the fixed size of a payment reference number. Venezuelan bank
// portals take 20-digit numeric references, so the format is digits only.
const Length = 20

const randomDigits = 8

// Generate produces a candidate reference number: a second-resolution time
// prefix (yymmddhhmmss, 12 digits) plus 8 random digits. Candidates are not
// guaranteed unique; callers must check the store and retry on collision.
func Generate() (string, error) {
	prefix := time.Now().UTC().Format("060102150405")

	max := big.NewInt(1)
	for i := 0; i < randomDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%0*d", prefix, randomDigits, n), nil
}

// Valid reports whether s has the exact reference number format.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
