package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Character classes for generated passwords. Every generated password
// contains at least one character from each class.
const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	specialChars = "!@#$%^&*()_+{}[]:;<>,.?/|~`"
)

// minGeneratedLength is the smallest password that can contain one character
// from each of the four classes.
const minGeneratedLength = 4

// GenerateStrongPassword returns a random credential of exactly length
// characters containing at least one lowercase letter, one uppercase letter,
// one digit, and one special character. Remaining positions are drawn
// uniformly from the union of the four classes and the whole sequence is
// shuffled so the guaranteed characters are not positionally predictable.
// All randomness comes from crypto/rand.
//
// Length below 4 is a contract violation and panics; callers must not rely
// on silent clamping.
func GenerateStrongPassword(length int) string {
	if length < minGeneratedLength {
		panic(fmt.Sprintf("password length must be at least %d to ensure complexity, got %d", minGeneratedLength, length))
	}

	allChars := lowerChars + upperChars + digitChars + specialChars

	out := make([]byte, 0, length)
	out = append(out,
		lowerChars[randIndex(len(lowerChars))],
		upperChars[randIndex(len(upperChars))],
		digitChars[randIndex(len(digitChars))],
		specialChars[randIndex(len(specialChars))],
	)
	for i := minGeneratedLength; i < length; i++ {
		out = append(out, allChars[randIndex(len(allChars))])
	}

	// Fisher-Yates shuffle.
	for i := len(out) - 1; i > 0; i-- {
		j := randIndex(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return string(out)
}

// randIndex returns a uniform random int in [0, n) from crypto/rand. A
// failing system randomness source leaves nothing sensible to do in a
// credential generator, so it panics.
func randIndex(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return int(v.Int64())
}
