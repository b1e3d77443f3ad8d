// Package rng provides the uniform index source shared by the word catalog,
// the quote picker and the hint selector.
package rng

import (
	"crypto/rand"
	"math/big"
)

// Intn returns a uniform index in [0, n). n must be > 0.
type Intn func(n int) int

// Crypto draws from crypto/rand. If the reader fails it returns 0.
func Crypto(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}

// Fixed returns an Intn that cycles through idx (modulo n). Handy in tests.
func Fixed(idx ...int) Intn {
	i := 0
	return func(n int) int {
		v := idx[i%len(idx)]
		i++
		return v % n
	}
}
