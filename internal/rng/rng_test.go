package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoInRange(t *testing.T) {
	for n := 1; n < 50; n++ {
		for i := 0; i < 20; i++ {
			v := Crypto(n)
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, n)
		}
	}
}

func TestFixedCycles(t *testing.T) {
	f := Fixed(0, 3, 7)
	assert.Equal(t, 0, f(5))
	assert.Equal(t, 3, f(5))
	assert.Equal(t, 2, f(5))
	assert.Equal(t, 0, f(5))
}
