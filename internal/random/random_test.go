package random

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillProducesData(t *testing.T) {
	buf := make([]byte, 64)
	Fill(buf)
	assert.NotEqual(t, make([]byte, 64), buf, "64 zero bytes from a random source is not credible")
}

func TestFillSeededProducesData(t *testing.T) {
	a := make([]byte, 64)
	b := make([]byte, 64)
	FillSeeded(a, 1, 0)
	FillSeeded(b, 2, 4096)

	assert.NotEqual(t, make([]byte, 64), a)
	assert.False(t, bytes.Equal(a, b), "different pass/offset must not repeat data")
}

func TestName(t *testing.T) {
	name := Name(32)
	assert.Len(t, name, 32)
	for _, c := range name {
		assert.True(t, strings.ContainsRune(nameAlphabet, c), "character %q outside alphabet", c)
	}

	assert.NotEqual(t, Name(32), Name(32))
}
