package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t, Address("573001234567@c.us"), NormalizeAddress("573001234567"))
	assert.Equal(t, Address("573001234567@c.us"), NormalizeAddress("573001234567@c.us"))
}

func TestNormalizeAddressIsIdempotent(t *testing.T) {
	inputs := []string{
		"573001234567",
		"573001234567@c.us",
		"+57 300 123 4567",
		"abc",
		"@c.us",
		"120363025246125486@g.us",
		"x@c.us@c.us",
	}

	for _, in := range inputs {
		once := NormalizeAddress(in)
		assert.Equal(t, once, NormalizeAddress(string(once)), in)
	}
}

func TestAddressUser(t *testing.T) {
	assert.Equal(t, "573001234567", NormalizeAddress("573001234567").User())
}
