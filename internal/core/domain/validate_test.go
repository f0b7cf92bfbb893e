package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUsername(t *testing.T) {
	assert.True(t, ValidUsername("deo0"))
	assert.True(t, ValidUsername("admin_2"))
	assert.False(t, ValidUsername("ab"))
	assert.False(t, ValidUsername("has space"))
	assert.False(t, ValidUsername("trailing-dash"))
	assert.False(t, ValidUsername(""))
}

func TestValidNIC(t *testing.T) {
	assert.True(t, ValidNIC("851234567V"))
	assert.True(t, ValidNIC("851234567v"))
	assert.True(t, ValidNIC("923456789X"))
	assert.True(t, ValidNIC("200012345678"))
	assert.False(t, ValidNIC("12345"))
	assert.False(t, ValidNIC("851234567Z"))
	assert.False(t, ValidNIC("2000123456789"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone(""))
	assert.True(t, ValidPhone("+94 71 234 5678"))
	assert.True(t, ValidPhone("(011) 234-5678"))
	assert.False(t, ValidPhone("call me"))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("Abcdef1"))
	assert.True(t, ValidPassword("abcdef"))
	assert.False(t, ValidPassword("abcde"))
	assert.False(t, ValidPassword(""))
}
