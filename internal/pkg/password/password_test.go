package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := Hash("admin123")
	require.NoError(t, err)
	require.NotEqual(t, "admin123", hashed)

	assert.True(t, Verify("admin123", hashed))
	assert.False(t, Verify("admin124", hashed))
	assert.False(t, Verify("", hashed))
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("admin123")
	require.NoError(t, err)
	b, err := Hash("admin123")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, Verify("admin123", a))
	assert.True(t, Verify("admin123", b))
}

func TestVerifyRejectsPlaintextStored(t *testing.T) {
	// A legacy row holding a plaintext value must never verify.
	assert.False(t, Verify("admin123", "admin123"))
}
