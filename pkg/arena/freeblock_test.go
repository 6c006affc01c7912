package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitsAdmissibilityBound(t *testing.T) {
	t.Parallel()

	// bs >= size+align-1 always admits, regardless of mem's alignment.
	assert.True(t, fits(64+63, 1, 64, 64))
	assert.True(t, fits(128, 7, 64, 8))
}

func TestFitsExactCheck(t *testing.T) {
	t.Parallel()

	// mem already aligned: exact size is enough.
	assert.True(t, fits(64, 128, 64, 8))
	// mem misaligned by 4, bs too tight to absorb the shift.
	assert.False(t, fits(64, 4, 64, 8))
	// same misalignment, with enough slack to absorb it.
	assert.True(t, fits(68, 4, 64, 8))
}

func TestFitsRejectsTooSmall(t *testing.T) {
	t.Parallel()

	assert.False(t, fits(32, 0, 64, 8))
}
