package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		size     uintptr
		wantSize uintptr
	}{
		{1, 32},
		{32, 32},
		{33, 64},
		{64, 64},
		{65, 128},
		{1 << 20, 1 << 20},
		{1<<20 + 1, 0}, // overflow, checked separately below
	}

	for _, tc := range cases {
		c := classify(tc.size)
		if tc.wantSize == 0 {
			assert.Equal(t, overflowClass, c, "size=%d", tc.size)
			continue
		}
		assert.Equal(t, tc.wantSize, sizeClasses[c], "size=%d", tc.size)
	}
}

func TestClassifyMonotonic(t *testing.T) {
	t.Parallel()

	var prev uintptr
	for s := uintptr(1); s <= 1<<20; s *= 2 {
		c := classify(s)
		assert.GreaterOrEqual(t, sizeClasses[c], s)
		assert.LessOrEqual(t, uintptr(classify(prev)), uintptr(c))
		prev = s
	}
}
