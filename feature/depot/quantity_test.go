package depot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStock(t *testing.T) {
	tests := []struct {
		raw   string
		want  int64
		valid bool
	}{
		{"", 0, true},
		{"42", 42, true},
		{" 7 ", 7, true},
		{"3.9", 3, true},
		{"-4", 0, true},
		{"1e3", 1000, true},
		{"0x10", 16, true},
		{"99999999999999999999", MaxSafeInteger, true},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"Infinity", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseStock(tt.raw)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStep(t *testing.T) {
	assert.Equal(t, int64(6), Step(5, 1))
	assert.Equal(t, int64(4), Step(5, -1))
	assert.Equal(t, int64(0), Step(0, -1))
	assert.Equal(t, int64(0), Step(3, -10))
	assert.Equal(t, MaxSafeInteger, Step(MaxSafeInteger, 1))
}

func TestClampStock(t *testing.T) {
	assert.Equal(t, int64(0), ClampStock(-1))
	assert.Equal(t, int64(9), ClampStock(9))
	assert.Equal(t, MaxSafeInteger, ClampStock(MaxSafeInteger+1))
}
