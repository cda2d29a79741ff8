package nation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidNationName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"", false},
		{"X", false},
		{"Xy", true},
		{"Atlantis", true},
		{"中国", true}, // two runes, not two bytes
		{"中", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, validNationName(tt.name), "name %q", tt.name)
	}
}
