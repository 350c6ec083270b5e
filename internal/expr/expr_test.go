package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParam(t *testing.T) {
	assert.Equal(t, "p[0]", Param(0))
	assert.Equal(t, "p[12]", Param(12))
}

func TestOffset(t *testing.T) {
	tests := []struct {
		index, offset int
		want          string
	}{
		{0, 3, "p[0] + 3"},
		{1, 2, "p[1] + 2"},
		{5, 0, "p[5] + 0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Offset(tt.index, tt.offset))
		})
	}
}
