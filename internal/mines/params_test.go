package mines

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		ok     bool
	}{
		{"beginner", Params{Size: 9, MineCount: 10}, true},
		{"no mines", Params{Size: 4, MineCount: 0}, true},
		{"single cell", Params{Size: 1, MineCount: 0}, true},
		{"full but one", Params{Size: 3, MineCount: 8}, true},
		{"full", Params{Size: 3, MineCount: 9}, false},
		{"zero size", Params{Size: 0, MineCount: 0}, false},
		{"negative mines", Params{Size: 5, MineCount: -1}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.Validate()
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidParams)
			}
		})
	}
}

func TestParseParams(t *testing.T) {
	p, err := ParseParams("16x16:40")
	require.NoError(t, err)
	assert.Equal(t, Params{Size: 16, MineCount: 40}, p)

	p, err = ParseParams(Params{Size: 24, MineCount: 99}.String())
	require.NoError(t, err)
	assert.Equal(t, Params{Size: 24, MineCount: 99}, p)

	for _, bad := range []string{"", "16x16", "16:40", "16x8:10", "axb:c", "3x3:9"} {
		_, err := ParseParams(bad)
		assert.ErrorIs(t, err, ErrInvalidParams, bad)
	}
}

func TestNeighbors(t *testing.T) {
	p := Params{Size: 3}

	collect := func(x, y int) []int {
		return slices.Sorted(p.Neighbors(p.index(x, y)))
	}

	assert.Equal(t, []int{1, 3, 4}, collect(0, 0))
	assert.Equal(t, []int{0, 2, 3, 4, 5}, collect(1, 0))
	assert.Equal(t, []int{0, 1, 2, 3, 5, 6, 7, 8}, collect(1, 1))
	assert.Equal(t, []int{4, 5, 7}, collect(2, 2))

	assert.Empty(t, slices.Collect(Params{Size: 1}.Neighbors(0)))
}

func TestPointInBounds(t *testing.T) {
	p := Params{Size: 4}
	assert.True(t, p.PointInBounds(0, 0))
	assert.True(t, p.PointInBounds(3, 3))
	assert.False(t, p.PointInBounds(4, 0))
	assert.False(t, p.PointInBounds(0, -1))
	assert.False(t, p.PointInBounds(-1, 2))
}
