package ref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexToLabel(t *testing.T) {
	cases := []struct {
		row, col int
		want     string
	}{
		{0, 0, "A1"},
		{26, 0, "B27"},
		{0, 25, "Z1"},
		{0, 26, "AA1"},
		{0, 27, "AB1"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IndexToLabel(c.row, c.col))
	}
}

func TestParseLabel(t *testing.T) {
	r, c, err := ParseLabel("A1")
	require.NoError(t, err)
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)

	r, c, err = ParseLabel("  B27  ")
	require.NoError(t, err)
	assert.Equal(t, 26, r)
	assert.Equal(t, 1, c)

	r, c, err = ParseLabel("AA1")
	require.NoError(t, err)
	assert.Equal(t, 0, r)
	assert.Equal(t, 26, c)

	_, _, err = ParseLabel("1A")
	assert.Error(t, err)

	_, _, err = ParseLabel("A1x")
	assert.Error(t, err)

	_, _, err = ParseLabel("")
	assert.Error(t, err)
}

func TestParseLabelRoundTrip(t *testing.T) {
	for row := 0; row < 200; row += 7 {
		for col := 0; col < 150; col += 5 {
			label := IndexToLabel(row, col)
			r, c, err := ParseLabel(label)
			require.NoError(t, err)
			assert.Equal(t, row, r, "row mismatch for %s", label)
			assert.Equal(t, col, c, "col mismatch for %s", label)
		}
	}
}

func TestParseRange(t *testing.T) {
	rg, err := ParseRange("B2:A1")
	require.NoError(t, err)
	assert.True(t, rg.IsCanonical())
	assert.Equal(t, Range{R0: 0, C0: 0, R1: 1, C1: 1}, rg)

	_, err = ParseRange("A1-B2")
	assert.Error(t, err)
}

func TestCanonicalizeIdempotent(t *testing.T) {
	r := Range{R0: 5, C0: 0, R1: 1, C1: 3}
	c1 := r.Canonicalize()
	c2 := c1.Canonicalize()
	assert.Equal(t, c1, c2)
	assert.True(t, c1.IsCanonical())
}

func TestRangeContains(t *testing.T) {
	r := Range{R0: 1, C0: 1, R1: 3, C1: 3}
	assert.True(t, r.Contains(2, 2))
	assert.False(t, r.Contains(0, 2))
	assert.False(t, r.Contains(4, 2))
}
