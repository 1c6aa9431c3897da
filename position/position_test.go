package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := map[string]Position{
		"A1":   {Row: 0, Col: 0},
		"a1":   {Row: 0, Col: 0},
		"Z25":  {Row: 24, Col: 25},
		"AA1":  {Row: 0, Col: 26},
		"AB32": {Row: 31, Col: 27},
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParse_malformed(t *testing.T) {
	for _, in := range []string{"", "1A", "A", "1", "A-1", "A0", "$A1"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestParse_outOfRange(t *testing.T) {
	_, err := Parse("A100000000000000000")
	assert.Error(t, err)
}

func TestString_roundTrip(t *testing.T) {
	for _, s := range []string{"A1", "Z25", "AA1", "AB32", "ZZ999"} {
		pos, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, pos.String())
	}
}

func TestString_matchesDecodeColumn(t *testing.T) {
	tests := map[string]int{
		"A":   0,
		"Z":   25,
		"AA":  26,
		"AB":  27,
		"AZ":  51,
		"FS":  6*26 + 18,
		"ABC": 1*26*26 + 2*26 + 2,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := decodeColumn(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, in, encodeColumn(want))
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, Position{Row: 0, Col: 0}.IsValid())
	assert.True(t, Position{Row: Max - 1, Col: Max - 1}.IsValid())
	assert.False(t, Position{Row: -1, Col: 0}.IsValid())
	assert.False(t, Position{Row: 0, Col: Max}.IsValid())
}

func TestCompare(t *testing.T) {
	a := Position{Row: 0, Col: 5}
	b := Position{Row: 1, Col: 0}
	c := Position{Row: 0, Col: 5}
	assert.True(t, a.Compare(b) < 0)
	assert.True(t, b.Compare(a) > 0)
	assert.Equal(t, 0, a.Compare(c))
}
