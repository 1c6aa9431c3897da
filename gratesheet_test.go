package gratesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSheet_basicUsage(t *testing.T) {
	s := CreateSheet()

	a1, err := ParsePosition("A1")
	require.NoError(t, err)
	a2, err := ParsePosition("A2")
	require.NoError(t, err)
	a3, err := ParsePosition("A3")
	require.NoError(t, err)

	require.NoError(t, s.SetCell(a1, "4"))
	require.NoError(t, s.SetCell(a2, "5"))
	require.NoError(t, s.SetCell(a3, "=A1+A2"))

	cell, err := s.GetCell(a3)
	require.NoError(t, err)
	require.NotNil(t, cell)

	v := cell.GetValue()
	assert.Equal(t, float64(9), v.Number)
}
