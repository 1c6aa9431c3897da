package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_empty(t *testing.T) {
	c, err := classify("")
	require.NoError(t, err)
	assert.Equal(t, contentEmpty, c.kind)
	assert.Equal(t, "", c.textOf())
}

func TestClassify_soleEquals(t *testing.T) {
	c, err := classify("=")
	require.NoError(t, err)
	assert.Equal(t, contentText, c.kind)
	assert.Equal(t, "=", c.textOf())
}

func TestClassify_formula(t *testing.T) {
	c, err := classify("=1+1")
	require.NoError(t, err)
	assert.Equal(t, contentFormula, c.kind)
	assert.Equal(t, "=1+1", c.textOf())
}

func TestClassify_formulaParseError(t *testing.T) {
	_, err := classify("=1+")
	assert.Error(t, err)
}

func TestClassify_plainText(t *testing.T) {
	c, err := classify("hello")
	require.NoError(t, err)
	assert.Equal(t, contentText, c.kind)
	assert.Equal(t, "hello", c.textOf())
	v := c.valueOf(nil)
	assert.Equal(t, "hello", v.Text)
}

func TestClassify_escapedText(t *testing.T) {
	c, err := classify("'=hello")
	require.NoError(t, err)
	assert.Equal(t, contentText, c.kind)
	assert.Equal(t, "'=hello", c.textOf())
	v := c.valueOf(nil)
	assert.Equal(t, "=hello", v.Text)
}
