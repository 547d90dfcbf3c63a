package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxLengthRule(t *testing.T) {
	rule := MaxLength(10)

	assert.Nil(t, rule("name", "Frag Tank"))
	assert.Nil(t, rule("name", nil))
	assert.Nil(t, rule("name", 42)) // non-strings are ignored

	err := rule("name", strings.Repeat("x", 11))
	require.NotNil(t, err)
	assert.Equal(t, "name", err.Field)
	assert.Contains(t, err.Message, "at most 10 characters")

	// runes, not bytes
	assert.Nil(t, rule("name", strings.Repeat("ż", 10)))
}

func TestValidatorCollectsRuleErrors(t *testing.T) {
	v := NewValidator().
		Field("name", "", Required, MaxLength(120)).
		Field("description", strings.Repeat("a", 501), MaxLength(500))

	require.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 2)

	err := ValidateAndReturnError(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "description")
}
