package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Setenv("PATTERNS_TEST_KEY", "value")
	assert.Equal(t, "value", Get("PATTERNS_TEST_KEY"))
	assert.Equal(t, "", Get("PATTERNS_TEST_MISSING"))
}

func TestGetDefault(t *testing.T) {
	t.Setenv("PATTERNS_TEST_KEY", "set")
	assert.Equal(t, "set", GetDefault("PATTERNS_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetDefault("PATTERNS_TEST_MISSING", "fallback"))
}
