package splitrest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	sw := New("say joe Hey Joe, what's up?")

	tok, ok := sw.Next()
	assert.True(t, ok)
	assert.Equal(t, "say", tok)

	tok, ok = sw.Next()
	assert.True(t, ok)
	assert.Equal(t, "joe", tok)

	assert.Equal(t, "Hey Joe, what's up?", sw.Rest())
}
