package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	c := New()
	assert.False(t, c.Authenticated())

	c.SetToken("abc")
	assert.True(t, c.Authenticated())
	assert.Equal(t, "abc", c.Token())
}

func TestSetUser(t *testing.T) {
	c := New()
	c.SetUser(7, "Maria")
	assert.Equal(t, int64(7), c.UserID())
	assert.Equal(t, "Maria", c.UserName())
}

func TestClear(t *testing.T) {
	c := New()
	c.SetToken("abc")
	c.SetUser(7, "Maria")

	c.Clear()
	assert.False(t, c.Authenticated())
	assert.Equal(t, int64(0), c.UserID())
	assert.Equal(t, "", c.UserName())
}
