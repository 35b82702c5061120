package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGet(t *testing.T) {
	c := New[string, int](0)
	c.Set("a", 1, 0)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestNoDefaultTTLMeansNoExpiry(t *testing.T) {
	c := New[string, int](0)
	c.Set("a", 1, 0)
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("a")
	assert.True(t, ok, "entries without TTL must not expire")
}

func TestExpiry(t *testing.T) {
	c := New[string, int](0)
	c.Set("a", 1, 10*time.Millisecond)

	_, ok := c.Get("a")
	assert.True(t, ok)

	time.Sleep(25 * time.Millisecond)
	_, ok = c.Get("a")
	assert.False(t, ok, "expired entry still served")
}

func TestDeleteAndClear(t *testing.T) {
	c := New[string, int](0)
	c.Set("a", 1, 0)
	c.Set("b", 2, 0)

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}
