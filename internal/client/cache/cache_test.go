package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_GetSet(t *testing.T) {
	s := NewStore()

	_, ok := s.Get("userA", "profile")
	require.False(t, ok)

	s.Set("userA", "profile", "A's profile")
	v, ok := s.Get("userA", "profile")
	require.True(t, ok)
	require.Equal(t, "A's profile", v)
}

func TestStore_NilIsACachedResult(t *testing.T) {
	s := NewStore()
	s.Set("userA", "profile", nil)

	v, ok := s.Get("userA", "profile")
	require.True(t, ok)
	require.Nil(t, v)
}

func TestStore_InvalidateKey(t *testing.T) {
	s := NewStore()
	s.Set("userA", "profile", 1)
	s.Set("userA", "deals", 2)

	s.InvalidateKey("userA", "profile")

	_, ok := s.Get("userA", "profile")
	require.False(t, ok)
	_, ok = s.Get("userA", "deals")
	require.True(t, ok)
}

func TestStore_InvalidatePrefix(t *testing.T) {
	s := NewStore()
	s.Set("userA", "deal/1", "d1")
	s.Set("userA", "deal/2", "d2")
	s.Set("userA", "deals", "list")
	s.Set("userB", "deal/1", "other")

	s.InvalidatePrefix("userA", "deal/")

	_, ok := s.Get("userA", "deal/1")
	require.False(t, ok)
	_, ok = s.Get("userA", "deal/2")
	require.False(t, ok)

	// "deals" does not share the "deal/" prefix and stays put.
	v, ok := s.Get("userA", "deals")
	require.True(t, ok)
	require.Equal(t, "list", v)

	_, ok = s.Get("userB", "deal/1")
	require.True(t, ok)
}

func TestStore_InvalidateNamespace_IsolatesIdentities(t *testing.T) {
	s := NewStore()
	s.Set("userA", "profile", "A")
	s.Set("userA", "deals", []string{"d1"})
	s.Set(GlobalNamespace, "catalog", "prices")

	s.InvalidateNamespace("userA")

	_, ok := s.Get("userA", "profile")
	require.False(t, ok)
	_, ok = s.Get("userA", "deals")
	require.False(t, ok)

	// Global results survive an identity switch.
	v, ok := s.Get(GlobalNamespace, "catalog")
	require.True(t, ok)
	require.Equal(t, "prices", v)
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	s.Set("userA", "k", 1)
	s.Set(GlobalNamespace, "catalog", 2)
	require.Equal(t, 2, s.Len())

	s.Clear()
	require.Equal(t, 0, s.Len())
}
