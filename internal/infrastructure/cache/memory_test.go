package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairKey_Symmetric(t *testing.T) {
	assert.Equal(t, PairKey("Golden Retriever", "Beagle"), PairKey("Beagle", "Golden Retriever"))
	assert.Equal(t, "Beagle|Golden Retriever", PairKey("Golden Retriever", "Beagle"))
	assert.Equal(t, "a|a", PairKey("a", "a"))
}

func TestBounded_GetPut(t *testing.T) {
	c := NewBounded[int](10)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	cleared := c.Put("k", 42)
	assert.False(t, cleared)

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, c.Len())
}

func TestBounded_ClearsWholesaleAtCeiling(t *testing.T) {
	c := NewBounded[int](3)
	for i := 0; i < 3; i++ {
		assert.False(t, c.Put(fmt.Sprintf("k%d", i), i))
	}
	assert.Equal(t, 3, c.Len())

	// The next insert clears everything, then stores the new entry.
	assert.True(t, c.Put("k3", 3))
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("k0")
	assert.False(t, ok)
	v, ok := c.Get("k3")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestBounded_NonPositiveLimit(t *testing.T) {
	c := NewBounded[string](0)
	c.Put("a", "x")
	assert.Equal(t, 1, c.Len())
	// Every insert clears a limit-1 cache.
	assert.True(t, c.Put("b", "y"))
	assert.Equal(t, 1, c.Len())
}

func TestBounded_Concurrent(t *testing.T) {
	c := NewBounded[int](1000)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := PairKey(fmt.Sprintf("p%d", g), fmt.Sprintf("p%d", i))
				c.Put(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 1000)
}

//Personal.AI order the ending
