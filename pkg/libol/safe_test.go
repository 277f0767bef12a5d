package libol

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeMap(t *testing.T) {
	m := NewSafeMap[string](4)
	assert.Nil(t, m.Put("hi", "1"))
	v, ok := m.Get("hi")
	assert.True(t, ok)
	assert.Equal(t, "1", v, "be the same.")

	assert.Nil(t, m.Put("hi", "3"))
	v, _ = m.Get("hi")
	assert.Equal(t, "3", v, "be the same.")
	assert.Equal(t, 1, m.Len(), "be the same.")

	for i := 0; i < 8; i++ {
		_ = m.Put(fmt.Sprintf("%d", i), "x")
	}
	assert.Equal(t, 4, m.Len(), "be the same.")
	assert.NotNil(t, m.Put("full", "x"))
	assert.Nil(t, m.Put("hi", "4"), "update when full.")

	m.Del("hi")
	_, ok = m.Get("hi")
	assert.False(t, ok)
}

func TestSafeMapUnlimited(t *testing.T) {
	m := NewSafeMap[int](0)
	for i := 0; i < 300; i++ {
		assert.Nil(t, m.Put(fmt.Sprintf("%d", i), i))
	}
	sum := 0
	m.Iter(func(k string, v int) {
		sum += v
	})
	assert.Equal(t, 300, m.Len(), "be the same.")
	assert.Equal(t, 299*300/2, sum, "be the same.")
}

func TestSafeVarSwap(t *testing.T) {
	v := NewSafeVar([]int{0, 0, 0})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i < 500; i++ {
			v.Set([]int{i, i, i})
		}
	}()
	for i := 0; i < 500; i++ {
		s := v.Get()
		assert.Equal(t, s[0], s[1])
		assert.Equal(t, s[1], s[2])
	}
	wg.Wait()
}
