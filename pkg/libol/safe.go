package libol

import (
	"sync"
)

// SafeMap is a string keyed map guarded by a RWMutex. A positive size caps
// the number of keys, existing keys can always be updated.
type SafeMap[V any] struct {
	size int
	data map[string]V
	lock sync.RWMutex
}

func NewSafeMap[V any](size int) *SafeMap[V] {
	hint := size
	if hint <= 0 {
		hint = 128
	}
	return &SafeMap[V]{
		size: size,
		data: make(map[string]V, hint),
	}
}

func (m *SafeMap[V]) Len() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return len(m.data)
}

func (m *SafeMap[V]) Put(k string, v V) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.data[k]; !ok && m.size > 0 && len(m.data) >= m.size {
		return NewErr("SafeMap.Put %s: full", k)
	}
	m.data[k] = v
	return nil
}

func (m *SafeMap[V]) Get(k string) (V, bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	v, ok := m.data[k]
	return v, ok
}

func (m *SafeMap[V]) Del(k string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.data, k)
}

// Iter calls proc for every entry under the read lock, so proc must not
// write to m.
func (m *SafeMap[V]) Iter(proc func(k string, v V)) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	for k, v := range m.data {
		proc(k, v)
	}
}

// SafeVar holds one value that is replaced whole.
type SafeVar[T any] struct {
	data T
	lock sync.RWMutex
}

func NewSafeVar[T any](v T) *SafeVar[T] {
	return &SafeVar[T]{data: v}
}

func (sv *SafeVar[T]) Set(v T) {
	sv.lock.Lock()
	defer sv.lock.Unlock()
	sv.data = v
}

func (sv *SafeVar[T]) Get() T {
	sv.lock.RLock()
	defer sv.lock.RUnlock()
	return sv.data
}
