package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("counter", 1)
	assert.NoError(t, err)
	assert.True(t, isNew)

	// Ghi đè item cũ
	isNew, err = r.Register("counter", 2)
	assert.NoError(t, err)
	assert.False(t, isNew)

	value, exists := r.Get("counter")
	assert.True(t, exists)
	assert.Equal(t, 2, value)

	_, exists = r.Get("missing")
	assert.False(t, exists)
}

func TestRegistryRegisterEmptyName(t *testing.T) {
	r := NewRegistry[string]()

	_, err := r.Register("", "value")
	assert.Error(t, err)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			r.Register("shared", n)
		}(i)
		go func() {
			defer wg.Done()
			r.Get("shared")
		}()
	}
	wg.Wait()

	_, exists := r.Get("shared")
	assert.True(t, exists)
}
