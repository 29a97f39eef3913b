package keylock_test

import (
	"sync"
	"testing"

	"cv-intake-backend/pkg/keylock"

	"github.com/stretchr/testify/assert"
)

func TestKeyLockSerializesSameKey(t *testing.T) {
	locks := keylock.New()

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locks.Lock("12345678")
			counter++
			locks.Unlock("12345678")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestKeyLockIndependentKeys(t *testing.T) {
	locks := keylock.New()

	locks.Lock("11111111")
	done := make(chan struct{})
	go func() {
		// A different DNI must not block.
		locks.Lock("22222222")
		locks.Unlock("22222222")
		close(done)
	}()
	<-done
	locks.Unlock("11111111")
}
