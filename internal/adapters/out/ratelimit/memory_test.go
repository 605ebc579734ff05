package ratelimit

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// shortCtx fails any Wait that would need to sleep past 50ms.
func shortCtx(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	t.Cleanup(cancel)
	return ctx
}

func TestMemoryStore_Wait_WithinBurst(t *testing.T) {
	store := NewMemoryStore(0.1, 3, testLogger())

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Wait(shortCtx(t), "ollama.com"), "request %d should pass", i+1)
	}
	assert.Error(t, store.Wait(shortCtx(t), "ollama.com"), "request exceeding burst should be limited")
}

func TestMemoryStore_Wait_IndependentHosts(t *testing.T) {
	store := NewMemoryStore(0.1, 1, testLogger())

	require.NoError(t, store.Wait(shortCtx(t), "ollama.com"))
	assert.Error(t, store.Wait(shortCtx(t), "ollama.com"))

	// Another host has its own budget
	assert.NoError(t, store.Wait(shortCtx(t), "registry.ollama.ai"))
}

func TestMemoryStore_Wait_Paces(t *testing.T) {
	store := NewMemoryStore(20, 1, testLogger()) // one token every 50ms
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Wait(ctx, "ollama.com"))
	}

	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestMemoryStore_Wait_HonorsContext(t *testing.T) {
	store := NewMemoryStore(0.1, 1, testLogger())
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, store.Wait(ctx, "ollama.com"))
	cancel()

	assert.Error(t, store.Wait(ctx, "ollama.com"))
}

func TestMemoryStore_DisabledWhenRateNotPositive(t *testing.T) {
	store := NewMemoryStore(0, 0, testLogger())

	for i := 0; i < 100; i++ {
		require.NoError(t, store.Wait(shortCtx(t), "ollama.com"))
	}
}

func TestMemoryStore_Wait_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(1000, 100, testLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 200)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				errs <- store.Wait(ctx, "concurrent")
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Len(t, store.limiters, 1)
}
