package core

import (
	"context"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/huangsam/gitwrapped/internal/contract"
	"github.com/huangsam/gitwrapped/schema"
	"github.com/stretchr/testify/assert"
)

// TestContextConcurrentAccess tests that context values can be safely accessed concurrently.
func TestContextConcurrentAccess(t *testing.T) {
	ctx := withSuppressHeader(context.Background())

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			assert.True(t, shouldSuppressHeader(ctx), "Goroutine %d: shouldSuppressHeader should be true", id)
		}(i)
	}
	wg.Wait()
}

func TestShouldSuppressHeader(t *testing.T) {
	assert.False(t, shouldSuppressHeader(context.Background()))
	assert.True(t, shouldSuppressHeader(WithQuietProgress(context.Background())))

	wrongType := context.WithValue(context.Background(), suppressHeaderKey, "yes")
	assert.False(t, shouldSuppressHeader(wrongType))
}

func TestProgressOut(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, io.Discard, progressOut(WithQuietProgress(ctx), &contract.Config{Output: schema.TextOut}))
	assert.Equal(t, os.Stdout, progressOut(ctx, &contract.Config{Output: schema.TextOut}))
	assert.Equal(t, os.Stderr, progressOut(ctx, &contract.Config{Output: schema.JSONOut}))
	assert.Equal(t, os.Stdout, progressOut(ctx, &contract.Config{Output: schema.CSVOut, OutputFile: "out.csv"}))
}
