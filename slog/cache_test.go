package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/soliddocs/mock"
	sdslog "github.com/fwojciec/soliddocs/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCache_Fresh(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Cache{
		FreshFn: func(now time.Time) bool { return true },
		PathFn:  func() string { return "/tmp/solidjs-docs.txt" },
	}

	cache := sdslog.NewLoggingCache(inner, logger)

	assert.True(t, cache.Fresh(time.Now()))
	output := buf.String()
	assert.Contains(t, output, "cache freshness check")
	assert.Contains(t, output, "path=/tmp/solidjs-docs.txt")
	assert.Contains(t, output, "fresh=true")
}

func TestLoggingCache_Read(t *testing.T) {
	t.Parallel()

	t.Run("logs bytes, hash, and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Cache{
			ReadFn: func(ctx context.Context) (string, error) {
				return "consolidated docs", nil
			},
			PathFn: func() string { return "/tmp/solidjs-docs.txt" },
		}

		cache := sdslog.NewLoggingCache(inner, logger)
		text, err := cache.Read(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "consolidated docs", text)
		output := buf.String()
		assert.Contains(t, output, "cache read")
		assert.Contains(t, output, "bytes=17")
		assert.Contains(t, output, "hash=")
		assert.Contains(t, output, "duration=")
	})
}

func TestLoggingCache_Path(t *testing.T) {
	t.Parallel()

	inner := &mock.Cache{
		PathFn: func() string { return "/tmp/solidjs-docs.txt" },
	}

	cache := sdslog.NewLoggingCache(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	assert.Equal(t, "/tmp/solidjs-docs.txt", cache.Path())
}
