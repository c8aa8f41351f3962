package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/soliddocs"
	"github.com/fwojciec/soliddocs/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTopics(t *testing.T) {
	t.Parallel()

	t.Run("loads a topic override map", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "topics.yaml")
		require.NoError(t, os.WriteFile(path, []byte("routing: router.mdx\nSuspense: suspense-and-transitions\n"), 0644))

		overrides, err := yaml.LoadTopics(path)

		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"routing":  "router.mdx",
			"Suspense": "suspense-and-transitions",
		}, overrides)
	})

	t.Run("missing file yields an empty map without error", func(t *testing.T) {
		t.Parallel()

		overrides, err := yaml.LoadTopics(filepath.Join(t.TempDir(), "topics.yaml"))

		require.NoError(t, err)
		assert.Empty(t, overrides)
	})

	t.Run("empty path yields an empty map without error", func(t *testing.T) {
		t.Parallel()

		overrides, err := yaml.LoadTopics("")

		require.NoError(t, err)
		assert.Empty(t, overrides)
	})

	t.Run("malformed file returns EINVALID", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "topics.yaml")
		require.NoError(t, os.WriteFile(path, []byte("routing: [unclosed\n"), 0644))

		_, err := yaml.LoadTopics(path)

		require.Error(t, err)
		assert.Equal(t, soliddocs.EINVALID, soliddocs.ErrorCode(err))
	})
}
