package adapters

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalObjectStorage_Put(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalObjectStorage(dir, "/media/", zap.NewNop())
	require.NoError(t, err)

	url, err := storage.Put(context.Background(), "report.pdf", strings.NewReader("content"))
	require.NoError(t, err)
	assert.Equal(t, "/media/report.pdf", url)

	data, err := os.ReadFile(filepath.Join(dir, "report.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestLocalObjectStorage_Put_RejectsTraversalKeys(t *testing.T) {
	storage, err := NewLocalObjectStorage(t.TempDir(), "/media", zap.NewNop())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", "a/b", `a\b`} {
		_, err := storage.Put(context.Background(), key, strings.NewReader("x"))
		assert.Error(t, err, "key %q must be rejected", key)
	}
}
