package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hogarlabs/hogar/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ storage.Storage = (*storage.Local)(nil)

func TestLocalSaveDeleteRoundTrip(t *testing.T) {
	st, err := storage.NewLocal(t.TempDir(), "http://localhost:3000")
	require.NoError(t, err)
	ctx := context.Background()

	key := "chat_images/pic.png"
	require.NoError(t, st.Save(ctx, key, strings.NewReader("png-bytes"), 9, "image/png"))

	path := filepath.Join(st.Root(), filepath.FromSlash(key))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, st.Delete(ctx, key))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Deleting an absent key is tolerated
	require.NoError(t, st.Delete(ctx, key))
}

func TestLocalURL(t *testing.T) {
	st, err := storage.NewLocal(t.TempDir(), "http://localhost:3000/")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/media/gallery/a.jpg", st.URL("gallery/a.jpg"))
}

func TestLocalPing(t *testing.T) {
	dir := t.TempDir()
	st, err := storage.NewLocal(dir, "http://test")
	require.NoError(t, err)

	require.NoError(t, st.Ping(context.Background()))

	require.NoError(t, os.RemoveAll(dir))
	assert.Error(t, st.Ping(context.Background()))
}
