package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"travellounge/internal/domain"

	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG.
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestLocalStoreSaveAndDelete(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root, "https://cdn.example.com/media/", 1<<20)
	require.NoError(t, err)

	obj, err := store.Save(context.Background(), "Hotels/Le Morne", "Beach View.png", bytes.NewReader(pngPixel))
	require.NoError(t, err)
	require.Equal(t, "image/png", obj.MimeType)
	require.Equal(t, int64(len(pngPixel)), obj.Size)
	require.True(t, strings.HasPrefix(obj.Path, "hotels/le-morne/beach-view-"), obj.Path)
	require.True(t, strings.HasSuffix(obj.Path, ".png"), obj.Path)
	require.Equal(t, "https://cdn.example.com/media/"+obj.Path, obj.URL)

	full := filepath.Join(root, filepath.FromSlash(obj.Path))
	_, err = os.Stat(full)
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), obj.Path))
	_, err = os.Stat(full)
	require.True(t, os.IsNotExist(err))

	// deleting twice is fine
	require.NoError(t, store.Delete(context.Background(), obj.Path))
}

func TestLocalStoreRejects(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/media", 16)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Save(ctx, "", "empty.png", bytes.NewReader(nil))
	require.True(t, domain.IsValidation(err))

	_, err = store.Save(ctx, "", "big.png", bytes.NewReader(pngPixel))
	require.True(t, domain.IsValidation(err))

	_, err = store.Save(ctx, "", "notes.txt", strings.NewReader("hello"))
	require.True(t, domain.IsValidation(err))
}

func TestCleanFolder(t *testing.T) {
	require.Equal(t, "general", CleanFolder(""))
	require.Equal(t, "general", CleanFolder("../.."))
	require.Equal(t, "tours/north", CleanFolder("/Tours/../North/"))
}
