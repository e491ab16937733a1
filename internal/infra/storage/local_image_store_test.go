package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"echofinds/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *localImageStore {
	t.Helper()

	cfg := &config.Config{}
	cfg.Uploads.Dir = t.TempDir()

	store, err := NewLocalImageStore(cfg)
	require.NoError(t, err)

	s := store.(*localImageStore)
	s.now = func() time.Time { return time.Unix(1700000000, 0) }

	return s
}

func TestLocalImageStore_SaveAndRemove(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save(7, "lamp photo.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "7_1700000000_lamp_photo.jpg", name)

	data, err := os.ReadFile(filepath.Join(store.dir, name))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	require.NoError(t, store.Remove(name))
	_, err = os.Stat(filepath.Join(store.dir, name))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalImageStore_RemoveMissingFileIsNotAnError(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Remove("never_saved.png"))
	assert.NoError(t, store.Remove(""))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"lamp photo.jpg", "lamp_photo.jpg"},
		{"../../etc/passwd", "passwd"},
		{`..\..\windows\system32`, "system32"},
		{"héllo wörld.png", "h_llo_w_rld.png"},
		{"...", "upload"},
		{"", "upload"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}
