package local

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndDelete(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	s, err := New(fs, "/uploads", "http://localhost:8080/")
	require.NoError(t, err)

	ref, err := s.Save(ctx, "Dance.JPG", "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".jpg"))
	assert.Equal(t, "http://localhost:8080/uploads/"+ref, s.URL(ref))

	data, err := afero.ReadFile(fs, filepath.Join("/uploads", ref))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	require.NoError(t, s.Delete(ctx, ref))
	exists, err := afero.Exists(fs, filepath.Join("/uploads", ref))
	require.NoError(t, err)
	assert.False(t, exists)

	err = s.Delete(ctx, ref)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDelete_RejectsPaths(t *testing.T) {
	s, err := New(afero.NewMemMapFs(), "/uploads", "")
	require.NoError(t, err)
	assert.Error(t, s.Delete(context.Background(), "../etc/passwd"))
	assert.Error(t, s.Delete(context.Background(), ""))
}

func TestFileSystem(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := New(fs, "/uploads", "")
	require.NoError(t, err)
	ref, err := s.Save(context.Background(), "a.txt", "text/plain", []byte("hello"))
	require.NoError(t, err)

	f, err := s.FileSystem().Open("/" + ref)
	require.NoError(t, err)
	defer f.Close()
	st, err := f.Stat()
	require.NoError(t, err)
	assert.EqualValues(t, 5, st.Size())
}
