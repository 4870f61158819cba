// Package local stores uploaded files in a directory served under /uploads.
package local

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

type LocalStorage struct {
	fs      afero.Fs
	dir     string
	baseURL string
}

// New stores files under dir on fs; URLs are baseURL + "/uploads/" + ref.
func New(fs afero.Fs, dir, baseURL string) (*LocalStorage, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStorage{fs: fs, dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes data under a fresh uuid name that keeps the original extension.
func (s *LocalStorage) Save(_ context.Context, name, _ string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	ref := uuid.New().String() + ext
	if err := afero.WriteFile(s.fs, filepath.Join(s.dir, ref), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return ref, nil
}

func (s *LocalStorage) Delete(_ context.Context, ref string) error {
	if ref == "" || ref != filepath.Base(ref) {
		return fmt.Errorf("invalid file reference %q", ref)
	}
	err := s.fs.Remove(filepath.Join(s.dir, ref))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return err
}

func (s *LocalStorage) URL(ref string) string {
	return s.baseURL + path.Join("/uploads", ref)
}

// FileSystem exposes the upload directory for static serving.
func (s *LocalStorage) FileSystem() http.FileSystem {
	return afero.NewHttpFs(afero.NewBasePathFs(s.fs, s.dir))
}
