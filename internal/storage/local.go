// Package storage keeps uploaded media on local disk and builds their public URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"travellounge/internal/domain"
	"travellounge/internal/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// allowedPrefixes lists the media families the back office may upload.
var allowedPrefixes = []string{"image/", "video/", "application/pdf"}

// Object describes a stored file.
type Object struct {
	Path     string // relative to Root, slash separated
	URL      string
	MimeType string
	Size     int64
}

// LocalStore writes files under Root and serves them from BaseURL.
type LocalStore struct {
	Root    string
	BaseURL string
	MaxSize int64
}

func NewLocalStore(root, baseURL string, maxSize int64) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &LocalStore{Root: root, BaseURL: strings.TrimRight(baseURL, "/"), MaxSize: maxSize}, nil
}

// Save stores r under folder with a random name and the sniffed extension.
func (s *LocalStore) Save(ctx context.Context, folder, originalName string, r io.Reader) (Object, error) {
	if err := ctx.Err(); err != nil {
		return Object{}, err
	}
	limit := s.MaxSize
	if limit <= 0 {
		limit = 10 << 20
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return Object{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return Object{}, domain.ValidationError{Field: "file", Msg: "file is empty"}
	}
	if int64(len(data)) > limit {
		return Object{}, domain.ValidationError{Field: "file", Msg: fmt.Sprintf("file exceeds %d bytes", limit)}
	}

	mt := mimetype.Detect(data)
	if !allowed(mt.String()) {
		return Object{}, domain.ValidationError{Field: "file", Msg: "unsupported file type " + mt.String()}
	}

	folder = CleanFolder(folder)
	base := utils.Slugify(strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName)))
	name := uuid.NewString()
	if base != "" {
		name = base + "-" + name[:8]
	}
	rel := path.Join(folder, name+mt.Extension())

	full := filepath.Join(s.Root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return Object{}, fmt.Errorf("create folder: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return Object{}, fmt.Errorf("write upload: %w", err)
	}

	return Object{
		Path:     rel,
		URL:      s.PublicURL(rel),
		MimeType: mt.String(),
		Size:     int64(len(data)),
	}, nil
}

// Delete removes a stored file. A missing file is not an error.
func (s *LocalStore) Delete(_ context.Context, rel string) error {
	clean := path.Clean("/" + rel)
	full := filepath.Join(s.Root, filepath.FromSlash(clean))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}

func (s *LocalStore) PublicURL(rel string) string {
	return s.BaseURL + "/" + strings.TrimLeft(rel, "/")
}

// CleanFolder turns user input into a safe relative folder, "general" when empty.
func CleanFolder(folder string) string {
	parts := strings.Split(strings.ReplaceAll(folder, "\\", "/"), "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = utils.Slugify(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return "general"
	}
	return strings.Join(out, "/")
}

func allowed(mime string) bool {
	for _, p := range allowedPrefixes {
		if strings.HasPrefix(mime, p) {
			return true
		}
	}
	return false
}
