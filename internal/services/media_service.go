package services

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"travellounge/internal/domain"
	"travellounge/internal/domain/models"
	"travellounge/internal/repositories"
	"travellounge/internal/storage"
	"travellounge/internal/utils"
)

// ObjectStore is where uploaded files live.
type ObjectStore interface {
	Save(ctx context.Context, folder, originalName string, r io.Reader) (storage.Object, error)
	Delete(ctx context.Context, path string) error
}

type MediaService struct {
	Repo  repositories.MediaRepo
	Store ObjectStore
	Deps
}

func (s MediaService) List(ctx context.Context, folder string) ([]models.MediaAsset, error) {
	if strings.TrimSpace(folder) != "" {
		folder = storage.CleanFolder(folder)
	}
	out, err := s.Repo.List(ctx, folder)
	return out, wrap(err)
}

// Upload stores the file and records it. A failed insert removes the file again.
func (s MediaService) Upload(ctx context.Context, folder, fileName, alt string, r io.Reader) (models.MediaAsset, error) {
	if s.Store == nil {
		return models.MediaAsset{}, domain.InternalError{Msg: "media store not configured"}
	}
	obj, err := s.Store.Save(ctx, folder, fileName, r)
	if err != nil {
		return models.MediaAsset{}, wrap(err)
	}
	name := strings.TrimSpace(filepath.Base(fileName))
	if name == "" || name == "." {
		name = filepath.Base(obj.Path)
	}
	asset := models.MediaAsset{
		FileName:  name,
		Path:      obj.Path,
		URL:       obj.URL,
		MimeType:  obj.MimeType,
		SizeBytes: obj.Size,
		Folder:    storage.CleanFolder(folder),
		AltText:   strings.TrimSpace(alt),
	}
	id, err := s.Repo.Create(ctx, asset)
	if err != nil {
		if derr := s.Store.Delete(ctx, obj.Path); derr != nil {
			utils.LogError(s.RequestID, "media", "upload_cleanup", derr)
		}
		return models.MediaAsset{}, wrap(err)
	}
	s.log("media", "upload", "id=%d path=%s size=%d", id, obj.Path, obj.Size)
	out, err := s.Repo.GetByID(ctx, id)
	return out, wrap(err)
}

func (s MediaService) UpdateAlt(ctx context.Context, id int64, alt string) (models.MediaAsset, error) {
	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return models.MediaAsset{}, wrap(err)
	}
	alt = strings.TrimSpace(alt)
	if err := s.Repo.UpdateAlt(ctx, id, alt); err != nil {
		return models.MediaAsset{}, wrap(err)
	}
	current.AltText = alt
	return current, nil
}

// Delete removes the row, then the file. A missing file only gets logged.
func (s MediaService) Delete(ctx context.Context, id int64) error {
	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return wrap(err)
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return wrap(err)
	}
	if s.Store != nil {
		if err := s.Store.Delete(ctx, current.Path); err != nil {
			utils.LogError(s.RequestID, "media", "delete_file", err)
		}
	}
	s.log("media", "delete", "id=%d path=%s", id, current.Path)
	return nil
}
