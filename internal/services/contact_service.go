package services

import (
	"context"
	"strings"

	"travellounge/internal/domain"
	"travellounge/internal/domain/models"
	"travellounge/internal/realtime"
	"travellounge/internal/repositories"
	"travellounge/internal/utils"
)

type ContactService struct {
	Repo repositories.ContactRepo
	Deps
}

// Submit stores a contact form message and notifies admins.
func (s ContactService) Submit(ctx context.Context, in models.ContactMessage) (models.ContactMessage, error) {
	in.Name = utils.NormalizeSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Subject = utils.NormalizeSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
	if in.Name == "" {
		return models.ContactMessage{}, domain.ValidationError{Field: "name", Msg: "required"}
	}
	if in.Message == "" {
		return models.ContactMessage{}, domain.ValidationError{Field: "message", Msg: "required"}
	}
	email, err := validEmail(in.Email)
	if err != nil {
		return models.ContactMessage{}, err
	}
	in.Email = email
	id, err := s.Repo.Create(ctx, in)
	if err != nil {
		return models.ContactMessage{}, wrap(err)
	}
	in.ID = id
	s.log("contact", "submit", "id=%d", id)
	s.publish(realtime.EventContactReceived, in)
	return in, nil
}

func (s ContactService) List(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	out, err := s.Repo.List(ctx, limit)
	return out, wrap(err)
}
