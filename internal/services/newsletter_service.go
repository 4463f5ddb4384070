package services

import (
	"context"
	"encoding/csv"
	"io"
	"net/mail"
	"strings"

	"travellounge/internal/domain"
	"travellounge/internal/domain/models"
	"travellounge/internal/repositories"
	"travellounge/internal/utils"
)

type NewsletterService struct {
	Repo repositories.NewsletterRepo
	Deps
}

// Subscribe is idempotent: a known address is flipped back to subscribed.
func (s NewsletterService) Subscribe(ctx context.Context, email, source string) error {
	email, err := validEmail(email)
	if err != nil {
		return err
	}
	source = strings.ToLower(strings.TrimSpace(source))
	if source == "" {
		source = "website"
	}
	if err := s.Repo.Subscribe(ctx, email, source); err != nil {
		return wrap(err)
	}
	s.log("newsletter", "subscribe", "source=%s", source)
	return nil
}

func (s NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	email, err := validEmail(email)
	if err != nil {
		return err
	}
	if err := s.Repo.Unsubscribe(ctx, email); err != nil {
		return wrap(err)
	}
	s.log("newsletter", "unsubscribe", "ok")
	return nil
}

func (s NewsletterService) List(ctx context.Context, status string) ([]models.NewsletterSubscriber, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && status != domain.Subscribed && status != domain.Unsubscribed {
		return nil, domain.ValidationError{Field: "status", Msg: "must be subscribed or unsubscribed"}
	}
	out, err := s.Repo.List(ctx, status)
	return out, wrap(err)
}

func (s NewsletterService) Delete(ctx context.Context, id int64) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return wrap(err)
	}
	s.log("newsletter", "delete", "id=%d", id)
	return nil
}

// ExportCSV writes the subscribers with the given status as CSV.
func (s NewsletterService) ExportCSV(ctx context.Context, w io.Writer, status string) (int, error) {
	rows, err := s.List(ctx, status)
	if err != nil {
		return 0, err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"email", "status", "source", "subscribed_at"}); err != nil {
		return 0, err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Email, r.Status, r.Source, utils.FormatDateTime(r.CreatedAt)}); err != nil {
			return 0, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}
	s.log("newsletter", "export_csv", "rows=%d", len(rows))
	return len(rows), nil
}

func validEmail(raw string) (string, error) {
	email := utils.NormalizeEmail(raw)
	if email == "" {
		return "", domain.ValidationError{Field: "email", Msg: "required"}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", domain.ValidationError{Field: "email", Msg: "invalid email address"}
	}
	return email, nil
}
