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

// ReviewService handles public review submission and admin moderation.
type ReviewService struct {
	Reviews  repositories.ReviewRepo
	Services repositories.ServiceRepo
	Deps
}

// Submit stores a review as pending regardless of what the client sent.
func (s ReviewService) Submit(ctx context.Context, in models.Review) (models.Review, error) {
	in.AuthorName = utils.NormalizeSpace(in.AuthorName)
	in.AuthorEmail = utils.NormalizeEmail(in.AuthorEmail)
	in.Comment = strings.TrimSpace(in.Comment)
	if in.AuthorName == "" {
		return models.Review{}, domain.ValidationError{Field: "author_name", Msg: "required"}
	}
	if in.Rating < 1 || in.Rating > 5 {
		return models.Review{}, domain.ValidationError{Field: "rating", Msg: "must be between 1 and 5"}
	}
	svc, err := s.Services.GetByID(ctx, in.ServiceID)
	if err != nil {
		if domain.IsNotFound(err) || domain.IsValidation(err) {
			return models.Review{}, domain.ValidationError{Field: "service_id", Msg: "unknown service", Err: err}
		}
		return models.Review{}, wrap(err)
	}
	if !svc.IsActive {
		return models.Review{}, domain.ValidationError{Field: "service_id", Msg: "unknown service"}
	}
	in.Status = domain.ReviewPending
	id, err := s.Reviews.Create(ctx, in)
	if err != nil {
		return models.Review{}, wrap(err)
	}
	out, err := s.Reviews.GetByID(ctx, id)
	if err != nil {
		return models.Review{}, wrap(err)
	}
	s.log("reviews", "submit", "id=%d service_id=%d rating=%d", id, in.ServiceID, in.Rating)
	s.publish(realtime.EventReviewSubmitted, out)
	return out, nil
}

// Approved lists what the public product page shows.
func (s ReviewService) Approved(ctx context.Context, serviceID int64) ([]models.Review, error) {
	if err := requireID("service_id", serviceID); err != nil {
		return nil, err
	}
	out, err := remember(s.Deps, "reviews:"+itoa(serviceID), func() ([]models.Review, error) {
		return s.Reviews.List(ctx, serviceID, domain.ReviewApproved)
	})
	return out, wrap(err)
}

func (s ReviewService) List(ctx context.Context, serviceID int64, status string) ([]models.Review, error) {
	if strings.TrimSpace(status) != "" {
		st, err := domain.ReviewStatus(status)
		if err != nil {
			return nil, err
		}
		status = st
	}
	out, err := s.Reviews.List(ctx, serviceID, status)
	return out, wrap(err)
}

func (s ReviewService) UpdateStatus(ctx context.Context, id int64, status string) (models.Review, error) {
	status, err := domain.ReviewStatus(status)
	if err != nil {
		return models.Review{}, err
	}
	current, err := s.Reviews.GetByID(ctx, id)
	if err != nil {
		return models.Review{}, wrap(err)
	}
	if current.Status != status {
		if err := s.Reviews.UpdateStatus(ctx, id, status); err != nil {
			return models.Review{}, wrap(err)
		}
		s.invalidate()
		s.log("reviews", "update_status", "id=%d %s->%s", id, current.Status, status)
	}
	current.Status = status
	return current, nil
}

func (s ReviewService) Delete(ctx context.Context, id int64) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	if err := s.Reviews.Delete(ctx, id); err != nil {
		return wrap(err)
	}
	s.invalidate()
	s.log("reviews", "delete", "id=%d", id)
	return nil
}
