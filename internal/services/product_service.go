package services

import (
	"context"
	"fmt"
	"strings"

	"travellounge/internal/db"
	"travellounge/internal/domain"
	"travellounge/internal/domain/models"
	"travellounge/internal/repositories"
	"travellounge/internal/utils"
)

// ProductService manages bookable services (tours, hotels, activities).
type ProductService struct {
	Repo repositories.ServiceRepo
	Deps
}

func (s ProductService) List(ctx context.Context, f models.ServiceFilter) ([]models.Service, error) {
	f.Category = strings.TrimSpace(f.Category)
	f.Search = utils.NormalizeSpace(f.Search)
	if !f.ActiveOnly || f.Search != "" {
		out, err := s.Repo.List(ctx, f)
		return out, wrap(err)
	}
	key := "services:" + strings.ToLower(f.Category)
	out, err := remember(s.Deps, key, func() ([]models.Service, error) {
		return s.Repo.List(ctx, f)
	})
	return out, wrap(err)
}

func (s ProductService) Get(ctx context.Context, id int64, activeOnly bool) (models.Service, error) {
	out, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return out, wrap(err)
	}
	if activeOnly && !out.IsActive {
		return models.Service{}, domain.NotFoundError{Resource: "service"}
	}
	return out, nil
}

func (s ProductService) Create(ctx context.Context, in models.Service) (models.Service, error) {
	if err := prepareService(&in); err != nil {
		return models.Service{}, err
	}
	id, err := s.Repo.Create(ctx, in)
	if err != nil {
		return models.Service{}, wrap(err)
	}
	s.invalidate()
	s.log("services", "create", "id=%d name=%s", id, in.Name)
	return s.Get(ctx, id, false)
}

func (s ProductService) Update(ctx context.Context, id int64, in models.Service) (models.Service, error) {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return models.Service{}, wrap(err)
	}
	if err := prepareService(&in); err != nil {
		return models.Service{}, err
	}
	if err := s.Repo.Update(ctx, id, in); err != nil {
		return models.Service{}, wrap(err)
	}
	s.invalidate()
	s.log("services", "update", "id=%d", id)
	return s.Get(ctx, id, false)
}

func (s ProductService) Delete(ctx context.Context, id int64) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return wrap(err)
	}
	s.invalidate()
	s.log("services", "delete", "id=%d", id)
	return nil
}

func (s ProductService) Reorder(ctx context.Context, items []domain.OrderItem) error {
	if len(items) == 0 {
		return domain.ValidationError{Field: "items", Msg: "nothing to reorder"}
	}
	if err := s.Repo.Reorder(ctx, items); err != nil {
		return wrap(err)
	}
	s.invalidate()
	s.log("services", "reorder", "count=%d", len(items))
	return nil
}

// prepareService trims fields and replaces nil JSON lists with empty ones so
// the columns always hold arrays.
func prepareService(s *models.Service) error {
	s.Name = utils.NormalizeSpace(s.Name)
	if s.Name == "" {
		return domain.ValidationError{Field: "name", Msg: "required"}
	}
	s.Category = strings.ToLower(strings.TrimSpace(s.Category))
	s.Location = strings.TrimSpace(s.Location)

	p := s.Pricing.V
	if p.BasePrice < 0 || p.Price < 0 {
		return domain.ValidationError{Field: "pricing", Msg: "price cannot be negative"}
	}
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	if p.Currency == "" {
		p.Currency = "MUR"
	}
	s.Pricing = db.NewJSON(p)

	inv := s.Inventory.V
	if inv.Total < 0 || inv.Remaining < 0 {
		return domain.ValidationError{Field: "inventory", Msg: "cannot be negative"}
	}
	if inv.Total > 0 && inv.Remaining > inv.Total {
		return domain.ValidationError{Field: "inventory", Msg: fmt.Sprintf("remaining %d exceeds total %d", inv.Remaining, inv.Total)}
	}

	for i, day := range s.Itinerary.V {
		if day.Day == 0 {
			s.Itinerary.V[i].Day = i + 1
		}
	}
	cleanList(&s.Images.V)
	cleanList(&s.Features.V)
	cleanList(&s.Inclusions.V)
	cleanList(&s.Exclusions.V)
	if s.Itinerary.V == nil {
		s.Itinerary.V = []models.ItineraryDay{}
	}
	return nil
}

func cleanList(v *[]string) {
	if *v == nil {
		*v = []string{}
		return
	}
	out := (*v)[:0]
	for _, s := range *v {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	*v = out
}
