package services

import (
	"context"
	"strings"

	"travellounge/internal/domain"
	"travellounge/internal/domain/models"
	"travellounge/internal/repositories"
	"travellounge/internal/utils"
)

// RoomService manages hotel rooms of a product.
type RoomService struct {
	Rooms    repositories.RoomRepo
	Services repositories.ServiceRepo
	Deps
}

func (s RoomService) ListByService(ctx context.Context, serviceID int64, public bool) ([]models.HotelRoom, error) {
	if public {
		if err := requireID("service_id", serviceID); err != nil {
			return nil, err
		}
		out, err := remember(s.Deps, "rooms:"+itoa(serviceID), func() ([]models.HotelRoom, error) {
			return s.Rooms.ListByService(ctx, serviceID)
		})
		return out, wrap(err)
	}
	out, err := s.Rooms.ListByService(ctx, serviceID)
	return out, wrap(err)
}

func (s RoomService) Get(ctx context.Context, id int64) (models.HotelRoom, error) {
	out, err := s.Rooms.GetByID(ctx, id)
	return out, wrap(err)
}

func (s RoomService) Create(ctx context.Context, in models.HotelRoom) (models.HotelRoom, error) {
	if err := s.prepare(ctx, &in); err != nil {
		return models.HotelRoom{}, err
	}
	id, err := s.Rooms.Create(ctx, in)
	if err != nil {
		return models.HotelRoom{}, wrap(err)
	}
	s.invalidate()
	s.log("rooms", "create", "id=%d service_id=%d", id, in.ServiceID)
	return s.Get(ctx, id)
}

func (s RoomService) Update(ctx context.Context, id int64, in models.HotelRoom) (models.HotelRoom, error) {
	if _, err := s.Rooms.GetByID(ctx, id); err != nil {
		return models.HotelRoom{}, wrap(err)
	}
	if err := s.prepare(ctx, &in); err != nil {
		return models.HotelRoom{}, err
	}
	if err := s.Rooms.Update(ctx, id, in); err != nil {
		return models.HotelRoom{}, wrap(err)
	}
	s.invalidate()
	s.log("rooms", "update", "id=%d", id)
	return s.Get(ctx, id)
}

// Delete removes the room together with its calendar.
func (s RoomService) Delete(ctx context.Context, id int64) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	if err := s.Rooms.Delete(ctx, id); err != nil {
		return wrap(err)
	}
	s.invalidate()
	s.log("rooms", "delete", "id=%d", id)
	return nil
}

func (s RoomService) prepare(ctx context.Context, r *models.HotelRoom) error {
	r.Name = utils.NormalizeSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	if r.Name == "" {
		return domain.ValidationError{Field: "name", Msg: "required"}
	}
	if r.BasePrice < 0 {
		return domain.ValidationError{Field: "base_price", Msg: "cannot be negative"}
	}
	if _, err := s.Services.GetByID(ctx, r.ServiceID); err != nil {
		if domain.IsNotFound(err) || domain.IsValidation(err) {
			return domain.ValidationError{Field: "service_id", Msg: "unknown service", Err: err}
		}
		return wrap(err)
	}
	cleanList(&r.Images.V)
	return nil
}
