package services

import (
	"context"

	"travellounge/internal/domain"
	"travellounge/internal/repositories"
)

// ContentService runs the shared manager-screen flow for one simple table:
// normalise, write, reload, invalidate the public cache.
type ContentService[T any] struct {
	Repo repositories.ContentRepo[T]
	Deps

	// Prepare normalises and validates a row before it is written.
	Prepare func(*T) error
}

func (s ContentService[T]) Resource() string { return s.Repo.Resource() }

// List returns rows for the admin (all) or the public site (cached, filtered).
func (s ContentService[T]) List(ctx context.Context, public bool) ([]T, error) {
	if !public {
		out, err := s.Repo.List(ctx, false)
		return out, wrap(err)
	}
	out, err := remember(s.Deps, "content:"+s.Repo.Table.Name, func() ([]T, error) {
		return s.Repo.List(ctx, true)
	})
	return out, wrap(err)
}

func (s ContentService[T]) Get(ctx context.Context, id int64) (T, error) {
	out, err := s.Repo.Get(ctx, id)
	return out, wrap(err)
}

func (s ContentService[T]) Create(ctx context.Context, v T) (T, error) {
	var zero T
	if err := s.prepare(&v); err != nil {
		return zero, err
	}
	id, err := s.Repo.Create(ctx, v)
	if err != nil {
		return zero, wrap(err)
	}
	s.invalidate()
	s.log(s.Resource(), "create", "id=%d", id)
	return s.Get(ctx, id)
}

func (s ContentService[T]) Update(ctx context.Context, id int64, v T) (T, error) {
	var zero T
	if _, err := s.Repo.Get(ctx, id); err != nil {
		return zero, wrap(err)
	}
	if err := s.prepare(&v); err != nil {
		return zero, err
	}
	if err := s.Repo.Update(ctx, id, v); err != nil {
		return zero, wrap(err)
	}
	s.invalidate()
	s.log(s.Resource(), "update", "id=%d", id)
	return s.Get(ctx, id)
}

func (s ContentService[T]) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return wrap(err)
	}
	s.invalidate()
	s.log(s.Resource(), "delete", "id=%d", id)
	return nil
}

func (s ContentService[T]) Reorder(ctx context.Context, items []domain.OrderItem) error {
	if len(items) == 0 {
		return domain.ValidationError{Field: "items", Msg: "nothing to reorder"}
	}
	if err := s.Repo.Reorder(ctx, items); err != nil {
		return wrap(err)
	}
	s.invalidate()
	s.log(s.Resource(), "reorder", "count=%d", len(items))
	return nil
}

func (s ContentService[T]) prepare(v *T) error {
	if s.Prepare == nil {
		return nil
	}
	return s.Prepare(v)
}
