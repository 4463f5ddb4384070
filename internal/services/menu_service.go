package services

import (
	"context"
	"strings"

	"travellounge/internal/db"
	"travellounge/internal/domain"
	"travellounge/internal/domain/models"
	"travellounge/internal/repositories"
	"travellounge/internal/utils"
)

// MenuService edits navigation trees. Trees are always persisted whole.
type MenuService struct {
	Repo repositories.MenuRepo
	Deps
}

func (s MenuService) List(ctx context.Context) ([]models.Menu, error) {
	out, err := s.Repo.List(ctx)
	return out, wrap(err)
}

func (s MenuService) Get(ctx context.Context, id int64) (models.Menu, error) {
	out, err := s.Repo.GetByID(ctx, id)
	return out, wrap(err)
}

// ByLocation is the public read used by the site header and footer.
func (s MenuService) ByLocation(ctx context.Context, location string) (models.Menu, error) {
	location = utils.Slugify(location)
	if location == "" {
		return models.Menu{}, domain.ValidationError{Field: "location", Msg: "required"}
	}
	out, err := remember(s.Deps, "menu:"+location, func() (models.Menu, error) {
		return s.Repo.GetByLocation(ctx, location)
	})
	return out, wrap(err)
}

func (s MenuService) Create(ctx context.Context, in models.Menu) (models.Menu, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Location = utils.Slugify(in.Location)
	if in.Name == "" {
		return models.Menu{}, domain.ValidationError{Field: "name", Msg: "required"}
	}
	if in.Location == "" {
		return models.Menu{}, domain.ValidationError{Field: "location", Msg: "required"}
	}
	if err := domain.ValidateMenu(in.Items.V); err != nil {
		return models.Menu{}, err
	}
	if in.Items.V == nil {
		in.Items = db.NewJSON([]domain.MenuItem{})
	}
	id, err := s.Repo.Create(ctx, in)
	if err != nil {
		return models.Menu{}, wrap(err)
	}
	s.invalidate()
	s.log("menus", "create", "id=%d location=%s", id, in.Location)
	return s.Get(ctx, id)
}

// Rename changes name and location; items are left as they are.
func (s MenuService) Rename(ctx context.Context, id int64, name, location string) (models.Menu, error) {
	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return models.Menu{}, wrap(err)
	}
	if name = strings.TrimSpace(name); name == "" {
		name = current.Name
	}
	if location = utils.Slugify(location); location == "" {
		location = current.Location
	}
	if err := s.Repo.Update(ctx, id, name, location); err != nil {
		return models.Menu{}, wrap(err)
	}
	s.invalidate()
	s.log("menus", "rename", "id=%d location=%s", id, location)
	return s.Get(ctx, id)
}

// SaveItems replaces the whole tree. Last write wins.
func (s MenuService) SaveItems(ctx context.Context, id int64, items []domain.MenuItem) (models.Menu, error) {
	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return models.Menu{}, wrap(err)
	}
	if err := domain.ValidateMenu(items); err != nil {
		return models.Menu{}, err
	}
	return s.persist(ctx, current, items)
}

// ApplyOp runs one editor action against the stored tree and saves the result.
func (s MenuService) ApplyOp(ctx context.Context, id int64, op domain.MenuOp) (models.Menu, error) {
	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return models.Menu{}, wrap(err)
	}
	next, err := domain.ApplyMenuOp(current.Items.V, op)
	if err != nil {
		return models.Menu{}, err
	}
	s.log("menus", "apply_op", "id=%d op=%s index=%d", id, op.Op, op.Index)
	return s.persist(ctx, current, next)
}

func (s MenuService) Delete(ctx context.Context, id int64) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return wrap(err)
	}
	s.invalidate()
	s.log("menus", "delete", "id=%d", id)
	return nil
}

func (s MenuService) persist(ctx context.Context, current models.Menu, items []domain.MenuItem) (models.Menu, error) {
	if items == nil {
		items = []domain.MenuItem{}
	}
	if err := s.Repo.SaveItems(ctx, current.ID, items); err != nil {
		return models.Menu{}, wrap(err)
	}
	s.invalidate()
	current.Items = db.NewJSON(items)
	return current, nil
}
