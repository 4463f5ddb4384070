// Package seed loads initial menus, site settings and pages from YAML.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"travellounge/internal/db"
	"travellounge/internal/domain"
	"travellounge/internal/domain/models"
	"travellounge/internal/services"

	"gopkg.in/yaml.v3"
)

type MenuItem struct {
	Label    string     `yaml:"label"`
	Link     string     `yaml:"link"`
	Children []MenuItem `yaml:"children"`
}

type Menu struct {
	Name     string     `yaml:"name"`
	Location string     `yaml:"location"`
	Items    []MenuItem `yaml:"items"`
}

// File is the seed document. Settings and pages hold arbitrary YAML that is
// stored as JSON.
type File struct {
	Menus    []Menu         `yaml:"menus"`
	Settings map[string]any `yaml:"settings"`
	Pages    map[string]any `yaml:"pages"`
}

// Result counts what Apply wrote.
type Result struct {
	Menus    int
	Settings int
	Pages    int
}

func Load(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return File{}, fmt.Errorf("decode seed: %w", err)
	}
	return f, nil
}

func toDomain(items []MenuItem) []domain.MenuItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]domain.MenuItem, len(items))
	for i, it := range items {
		out[i] = domain.MenuItem{Label: it.Label, Link: it.Link, Children: toDomain(it.Children)}
	}
	return out
}

// Apply upserts every menu (by location), setting and page in f.
// Existing menus get their items replaced.
func Apply(ctx context.Context, f File, menus services.MenuService, site services.SiteService) (Result, error) {
	var res Result
	for _, m := range f.Menus {
		items := toDomain(m.Items)
		current, err := menus.ByLocation(ctx, m.Location)
		switch {
		case domain.IsNotFound(err):
			if _, err := menus.Create(ctx, models.Menu{Name: m.Name, Location: m.Location, Items: db.NewJSON(items)}); err != nil {
				return res, fmt.Errorf("menu %q: %w", m.Location, err)
			}
		case err != nil:
			return res, fmt.Errorf("menu %q: %w", m.Location, err)
		default:
			if _, err := menus.SaveItems(ctx, current.ID, items); err != nil {
				return res, fmt.Errorf("menu %q: %w", m.Location, err)
			}
		}
		res.Menus++
	}
	for key, v := range f.Settings {
		raw, err := json.Marshal(v)
		if err != nil {
			return res, fmt.Errorf("setting %q: %w", key, err)
		}
		if _, err := site.PutSetting(ctx, key, raw); err != nil {
			return res, fmt.Errorf("setting %q: %w", key, err)
		}
		res.Settings++
	}
	for slug, v := range f.Pages {
		raw, err := json.Marshal(v)
		if err != nil {
			return res, fmt.Errorf("page %q: %w", slug, err)
		}
		if _, err := site.PutPage(ctx, slug, raw); err != nil {
			return res, fmt.Errorf("page %q: %w", slug, err)
		}
		res.Pages++
	}
	return res, nil
}
