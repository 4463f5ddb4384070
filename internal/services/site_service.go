package services

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"travellounge/internal/domain"
	"travellounge/internal/domain/models"
	"travellounge/internal/repositories"
)

// SEOSettingKey holds the site-wide SEO metadata blob.
const SEOSettingKey = "seo"

var settingKey = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]{0,99}$`)

// SiteService serves settings (key -> JSON) and page content (slug -> JSON).
type SiteService struct {
	Repo repositories.SiteRepo
	Deps
}

// Settings returns every setting as one object, cached for the public site.
func (s SiteService) Settings(ctx context.Context) (map[string]json.RawMessage, error) {
	out, err := remember(s.Deps, "settings:all", func() (map[string]json.RawMessage, error) {
		rows, err := s.Repo.ListSettings(ctx)
		if err != nil {
			return nil, err
		}
		m := make(map[string]json.RawMessage, len(rows))
		for _, r := range rows {
			m[r.Key] = r.Value.V
		}
		return m, nil
	})
	return out, wrap(err)
}

func (s SiteService) Setting(ctx context.Context, key string) (models.SiteSetting, error) {
	key, err := cleanKey("key", key)
	if err != nil {
		return models.SiteSetting{}, err
	}
	out, err := remember(s.Deps, "settings:"+key, func() (models.SiteSetting, error) {
		return s.Repo.GetSetting(ctx, key)
	})
	return out, wrap(err)
}

func (s SiteService) PutSetting(ctx context.Context, key string, value json.RawMessage) (models.SiteSetting, error) {
	key, err := cleanKey("key", key)
	if err != nil {
		return models.SiteSetting{}, err
	}
	if err := validJSON("value", value); err != nil {
		return models.SiteSetting{}, err
	}
	if err := s.Repo.UpsertSetting(ctx, key, value); err != nil {
		return models.SiteSetting{}, wrap(err)
	}
	s.invalidate()
	s.log("settings", "put", "key=%s bytes=%d", key, len(value))
	out, err := s.Repo.GetSetting(ctx, key)
	return out, wrap(err)
}

func (s SiteService) DeleteSetting(ctx context.Context, key string) error {
	key, err := cleanKey("key", key)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteSetting(ctx, key); err != nil {
		return wrap(err)
	}
	s.invalidate()
	s.log("settings", "delete", "key=%s", key)
	return nil
}

func (s SiteService) Pages(ctx context.Context) ([]models.Page, error) {
	out, err := s.Repo.ListPages(ctx)
	return out, wrap(err)
}

func (s SiteService) Page(ctx context.Context, slug string) (models.Page, error) {
	slug, err := cleanKey("slug", slug)
	if err != nil {
		return models.Page{}, err
	}
	out, err := remember(s.Deps, "page:"+slug, func() (models.Page, error) {
		return s.Repo.GetPage(ctx, slug)
	})
	return out, wrap(err)
}

func (s SiteService) PutPage(ctx context.Context, slug string, content json.RawMessage) (models.Page, error) {
	slug, err := cleanKey("slug", slug)
	if err != nil {
		return models.Page{}, err
	}
	if err := validJSON("content", content); err != nil {
		return models.Page{}, err
	}
	if err := s.Repo.UpsertPage(ctx, slug, content); err != nil {
		return models.Page{}, wrap(err)
	}
	s.invalidate()
	s.log("pages", "put", "slug=%s bytes=%d", slug, len(content))
	out, err := s.Repo.GetPage(ctx, slug)
	return out, wrap(err)
}

func (s SiteService) DeletePage(ctx context.Context, slug string) error {
	slug, err := cleanKey("slug", slug)
	if err != nil {
		return err
	}
	if err := s.Repo.DeletePage(ctx, slug); err != nil {
		return wrap(err)
	}
	s.invalidate()
	s.log("pages", "delete", "slug=%s", slug)
	return nil
}

func cleanKey(field, v string) (string, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if !settingKey.MatchString(v) {
		return "", domain.ValidationError{Field: field, Msg: "must be lowercase letters, digits, '.', '_' or '-'"}
	}
	return v, nil
}

func validJSON(field string, raw json.RawMessage) error {
	if len(strings.TrimSpace(string(raw))) == 0 || !json.Valid(raw) {
		return domain.ValidationError{Field: field, Msg: "must be valid JSON"}
	}
	return nil
}
