package seed

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"travellounge/internal/cache"
	"travellounge/internal/repositories"
	"travellounge/internal/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

const sample = `
menus:
  - name: Header
    location: header
    items:
      - label: Home
        link: /
      - label: Tours
        link: /tours
        children:
          - label: Safari
            link: /tours/safari
settings:
  seo:
    title: Travel Lounge
    description: Island holidays
pages:
  about:
    heading: About us
`

func TestLoad(t *testing.T) {
	f, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, f.Menus, 1)
	require.Equal(t, "header", f.Menus[0].Location)
	require.Len(t, f.Menus[0].Items[1].Children, 1)
	require.Contains(t, f.Settings, "seo")
	require.Contains(t, f.Pages, "about")

	items := toDomain(f.Menus[0].Items)
	require.Equal(t, "/tours/safari", items[1].Children[0].Link)
	require.Nil(t, items[0].Children)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(strings.NewReader("menu:\n  - name: typo\n"))
	require.Error(t, err)
}

func TestLoadEmpty(t *testing.T) {
	f, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, f.Menus)
}

func TestApplyCreatesMissingMenu(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	f, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	menuCols := []string{"id", "name", "location", "items", "updated_at"}
	mock.ExpectQuery("FROM menus WHERE location=").WithArgs("header").WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO menus").WithArgs("Header", "header", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("FROM menus WHERE id=").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(menuCols).AddRow(7, "Header", "header", []byte(`[]`), now))
	mock.ExpectExec("INSERT INTO site_settings").
		WithArgs("seo", `{"description":"Island holidays","title":"Travel Lounge"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM site_settings").WithArgs("seo").
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}).AddRow("seo", []byte(`{}`), now))
	mock.ExpectExec("INSERT INTO pages").
		WithArgs("about", `{"heading":"About us"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM pages WHERE slug=").WithArgs("about").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "content", "updated_at"}).AddRow("about", []byte(`{}`), now))

	deps := services.Deps{Cache: cache.New(8, time.Minute)}
	res, err := Apply(context.Background(), f,
		services.MenuService{Repo: repositories.MenuRepo{DB: db}, Deps: deps},
		services.SiteService{Repo: repositories.SiteRepo{DB: db}, Deps: deps})
	require.NoError(t, err)
	require.Equal(t, Result{Menus: 1, Settings: 1, Pages: 1}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}
