package repositories

import (
	"context"
	"testing"

	"travellounge/internal/domain"
	"travellounge/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestContentListPublicAppliesFilter(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`SELECT id, title, subtitle, image_url, cta_text, cta_link, display_order, is_active FROM hero_slides WHERE is_active=1 ORDER BY display_order ASC, id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "subtitle", "image_url", "cta_text", "cta_link", "display_order", "is_active"}).
			AddRow(1, "Lagoon", "", "/media/a.jpg", "Book", "/book", 0, true))

	rows, err := NewHeroSlideRepo(db).List(context.Background(), true)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "Lagoon" || !rows[0].IsActive {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestContentCreateWritesColumnsInOrder(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(`INSERT INTO team_members \(name, role, bio, photo_url, display_order, is_active\) VALUES \(\?,\?,\?,\?,\?,\?\)`).
		WithArgs("Lina", "Guide", "", "", 3, true).
		WillReturnResult(sqlmock.NewResult(12, 1))

	id, err := NewTeamMemberRepo(db).Create(context.Background(), models.TeamMember{Name: "Lina", Role: "Guide", DisplayOrder: 3, IsActive: true})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id != 12 {
		t.Fatalf("got id %d", id)
	}
}

func TestContentReorderInOneTransaction(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	prep := mock.ExpectPrepare(`UPDATE testimonials SET display_order=\? WHERE id=\?`)
	prep.ExpectExec().WithArgs(0, int64(5)).WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs(1, int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewTestimonialRepo(db).Reorder(context.Background(), []domain.OrderItem{{ID: 5, DisplayOrder: 0}, {ID: 2, DisplayOrder: 1}})
	if err != nil {
		t.Fatalf("Reorder error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestContentReorderUnsupported(t *testing.T) {
	db, _ := newMock(t)
	err := NewEmailTemplateRepo(db).Reorder(context.Background(), []domain.OrderItem{{ID: 1}})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
