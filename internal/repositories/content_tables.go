package repositories

import (
	"database/sql"

	"travellounge/internal/domain/models"
)

var (
	categoriesTable = contentTable{
		Name:     "categories",
		Resource: "category",
		Columns:  []string{"name", "slug", "type", "description", "image_url", "display_order"},
		ReadOnly: []string{"created_at"},
		OrderBy:  "display_order ASC, name ASC",
		HasOrder: true,
	}
	heroSlidesTable = contentTable{
		Name:        "hero_slides",
		Resource:    "hero slide",
		Columns:     []string{"title", "subtitle", "image_url", "cta_text", "cta_link", "display_order", "is_active"},
		OrderBy:     "display_order ASC, id ASC",
		HasOrder:    true,
		PublicWhere: "is_active=1",
	}
	promotionsTable = contentTable{
		Name:        "promotions",
		Resource:    "promotion",
		Columns:     []string{"title", "description", "discount_percent", "image_url", "valid_from", "valid_until", "display_order", "is_active"},
		OrderBy:     "display_order ASC, id DESC",
		HasOrder:    true,
		PublicWhere: "is_active=1 AND (valid_until IS NULL OR valid_until >= CURDATE())",
	}
	teamMembersTable = contentTable{
		Name:        "team_members",
		Resource:    "team member",
		Columns:     []string{"name", "role", "bio", "photo_url", "display_order", "is_active"},
		OrderBy:     "display_order ASC, id ASC",
		HasOrder:    true,
		PublicWhere: "is_active=1",
	}
	testimonialsTable = contentTable{
		Name:        "testimonials",
		Resource:    "testimonial",
		Columns:     []string{"author", "location", "content", "rating", "avatar_url", "display_order", "is_active"},
		OrderBy:     "display_order ASC, id DESC",
		HasOrder:    true,
		PublicWhere: "is_active=1",
	}
	emailTemplatesTable = contentTable{
		Name:     "email_templates",
		Resource: "email template",
		Columns:  []string{"slug", "name", "subject", "body"},
		OrderBy:  "name ASC",
	}
	flightsTable = contentTable{
		Name:        "flights",
		Resource:    "flight",
		Columns:     []string{"airline", "flight_number", "origin", "destination", "departure_at", "arrival_at", "price", "currency", "seats_available", "status", "display_order"},
		OrderBy:     "display_order ASC, departure_at ASC",
		HasOrder:    true,
		PublicWhere: "status='active'",
	}
)

func NewCategoryRepo(db *sql.DB) ContentRepo[models.Category] {
	return ContentRepo[models.Category]{DB: db, Table: categoriesTable, Values: func(c models.Category) []any {
		return []any{c.Name, c.Slug, c.Type, c.Description, c.ImageURL, c.DisplayOrder}
	}}
}

func NewHeroSlideRepo(db *sql.DB) ContentRepo[models.HeroSlide] {
	return ContentRepo[models.HeroSlide]{DB: db, Table: heroSlidesTable, Values: func(s models.HeroSlide) []any {
		return []any{s.Title, s.Subtitle, s.ImageURL, s.CTAText, s.CTALink, s.DisplayOrder, s.IsActive}
	}}
}

func NewPromotionRepo(db *sql.DB) ContentRepo[models.Promotion] {
	return ContentRepo[models.Promotion]{DB: db, Table: promotionsTable, Values: func(p models.Promotion) []any {
		return []any{p.Title, p.Description, p.DiscountPercent, p.ImageURL, p.ValidFrom, p.ValidUntil, p.DisplayOrder, p.IsActive}
	}}
}

func NewTeamMemberRepo(db *sql.DB) ContentRepo[models.TeamMember] {
	return ContentRepo[models.TeamMember]{DB: db, Table: teamMembersTable, Values: func(m models.TeamMember) []any {
		return []any{m.Name, m.Role, m.Bio, m.PhotoURL, m.DisplayOrder, m.IsActive}
	}}
}

func NewTestimonialRepo(db *sql.DB) ContentRepo[models.Testimonial] {
	return ContentRepo[models.Testimonial]{DB: db, Table: testimonialsTable, Values: func(t models.Testimonial) []any {
		return []any{t.Author, t.Location, t.Content, t.Rating, t.AvatarURL, t.DisplayOrder, t.IsActive}
	}}
}

func NewEmailTemplateRepo(db *sql.DB) ContentRepo[models.EmailTemplate] {
	return ContentRepo[models.EmailTemplate]{DB: db, Table: emailTemplatesTable, Values: func(t models.EmailTemplate) []any {
		return []any{t.Slug, t.Name, t.Subject, t.Body}
	}}
}

func NewFlightRepo(db *sql.DB) ContentRepo[models.Flight] {
	return ContentRepo[models.Flight]{DB: db, Table: flightsTable, Values: func(f models.Flight) []any {
		return []any{f.Airline, f.FlightNumber, f.Origin, f.Destination, f.DepartureAt, f.ArrivalAt, f.Price, f.Currency, f.SeatsAvailable, f.Status, f.DisplayOrder}
	}}
}
