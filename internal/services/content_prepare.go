package services

import (
	"database/sql"
	"strings"

	"travellounge/internal/domain"
	"travellounge/internal/domain/models"
	"travellounge/internal/repositories"
	"travellounge/internal/utils"
)

func NewCategoryService(db *sql.DB, deps Deps) ContentService[models.Category] {
	return ContentService[models.Category]{Repo: repositories.NewCategoryRepo(db), Deps: deps, Prepare: prepareCategory}
}

func NewHeroSlideService(db *sql.DB, deps Deps) ContentService[models.HeroSlide] {
	return ContentService[models.HeroSlide]{Repo: repositories.NewHeroSlideRepo(db), Deps: deps, Prepare: prepareHeroSlide}
}

func NewPromotionService(db *sql.DB, deps Deps) ContentService[models.Promotion] {
	return ContentService[models.Promotion]{Repo: repositories.NewPromotionRepo(db), Deps: deps, Prepare: preparePromotion}
}

func NewTeamMemberService(db *sql.DB, deps Deps) ContentService[models.TeamMember] {
	return ContentService[models.TeamMember]{Repo: repositories.NewTeamMemberRepo(db), Deps: deps, Prepare: prepareTeamMember}
}

func NewTestimonialService(db *sql.DB, deps Deps) ContentService[models.Testimonial] {
	return ContentService[models.Testimonial]{Repo: repositories.NewTestimonialRepo(db), Deps: deps, Prepare: prepareTestimonial}
}

func NewEmailTemplateService(db *sql.DB, deps Deps) ContentService[models.EmailTemplate] {
	return ContentService[models.EmailTemplate]{Repo: repositories.NewEmailTemplateRepo(db), Deps: deps, Prepare: prepareEmailTemplate}
}

func NewFlightService(db *sql.DB, deps Deps) ContentService[models.Flight] {
	return ContentService[models.Flight]{Repo: repositories.NewFlightRepo(db), Deps: deps, Prepare: prepareFlight}
}

func prepareCategory(c *models.Category) error {
	c.Name = utils.NormalizeSpace(c.Name)
	if c.Name == "" {
		return domain.ValidationError{Field: "name", Msg: "required"}
	}
	c.Slug = utils.Slugify(c.Slug)
	if c.Slug == "" {
		c.Slug = utils.Slugify(c.Name)
	}
	c.Type = strings.ToLower(strings.TrimSpace(c.Type))
	return nil
}

func prepareHeroSlide(h *models.HeroSlide) error {
	h.Title = strings.TrimSpace(h.Title)
	if h.Title == "" {
		return domain.ValidationError{Field: "title", Msg: "required"}
	}
	h.CTALink = strings.TrimSpace(h.CTALink)
	return nil
}

func preparePromotion(p *models.Promotion) error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return domain.ValidationError{Field: "title", Msg: "required"}
	}
	if p.DiscountPercent < 0 || p.DiscountPercent > 100 {
		return domain.ValidationError{Field: "discount_percent", Msg: "must be between 0 and 100"}
	}
	if p.ValidFrom != nil && p.ValidUntil != nil && p.ValidUntil.Before(*p.ValidFrom) {
		return domain.ValidationError{Field: "valid_until", Msg: "must not be before valid_from"}
	}
	return nil
}

func prepareTeamMember(m *models.TeamMember) error {
	m.Name = utils.NormalizeSpace(m.Name)
	if m.Name == "" {
		return domain.ValidationError{Field: "name", Msg: "required"}
	}
	return nil
}

func prepareTestimonial(t *models.Testimonial) error {
	t.Author = utils.NormalizeSpace(t.Author)
	if t.Author == "" {
		return domain.ValidationError{Field: "author", Msg: "required"}
	}
	if t.Rating == 0 {
		t.Rating = 5
	}
	if t.Rating < 1 || t.Rating > 5 {
		return domain.ValidationError{Field: "rating", Msg: "must be between 1 and 5"}
	}
	return nil
}

func prepareEmailTemplate(t *models.EmailTemplate) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Slug = utils.Slugify(t.Slug)
	if t.Slug == "" {
		t.Slug = utils.Slugify(t.Name)
	}
	if t.Slug == "" {
		return domain.ValidationError{Field: "slug", Msg: "required"}
	}
	if _, err := parseTemplate(t.Slug, t.Subject, t.Body); err != nil {
		return err
	}
	return nil
}

func prepareFlight(f *models.Flight) error {
	f.FlightNumber = strings.ToUpper(strings.ReplaceAll(f.FlightNumber, " ", ""))
	f.Origin = strings.ToUpper(strings.TrimSpace(f.Origin))
	f.Destination = strings.ToUpper(strings.TrimSpace(f.Destination))
	if f.Origin != "" && f.Origin == f.Destination {
		return domain.ValidationError{Field: "destination", Msg: "must differ from origin"}
	}
	if f.DepartureAt != nil && f.ArrivalAt != nil && f.ArrivalAt.Before(*f.DepartureAt) {
		return domain.ValidationError{Field: "arrival_at", Msg: "must not be before departure_at"}
	}
	if strings.TrimSpace(f.Status) == "" {
		f.Status = domain.FlightDrafted
	}
	status, err := domain.FlightStatus(f.Status)
	if err != nil {
		return err
	}
	f.Status = status
	if f.SeatsAvailable == 0 && f.Status == domain.FlightActive {
		f.Status = domain.FlightSoldOut
	}
	f.Currency = strings.ToUpper(strings.TrimSpace(f.Currency))
	if f.Currency == "" {
		f.Currency = "MUR"
	}
	return nil
}
