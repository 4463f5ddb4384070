package handlers

import (
	"database/sql"

	"travellounge/internal/cache"
	"travellounge/internal/http/middleware"
	"travellounge/internal/realtime"
	"travellounge/internal/repositories"
	"travellounge/internal/services"

	"github.com/gin-gonic/gin"
)

// API holds what the handlers share. Services are built per request so the
// request id flows into their logs.
type API struct {
	DB        *sql.DB
	Cache     *cache.Store
	Publisher realtime.Publisher
	Hub       *realtime.Hub
	Store     services.ObjectStore
	Auth      services.AuthService
	Company   string
	// CalendarChunk overrides the bulk price chunk size; zero keeps the default.
	CalendarChunk int
}

func (a *API) deps(c *gin.Context) services.Deps {
	return services.Deps{
		Cache:     a.Cache,
		Publisher: a.Publisher,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a *API) products(c *gin.Context) services.ProductService {
	return services.ProductService{Repo: repositories.ServiceRepo{DB: a.DB}, Deps: a.deps(c)}
}

func (a *API) bookings(c *gin.Context) services.BookingService {
	return services.BookingService{
		BookingRepo: repositories.BookingRepo{DB: a.DB},
		ServiceRepo: repositories.ServiceRepo{DB: a.DB},
		Deps:        a.deps(c),
	}
}

func (a *API) docs(c *gin.Context) services.DocsService {
	return services.DocsService{
		BookingRepo: repositories.BookingRepo{DB: a.DB},
		ServiceRepo: repositories.ServiceRepo{DB: a.DB},
		Company:     a.Company,
		RequestID:   middleware.GetRequestID(c),
	}
}

func (a *API) menus(c *gin.Context) services.MenuService {
	return services.MenuService{Repo: repositories.MenuRepo{DB: a.DB}, Deps: a.deps(c)}
}

func (a *API) rooms(c *gin.Context) services.RoomService {
	return services.RoomService{
		Rooms:    repositories.RoomRepo{DB: a.DB},
		Services: repositories.ServiceRepo{DB: a.DB},
		Deps:     a.deps(c),
	}
}

func (a *API) calendar(c *gin.Context) services.CalendarService {
	return services.CalendarService{
		Rooms:     repositories.RoomRepo{DB: a.DB},
		Deps:      a.deps(c),
		ChunkSize: a.CalendarChunk,
	}
}

func (a *API) reviews(c *gin.Context) services.ReviewService {
	return services.ReviewService{
		Reviews:  repositories.ReviewRepo{DB: a.DB},
		Services: repositories.ServiceRepo{DB: a.DB},
		Deps:     a.deps(c),
	}
}

func (a *API) newsletter(c *gin.Context) services.NewsletterService {
	return services.NewsletterService{Repo: repositories.NewsletterRepo{DB: a.DB}, Deps: a.deps(c)}
}

func (a *API) site(c *gin.Context) services.SiteService {
	return services.SiteService{Repo: repositories.SiteRepo{DB: a.DB}, Deps: a.deps(c)}
}

func (a *API) media(c *gin.Context) services.MediaService {
	return services.MediaService{Repo: repositories.MediaRepo{DB: a.DB}, Store: a.Store, Deps: a.deps(c)}
}

func (a *API) contacts(c *gin.Context) services.ContactService {
	return services.ContactService{Repo: repositories.ContactRepo{DB: a.DB}, Deps: a.deps(c)}
}

func (a *API) auth(c *gin.Context) services.AuthService {
	s := a.Auth
	s.Users = repositories.UserRepo{DB: a.DB}
	s.Deps = a.deps(c)
	return s
}

func (a *API) dashboard() services.DashboardService {
	s := services.DashboardService{
		Stats:    repositories.StatsRepo{DB: a.DB},
		Bookings: repositories.BookingRepo{DB: a.DB},
	}
	if a.Hub != nil {
		s.Presence = a.Hub.Connected
	}
	return s
}
