package api

import (
	stdhttp "net/http"

	intconfig "travellounge/internal/config"
	h "travellounge/internal/http/handlers"
	"travellounge/internal/http/middleware"
	"travellounge/internal/services"
	"travellounge/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires every public and admin route onto a fresh gin engine.
func NewRouter(env intconfig.Env, a *h.API) *gin.Engine {
	if err := h.RegisterValidators(); err != nil {
		utils.L().Warn("custom validators not registered", zap.Error(err))
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))
	r.MaxMultipartMemory = 8 << 20

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.L().Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":      "route not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	if env.MediaDir != "" {
		r.Static(mediaPrefix(env.MediaBaseURL), env.MediaDir)
	}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", a.DBCheck)
		api.GET("/routes", h.Routes)

		api.POST("/auth/login", a.Login)

		// public site
		api.GET("/services", a.PublicServices)
		api.GET("/services/:id", a.PublicService)
		api.GET("/services/:id/rooms", a.PublicRooms)
		api.GET("/services/:id/reviews", a.ApprovedReviews)
		api.GET("/rooms/:id/calendar", a.RoomCalendar)
		api.POST("/bookings", a.CreateBooking)
		api.POST("/reviews", a.SubmitReview)
		api.POST("/contact", a.SubmitContact)
		api.POST("/newsletter/subscribe", a.Subscribe)
		api.POST("/newsletter/unsubscribe", a.Unsubscribe)
		api.GET("/menus/:location", a.MenuByLocation)
		api.GET("/settings", a.Settings)
		api.GET("/settings/:key", a.Setting)
		api.GET("/pages/:slug", a.Page)
		api.GET("/categories", a.Categories().Public)
		api.GET("/hero-slides", a.HeroSlides().Public)
		api.GET("/promotions", a.Promotions().Public)
		api.GET("/team", a.TeamMembers().Public)
		api.GET("/testimonials", a.Testimonials().Public)
		api.GET("/flights", a.Flights().Public)
	}

	authed := api.Group("", middleware.RequireAuth(a.Auth))
	authed.GET("/auth/me", a.Me)

	admin := api.Group("/admin", middleware.RequireAuth(a.Auth), middleware.RequireRoles(services.RoleAdmin, services.RoleEditor))
	{
		admin.GET("/dashboard", a.Dashboard)
		admin.GET("/realtime", a.Realtime)

		products := admin.Group("/services")
		products.GET("", a.ListServices)
		products.POST("", a.CreateService)
		products.PUT("/reorder", a.ReorderServices)
		products.GET("/:id", a.GetService)
		products.PUT("/:id", a.UpdateService)
		products.DELETE("/:id", a.DeleteService)
		products.GET("/:id/rooms", a.ListRooms)

		rooms := admin.Group("/rooms")
		rooms.POST("", a.CreateRoom)
		rooms.GET("/:id", a.GetRoom)
		rooms.PUT("/:id", a.UpdateRoom)
		rooms.DELETE("/:id", a.DeleteRoom)
		rooms.GET("/:id/calendar", a.RoomCalendar)
		rooms.PUT("/:id/calendar/day", a.SetDayBlocked)
		rooms.PUT("/:id/calendar/month", a.SetMonthBlocked)
		rooms.POST("/:id/calendar/bulk-price", a.BulkUpdatePrice)

		bookings := admin.Group("/bookings")
		bookings.GET("", a.ListBookings)
		bookings.GET("/:id", a.GetBooking)
		bookings.PUT("/:id/status", a.UpdateBookingStatus)
		bookings.DELETE("/:id", a.DeleteBooking)
		bookings.GET("/:id/voucher", a.BookingVoucherPDF)
		bookings.GET("/:id/invoice", a.BookingInvoicePDF)

		menus := admin.Group("/menus")
		menus.GET("", a.ListMenus)
		menus.POST("", a.CreateMenu)
		menus.GET("/:id", a.GetMenu)
		menus.PUT("/:id", a.UpdateMenu)
		menus.DELETE("/:id", a.DeleteMenu)
		menus.PUT("/:id/items", a.SaveMenuItems)
		menus.POST("/:id/items/ops", a.ApplyMenuOp)

		reviews := admin.Group("/reviews")
		reviews.GET("", a.ListReviews)
		reviews.PUT("/:id/status", a.UpdateReviewStatus)
		reviews.DELETE("/:id", a.DeleteReview)

		newsletter := admin.Group("/newsletter")
		newsletter.GET("", a.ListSubscribers)
		newsletter.GET("/export.csv", a.ExportSubscribers)
		newsletter.DELETE("/:id", a.DeleteSubscriber)

		settings := admin.Group("/settings")
		settings.PUT("/:key", a.PutSetting)
		settings.DELETE("/:key", a.DeleteSetting)

		pages := admin.Group("/pages")
		pages.GET("", a.ListPages)
		pages.PUT("/:slug", a.PutPage)
		pages.DELETE("/:slug", a.DeletePage)

		media := admin.Group("/media")
		media.GET("", a.ListMedia)
		media.POST("", a.UploadMedia)
		media.PUT("/:id", a.UpdateMediaAlt)
		media.DELETE("/:id", a.DeleteMedia)

		admin.GET("/contact-messages", a.ListContacts)

		a.Categories().Mount(admin.Group("/categories"), true)
		a.HeroSlides().Mount(admin.Group("/hero-slides"), true)
		a.Promotions().Mount(admin.Group("/promotions"), true)
		a.TeamMembers().Mount(admin.Group("/team"), true)
		a.Testimonials().Mount(admin.Group("/testimonials"), true)
		a.Flights().Mount(admin.Group("/flights"), true)
		templates := admin.Group("/email-templates")
		a.EmailTemplates().Mount(templates, false)
		templates.POST("/:id/preview", a.PreviewEmailTemplate)

		admin.POST("/users", middleware.RequireRoles(services.RoleAdmin), a.CreateUser)
	}

	h.SetRouter(r)
	return r
}

// mediaPrefix turns MEDIA_BASE_URL into the local route uploads are served on.
// An absolute URL (CDN in front) still serves locally under /media.
func mediaPrefix(base string) string {
	if len(base) > 0 && base[0] == '/' {
		return base
	}
	return "/media"
}
