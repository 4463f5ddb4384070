package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travellounge/internal/cache"
	intconfig "travellounge/internal/config"
	router "travellounge/internal/http"
	"travellounge/internal/http/handlers"
	"travellounge/internal/http/middleware"
	"travellounge/internal/notify"
	"travellounge/internal/realtime"
	"travellounge/internal/repositories"
	"travellounge/internal/seed"
	"travellounge/internal/services"
	"travellounge/internal/storage"
	"travellounge/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API until SIGINT/SIGTERM",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create missing tables",
	RunE:  runMigrate,
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create or reset a back office user",
	Example: `  travellounge create-admin --email ops@example.com --password 's3cret-pass'
  travellounge create-admin --email writer@example.com --password '...' --role editor`,
	RunE: runCreateAdmin,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load menus, settings and pages from a YAML file",
	RunE:  runSeed,
}

var (
	adminName     string
	adminEmail    string
	adminPassword string
	adminRole     string
	seedFile      string
)

func init() {
	createAdminCmd.Flags().StringVar(&adminName, "name", "", "display name")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "login email (required)")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "password, at least 8 characters (required)")
	createAdminCmd.Flags().StringVar(&adminRole, "role", services.RoleAdmin, "admin or editor")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")

	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "seed.yaml", "seed YAML file")
}

func connect() (*sql.DB, error) {
	db, err := intconfig.ConnectDB(env.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	return db, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := connect()
	if err != nil {
		return err
	}
	defer intconfig.CloseDB()

	cache.SetPublic(cache.New(1024, env.CacheTTL))

	store, err := storage.NewLocalStore(env.MediaDir, env.MediaBaseURL, env.MediaMaxBytes)
	if err != nil {
		return err
	}

	origins := env.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = middleware.DefaultOrigins
	}
	hub := realtime.NewHub(origins)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go hub.Run(ctx)

	tg, err := notify.NewTelegram(env.TelegramBotToken, env.TelegramChatID)
	if err != nil {
		// notifications are optional; the API still starts
		utils.L().Warn("telegram disabled", zap.Error(err))
	}

	api := &handlers.API{
		DB:        db,
		Cache:     cache.Public(),
		Publisher: realtime.Multi{hub, tg},
		Hub:       hub,
		Store:     store,
		Auth:      services.AuthService{Secret: []byte(env.JWTSecret), TTL: env.JWTTTL},
		Company:   "Travel Lounge",
	}
	r := router.NewRouter(env, api)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.L().Info("server listening", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	utils.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	utils.L().Info("server stopped")
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := connect()
	if err != nil {
		return err
	}
	defer intconfig.CloseDB()

	tables, err := intconfig.Migrate(cmd.Context(), db)
	if err != nil {
		return err
	}
	utils.L().Info("migrate done", zap.Strings("tables", tables))
	return nil
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	db, err := connect()
	if err != nil {
		return err
	}
	defer intconfig.CloseDB()

	auth := services.AuthService{Users: repositories.UserRepo{DB: db}}
	u, err := auth.CreateUser(cmd.Context(), adminName, adminEmail, adminPassword, adminRole)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "user %d (%s) ready with role %s\n", u.ID, u.Email, u.Role)
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	f, err := os.Open(seedFile)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := seed.Load(f)
	if err != nil {
		return err
	}

	db, err := connect()
	if err != nil {
		return err
	}
	defer intconfig.CloseDB()

	res, err := seed.Apply(cmd.Context(), doc,
		services.MenuService{Repo: repositories.MenuRepo{DB: db}},
		services.SiteService{Repo: repositories.SiteRepo{DB: db}})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d menus, %d settings, %d pages\n", res.Menus, res.Settings, res.Pages)
	return nil
}
