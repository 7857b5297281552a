package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/catalog_admin/internal/config"
	"github.com/Skotchmaster/catalog_admin/internal/events"
	"github.com/Skotchmaster/catalog_admin/internal/httpserver"
	"github.com/Skotchmaster/catalog_admin/internal/repo"
	"github.com/Skotchmaster/catalog_admin/internal/seed"
	"github.com/Skotchmaster/catalog_admin/internal/service"
	pkgdb "github.com/Skotchmaster/catalog_admin/pkg/db"
	"github.com/Skotchmaster/catalog_admin/pkg/logging"
	loggingmw "github.com/Skotchmaster/catalog_admin/pkg/middleware/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTAccessSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := pkgdb.Migrate(db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	seedCtx, seedCancel := context.WithTimeout(logging.IntoContext(context.Background(), logger), 30*time.Second)
	err = seed.Run(seedCtx, db, seed.Options{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	})
	seedCancel()
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	r := &repo.GormRepo{DB: db}
	catalogSvc := &service.CatalogService{Repo: r, Producer: producer}
	roleSvc := &service.RoleService{Repo: r}
	userRoleSvc := &service.UserRoleService{Repo: r}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:     &httpserver.AuthHTTP{Repo: r, JWTSecret: cfg.JWTAccessSecret},
		ProductHandler:  &httpserver.ProductHTTP{Svc: catalogSvc},
		RoleHandler:     &httpserver.RoleHTTP{Svc: roleSvc},
		UserRoleHandler: &httpserver.UserRoleHTTP{Svc: userRoleSvc},
		JWTSecret:       cfg.JWTAccessSecret,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("catalog-admin listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if producer != nil {
		_ = producer.Close()
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("catalog-admin stopped")
}
