package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/api"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/auth"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/cache"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/config"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/middleware"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/service"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config"
	}
	config.MustLoad(configPath)
	cfg := config.Get()

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := sqlx.Connect("mysql", cfg.Database.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache, err = cache.NewRedisCache(&cache.Config{
			Addr:         cfg.Redis.GetRedisAddr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DefaultTTL:   cfg.Redis.Cache.TTL,
			KeyPrefix:    cfg.Redis.Cache.Prefix,
		})
		if err != nil {
			log.Printf("Redis unavailable, continuing without cache: %v", err)
			redisCache = nil
		} else {
			defer redisCache.Close()
		}
	}

	repos := &repository.Repositories{
		Employees:  repository.NewSQLEmployeeRepository(db),
		PTO:        repository.NewSQLPTORepository(db),
		FrontDesk:  repository.NewSQLFrontDeskScheduleRepository(db),
		Doctors:    repository.NewSQLDoctorScheduleRepository(db),
		Tickets:    repository.NewSQLTicketRepository(db),
		LabCases:   repository.NewSQLLabCaseRepository(db),
		Directory:  repository.NewSQLDirectoryRepository(db),
		Documents:  repository.NewSQLDocumentRepository(db),
		Insurances: repository.NewSQLInsuranceRepository(db),
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessTokenTTL)
	services := service.New(repos, jwtManager)

	if len(cfg.Seed.ClinicIDs) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := services.Schedules.SeedGrids(ctx, cfg.Seed.ClinicIDs); err != nil {
			cancel()
			log.Fatalf("Failed to seed schedule grids: %v", err)
		}
		cancel()
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	authMW := middleware.NewAuthMiddleware(jwtManager)
	api.SetupRoutes(r, services, authMW, redisCache)

	srv := &http.Server{
		Addr:         cfg.Server.GetServerAddr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
}
