package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "travel-services-backend/internal/adapter/http"
	appmw "travel-services-backend/internal/adapter/middleware"
	"travel-services-backend/internal/adapter/repository/gormdb"
	"travel-services-backend/internal/adapter/web"
	"travel-services-backend/internal/config"
	"travel-services-backend/internal/infrastructure/cache"
	"travel-services-backend/internal/infrastructure/db"
	usecase "travel-services-backend/internal/usecase/travelservice"
	"travel-services-backend/pkg/id"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file loaded")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := db.EnsureSchema(gdb); err != nil {
		log.Fatalf("schema: %v", err)
	}

	repo := gormdb.NewTravelServiceRepository(gdb)
	uc := usecase.NewUsecase(repo)

	h := httpadp.NewHandler()
	sh := httpadp.NewTravelServiceHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: id.NewID32,
	}))

	// routes
	e.GET("/health", h.Health)

	api := e.Group("/api")
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		api.Use(appmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}
	api.GET("/options", h.Options)
	api.POST("/services", sh.Create)
	api.GET("/services", sh.List)
	api.GET("/services/:id", sh.Get)
	api.PUT("/services/:id", sh.Update)
	api.DELETE("/services/:id", sh.Delete)
	api.DELETE("/services", sh.DeleteMany)

	web.Register(e)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
