package main

import (
	"log"
	"net/http"

	_ "gymclub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"gymclub/internal/auth"
	"gymclub/internal/cache"
	"gymclub/internal/config"
	"gymclub/internal/db"
	"gymclub/internal/handler"
	"gymclub/internal/model"
	"gymclub/internal/repository"
	"gymclub/internal/router"
	"gymclub/internal/service"
)

// @title Gym Membership API
// @version 1.0
// @description Gym membership backend with registration, JWT login, membership purchase and supplement sales.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Member{},
		&model.PaymentDetails{},
		&model.SupplementPurchase{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(gormDB)
	purchaseRepo := repository.NewSupplementPurchaseRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(memberRepo, jwtService)
	memberService := service.NewMemberService(memberRepo, cacheClient)
	membershipService := service.NewMembershipService(memberRepo, cacheClient)
	supplementService := service.NewSupplementService(memberRepo, purchaseRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	memberHandler := handler.NewMemberHandler(memberService)
	membershipHandler := handler.NewMembershipHandler(membershipService)
	supplementHandler := handler.NewSupplementHandler(supplementService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		memberHandler,
		membershipHandler,
		supplementHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
