package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/shopluxe/backend/internal/config"     // Internal config loader
	"github.com/shopluxe/backend/internal/database"   // MySQL connector
	"github.com/shopluxe/backend/internal/handler"    // HTTP handlers
	"github.com/shopluxe/backend/internal/mailer"     // SMTP sender for the email consumer
	"github.com/shopluxe/backend/internal/middleware" // rate limiting
	"github.com/shopluxe/backend/internal/queue"      // broker consumer
	"github.com/shopluxe/backend/internal/repository" // DB repositories
	"github.com/shopluxe/backend/internal/router"     // Internal router setup
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient() // nil when Redis is unreachable; middleware degrades

	users := repository.NewUserRepo(db)
	orders := repository.NewOrderRepo(db)
	affiliates := repository.NewAffiliateRepo(db)

	// The consumer drains the outbound email queue independently of the
	// HTTP server; handlers only ever publish.
	smtp := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	go queue.StartEmailConsumer(smtp)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterCatalog(e, rdb)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users), users)
	router.RegisterOrders(e, handler.NewOrderHandler(cfg, orders))
	router.RegisterAffiliates(e, handler.NewAffiliateHandler(affiliates))

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
