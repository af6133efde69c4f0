package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"billingBack/internal/cache"
	"billingBack/internal/config"
	"billingBack/internal/handlers"
	"billingBack/internal/repositories"
	"billingBack/internal/services"
	"billingBack/utils"
)

type application struct {
	errorLog        *log.Logger
	infoLog         *log.Logger
	cfg             config.Config
	db              *sql.DB
	pathCache       *cache.PathCache
	userRepo        *repositories.UserRepository
	userHandler     *handlers.UserHandler
	invoiceHandler  *handlers.InvoiceHandler
	customerHandler *handlers.CustomerHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	var pathCache *cache.PathCache
	if rdb != nil {
		pathCache = cache.NewPathCache(rdb, time.Duration(cfg.Redis.PageTTLSeconds)*time.Second)
	}

	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	invoiceRepo := repositories.InvoiceRepository{DB: db}
	customerRepo := repositories.CustomerRepository{DB: db}

	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	// Services
	userService := &services.UserService{
		UserRepo:     &userRepo,
		TokenManager: tokenManager,
		SigningKey:   cfg.Auth.SigningKey,
		AccessTTL:    time.Duration(cfg.Auth.AccessTTLMinutes) * time.Minute,
	}
	invoiceService := &services.InvoiceService{InvoiceRepo: &invoiceRepo}
	if pathCache != nil {
		invoiceService.Cache = pathCache
	}
	customerService := &services.CustomerService{CustomerRepo: &customerRepo}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	invoiceHandler := &handlers.InvoiceHandler{Service: invoiceService, Cache: pathCache}
	customerHandler := &handlers.CustomerHandler{Service: customerService}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		cfg:             cfg,
		db:              db,
		pathCache:       pathCache,
		userRepo:        &userRepo,
		userHandler:     userHandler,
		invoiceHandler:  invoiceHandler,
		customerHandler: customerHandler,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

// openRedis connects the listing cache. A cache outage is not fatal; the
// app runs uncached until redis is back.
func openRedis(cfg config.Config, errorLog *log.Logger) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		errorLog.Printf("redis unavailable, listing cache disabled: %v", err)
		return nil
	}
	return rdb
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Embedder-Policy", "require-corp")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
