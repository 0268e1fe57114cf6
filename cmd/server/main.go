package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/nkdbuilders/backend/internal/config"
	"github.com/nkdbuilders/backend/internal/handler"
	"github.com/nkdbuilders/backend/internal/logging"
	"github.com/nkdbuilders/backend/internal/ratelimit"
	"github.com/nkdbuilders/backend/internal/repository"
	"github.com/nkdbuilders/backend/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logging.Setup(cfg.LogDir)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	contactRepo := repository.NewPgContactRepository(pool)
	quoteRepo := repository.NewPgQuoteRepository(pool)
	contactService := service.NewContactService(contactRepo)
	quoteService := service.NewQuoteService(quoteRepo)

	// Counter store for the rate limiter: Redis when configured so multiple
	// instances share quota, in-process otherwise.
	var counters ratelimit.CounterStore
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		counters = ratelimit.NewRedisStore(rdb)
	} else {
		mem := ratelimit.NewMemoryStore()
		mem.StartJanitor(ctx)
		counters = mem
	}
	limiter := ratelimit.New(counters)

	apiPolicy := ratelimit.Policy{Name: "api", Window: cfg.RateLimitWindow, Max: cfg.RateLimitMax}
	contactPolicy := ratelimit.Policy{Name: "contact-form", Window: time.Hour, Max: 5}
	quotePolicy := ratelimit.Policy{Name: "quote-form", Window: time.Hour, Max: 3}

	h := handler.New(pool, cfg.CompanyName, cfg.AllowedOrigins)
	contactHandler := handler.NewContactHandler(contactService)
	quoteHandler := handler.NewQuoteHandler(quoteService)

	contactLimited := limiter.Middleware(contactPolicy,
		"You have submitted too many forms. Please wait before submitting again.")
	quoteLimited := limiter.Middleware(quotePolicy,
		"You have submitted too many quote requests. Please wait before submitting again.")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)

	mux.Handle("POST /api/contact", contactLimited(http.HandlerFunc(contactHandler.Submit)))
	mux.HandleFunc("GET /api/contact", contactHandler.List)
	mux.HandleFunc("GET /api/contact/stats", contactHandler.Stats)
	mux.HandleFunc("GET /api/contact/{id}", contactHandler.Get)
	mux.HandleFunc("PATCH /api/contact/{id}/status", contactHandler.UpdateStatus)
	mux.HandleFunc("DELETE /api/contact/{id}", contactHandler.Delete)

	mux.Handle("POST /api/quote", quoteLimited(http.HandlerFunc(quoteHandler.Submit)))
	mux.HandleFunc("GET /api/quote", quoteHandler.List)
	mux.HandleFunc("GET /api/quote/stats", quoteHandler.Stats)
	mux.HandleFunc("GET /api/quote/{id}", quoteHandler.Get)
	mux.HandleFunc("PATCH /api/quote/{id}/status", quoteHandler.UpdateStatus)
	mux.HandleFunc("DELETE /api/quote/{id}", quoteHandler.Delete)

	// Service descriptor on /, JSON 404 everywhere else.
	mux.HandleFunc("/", h.Root)

	apiLimited := limiter.MiddlewareForPrefix("/api/", apiPolicy,
		"Too many requests. Please try again later.")

	root := h.CORS(handler.SecurityHeaders(handler.RequestLogger(apiLimited(mux))))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logging.Success("server running", "addr", server.Addr, "company", cfg.CompanyName)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
