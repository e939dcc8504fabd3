package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/mindhaven/mindhaven-backend/internal/api/http"
	"github.com/mindhaven/mindhaven-backend/internal/assessment"
	"github.com/mindhaven/mindhaven-backend/internal/chat"
	"github.com/mindhaven/mindhaven-backend/internal/config"
	"github.com/mindhaven/mindhaven-backend/internal/db"
	"github.com/mindhaven/mindhaven-backend/internal/forum"
	"github.com/mindhaven/mindhaven-backend/internal/logging"
	"github.com/mindhaven/mindhaven-backend/internal/telemetry"
)

func main() {
	cfg := config.FromEnv()

	log, err := logging.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatal("db open failed", "err", err)
	}
	defer dbh.Close()

	forumStore := forum.NewSQLStore(dbh)
	testStore := assessment.NewSQLStore(dbh)
	events := telemetry.NewEventLog(dbh)

	if err := assessment.SeedCatalog(ctx, testStore); err != nil {
		log.Fatal("seed catalog failed", "err", err)
	}

	// --- Chat relay ---
	var relay chat.Client
	relay, err = chat.NewClient(cfg, log)
	if err != nil {
		log.Warn("chat relay disabled", "err", err)
		relay = chat.Disabled{}
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Post("/posts", api.CreatePostHandler(forumStore, log))
	r.Get("/posts", api.ListPostsHandler(forumStore, log))
	r.Get("/posts/{postID}", api.GetPostHandler(forumStore, log))
	r.Post("/posts/{postID}/reply", api.ReplyHandler(forumStore, log))

	r.Get("/tests", api.ListTestsHandler(testStore, log))
	r.Get("/tests/{testID}", api.GetTestHandler(testStore, log))
	r.Post("/tests/{testID}/submit", api.SubmitTestHandler(testStore, events, log))
	r.Get("/results", api.ListResultsHandler(testStore, log))

	r.Post("/chat", api.ChatHandler(relay, log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		close(done)
	}()

	log.Info("listening", "addr", cfg.HTTPAddr, "db", cfg.DBDriver)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server", "err", err)
	}
	<-done
}
