package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"google.golang.org/api/option"

	"github.com/zhaosongzhu/financial-app-backend/internal/ai"
	"github.com/zhaosongzhu/financial-app-backend/internal/api/handlers"
	"github.com/zhaosongzhu/financial-app-backend/internal/api/middleware"
	"github.com/zhaosongzhu/financial-app-backend/internal/archive"
	"github.com/zhaosongzhu/financial-app-backend/internal/auth"
	"github.com/zhaosongzhu/financial-app-backend/internal/config"
	"github.com/zhaosongzhu/financial-app-backend/internal/logger"
	"github.com/zhaosongzhu/financial-app-backend/internal/store"
	firestorerepo "github.com/zhaosongzhu/financial-app-backend/internal/store/firestore"
	"github.com/zhaosongzhu/financial-app-backend/internal/store/memory"
)

func main() {
	log := logger.New()
	config.LoadDotenv(log)

	port := flag.String("port", "", "HTTP server port (overrides PORT env)")
	flag.Parse()

	cfg := config.Load()
	if *port != "" {
		cfg.Port = *port
	}

	ctx := context.Background()

	// Client initialization is deliberately non-fatal: a missing credential
	// leaves the corresponding client nil and its routes answer with 500s,
	// which /healthcheck reports.
	var (
		verifier auth.Verifier
		users    store.UserStore
		txs      store.TransactionStore
	)

	switch {
	case cfg.DevMode:
		log.Warn().Msg("DEV_MODE enabled - using in-memory store and a static identity")
		mem := memory.NewStore()
		users = mem
		txs = mem
		verifier = &auth.StaticVerifier{UID: "dev-user"}
	case cfg.CredentialsFile == "":
		log.Warn().Msg("FIREBASE_CREDENTIALS_FILE not set - store and auth routes will be degraded")
	default:
		app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.CredentialsFile))
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize Firebase app")
			break
		}

		authClient, err := app.Auth(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Failed to create Firebase auth client")
		} else {
			verifier = auth.NewFirebaseVerifier(authClient)
		}

		fsClient, err := app.Firestore(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Failed to create Firestore client")
		} else {
			defer fsClient.Close()
			users = firestorerepo.NewUserRepository(fsClient)
			txs = firestorerepo.NewTransactionRepository(fsClient)
		}
	}

	var gen ai.Generator
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set - inference routes will be degraded")
	} else {
		client, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Error().Err(err).Msg("Failed to create Gemini client")
		} else {
			gen = client
		}
	}

	var archiver archive.Archiver
	if cfg.ReceiptBucket != "" {
		archiver = archive.NewGCSArchiver(cfg.ReceiptBucket)
		log.Info().Str("bucket", cfg.ReceiptBucket).Msg("Receipt image archival enabled")
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(users != nil && txs != nil, gen != nil, log)
	usersHandler := handlers.NewUsersHandler(users, log)
	transactionsHandler := handlers.NewTransactionsHandler(txs, log)
	summaryHandler := handlers.NewSummaryHandler(txs, gen, log)
	insightsHandler := handlers.NewInsightsHandler(gen, archiver, log)

	// Create router
	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         3600,
	}))

	r.Get("/", healthHandler.Root)
	r.Get("/healthcheck", healthHandler.Healthcheck)

	// Everything else requires a verified bearer token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(verifier, log))

		r.Get("/users", usersHandler.ListUsers)
		r.Post("/users", usersHandler.CreateUser)
		r.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
			usersHandler.GetUser(w, req, chi.URLParam(req, "id"))
		})
		r.Put("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
			usersHandler.UpdateUser(w, req, chi.URLParam(req, "id"))
		})
		r.Delete("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
			usersHandler.DeleteUser(w, req, chi.URLParam(req, "id"))
		})

		r.Get("/transactions", transactionsHandler.ListTransactions)
		r.Post("/transactions", transactionsHandler.CreateTransaction)

		r.Get("/summary/spending", summaryHandler.SpendingSummary)

		r.Post("/generate", insightsHandler.Generate)
		r.Post("/receipt", insightsHandler.ScanReceipt)
		r.Post("/understand-image", insightsHandler.UnderstandImage)
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
