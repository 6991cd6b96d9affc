package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	clerk "github.com/clerk/clerk-sdk-go/v2"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bobrandy13/LeetcodeBot/handlers"
	"github.com/bobrandy13/LeetcodeBot/internal/config"
	"github.com/bobrandy13/LeetcodeBot/internal/kv"
	"github.com/bobrandy13/LeetcodeBot/internal/repository"
	"github.com/bobrandy13/LeetcodeBot/internal/workers"
	"github.com/bobrandy13/LeetcodeBot/middleware"
	"github.com/bobrandy13/LeetcodeBot/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := kv.New(ctx, cfg.Store)
	cancel()
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer func() {
		log.Println("Closing store...")
		if err := store.Close(); err != nil {
			log.Printf("Store close error: %v", err)
		}
	}()
	log.Printf("Using %s store", cfg.Store.Backend)

	middleware.InitPrometheus()

	repo := repository.NewStreakRepository(store)
	streakService := services.NewStreakService(repo, cfg.RequiredMembers)
	diagnosticsService := services.NewDiagnosticsService(store, cfg.Store.Backend)
	problemService := services.NewProblemService()

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// Interactions all arrive from Discord's own addresses, so commands are
	// limited per user and the remaining routes per client IP.
	userLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	ipLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go userLimiter.Cleanup(bgCtx)
	go ipLimiter.Cleanup(bgCtx)

	if cfg.GroupRefreshInterval > 0 {
		workers.StartGroupRefresher(bgCtx, streakService, cfg.GroupRefreshInterval)
	}

	interactionHandler := handlers.NewInteractionHandler(streakService, problemService, userLimiter, cfg.DiscordPublicKey, cfg.DiscordApplicationID)
	systemHandler := handlers.NewSystemHandler(diagnosticsService, cfg.DiscordApplicationID)
	docHandler := handlers.NewDocHandler(cfg.BotName, cfg.ContactEmail)

	r := mux.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MonitorMiddleware)

	r.HandleFunc("/interactions", interactionHandler.HandleInteraction).Methods("POST")
	r.HandleFunc("/", interactionHandler.HandleInteraction).Methods("POST")

	standardRouter := r.PathPrefix("/").Subrouter()
	standardRouter.Use(ipLimiter.Middleware)

	standardRouter.HandleFunc("/", systemHandler.Home).Methods("GET")
	standardRouter.HandleFunc("/health", systemHandler.Health).Methods("GET")
	standardRouter.HandleFunc("/invite/qr", systemHandler.InviteQR).Methods("GET")
	standardRouter.HandleFunc("/privacy-policy", docHandler.ServePrivacyPolicy).Methods("GET")
	standardRouter.HandleFunc("/terms-of-service", docHandler.ServeTermsOfService).Methods("GET")
	standardRouter.Handle("/metrics", middleware.BasicAuthMiddleware(cfg.MetricsUser, cfg.MetricsPass)(promhttp.Handler()))

	if cfg.ClerkSecretKey != "" {
		clerk.SetKey(cfg.ClerkSecretKey)
		log.Println("Clerk initialized successfully")

		admin := standardRouter.PathPrefix("/debug").Subrouter()
		admin.Use(middleware.AdminAuthMiddleware(cfg.AdminClerkIDs))
		admin.HandleFunc("/kv", systemHandler.DebugKV).Methods("GET")
	} else {
		log.Println("CLERK_SECRET_KEY not set, /debug routes disabled")
	}

	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Signature-Ed25519", "X-Signature-Timestamp"}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Length", middleware.RequestIDHeader}),
	)

	handler := gorillaHandlers.RecoveryHandler(gorillaHandlers.PrintRecoveryStack(true))(
		gorillaHandlers.CombinedLoggingHandler(os.Stdout, corsHandler(r)),
	)

	port := ":" + cfg.Port
	server := http.Server{
		Addr:         port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
