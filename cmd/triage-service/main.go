package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/swasthya-saarthi/companion/pkg/assessment"
	"github.com/swasthya-saarthi/companion/pkg/assistant"
	"github.com/swasthya-saarthi/companion/pkg/common/config"
	"github.com/swasthya-saarthi/companion/pkg/common/database"
	"github.com/swasthya-saarthi/companion/pkg/common/kafka"
	"github.com/swasthya-saarthi/companion/pkg/common/logger"
	"github.com/swasthya-saarthi/companion/pkg/lexicon"
	"github.com/swasthya-saarthi/companion/pkg/server/middleware"
	"github.com/swasthya-saarthi/companion/pkg/triage"
)

func main() {
	logger.Init("triage-service")
	cfg := config.Load()

	// Reference data is validated at load; a broken catalog is fatal.
	catalog, err := triage.Load(cfg.CatalogPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load triage catalog")
	}
	lex, err := lexicon.Load(cfg.LexiconPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load lexicon")
	}

	logger.Log.WithFields(map[string]interface{}{
		"symptoms":   len(catalog.Symptoms),
		"conditions": len(catalog.Conditions),
		"phrases":    lex.Len(),
	}).Info("Reference data loaded")

	sessions := assistant.NewSessionStore(database.GetRedis(), cfg.SessionTTL, cfg.SessionHistoryMax)

	producer := kafka.NewProducer("assessment-events")
	defer producer.Close()

	service := assessment.NewService(catalog, lex, sessions, producer, cfg.TopConditions)
	handler := assessment.NewHandler(service)

	router := mux.NewRouter()
	router.Use(middleware.Recovery, middleware.Logging, middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	router.HandleFunc("/health", healthCheck).Methods("GET")
	handler.Register(router.PathPrefix("/api/v1").Subrouter())

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Log.WithFields(map[string]interface{}{
			"host": cfg.ServerHost,
			"port": cfg.ServerPort,
		}).Info("Triage Service started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down Triage Service...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Log.WithError(err).Error("Server forced to shutdown")
	}
	database.CloseRedis()

	logger.Log.Info("Triage Service stopped")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
