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
	"github.com/swasthya-saarthi/companion/pkg/common/config"
	"github.com/swasthya-saarthi/companion/pkg/common/database"
	"github.com/swasthya-saarthi/companion/pkg/common/kafka"
	"github.com/swasthya-saarthi/companion/pkg/common/logger"
	"github.com/swasthya-saarthi/companion/pkg/contacts"
	"github.com/swasthya-saarthi/companion/pkg/records"
	"github.com/swasthya-saarthi/companion/pkg/server/middleware"
	"github.com/swasthya-saarthi/companion/pkg/triage"
)

func main() {
	logger.Init("records-service")
	cfg := config.Load()

	catalog, err := triage.Load(cfg.CatalogPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load triage catalog")
	}

	db, err := database.GetPostgres()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to connect to database")
	}
	defer database.ClosePostgres()

	recordRepo := records.NewRepository(db)
	if err := recordRepo.Migrate(); err != nil {
		logger.Log.WithError(err).Fatal("Failed to migrate health_records")
	}
	contactRepo := contacts.NewRepository(db)
	if err := contactRepo.Migrate(); err != nil {
		logger.Log.WithError(err).Fatal("Failed to migrate emergency_contacts")
	}

	recordService := records.NewService(recordRepo, catalog)

	consumer := kafka.NewConsumer("assessment-events", "records-service")
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := consumer.Consume(ctx, recordService.HandleAssessmentEvent); err != nil && err != context.Canceled {
			logger.Log.WithError(err).Error("Consumer stopped")
		}
	}()

	router := mux.NewRouter()
	router.Use(middleware.Recovery, middleware.Logging, middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	router.HandleFunc("/health", healthCheck).Methods("GET")
	api := router.PathPrefix("/api/v1").Subrouter()
	records.NewHandler(recordService).Register(api)
	contacts.NewHandler(contactRepo).Register(api)

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
		}).Info("Records Service started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down Records Service...")
	cancel()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Log.WithError(err).Error("Server forced to shutdown")
	}

	logger.Log.Info("Records Service stopped")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
