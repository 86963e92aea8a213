// README: Entry point; loads config, wires services, starts the HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"frostdesk/internal/ai"
	"frostdesk/internal/config"
	httptransport "frostdesk/internal/http"
	"frostdesk/internal/infra"
	"frostdesk/internal/logger"
	"frostdesk/internal/modules/customer"
	"frostdesk/internal/modules/feedback"
	"frostdesk/internal/modules/scheduling"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.WithError(err).Fatal("connect db")
	}
	defer dbPool.Close()

	gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.WithError(err).Fatal("init gemini")
	}
	defer gemini.Close()

	var answerer ai.Answerer = gemini
	if cfg.Redis.Addr != "" {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		answerer = ai.NewAnswerCache(answerer, redisClient, time.Hour)
	}

	customerStore := customer.NewStore(dbPool)
	customerSvc := customer.NewService(customerStore)
	schedulingSvc := scheduling.NewService(customerStore, answerer)
	feedbackSvc := feedback.NewService(feedback.NewStore(dbPool), log)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Customers:  customerSvc,
		Scheduling: schedulingSvc,
		Feedback:   feedbackSvc,
		Answerer:   answerer,
		Log:        log,
	})

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.WithField("addr", cfg.HTTP.Addr).Info("api listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("serve")
	}
}
