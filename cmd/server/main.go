package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gen01-ai/interview-assistant/config"
	"github.com/gen01-ai/interview-assistant/handlers"
	"github.com/gen01-ai/interview-assistant/internal/assistant"
	"github.com/gen01-ai/interview-assistant/internal/cohere"
	"github.com/gen01-ai/interview-assistant/internal/session"
	"github.com/gen01-ai/interview-assistant/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: failed to load: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("logger: failed to build: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if cfg.Cohere.APIKey == "" {
		// The server still starts; every model call will fail upstream
		// until a key is provided.
		sugar.Warn("API_KEY is not set, chat completions will fail")
	}

	store := session.NewStore()
	model := cohere.New(cfg.Cohere, sugar)
	svc := assistant.NewService(store, model, cfg, sugar)

	router := setupRouter(cfg, svc, sugar)

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infof("server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("server crashed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Warnf("graceful shutdown failed: %v", err)
	}

	sugar.Info("server stopped cleanly")
}

func setupRouter(cfg *config.Config, svc *assistant.Service, logger *zap.SugaredLogger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// Credentialed CORS forbids wildcard headers, so the usual browser
	// headers are listed explicitly for the single allowed origin.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handlers.NewAssistantHandler(svc, logger).RegisterRoutes(router)

	return router
}
