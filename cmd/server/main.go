package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	appconfig "careercompass/config"
	"careercompass/internal/bank"
	"careercompass/internal/cache"
	aiconfig "careercompass/internal/config"
	"careercompass/internal/mail"
	"careercompass/internal/repository"
	"careercompass/internal/service"
	"careercompass/internal/transport/rest"
	"careercompass/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	ctx := context.Background()

	aiCfg := aiconfig.DefaultAIConfig()
	if aiCfg.IsEnabled() {
		log.Info("suggestion provider configured",
			zap.String("freeModel", aiCfg.Models.Free),
			zap.String("clarityModel", aiCfg.Models.Clarity),
			zap.String("compassModel", aiCfg.Models.Compass))
	} else {
		log.Warn("GEMINI_API_KEY not set, suggestions degrade to aggregates only")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	log.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("failed to ping Redis", zap.Error(err))
	}
	log.Info("connected to Redis")

	// Question catalog, built once
	catalog := bank.NewCatalog()

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	recordRepo := repository.NewTestRecordRepo(db)

	// Initialize caches
	recordCache := cache.NewTestRecordCache(rdb)
	otpCache := cache.NewOTPCache(rdb)

	// Mail transport: SES when configured, log-only otherwise
	var sender mail.Sender
	if cfg.SESRegion != "" {
		sesSender, err := mail.NewSESSender(ctx, cfg.SESRegion, cfg.MailFrom)
		if err != nil {
			log.Fatal("failed to initialize SES", zap.Error(err))
		}
		sender = sesSender
		log.Info("mail transport: SES", zap.String("region", cfg.SESRegion))
	} else {
		sender = mail.NewLogSender(log)
		log.Warn("mail transport: log only (SES_REGION not set)")
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, otpCache, sender, cfg.JWTSecret, log)
	suggestionSvc := service.NewSuggestionServiceWithConfig(aiCfg, catalog, log)
	assessmentSvc := service.NewAssessmentService(userRepo, recordRepo, recordCache, suggestionSvc, log)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		Catalog:           catalog,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen and serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
