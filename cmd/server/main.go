package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"healthsync-service/internal/adapters"
	"healthsync-service/internal/api/handlers"
	"healthsync-service/internal/auth"
	"healthsync-service/internal/config"
	"healthsync-service/internal/domain/entities"
	"healthsync-service/internal/domain/repositories"
	"healthsync-service/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// TranslateError surfaces unique-index violations as gorm.ErrDuplicatedKey,
	// which the record repository maps to its duplicate sentinel.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	if err := db.AutoMigrate(&entities.User{}, &entities.HealthRecord{}); err != nil {
		logger.Fatal("migrate schema", zap.Error(err))
	}

	recordRepo := repositories.NewHealthRecordRepository(db)
	userRepo := repositories.NewUserRepository(db)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	identityProvider := adapters.NewHTTPIdentityProvider(
		cfg.Provider.BaseURL, cfg.Provider.AppID, cfg.Provider.AppSecret, logger)
	chatProvider := adapters.NewHTTPChatProvider(
		cfg.Chat.BaseURL, cfg.Chat.APIKey, cfg.Chat.Model, logger)
	storage, err := adapters.NewLocalObjectStorage(cfg.Storage.Dir, cfg.Storage.BaseURL, logger)
	if err != nil {
		logger.Fatal("init object storage", zap.Error(err))
	}

	syncService := services.NewSyncService(recordRepo, logger)

	app := fiber.New()
	app.Static(cfg.Storage.MountPath, cfg.Storage.Dir)
	handlers.RegisterRoutes(app,
		auth.RequireAuth(tokens, logger),
		handlers.NewAuthHandler(identityProvider, userRepo, tokens, logger),
		handlers.NewSyncHandler(syncService, logger),
		handlers.NewChatHandler(chatProvider, logger),
		handlers.NewAttachmentHandler(storage, logger),
	)

	logger.Info("server listening", zap.String("addr", cfg.ListenAddr))
	if err := app.Listen(cfg.ListenAddr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
