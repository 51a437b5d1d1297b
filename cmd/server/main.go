// cmd/server/main.go
package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/unclebandit/campaign-planner/internal/config"
	"github.com/unclebandit/campaign-planner/internal/db"
	"github.com/unclebandit/campaign-planner/internal/handler"
	"github.com/unclebandit/campaign-planner/internal/queue"
	"github.com/unclebandit/campaign-planner/internal/repository"
	"github.com/unclebandit/campaign-planner/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on OS environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	conn, err := db.Open(cfg.DSN())
	if err != nil {
		logger.Fatal("failed to connect to DB", zap.Error(err))
	}
	defer conn.Close()

	campaignRepo := &repository.CampaignRepository{DB: conn}
	strategyRepo := &repository.StrategyRepository{DB: conn}
	assetRepo := &repository.ContentAssetRepository{DB: conn}

	// Launch jobs go to RabbitMQ when a broker is configured; otherwise an
	// in-process queue runs the publishing worker inside the server.
	var q queue.Queue
	var ai service.AIClient
	if cfg.AIAPIKey != "" {
		ai = service.NewOpenAIClient(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
	} else {
		logger.Warn("no AI API key configured, previews use the template fallback")
		ai = service.NewTemplateClient()
	}
	previewService := &service.PreviewService{AI: ai, Logger: logger}

	if amqpQueue, err := queue.DialAMQP(cfg.AMQPURL, logger); err == nil {
		defer amqpQueue.Close()
		q = amqpQueue
	} else {
		logger.Warn("AMQP unavailable, using in-memory queue", zap.Error(err))
		inmem := queue.NewInMemoryQueue(logger)
		service.StartLaunchSubscriber(inmem, &service.LaunchWorker{
			CampaignRepo: campaignRepo,
			AssetRepo:    assetRepo,
			Preview:      previewService,
			Logger:       logger,
		})
		q = inmem
	}

	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
		StrategyRepo: strategyRepo,
		AssetRepo:    assetRepo,
		Queue:        q,
		Logger:       logger,
	}

	router := handler.NewRouter(
		&handler.CampaignHandler{
			Service: campaignService,
			Preview: previewService,
			Logger:  logger,
		},
		&handler.StrategyHandler{Repo: strategyRepo},
		cfg.JWTSecret,
	)

	logger.Info("🚀 server running", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
