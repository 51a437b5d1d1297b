// cmd/worker/main.go
package main

import (
	"context"
	"encoding/json"

	"github.com/joho/godotenv"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/unclebandit/campaign-planner/internal/config"
	"github.com/unclebandit/campaign-planner/internal/db"
	"github.com/unclebandit/campaign-planner/internal/queue"
	"github.com/unclebandit/campaign-planner/internal/repository"
	"github.com/unclebandit/campaign-planner/internal/service"
)

const maxRetries = 3

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

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
	assetRepo := &repository.ContentAssetRepository{DB: conn}

	var ai service.AIClient
	if cfg.AIAPIKey != "" {
		ai = service.NewOpenAIClient(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
	} else {
		logger.Warn("no AI API key configured, publishing uses the template fallback")
		ai = service.NewTemplateClient()
	}

	worker := &service.LaunchWorker{
		CampaignRepo: campaignRepo,
		AssetRepo:    assetRepo,
		Preview:      &service.PreviewService{AI: ai, Logger: logger},
		Logger:       logger,
	}

	// Connect to RabbitMQ
	amqpConn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		logger.Fatal("failed to connect to RabbitMQ", zap.Error(err))
	}
	defer amqpConn.Close()

	ch, err := amqpConn.Channel()
	if err != nil {
		logger.Fatal("failed to open a channel", zap.Error(err))
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		queue.LaunchTopic, // name
		true,              // durable
		false,             // delete when unused
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		logger.Fatal("failed to declare queue", zap.Error(err))
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Fatal("failed to register consumer", zap.Error(err))
	}

	logger.Info("worker running, waiting for launch jobs")
	for d := range msgs {
		var job queue.LaunchJob
		if err := json.Unmarshal(d.Body, &job); err != nil {
			logger.Warn("invalid job body", zap.Error(err))
			d.Ack(false)
			continue
		}

		if err := worker.Process(context.Background(), job); err != nil {
			logger.Warn("failed to process launch job",
				zap.String("campaign_id", job.CampaignID), zap.Error(err))

			// Requeue up to maxRetries times.
			var retryCount int
			if d.Headers["x-retry-count"] != nil {
				retryCount, _ = d.Headers["x-retry-count"].(int)
			}
			if retryCount < maxRetries {
				d.Nack(false, true)
				continue
			}
		}

		d.Ack(false)
	}
}
