package main

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/storage"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"rewind/internal/audio"
	"rewind/internal/component"
	"rewind/internal/config"
	"rewind/internal/feed"
	"rewind/internal/highlight"
	"rewind/internal/llm"
	"rewind/internal/narration"
	"rewind/internal/queue"
	"rewind/internal/script"
	"rewind/internal/service"
	"rewind/internal/source/mlb"
	"rewind/internal/speech/elevenlabs"
	"rewind/internal/storage/gcs"
	"rewind/internal/storage/postgres"
	redisstore "rewind/internal/storage/redis"
)

func openDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	logger.Info("connected to database", "host", cfg.Host, "dbname", cfg.DBName)
	return db, nil
}

func openRedis(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	logger.Info("connected to redis", "addr", cfg.Addr)
	return rdb, nil
}

func openQueue(cfg config.RabbitMQConfig, logger *slog.Logger) (*queue.RabbitMQ, error) {
	return queue.NewRabbitMQ(queue.Config{
		URL:        cfg.URL,
		Exchange:   cfg.Exchange,
		RoutingKey: cfg.RoutingKey,
		QueueName:  cfg.QueueName,
		Prefetch:   cfg.Prefetch,
	}, logger)
}

// buildPipeline wires every pipeline collaborator from configuration. The
// storage client is owned by the caller.
func buildPipeline(
	ctx context.Context,
	cfg *config.Config,
	db *sqlx.DB,
	rdb *redis.Client,
	blobs *storage.Client,
	logger *slog.Logger,
) (*service.Pipeline, error) {
	sports := mlb.New(mlb.Config{
		BaseURL:        cfg.SportsData.BaseURL,
		Timeout:        cfg.SportsData.Timeout,
		MaxAttempts:    cfg.SportsData.Retry.MaxAttempts,
		InitialBackoff: cfg.SportsData.Retry.InitialBackoff,
		MaxBackoff:     cfg.SportsData.Retry.MaxBackoff,
	}, logger)

	textModel, err := llm.NewOpenAI(llm.OpenAIConfig{
		APIKey:      cfg.ScriptModel.APIKey,
		BaseURL:     cfg.ScriptModel.BaseURL,
		Model:       cfg.ScriptModel.Model,
		Temperature: cfg.ScriptModel.Temperature,
		MaxTokens:   cfg.ScriptModel.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("create script model: %w", err)
	}

	videoModel, err := llm.NewGemini(ctx, llm.GeminiConfig{
		Project:  cfg.VideoModel.Project,
		Location: cfg.VideoModel.Location,
		Model:    cfg.VideoModel.Model,
		APIKey:   cfg.VideoModel.APIKey,
		BaseURL:  cfg.VideoModel.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create video model: %w", err)
	}

	speech := elevenlabs.New(elevenlabs.Config{
		BaseURL:      cfg.Speech.BaseURL,
		APIKey:       cfg.Speech.APIKey,
		ModelID:      cfg.Speech.ModelID,
		OutputFormat: cfg.Speech.OutputFormat,
		Voice: elevenlabs.VoiceSettings{
			Stability:       *cfg.Speech.Stability,
			SimilarityBoost: *cfg.Speech.SimilarityBoost,
			Style:           *cfg.Speech.Style,
			UseSpeakerBoost: *cfg.Speech.SpeakerBoost,
		},
		Timeout:        cfg.Speech.Timeout,
		MaxAttempts:    cfg.Speech.Retry.MaxAttempts,
		InitialBackoff: cfg.Speech.Retry.InitialBackoff,
		MaxBackoff:     cfg.Speech.Retry.MaxBackoff,
	}, logger)

	narrator := narration.NewRenderer(
		speech,
		audio.NewPeakNormalizer(cfg.Audio.FFmpegPath, *cfg.Audio.TargetPeakDBFS),
		audio.MP3Probe{},
		gcs.NewBucket(blobs, cfg.Storage.AudioBucket, true),
		cfg.Speech.Voices,
		logger,
	)

	aligner := highlight.NewAligner(
		sports,
		gcs.NewBucket(blobs, cfg.Storage.VideoBucket, false),
		postgres.NewVideoMemoStore(db),
		videoModel,
		logger,
	)

	return service.NewPipeline(
		feed.NewBuilder(sports, logger),
		script.NewGenerator(textModel, logger),
		component.NewResolver(sports, logger),
		narrator,
		aligner,
		redisstore.NewTimelineCache(rdb, cfg.Redis.TTL),
		logger,
		cfg.Pipeline,
	), nil
}
