package main

import (
	"context"
	"errors"

	"cloud.google.com/go/storage"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"rewind/internal/scheduler"
	"rewind/internal/service"
	"rewind/internal/storage/postgres"
)

var consumerName string

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Process queued rewind jobs",
	Long: `Consume rewind jobs from RabbitMQ and run the pipeline for each of them.

The worker also requeues jobs that stayed running longer than jobs.stale_after,
which happens when a worker dies mid-job.`,
	Args: cobra.NoArgs,
	RunE: runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
	workerCmd.Flags().StringVar(&consumerName, "consumer", "rewind-worker", "RabbitMQ consumer tag")
}

func runWorker(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	db, err := openDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	rdb, err := openRedis(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer rdb.Close()

	blobs, err := storage.NewClient(ctx)
	if err != nil {
		return err
	}
	defer blobs.Close()

	rabbitMQ, err := openQueue(cfg.RabbitMQ, logger)
	if err != nil {
		return err
	}
	defer rabbitMQ.Close()

	pipeline, err := buildPipeline(ctx, cfg, db, rdb, blobs, logger)
	if err != nil {
		return err
	}

	jobs := service.NewJobService(
		postgres.NewJobStore(db),
		rabbitMQ,
		postgres.NewTransactionManager(db),
		pipeline,
		logger,
		cfg.Jobs,
	)

	sched := scheduler.NewScheduler(jobs, cfg.Jobs.ReapInterval, logger)

	logger.Info("starting rewind worker",
		"consumer", consumerName,
		"queue", cfg.RabbitMQ.QueueName,
		"stale_after", cfg.Jobs.StaleAfter,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sched.Start(ctx)
	})
	g.Go(func() error {
		return rabbitMQ.Consume(ctx, consumerName, jobs.Process)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
