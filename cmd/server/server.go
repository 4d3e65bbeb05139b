package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/creature-api/internal/engine/heredity"
	"github.com/KirkDiggler/creature-api/internal/errors"
	"github.com/KirkDiggler/creature-api/internal/orchestrators/breeding"
	"github.com/KirkDiggler/creature-api/internal/pkg/clock"
	"github.com/KirkDiggler/creature-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/creature-api/internal/redis"
	breedingqueue "github.com/KirkDiggler/creature-api/internal/repositories/breeding_queue"
	breedingsession "github.com/KirkDiggler/creature-api/internal/repositories/breeding_session"
	"github.com/KirkDiggler/creature-api/internal/repositories/creatures"
)

// serverConfig is read from the environment
type serverConfig struct {
	RedisEndpoint string        `env:"REDIS_ENDPOINT" envDefault:"localhost:6379"`
	TickInterval  time.Duration `env:"TICK_INTERVAL" envDefault:"500ms"`
	WorkerCount   int           `env:"WORKER_COUNT" envDefault:"2"`
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the breeding worker",
	Long:  `Start the worker loop that dequeues breeding requests, plays their sessions, and stores finalized results.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return errors.Wrap(err, "failed to parse environment config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, stopping workers")
		cancel()
	}()

	client, err := redisclient.NewClient(cfg.RedisEndpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create redis client")
	}

	realClock := &clock.Real{}

	creatureRepo, err := creatures.NewRedisRepository(&creatures.Config{
		Client: client,
		Clock:  realClock,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create creature repository")
	}

	sessionRepo, err := breedingsession.NewRedisRepository(&breedingsession.Config{
		Client: client,
		Clock:  realClock,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create session repository")
	}

	queueRepo, err := breedingqueue.NewRedisRepository(&breedingqueue.Config{Client: client})
	if err != nil {
		return errors.Wrap(err, "failed to create queue repository")
	}

	service, err := breeding.NewOrchestrator(&breeding.Config{
		CreatureRepo: creatureRepo,
		SessionRepo:  sessionRepo,
		QueueRepo:    queueRepo,
		Engine:       heredity.New(),
		IDGenerator:  idgen.NewUUID("session"),
		Clock:        realClock,
		Tuning:       breeding.DefaultTuning(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create breeding orchestrator")
	}

	slog.Info("breeding worker starting",
		"redis_endpoint", cfg.RedisEndpoint,
		"tick_interval", cfg.TickInterval,
		"worker_count", cfg.WorkerCount,
	)

	var wg sync.WaitGroup
	for i := 0; i < cfg.WorkerCount; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			runWorker(ctx, worker, service, cfg.TickInterval)
		}(i)
	}

	wg.Wait()
	slog.Info("all workers stopped")
	return nil
}

// runWorker drains the request queue at the tick interval. Each request is
// played to a terminal state inside one ProcessNextRequest call, so a
// session's state and roller are only ever touched by one worker.
func runWorker(ctx context.Context, worker int, service breeding.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("worker stopping", "worker", worker)
			return
		case <-ticker.C:
			out, err := service.ProcessNextRequest(ctx, &breeding.ProcessNextRequestInput{})
			if err != nil {
				if !errors.IsNotFound(err) {
					slog.Error("failed to process breeding request",
						"worker", worker,
						"error", err,
					)
				}
				continue
			}

			slog.Info("breeding request completed",
				"worker", worker,
				"request_id", out.Result.RequestID,
				"success", out.Result.Success,
			)
		}
	}
}
