package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"pet-scheduler/internal/infra/outbox"
	"pet-scheduler/internal/pkg/clock"
	"pet-scheduler/internal/pkg/config"
	"pet-scheduler/internal/pkg/errs"
	"pet-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

const idempotencySweepEvery = time.Hour

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewPublisher,
		NewRelay,
		NewJanitor,
	),
	fx.Invoke(RunBackgroundWorkers),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (outbox.Publisher, error) {
	var (
		pub outbox.Publisher
		err error
	)
	switch strings.ToLower(cfg.Broker.Kind) {
	case "", "none":
		pub = outbox.NewLogPublisher(logger)
	case "amqp":
		pub, err = outbox.NewAMQPPublisher(cfg.Broker.AMQPURL, cfg.Broker.AMQPExchange)
	case "kafka":
		pub, err = outbox.NewKafkaPublisher(cfg.Broker.KafkaBrokers)
	default:
		return nil, errs.Newf("unknown NOTIFY_BROKER %q", cfg.Broker.Kind)
	}
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	logger.Info("notification publisher ready", "broker", cfg.Broker.Kind)
	return pub, nil
}

func NewRelay(db shared.TxBeginner, jobs outbox.JobStore, pub outbox.Publisher, clk clock.Clock, logger *slog.Logger, cfg config.Config) *outbox.Relay {
	return outbox.NewRelay(db, jobs, pub, clk, logger, outbox.RelayConfig{
		PollEvery:   cfg.Broker.PollInterval,
		BatchSize:   cfg.Broker.BatchSize,
		MaxAttempts: cfg.Broker.MaxAttempts,
	})
}

func NewJanitor(keys outbox.ExpiredKeyStore, logger *slog.Logger) *outbox.Janitor {
	return outbox.NewJanitor(keys, idempotencySweepEvery, logger)
}

// RunBackgroundWorkers ties the relay and janitor loops to the app lifecycle.
func RunBackgroundWorkers(lc fx.Lifecycle, relay *outbox.Relay, janitor *outbox.Janitor) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(2)
			go func() {
				defer wg.Done()
				relay.Run(ctx)
			}()
			go func() {
				defer wg.Done()
				janitor.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
