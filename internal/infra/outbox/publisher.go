package outbox

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Message is one outbox row on its way to the broker.
type Message struct {
	ID      uuid.UUID
	Topic   string
	Key     string
	Payload []byte
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// LogPublisher writes messages to the log. It backs NOTIFY_BROKER=none so
// queued jobs still drain in development.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, msg Message) error {
	p.logger.InfoContext(ctx, "notification",
		"id", msg.ID.String(),
		"topic", msg.Topic,
		"key", msg.Key,
		"payload", string(msg.Payload),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
