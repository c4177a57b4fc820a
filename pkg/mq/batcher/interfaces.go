package batcher

import (
	"go.uber.org/zap"

	"github.com/huynhanx03/ringqueue/pkg/settings"
)

// Consumer processes batches flushed by the Batcher.
type Consumer[T any] interface {
	// Consume processes a batch of items. The batch is owned by the Consumer.
	// A returned error is logged; the batcher keeps running.
	Consume(batch []T) error
}

// Config holds configuration for the StripedBatcher.
type Config struct {
	// StripeSize is the number of items a stripe collects before it is
	// flushed to the Consumer. Values <= 0 select DefaultStripeSize and
	// values above MaxStripeSize are capped to it.
	StripeSize int

	// Logger receives Consume failures. Nil disables logging.
	Logger *zap.Logger
}

const (
	// DefaultStripeSize is used when Config.StripeSize is not positive.
	DefaultStripeSize = 512

	// MaxStripeSize bounds the ring allocated per stripe.
	MaxStripeSize = 1 << 20
)

// ConfigFromSettings builds a Config from the batcher settings section.
func ConfigFromSettings(cfg settings.Batcher, log *zap.Logger) Config {
	return Config{StripeSize: cfg.StripeSize, Logger: log}
}
