package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/brunosilvadev/rinha-2025/config"

	"github.com/cenkalti/backoff/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// connectRetryWindow bounds how long NewClient keeps pinging a store that is
// not up yet. The store container may start after the gateway replicas.
const connectRetryWindow = 30 * time.Second

// NewClient creates a client for the coordination store and verifies
// connectivity, retrying with exponential backoff while the store comes up.
// The URL may be a redis:// connection string or a plain host:port address.
func NewClient(ctx context.Context, cfg config.StoreConfig, log zerolog.Logger) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		// Plain host:port form.
		opts = &goredis.Options{Addr: cfg.URL}
	}
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.OpTimeout
	opts.WriteTimeout = cfg.OpTimeout

	client := goredis.NewClient(opts)

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = connectRetryWindow

	ping := func() error {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", opts.Addr).Msg("coordination store not ready, retrying")
			return err
		}
		return nil
	}
	if err := backoff.Retry(ping, backoff.WithContext(policy, ctx)); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging coordination store: %w", err)
	}

	log.Info().
		Str("addr", opts.Addr).
		Int("db", opts.DB).
		Msg("coordination store connection established")

	return client, nil
}
