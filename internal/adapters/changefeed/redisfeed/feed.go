// Package redisfeed implementa changefeed.Feed sobre Redis pub/sub, para que
// varias instancias de la API vean los cambios de potreros y rebaños.
// Cada colección usa su propio canal: <prefix><collection>.
package redisfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cattle-farm-manager/internal/ports/changefeed"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultPrefix = "cattle-farm:changes:"

type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	// MaxRetries acota los reintentos del primer Ping.
	MaxRetries uint64
}

type Feed struct {
	rdb    *redis.Client
	prefix string
	log    *zap.Logger
}

// New conecta con Redis reintentando el Ping con backoff exponencial.
func New(ctx context.Context, opts Options, log *zap.Logger) (*Feed, error) {
	if log == nil {
		log = zap.NewNop()
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	maxRetries := opts.MaxRetries
	if maxRetries == 0 {
		maxRetries = 5
	}
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	ping := func() error { return rdb.Ping(ctx).Err() }
	notify := func(err error, wait time.Duration) {
		log.Warn("redis not ready, retrying", zap.String("addr", opts.Addr), zap.Duration("wait", wait), zap.Error(err))
	}
	if err := backoff.RetryNotify(ping, b, notify); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}

	return NewWithClient(rdb, opts.Prefix, log), nil
}

// NewWithClient usa un cliente ya creado.
func NewWithClient(rdb *redis.Client, prefix string, log *zap.Logger) *Feed {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Feed{rdb: rdb, prefix: prefix, log: log}
}

func (f *Feed) channel(collection string) string {
	return f.prefix + collection
}

func (f *Feed) Publish(ctx context.Context, c changefeed.Change) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal change: %w", err)
	}
	if err := f.rdb.Publish(ctx, f.channel(c.Collection), payload).Err(); err != nil {
		return fmt.Errorf("publish change: %w", err)
	}
	return nil
}

// Subscribe confirma la suscripción y despacha los mensajes en una goroutine
// hasta que ctx se cancele.
func (f *Feed) Subscribe(ctx context.Context, collection string, fn changefeed.Handler) error {
	ch := f.channel(collection)
	pubsub := f.rdb.Subscribe(ctx, ch)

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("subscribe %s: %w", ch, err)
	}
	f.log.Info("change feed subscribed", zap.String("channel", ch))

	go func() {
		defer pubsub.Close()
		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				f.log.Info("change feed unsubscribed", zap.String("channel", ch))
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				f.dispatch(msg, fn)
			}
		}
	}()
	return nil
}

func (f *Feed) dispatch(msg *redis.Message, fn changefeed.Handler) {
	var c changefeed.Change
	if err := json.Unmarshal([]byte(msg.Payload), &c); err != nil {
		f.log.Error("invalid change payload",
			zap.String("channel", msg.Channel),
			zap.String("payload", msg.Payload),
			zap.Error(err),
		)
		return
	}
	fn(c)
}

func (f *Feed) Close() error {
	return f.rdb.Close()
}
