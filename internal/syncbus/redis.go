package syncbus

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	pkgLog "civic-notify/pkg/log"
	pkgRedis "civic-notify/pkg/redis"
)

const (
	// SignalChannel is the pub/sub channel carrying change announcements.
	SignalChannel = "civic-notify:inbox-sync"
	// SignalKey holds the last announced signal value, for sessions that
	// start after the announce and want to know something changed.
	SignalKey = "civic-notify:inbox-sync:version"
)

// redisChannel is the shared signal for installations whose sessions run
// in separate processes (kiosk setups). Announces publish the announcing
// session's id; subscribers drop their own messages so a session never
// observes its own write.
type redisChannel struct {
	l         pkgLog.Logger
	redis     pkgRedis.IRedis
	sessionID string
}

// NewRedis returns a per-session handle on the Redis-backed signal.
func NewRedis(l pkgLog.Logger, redis pkgRedis.IRedis) Channel {
	return &redisChannel{
		l:         l,
		redis:     redis,
		sessionID: uuid.NewString(),
	}
}

func (c *redisChannel) Announce(ctx context.Context) error {
	// Last-value-wins signal value, never read for content.
	if err := c.redis.Set(ctx, SignalKey, time.Now().UnixMilli(), 0); err != nil {
		c.l.Errorf(ctx, "internal.syncbus.redis.Announce.Set: %v", err)
		return err
	}

	if err := c.redis.Publish(ctx, SignalChannel, c.sessionID); err != nil {
		c.l.Errorf(ctx, "internal.syncbus.redis.Announce.Publish: %v", err)
		return err
	}

	return nil
}

func (c *redisChannel) Subscribe(h Handler) func() {
	ctx := context.Background()
	pubsub := c.redis.GetClient().Subscribe(ctx, SignalChannel)

	quit := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go c.listen(ctx, pubsub, h, quit, &wg)

	var once sync.Once
	return func() {
		once.Do(func() {
			close(quit)
			if err := pubsub.Close(); err != nil {
				c.l.Errorf(ctx, "internal.syncbus.redis.Subscribe.Close: %v", err)
			}
			wg.Wait()
		})
	}
}

func (c *redisChannel) listen(ctx context.Context, pubsub *goredis.PubSub, h Handler, quit chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()

	ch := pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload == c.sessionID {
				continue
			}
			h()
		case <-quit:
			return
		}
	}
}
