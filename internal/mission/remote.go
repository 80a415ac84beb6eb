// internal/mission/remote.go
package mission

import (
	"context"
	"encoding/json"

	"design-missions/internal/common/logger"

	"github.com/redis/go-redis/v9"
)

// RedisCommands decodes control commands published on a Redis channel. The
// returned channel is closed when ctx is done. Malformed payloads are logged
// and skipped. Remote commands carry no reply channel.
func RedisCommands(ctx context.Context, client *redis.Client, channel string, log logger.Logger) (<-chan Command, error) {
	ps := client.Subscribe(ctx, channel)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, err
	}

	out := make(chan Command)
	go func() {
		defer close(out)
		defer ps.Close()

		msgs := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var cmd Command
				if err := json.Unmarshal([]byte(msg.Payload), &cmd); err != nil {
					log.Warn("discarding malformed control message", map[string]interface{}{
						"channel": channel,
						"error":   err.Error(),
					})
					continue
				}
				select {
				case out <- cmd:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
