// internal/mission/remote_test.go
package mission

import (
	"context"
	"testing"
	"time"

	"design-missions/internal/common/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCommands(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmds, err := RedisCommands(ctx, client, "control", logger.NewTestLogger(t))
	require.NoError(t, err)

	mr.Publish("control", "not json")
	mr.Publish("control", `{"command":"prioritize","data":{"missionId":"m1"}}`)

	select {
	case cmd := <-cmds:
		assert.Equal(t, CommandPrioritize, cmd.Name)
		assert.Equal(t, "m1", cmd.Data["missionId"])
		assert.Nil(t, cmd.Reply)
	case <-time.After(2 * time.Second):
		t.Fatal("no command received")
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-cmds:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRedisCommands_DrivesOrchestrator(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	o := newTestOrchestrator(t, testDeps(t, nil), testConfig())
	defer closeOrchestrator(t, o)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cmds, err := RedisCommands(ctx, client, "control", logger.NewTestLogger(t))
	require.NoError(t, err)
	go func() { _ = o.ServeControl(ctx, cmds) }()

	mr.Publish("control", `{"command":"pause"}`)
	require.Eventually(t, func() bool { return o.Status().IsPaused }, 2*time.Second, 10*time.Millisecond)
}
