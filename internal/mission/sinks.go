// internal/mission/sinks.go
package mission

import (
	"context"
	"encoding/json"
	"fmt"

	"design-missions/internal/common/logger"

	"github.com/redis/go-redis/v9"
)

// LogSink writes every event to the structured log.
type LogSink struct {
	logger logger.Logger
}

func NewLogSink(log logger.Logger) *LogSink {
	return &LogSink{logger: log}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Send(_ context.Context, e Event) error {
	fields := map[string]interface{}{
		"eventType": e.Type,
		"timestamp": e.Timestamp,
	}
	if e.MissionID != "" {
		fields["missionId"] = e.MissionID
	}
	for k, v := range e.Data {
		fields[k] = v
	}
	if e.Type == EventError {
		s.logger.Warn("mission event", fields)
	} else {
		s.logger.Info("mission event", fields)
	}
	return nil
}

// RedisSink publishes events as JSON on a Pub/Sub channel.
type RedisSink struct {
	client  *redis.Client
	channel string
}

func NewRedisSink(client *redis.Client, channel string) *RedisSink {
	return &RedisSink{client: client, channel: channel}
}

func (s *RedisSink) Name() string { return "redis" }

func (s *RedisSink) Send(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if err := s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", s.channel, err)
	}
	return nil
}

// MessagePublisher is satisfied by aws.SNSClient.
type MessagePublisher interface {
	PublishMessage(ctx context.Context, message string, attributes map[string]string) (string, error)
}

// SNSSink publishes events to an SNS topic with the event type as a message attribute.
type SNSSink struct {
	publisher MessagePublisher
}

func NewSNSSink(publisher MessagePublisher) *SNSSink {
	return &SNSSink{publisher: publisher}
}

func (s *SNSSink) Name() string { return "sns" }

func (s *SNSSink) Send(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	attrs := map[string]string{"eventType": string(e.Type)}
	if e.MissionID != "" {
		attrs["missionId"] = e.MissionID
	}
	_, err = s.publisher.PublishMessage(ctx, string(payload), attrs)
	return err
}
