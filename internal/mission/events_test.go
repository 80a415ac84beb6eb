package mission

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"design-missions/internal/common/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (r *recordingSink) Name() string { return "recording" }

func (r *recordingSink) Send(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.err
}

func (r *recordingSink) types() []EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

type fakePublisher struct {
	message    string
	attributes map[string]string
	err        error
}

func (f *fakePublisher) PublishMessage(_ context.Context, message string, attributes map[string]string) (string, error) {
	f.message = message
	f.attributes = attributes
	return "msg-1", f.err
}

// ==========================
// Bus Tests
// ==========================

func TestBus_RegistrationOrderAndFanOut(t *testing.T) {
	bus := NewBus(logger.NewTestLogger(t))
	defer bus.Close()

	a := bus.Subscribe("a", 4)
	b := bus.Subscribe("b", 4)

	bus.Publish(Event{Type: EventReceived, MissionID: "m1"})
	bus.Publish(Event{Type: EventStarted, MissionID: "m1"})

	for _, sub := range []*Subscription{a, b} {
		first := <-sub.C
		second := <-sub.C
		assert.Equal(t, EventReceived, first.Type)
		assert.Equal(t, EventStarted, second.Type)
		assert.False(t, first.Timestamp.IsZero())
	}
}

func TestBus_FullSubscriberDropsWithoutBlocking(t *testing.T) {
	bus := NewBus(logger.NewTestLogger(t))
	defer bus.Close()

	slow := bus.Subscribe("slow", 1)
	fast := bus.Subscribe("fast", 8)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			bus.Publish(Event{Type: EventStatusReport})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}

	assert.Len(t, slow.C, 1)
	assert.Len(t, fast.C, 5)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(logger.NewTestLogger(t))
	defer bus.Close()

	sub := bus.Subscribe("gone", 2)
	bus.Unsubscribe(sub)

	_, ok := <-sub.C
	assert.False(t, ok)

	// publishing after unsubscribe must not panic on the closed channel
	bus.Publish(Event{Type: EventPaused})
	bus.Unsubscribe(sub)
}

func TestBus_CloseStopsDelivery(t *testing.T) {
	bus := NewBus(logger.NewTestLogger(t))
	sub := bus.Subscribe("s", 2)
	bus.Close()

	_, ok := <-sub.C
	assert.False(t, ok)
	bus.Publish(Event{Type: EventResumed})

	late := bus.Subscribe("late", 1)
	_, ok = <-late.C
	assert.False(t, ok)
	bus.Close()
}

func TestBus_AttachPumpsSinks(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := NewBus(logger.NewTestLogger(t))
	ok := &recordingSink{}
	failing := &recordingSink{err: errors.New("unreachable")}
	bus.Attach(ok, 8)
	bus.Attach(failing, 8)

	bus.Publish(Event{Type: EventReceived, MissionID: "m1"})
	bus.Publish(Event{Type: EventCompleted, MissionID: "m1"})
	bus.Close()

	assert.Equal(t, []EventType{EventReceived, EventCompleted}, ok.types())
	// a failing sink keeps receiving later events
	assert.Equal(t, []EventType{EventReceived, EventCompleted}, failing.types())
}

// ==========================
// Sink Tests
// ==========================

func TestRedisSink_PublishesJSON(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	ps := client.Subscribe(ctx, "design-missions:events")
	defer ps.Close()
	_, err := ps.Receive(ctx)
	require.NoError(t, err)

	sink := NewRedisSink(client, "design-missions:events")
	assert.Equal(t, "redis", sink.Name())
	require.NoError(t, sink.Send(ctx, Event{
		Type:      EventCompleted,
		MissionID: "m1",
		Data:      map[string]interface{}{"qualityScore": 82},
		Timestamp: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}))

	select {
	case msg := <-ps.Channel():
		var got Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, EventCompleted, got.Type)
		assert.Equal(t, "m1", got.MissionID)
		assert.Equal(t, float64(82), got.Data["qualityScore"])
	case <-time.After(2 * time.Second):
		t.Fatal("no message on the events channel")
	}
}

func TestRedisSink_Unavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	err = NewRedisSink(client, "events").Send(context.Background(), Event{Type: EventError})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis publish events")
}

func TestSNSSink_Attributes(t *testing.T) {
	pub := &fakePublisher{}
	sink := NewSNSSink(pub)
	assert.Equal(t, "sns", sink.Name())

	require.NoError(t, sink.Send(context.Background(), Event{Type: EventCancelled, MissionID: "m9"}))
	assert.Equal(t, map[string]string{"eventType": "cancelled", "missionId": "m9"}, pub.attributes)

	var got Event
	require.NoError(t, json.Unmarshal([]byte(pub.message), &got))
	assert.Equal(t, EventCancelled, got.Type)

	pub.err = errors.New("throttled")
	assert.Error(t, sink.Send(context.Background(), Event{Type: EventStatusReport}))
	assert.Equal(t, map[string]string{"eventType": "statusReport"}, pub.attributes)
}

func TestLogSink(t *testing.T) {
	sink := NewLogSink(logger.NewTestLogger(t))
	assert.Equal(t, "log", sink.Name())
	assert.NoError(t, sink.Send(context.Background(), Event{Type: EventError, MissionID: "m1", Data: map[string]interface{}{"code": "X"}}))
	assert.NoError(t, sink.Send(context.Background(), Event{Type: EventStatusReport}))
}

// ==========================
// Control Tests
// ==========================

func TestHandle_Commands(t *testing.T) {
	o := newTestOrchestrator(t, testDeps(t, nil), testConfig())
	defer closeOrchestrator(t, o)

	v, err := o.Handle(Command{Name: CommandPause})
	require.NoError(t, err)
	assert.True(t, v.(Status).IsPaused)

	id := submitAccepted(t, o, restaurantMission("", "standard"))

	_, err = o.Handle(Command{Name: CommandPrioritize, Data: map[string]interface{}{"missionId": id}})
	require.NoError(t, err)
	m, _ := o.Mission(id)
	assert.Equal(t, "urgent", string(m.Priority))

	_, err = o.Handle(Command{Name: CommandPrioritize})
	assert.Error(t, err)

	v, err = o.Handle(Command{Name: CommandGetStatus})
	require.NoError(t, err)
	assert.Equal(t, 1, v.(Status).MissionsInQueue)

	v, err = o.Handle(Command{Name: "selfDestruct"})
	assert.NoError(t, err)
	assert.Nil(t, v)

	_, err = o.Handle(Command{Name: CommandCancel, Data: map[string]interface{}{"missionId": id}})
	require.NoError(t, err)
	assert.Equal(t, 0, o.Status().TotalMissions)

	v, err = o.Handle(Command{Name: CommandResume})
	require.NoError(t, err)
	assert.False(t, v.(Status).IsPaused)
}

func TestServeControl(t *testing.T) {
	defer goleak.VerifyNone(t)

	o := newTestOrchestrator(t, testDeps(t, nil), testConfig())
	defer closeOrchestrator(t, o)
	sub := o.Subscribe("reports")

	ctx, cancel := context.WithCancel(context.Background())
	cmds := make(chan Command)
	served := make(chan error, 1)
	go func() { served <- o.ServeControl(ctx, cmds) }()

	reply := make(chan Reply, 1)
	cmds <- Command{Name: CommandGetStatus, Reply: reply}
	r := <-reply
	require.NoError(t, r.Err)
	assert.Equal(t, Status{}, r.Value)

	cmds <- Command{Name: CommandCancel, Data: map[string]interface{}{"missionId": "nope"}, Reply: reply}
	r = <-reply
	assert.Error(t, r.Err)

	events := drain(sub, 50*time.Millisecond)
	require.Len(t, events, 1)
	assert.Equal(t, EventStatusReport, events[0].Type)
	assert.Equal(t, 0, events[0].Data["totalMissions"])

	cancel()
	assert.ErrorIs(t, <-served, context.Canceled)

	closed := make(chan Command)
	close(closed)
	assert.NoError(t, o.ServeControl(context.Background(), closed))
}
