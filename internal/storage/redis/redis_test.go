//go:build integration

package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"roadsketch/internal/domain"
	"roadsketch/pkg/e"
)

var testClient *goredis.Client

func TestMain(m *testing.M) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
	}
	tc, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	port, _ := tc.MappedPort(ctx, "6379/tcp")
	testClient = goredis.NewClient(&goredis.Options{Addr: host + ":" + port.Port()})
	if err := testClient.Ping(ctx).Err(); err != nil {
		fmt.Println("ping:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	_ = testClient.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func TestGeocodeCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewGeocodeCache(&Redis{Client: testClient}, time.Minute)

	_, ok, err := c.Get(ctx, "Utrecht Centraal")
	if err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	want := []domain.GeocodeResult{{Label: "Utrecht Centraal", Lat: 52.089, Lon: 5.110}}
	if err := c.Set(ctx, "Utrecht Centraal", want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := c.Get(ctx, "  utrecht   CENTRAAL ")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %+v", got)
	}

	if err := c.Set(ctx, "nowhere at all", nil); err != nil {
		t.Fatalf("Set empty: %v", err)
	}
	got, ok, _ = c.Get(ctx, "nowhere at all")
	if !ok || len(got) != 0 {
		t.Fatalf("empty answer not cached: ok=%v got=%v", ok, got)
	}
}

func TestEventQueue_FIFO(t *testing.T) {
	ctx := context.Background()
	q := NewEventQueue(testClient, "test:events:"+uuid.NewString())

	first := domain.SketchEvent{SketchID: uuid.New(), OwnerID: uuid.New(), Kind: domain.SketchCreated, At: time.Now().UTC().Truncate(time.Second)}
	second := first
	second.Kind = domain.SketchUpdated

	if err := q.Enqueue(ctx, first); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if err := q.Enqueue(ctx, second); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	got, err := q.BRPop(ctx, time.Second)
	if err != nil || got.Kind != domain.SketchCreated || !got.At.Equal(first.At) {
		t.Fatalf("first pop = %+v, %v", got, err)
	}
	got, err = q.BRPop(ctx, time.Second)
	if err != nil || got.Kind != domain.SketchUpdated {
		t.Fatalf("second pop = %+v, %v", got, err)
	}

	_, err = q.BRPop(ctx, time.Second)
	if !errors.Is(err, e.ErrQueueEmpty) {
		t.Fatalf("empty pop err = %v", err)
	}
}
