package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/mazag-backend/internal/config"
	"github.com/heartmarshall/mazag-backend/internal/domain"
)

var (
	once       sync.Once
	sharedAddr string
	initErr    error
)

func startRedis() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}
	return fmt.Sprintf("%s:%s", host, port.Port()), nil
}

// openTestStore returns a store with a per-test key prefix on a shared container.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	if testing.Short() {
		t.Skip("redis container skipped in -short mode")
	}

	once.Do(func() {
		sharedAddr, initErr = startRedis()
	})
	if initErr != nil {
		t.Fatalf("failed to start redis: %v", initErr)
	}

	s, err := Open(context.Background(), config.RedisConfig{
		Addr:        sharedAddr,
		KeyPrefix:   "test:" + uuid.NewString() + ":",
		DialTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_GetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_SetGetDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got))

	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_UpdateFnError(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "k", []byte("1")))

	sentinel := errors.New("boom")
	err := s.Update(ctx, "k", func([]byte, bool) ([]byte, error) { return nil, sentinel })
	require.ErrorIs(t, err, sentinel)

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "1", string(got))
}

func TestStore_UpdateConcurrent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Update(ctx, "n", func(cur []byte, found bool) ([]byte, error) {
				n := 0
				if found {
					n, _ = strconv.Atoi(string(cur))
				}
				return []byte(strconv.Itoa(n + 1)), nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.Get(ctx, "n")
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(workers), string(got))
}

func TestMapError(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, mapError(goredis.Nil, "k"), domain.ErrNotFound)
	assert.ErrorIs(t, mapError(context.Canceled, "k"), context.Canceled)
	assert.ErrorIs(t, mapError(errors.New("dial tcp: refused"), "k"), domain.ErrUnavailable)
}
