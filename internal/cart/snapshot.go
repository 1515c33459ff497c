package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/go-redis/redis/v8"
)

// ErrNoSnapshot is returned by Read when no snapshot exists under the key.
var ErrNoSnapshot = errors.New("no cart snapshot")

// SnapshotStorage is a single keyed slot holding the serialized cart: a
// JSON-encoded array of line items, written whole on every mutation, last
// write wins. The store is the sole writer of its slot.
type SnapshotStorage interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Clear(ctx context.Context, key string) error
}

// decodeSnapshot parses a persisted snapshot. Anything that is not a JSON
// array of line items (invalid JSON, a JSON object, null) is discarded and
// reported as not ok, so the caller starts from an empty cart instead of
// failing the application.
func decodeSnapshot(data []byte) ([]LineItem, bool) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false
	}
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

// RedisSnapshotStorage persists cart snapshots in Redis.
type RedisSnapshotStorage struct {
	rdb *redis.Client
}

func NewRedisSnapshotStorage(rdb *redis.Client) *RedisSnapshotStorage {
	return &RedisSnapshotStorage{rdb: rdb}
}

func (s *RedisSnapshotStorage) Read(ctx context.Context, key string) ([]byte, error) {
	val, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return val, nil
}

func (s *RedisSnapshotStorage) Write(ctx context.Context, key string, data []byte) error {
	return s.rdb.Set(ctx, key, data, 0).Err()
}

func (s *RedisSnapshotStorage) Clear(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

// MemorySnapshotStorage keeps snapshots in process memory. It backs tests
// and serves as the degraded mode when Redis is unreachable at startup: the
// cart stays interactive, snapshots just do not survive a restart.
type MemorySnapshotStorage struct {
	mu    sync.Mutex
	slots map[string][]byte

	// Failure injection for tests.
	ReadErr  error
	WriteErr error
}

func NewMemorySnapshotStorage() *MemorySnapshotStorage {
	return &MemorySnapshotStorage{slots: make(map[string][]byte)}
}

func (s *MemorySnapshotStorage) Read(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	data, ok := s.slots[key]
	if !ok {
		return nil, ErrNoSnapshot
	}
	return data, nil
}

func (s *MemorySnapshotStorage) Write(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.slots[key] = data
	return nil
}

func (s *MemorySnapshotStorage) Clear(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, key)
	return nil
}
