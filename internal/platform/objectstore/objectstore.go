package objectstore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Store is the creative storage adapter behind the brand upload path.
// Current implementation keeps objects in process and serves deterministic
// public URLs while runtime wiring is finalized for external buckets.
type Store struct {
	mu      sync.RWMutex
	objects map[string]object
	baseURL string
	logger  *slog.Logger
}

type object struct {
	contentType string
	data        []byte
}

func New(baseURL string, logger *slog.Logger) *Store {
	if baseURL == "" {
		baseURL = "https://cdn.adx402.local"
	}
	return &Store{
		objects: make(map[string]object),
		baseURL: baseURL,
		logger:  logger,
	}
}

func (s *Store) Store(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	if key == "" || len(data) == 0 {
		return "", fmt.Errorf("objectstore: empty key or payload")
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	s.objects[key] = object{contentType: contentType, data: buf}
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("creative stored",
			"event", "objectstore_put",
			"module", "internal/platform/objectstore",
			"layer", "platform",
			"key", key,
			"bytes", len(buf),
		)
	}
	return s.baseURL + "/" + key, nil
}

// Get returns a stored object; used by the static creative route.
func (s *Store) Get(key string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.objects[key]
	if !exists {
		return nil, "", false
	}
	return item.data, item.contentType, true
}
