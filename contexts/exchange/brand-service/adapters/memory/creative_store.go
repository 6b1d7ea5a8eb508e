package memory

import (
	"context"
	"sync"

	domainerrors "adx402/contexts/exchange/brand-service/domain/errors"
)

// CreativeStore keeps uploaded creatives in process memory and hands back
// deterministic URLs. Tests flip Fail to exercise the abort path.
type CreativeStore struct {
	mu      sync.Mutex
	objects map[string][]byte

	Fail    bool
	BaseURL string
}

func NewCreativeStore() *CreativeStore {
	return &CreativeStore{
		objects: make(map[string][]byte),
		BaseURL: "https://creatives.local",
	}
}

func (s *CreativeStore) Store(_ context.Context, key string, _ string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Fail {
		return "", domainerrors.ErrUploadFailed
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = buf
	return s.BaseURL + "/" + key, nil
}

// ObjectCount reports how many creatives were stored; test helper.
func (s *CreativeStore) ObjectCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
