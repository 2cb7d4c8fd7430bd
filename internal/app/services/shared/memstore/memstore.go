package memstore

import (
	"context"
	"sync"

	"platform-client/internal/app/contracts"
)

type memoryTokenStorage struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// NewMemoryTokenStorage keeps tokens for the process lifetime only. It backs
// the default "memory" persistence mode and the test suites.
func NewMemoryTokenStorage() contracts.TokenStorage {
	return &memoryTokenStorage{tokens: map[string]string{}}
}

func (m *memoryTokenStorage) GetToken(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tokens[key], nil
}

func (m *memoryTokenStorage) SetToken(ctx context.Context, key, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[key] = token
	return nil
}

func (m *memoryTokenStorage) DeleteToken(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, key)
	return nil
}
