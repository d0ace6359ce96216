package vault

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-sealed-prefs/models"
)

// MemoryBackend keeps keys in process memory. Keys are lost when the process
// exits, so records written with it cannot be read by a later process.
type MemoryBackend struct {
	mu   sync.RWMutex
	keys map[models.KeyAlias]*KeyHandle
	now  func() time.Time
}

// NewMemoryBackend returns an empty in-memory vault.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		keys: make(map[models.KeyAlias]*KeyHandle),
		now:  time.Now,
	}
}

// Open implements [Backend]. It never fails.
func (b *MemoryBackend) Open(_ context.Context) (Session, error) {
	return &memorySession{backend: b}, nil
}

type memorySession struct {
	backend *MemoryBackend
	closed  bool
}

func (s *memorySession) ContainsAlias(_ context.Context, alias models.KeyAlias) (bool, error) {
	if s.closed {
		return false, ErrSessionClosed
	}

	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()

	_, ok := s.backend.keys[alias]
	return ok, nil
}

func (s *memorySession) GenerateAndStoreKey(_ context.Context, alias models.KeyAlias, spec models.KeySpec) (*KeyHandle, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}

	material, err := generateKeyMaterial(spec)
	if err != nil {
		return nil, err
	}

	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	if _, ok := s.backend.keys[alias]; ok {
		clear(material)
		return nil, ErrAliasExists
	}

	handle, err := NewKeyHandle(newKeyInfo(alias, spec, s.backend.now()), material)
	if err != nil {
		return nil, err
	}
	s.backend.keys[alias] = handle

	return handle, nil
}

func (s *memorySession) GetKey(_ context.Context, alias models.KeyAlias) (*KeyHandle, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}

	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()

	handle, ok := s.backend.keys[alias]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return handle, nil
}

func (s *memorySession) DeleteKey(_ context.Context, alias models.KeyAlias) error {
	if s.closed {
		return ErrSessionClosed
	}

	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	if _, ok := s.backend.keys[alias]; !ok {
		return ErrKeyNotFound
	}
	delete(s.backend.keys, alias)
	return nil
}

func (s *memorySession) Aliases(_ context.Context) ([]models.VaultKeyInfo, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}

	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()

	infos := make([]models.VaultKeyInfo, 0, len(s.backend.keys))
	for _, h := range s.backend.keys {
		infos = append(infos, h.Info())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Alias < infos[j].Alias })

	return infos, nil
}

func (s *memorySession) Close() error {
	s.closed = true
	return nil
}
