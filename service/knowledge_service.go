package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"labelguard-backend/models"
	"labelguard-backend/processor"
	"labelguard-backend/storage"
)

var (
	ErrStoreNotSet        = errors.New("snapshot store not set")
	ErrStorageUnavailable = errors.New("snapshot storage unavailable")
)

// KnowledgeService owns the regulation knowledge base: it chunks raw
// statute text, persists one snapshot per document key, and answers
// keyword searches. Writes to the same key are serialized; writes to
// different keys proceed in parallel.
type KnowledgeService struct {
	store storage.SnapshotStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// KnowledgeServiceOption is a functional option for KnowledgeService.
type KnowledgeServiceOption func(*KnowledgeService)

// KnowledgeWithStore sets the snapshot store.
func KnowledgeWithStore(store storage.SnapshotStore) KnowledgeServiceOption {
	return func(s *KnowledgeService) {
		s.store = store
	}
}

// NewKnowledgeService creates a new knowledge service.
func NewKnowledgeService(opts ...KnowledgeServiceOption) *KnowledgeService {
	s := &KnowledgeService{
		locks: make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// keyLock returns the mutex that serializes writes for one document key.
func (s *KnowledgeService) keyLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// Save chunks the text, builds a snapshot with the current timestamp, and
// persists it, replacing any existing snapshot for the key. Returns the
// number of chunks produced. On a storage failure the prior snapshot
// stays untouched.
func (s *KnowledgeService) Save(ctx context.Context, key, text, filename string) (int, error) {
	if s.store == nil {
		return 0, ErrStoreNotSet
	}

	l := s.keyLock(key)
	l.Lock()
	defer l.Unlock()

	chunks := processor.ChunkLegalText(text)
	snapshot := models.KnowledgeSnapshot{
		DocKey:         key,
		Filename:       filename,
		FullTextLength: len([]rune(text)),
		Chunks:         chunks,
		Updated:        time.Now(),
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return 0, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := s.store.Put(ctx, key, data); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return len(chunks), nil
}

// Load returns the snapshot for a document key, or nil when none exists.
// A corrupted persisted snapshot is treated as absent rather than as an
// error; the store favors availability over surfacing corruption.
func (s *KnowledgeService) Load(ctx context.Context, key string) (*models.KnowledgeSnapshot, error) {
	if s.store == nil {
		return nil, ErrStoreNotSet
	}

	data, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	var snapshot models.KnowledgeSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		log.Printf("Warning: corrupted snapshot for %q treated as absent: %v", key, err)
		return nil, nil
	}
	return &snapshot, nil
}

// LoadAll returns the snapshots for every registered regulation domain.
// Keys with no snapshot are simply absent from the result.
func (s *KnowledgeService) LoadAll(ctx context.Context) (map[string]*models.KnowledgeSnapshot, error) {
	result := make(map[string]*models.KnowledgeSnapshot)
	for _, key := range models.DomainKeys() {
		snapshot, err := s.Load(ctx, key)
		if err != nil {
			return nil, err
		}
		if snapshot != nil {
			result[key] = snapshot
		}
	}
	return result, nil
}

// Search returns the texts of chunks containing the keyword, in chunk
// index order. The test is case-insensitive substring containment. A
// missing snapshot or empty keyword yields an empty result, never an
// error.
func (s *KnowledgeService) Search(ctx context.Context, key, keyword string) ([]string, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return nil, nil
	}

	snapshot, err := s.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, nil
	}

	var results []string
	for _, chunk := range snapshot.Chunks {
		if strings.Contains(strings.ToLower(chunk.Text), keyword) {
			results = append(results, chunk.Text)
		}
	}
	return results, nil
}

// Reset removes any persisted snapshot for the key. Resetting a key with
// no snapshot is a no-op.
func (s *KnowledgeService) Reset(ctx context.Context, key string) error {
	if s.store == nil {
		return ErrStoreNotSet
	}

	l := s.keyLock(key)
	l.Lock()
	defer l.Unlock()

	if err := s.store.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}
