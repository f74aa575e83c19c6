// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileKeyValueStore keeps every key in memory and, unless it is in-memory,
// rewrites a single JSON document on each Set.
type fileKeyValueStore struct {
	path     string
	inMemory bool

	mu    sync.RWMutex
	items map[string]string
}

type filePersistedState struct {
	Items map[string]string `json:"items"`
}

// NewFileKeyValueStore opens the JSON document at path, loading existing
// keys. An empty path, ":memory:" or "memory" keeps the store in memory.
func NewFileKeyValueStore(path string) (KeyValueStore, error) {
	inMemory := path == "" || path == ":memory:" || path == "memory"
	s := &fileKeyValueStore{
		path:     path,
		inMemory: inMemory,
		items:    make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewMemoryKeyValueStore returns a store that never touches the disk.
func NewMemoryKeyValueStore() KeyValueStore {
	return &fileKeyValueStore{
		inMemory: true,
		items:    make(map[string]string),
	}
}

func (s *fileKeyValueStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.items[key]
	s.items[key] = value

	if err := s.persist(); err != nil {
		if existed {
			s.items[key] = previous
		} else {
			delete(s.items, key)
		}
		return err
	}

	return nil
}

func (s *fileKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (s *fileKeyValueStore) Close() error {
	return nil
}

func (s *fileKeyValueStore) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode local storage file: %w", err)
	}

	if st.Items != nil {
		s.items = st.Items
	}

	return nil
}

func (s *fileKeyValueStore) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Items: s.items}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}

	return nil
}
