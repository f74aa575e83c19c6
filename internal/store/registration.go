// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-signup/internal/logger"
	"github.com/MKhiriev/go-signup/models"
)

// RegistrationStore persists the registration form payload as a JSON string
// under one well-known key. Each save replaces the previous one.
type RegistrationStore struct {
	kv     KeyValueStore
	key    string
	logger *logger.Logger
}

// NewRegistrationStore binds kv to key.
func NewRegistrationStore(kv KeyValueStore, key string, logger *logger.Logger) *RegistrationStore {
	return &RegistrationStore{
		kv:     kv,
		key:    key,
		logger: logger,
	}
}

// Key returns the key the payload is stored under.
func (r *RegistrationStore) Key() string {
	return r.key
}

// Save serializes payload and writes it under the store key.
func (r *RegistrationStore) Save(ctx context.Context, payload models.FormPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode registration: %w", err)
	}

	if err = r.kv.Set(ctx, r.key, string(data)); err != nil {
		r.logger.Err(err).
			Str("func", "RegistrationStore.Save").
			Str("key", r.key).
			Msg("failed to persist registration")
		return fmt.Errorf("save registration: %w", err)
	}

	return nil
}

// Load reads back the last saved payload. It returns ErrKeyNotFound when
// nothing has been saved yet.
func (r *RegistrationStore) Load(ctx context.Context) (models.FormPayload, error) {
	var payload models.FormPayload

	data, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return payload, fmt.Errorf("load registration: %w", err)
	}

	if err = json.Unmarshal([]byte(data), &payload); err != nil {
		return payload, fmt.Errorf("decode registration: %w", err)
	}

	return payload, nil
}
