package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// LoadCollection reads the JSON array stored under key.
// found is false when the key has never been written.
func LoadCollection[T any](ctx context.Context, kv KV, key string) (items []T, found bool, err error) {
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, true, fmt.Errorf("decode %s: %w", key, err)
	}
	return items, true, nil
}

// SaveCollection rewrites the whole collection under key.
func SaveCollection[T any](ctx context.Context, kv KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
