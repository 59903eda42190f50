package favorite

import (
	"context"
	"slices"
	"sync"

	"github.com/anthony-garcia-santos/techstorage/internal/storage"
)

func key(userID string) string {
	return "favorites:" + userID
}

// Service keeps one list of product ids per user under favorites:<userID>.
type Service struct {
	mu sync.Mutex
	kv storage.KV
}

func NewService(kv storage.KV) *Service {
	return &Service{kv: kv}
}

func (s *Service) load(ctx context.Context, userID string) ([]string, error) {
	ids, _, err := storage.LoadCollection[string](ctx, s.kv, key(userID))
	return ids, err
}

// Add marks productID as a favorite. Adding it twice is a no-op.
func (s *Service) Add(ctx context.Context, userID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	if slices.Contains(ids, productID) {
		return nil
	}
	return storage.SaveCollection(ctx, s.kv, key(userID), append(ids, productID))
}

func (s *Service) Remove(ctx context.Context, userID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	i := slices.Index(ids, productID)
	if i < 0 {
		return nil
	}
	return storage.SaveCollection(ctx, s.kv, key(userID), slices.Delete(ids, i, i+1))
}

func (s *Service) IsFavorite(ctx context.Context, userID, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.load(ctx, userID)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, productID), nil
}

// List returns the product ids in the order they were added.
func (s *Service) List(ctx context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
