package review

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/anthony-garcia-santos/techstorage/internal/storage"
	"github.com/anthony-garcia-santos/techstorage/internal/util/idgen"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"date"`
}

type Summary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	// Distribution[i] counts the reviews rated i+1.
	Distribution [5]int `json:"distribution"`
}

func key(productID string) string {
	return "reviews:" + productID
}

// Service stores reviews per product under reviews:<productID>, newest first.
type Service struct {
	mu  sync.Mutex
	kv  storage.KV
	ids idgen.Generator
	now func() time.Time
}

func NewService(kv storage.KV, ids idgen.Generator) *Service {
	return &Service{
		kv:  kv,
		ids: ids,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Add(ctx context.Context, r Review) (Review, error) {
	if r.Rating < 1 || r.Rating > 5 {
		return Review{}, ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reviews, _, err := storage.LoadCollection[Review](ctx, s.kv, key(r.ProductID))
	if err != nil {
		return Review{}, err
	}
	r.ID = s.ids.NewID()
	r.Comment = strings.TrimSpace(r.Comment)
	r.CreatedAt = s.now()

	if err := storage.SaveCollection(ctx, s.kv, key(r.ProductID), slices.Insert(reviews, 0, r)); err != nil {
		return Review{}, err
	}
	return r, nil
}

func (s *Service) List(ctx context.Context, productID string) ([]Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews, _, err := storage.LoadCollection[Review](ctx, s.kv, key(productID))
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []Review{}
	}
	return reviews, nil
}

func Summarize(reviews []Review) Summary {
	var sum Summary
	total := 0
	for _, r := range reviews {
		if r.Rating < 1 || r.Rating > 5 {
			continue
		}
		sum.Distribution[r.Rating-1]++
		sum.Count++
		total += r.Rating
	}
	if sum.Count > 0 {
		sum.Average = float64(total) / float64(sum.Count)
	}
	return sum
}

func (s *Service) Summary(ctx context.Context, productID string) (Summary, error) {
	reviews, err := s.List(ctx, productID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(reviews), nil
}
