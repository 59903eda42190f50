package catalog

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/anthony-garcia-santos/techstorage/internal/logger"
	"github.com/anthony-garcia-santos/techstorage/internal/storage"
	"github.com/anthony-garcia-santos/techstorage/internal/types/product"
	"github.com/anthony-garcia-santos/techstorage/internal/util/idgen"
)

const productsKey = "products"

var ErrProductNotFound = errors.New("product not found")

// Service owns the product collection. Every mutation rewrites the whole
// collection under productsKey before the in-memory copy is replaced.
type Service struct {
	mu       sync.RWMutex
	kv       storage.KV
	ids      idgen.Generator
	products []product.Product
}

func NewService(ctx context.Context, kv storage.KV, ids idgen.Generator) (*Service, error) {
	products, _, err := storage.LoadCollection[product.Product](ctx, kv, productsKey)
	if err != nil {
		return nil, err
	}
	return &Service{kv: kv, ids: ids, products: products}, nil
}

// Seed installs products when the catalog is empty. IDs already set on the
// seed entries are kept.
func (s *Service) Seed(ctx context.Context, products []product.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.products) > 0 {
		return nil
	}
	next := make([]product.Product, 0, len(products))
	for _, p := range products {
		p = p.Clone()
		if p.ID == "" {
			p.ID = s.ids.NewID()
		}
		next = append(next, p)
	}
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	logger.Log.Info("catalog seeded", zap.Int("products", len(next)))
	return nil
}

func (s *Service) commit(ctx context.Context, next []product.Product) error {
	if err := storage.SaveCollection(ctx, s.kv, productsKey, next); err != nil {
		return err
	}
	s.products = next
	return nil
}

func (s *Service) indexOf(id string) int {
	return slices.IndexFunc(s.products, func(p product.Product) bool { return p.ID == id })
}

// Add stores p under a freshly generated ID, ignoring any ID it carries.
func (s *Service) Add(ctx context.Context, p product.Product) (product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p = p.Clone()
	p.ID = s.ids.NewID()
	next := append(slices.Clip(s.products), p)
	if err := s.commit(ctx, next); err != nil {
		return product.Product{}, err
	}
	return p.Clone(), nil
}

func (s *Service) Update(ctx context.Context, id string, patch product.Patch) (product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return product.Product{}, ErrProductNotFound
	}
	next := slices.Clone(s.products)
	updated := next[i].Clone()
	patch.Apply(&updated)
	next[i] = updated
	if err := s.commit(ctx, next); err != nil {
		return product.Product{}, err
	}
	return updated.Clone(), nil
}

func (s *Service) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrProductNotFound
	}
	next := slices.Delete(slices.Clone(s.products), i, i+1)
	return s.commit(ctx, next)
}

func (s *Service) Get(ctx context.Context, id string) (product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return product.Product{}, ErrProductNotFound
	}
	return s.products[i].Clone(), nil
}

// List returns the catalog in insertion order.
func (s *Service) List(ctx context.Context) []product.Product {
	return s.selectWhere(func(product.Product) bool { return true })
}

func (s *Service) ByCategory(ctx context.Context, category string) []product.Product {
	return s.selectWhere(func(p product.Product) bool { return p.Category == category })
}

func (s *Service) Featured(ctx context.Context) []product.Product {
	return s.selectWhere(func(p product.Product) bool { return p.Featured })
}

func (s *Service) Filter(ctx context.Context, f product.Filter) []product.Product {
	return Apply(s.List(ctx), f)
}

func (s *Service) selectWhere(keep func(product.Product) bool) []product.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Apply filters products and then sorts them stably by f.Sort. The input
// slice is not modified.
func Apply(products []product.Product, f product.Filter) []product.Product {
	search := strings.ToLower(f.Search)
	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && f.Category != product.CategoryAll && p.Category != f.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case product.SortFeatured:
		slices.SortStableFunc(out, func(a, b product.Product) int {
			if a.Featured != b.Featured {
				if a.Featured {
					return -1
				}
				return 1
			}
			return cmp.Compare(b.Rating, a.Rating)
		})
	case product.SortPriceLow:
		slices.SortStableFunc(out, func(a, b product.Product) int { return a.Price.Cmp(b.Price) })
	case product.SortPriceHigh:
		slices.SortStableFunc(out, func(a, b product.Product) int { return b.Price.Cmp(a.Price) })
	case product.SortRating:
		slices.SortStableFunc(out, func(a, b product.Product) int { return cmp.Compare(b.Rating, a.Rating) })
	}
	return out
}
