package store

import (
	"strings"
	"sync"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
)

// Store owns the mutable product collection. All access goes through the
// lock; read-modify-write sequences (id assignment, update, delete) hold it
// exclusively so they are atomic under concurrent requests.
//
// The collection keeps insertion order, so List returns products in the
// order they were created.
type Store struct {
	mu       sync.RWMutex
	products []model.Product
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Seed loads initial records, replacing any existing contents. Intended for
// boot-time demo data only.
func (s *Store) Seed(products []model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]model.Product(nil), products...)
}

// List returns products in insertion order. When category is non-empty,
// only products whose category matches case-insensitively are included.
func (s *Store) List(category string) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if category == "" {
		return append([]model.Product(nil), s.products...)
	}
	filtered := make([]model.Product, 0)
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Get returns the product with the given id.
func (s *Store) Get(id int) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, apperrors.ErrProductNotFound
}

// Create appends a new product with the next id. Ids are derived as
// max(existing)+1, or 1 on an empty store; there is no persistent counter,
// so deleting the highest id frees that value for reuse.
func (s *Store) Create(name string, price float64, category string, stock int) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := model.Product{
		ID:       s.nextID(),
		Name:     name,
		Price:    price,
		Category: category,
		Stock:    stock,
	}
	s.products = append(s.products, p)
	return p
}

// Update applies the non-nil fields of patch to the product with the given
// id, leaving all others unchanged.
func (s *Store) Update(id int, patch model.ProductPatch) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.products[i].Name = *patch.Name
		}
		if patch.Price != nil {
			s.products[i].Price = *patch.Price
		}
		if patch.Category != nil {
			s.products[i].Category = *patch.Category
		}
		if patch.Stock != nil {
			s.products[i].Stock = *patch.Stock
		}
		return s.products[i], nil
	}
	return model.Product{}, apperrors.ErrProductNotFound
}

// Delete removes the product with the given id.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrProductNotFound
}

// Categories returns the distinct category labels in first-seen order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categoriesLocked()
}

// Stats summarizes the current catalog contents.
func (s *Store) Stats() model.ProductStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, p := range s.products {
		total += p.Stock
	}
	categories := s.categoriesLocked()
	return model.ProductStats{
		TotalProducts:   len(s.products),
		TotalStock:      total,
		CategoriesCount: len(categories),
		Categories:      categories,
	}
}

func (s *Store) categoriesLocked() []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

func (s *Store) nextID() int {
	max := 0
	for _, p := range s.products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
