package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/CesarAntIT/SmallDeliverySystem/models"
	"github.com/CesarAntIT/SmallDeliverySystem/services"
)

// InMemoryProductStore implements services.ProductStore for tests, mirroring
// the query semantics of the gorm repository.
type InMemoryProductStore struct {
	mu       sync.RWMutex
	products map[uuid.UUID]models.Product
	audits   []models.ProductAudit
	refs     map[uuid.UUID]int64
}

var _ services.ProductStore = (*InMemoryProductStore)(nil)

func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{
		products: make(map[uuid.UUID]models.Product),
		refs:     make(map[uuid.UUID]int64),
	}
}

// AddOrderItemReference simulates an order item row pointing at the product.
func (s *InMemoryProductStore) AddOrderItemReference(productID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refs[productID]++
}

// Audits returns a copy of the audit log.
func (s *InMemoryProductStore) Audits() []models.ProductAudit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ProductAudit, len(s.audits))
	copy(out, s.audits)
	return out
}

func (s *InMemoryProductStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make(map[uuid.UUID]models.Product)
	s.audits = nil
	s.refs = make(map[uuid.UUID]int64)
}

func (s *InMemoryProductStore) Insert(ctx context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.LastUpdatedAt.IsZero() {
		p.LastUpdatedAt = now
	}
	s.products[p.ID] = *p
	return nil
}

func (s *InMemoryProductStore) Update(ctx context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID]; !ok {
		return services.ErrProductNotFound
	}
	s.products[p.ID] = *p
	return nil
}

func (s *InMemoryProductStore) FindByID(ctx context.Context, id uuid.UUID, includeInactive bool) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok || (!includeInactive && !p.IsActive) {
		return nil, services.ErrProductNotFound
	}
	out := p
	return &out, nil
}

func (s *InMemoryProductStore) Search(ctx context.Context, f services.ProductFilter) ([]models.Product, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.Product
	for _, p := range s.products {
		if f.ActiveOnly && !p.IsActive {
			continue
		}
		if f.Term != "" {
			term := strings.ToLower(f.Term)
			if !strings.Contains(strings.ToLower(p.Name), term) &&
				!strings.Contains(strings.ToLower(p.Description), term) &&
				!strings.Contains(strings.ToLower(p.Category), term) {
				continue
			}
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		matched = append(matched, p)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	total := int64(len(matched))

	if f.Offset >= len(matched) {
		return []models.Product{}, total, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}

func (s *InMemoryProductStore) Categories(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	for _, p := range s.products {
		if p.IsActive && p.Category != "" {
			seen[p.Category] = true
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func (s *InMemoryProductStore) LowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Product
	for _, p := range s.products {
		if p.IsActive && p.Stock <= threshold {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })
	return out, nil
}

func (s *InMemoryProductStore) CountOrderItems(ctx context.Context, productID uuid.UUID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refs[productID], nil
}

func (s *InMemoryProductStore) HardDelete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, id)
	return nil
}

func (s *InMemoryProductStore) DeactivateWithAudit(ctx context.Context, p *models.Product, audit *models.ProductAudit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID]; !ok {
		return services.ErrProductNotFound
	}
	s.products[p.ID] = *p
	audit.ID = uint(len(s.audits) + 1)
	s.audits = append(s.audits, *audit)
	return nil
}
