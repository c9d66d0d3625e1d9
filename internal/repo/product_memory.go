package repo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// Every method runs under one lock, so RecordSale checks and mutates atomically.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	now      func() time.Time
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *InMemoryProductRepository) indexOf(id string) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func matchesFilter(p models.Product, pf ProductFilter) bool {
	if pf.Title != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(pf.Title)) {
		return false
	}
	if pf.Department != "" && p.Department != pf.Department {
		return false
	}
	if pf.Status != "" && p.Status != pf.Status {
		return false
	}
	if pf.MinPrice != nil && p.UnitPrice < *pf.MinPrice {
		return false
	}
	if pf.MaxPrice != nil && p.UnitPrice > *pf.MaxPrice {
		return false
	}
	if pf.MinQty != nil && p.QuantityAvailable < *pf.MinQty {
		return false
	}
	if pf.MaxQty != nil && p.QuantityAvailable > *pf.MaxQty {
		return false
	}
	return true
}

func (r *InMemoryProductRepository) Filter(_ context.Context, pf ProductFilter) ([]models.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Product{}
	for _, p := range r.products {
		if matchesFilter(p, pf) {
			filtered = append(filtered, p.Clone())
		}
	}

	return Paginate(filtered, pf.Offset, pf.Limit), len(filtered), nil
}

// Create adds a new product with an empty ledger.
func (r *InMemoryProductRepository) Create(_ context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if r.indexOf(product.ID) >= 0 {
		return models.Product{}, ErrDuplicatedValueUnique
	}
	now := r.now()
	product.UnitsSold = 0
	product.Sales = []models.Sale{}
	if product.Images == nil {
		product.Images = []string{}
	}
	product.CreatedAt = now
	product.UpdatedAt = now

	r.products = append(r.products, product.Clone())
	return product.Clone(), nil
}

// GetAll retrieves all products in insertion order.
func (r *InMemoryProductRepository) GetAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	for i, p := range r.products {
		out[i] = p.Clone()
	}
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(_ context.Context, id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.products[i].Clone(), nil
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) GetByTitle(_ context.Context, title string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.Title == title {
			return p.Clone(), nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update applies a partial edit to an existing product.
func (r *InMemoryProductRepository) Update(_ context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	r.products[i].Apply(patch)
	r.products[i].UpdatedAt = r.now()
	return r.products[i].Clone(), nil
}

// Delete removes a product, and with it its ledger, by its ID.
func (r *InMemoryProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrProductNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

// RecordSale implements ProductRepository.
func (r *InMemoryProductRepository) RecordSale(_ context.Context, id string, quantity int, at time.Time) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}

	p := &r.products[i]
	if quantity > p.QuantityAvailable {
		return p.Clone(), ErrInsufficientStock
	}

	p.QuantityAvailable -= quantity
	p.UnitsSold += quantity
	p.Sales = append(p.Sales, models.Sale{Date: at, Quantity: quantity, PriceAtSale: p.UnitPrice})
	p.UpdatedAt = r.now()
	return p.Clone(), nil
}

// Put stores p verbatim, timestamps and ledger included. Used to seed fixtures.
func (r *InMemoryProductRepository) Put(p models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(p.ID); i >= 0 {
		r.products[i] = p.Clone()
		return
	}
	r.products = append(r.products, p.Clone())
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}
