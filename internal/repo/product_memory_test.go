package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

func TestInMemoryCreate_ResetsLedger(t *testing.T) {
	r := NewInMemoryProductRepository()
	p, err := r.Create(context.Background(), models.Product{
		Title: "Pen", Department: "stationary", UnitPrice: 1, UnitsSold: 9,
		Sales: []models.Sale{{Quantity: 9}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == "" {
		t.Error("expected an id to be assigned")
	}
	if p.UnitsSold != 0 || len(p.Sales) != 0 {
		t.Errorf("expected a fresh ledger, got units_sold=%d sales=%d", p.UnitsSold, len(p.Sales))
	}
	if p.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestInMemoryRecordSale(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryProductRepository()
	r.Put(models.Product{ID: "p", Title: "Pen", UnitPrice: 2.5, QuantityAvailable: 4})
	at := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	p, err := r.RecordSale(ctx, "p", 3, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.QuantityAvailable != 1 || p.UnitsSold != 3 {
		t.Errorf("expected stock 1 and units sold 3, got %d and %d", p.QuantityAvailable, p.UnitsSold)
	}
	if len(p.Sales) != 1 || p.Sales[0].PriceAtSale != 2.5 || !p.Sales[0].Date.Equal(at) {
		t.Errorf("unexpected ledger %+v", p.Sales)
	}

	p, err = r.RecordSale(ctx, "p", 2, at)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if p.QuantityAvailable != 1 {
		t.Errorf("expected current stock 1 alongside the rejection, got %d", p.QuantityAvailable)
	}

	if _, err := r.RecordSale(ctx, "missing", 1, at); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestInMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryProductRepository()
	r.Put(models.Product{ID: "p", Title: "Pen", Images: []string{"a.png"}})

	p, _ := r.GetByID(ctx, "p")
	p.Images[0] = "changed.png"

	again, _ := r.GetByID(ctx, "p")
	if again.Images[0] != "a.png" {
		t.Errorf("store was mutated through a returned product: %v", again.Images)
	}
}

func TestInMemoryUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryProductRepository()
	r.Put(models.Product{ID: "p", Title: "Pen", UnitPrice: 1, UnitsSold: 2, Sales: []models.Sale{{Quantity: 2}}})

	title := "Fountain Pen"
	p, err := r.Update(ctx, "p", models.ProductPatch{Title: &title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != title || p.UnitsSold != 2 || len(p.Sales) != 1 {
		t.Errorf("unexpected product after update: %+v", p)
	}

	if err := r.Delete(ctx, "p"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Delete(ctx, "p"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound on second delete, got %v", err)
	}
	if _, err := r.Update(ctx, "p", models.ProductPatch{Title: &title}); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestInMemoryFilter(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryProductRepository()
	for _, p := range []models.Product{
		{ID: "1", Title: "Red Shirt", Department: "clothes", UnitPrice: 20, QuantityAvailable: 3, Status: models.StatusActive},
		{ID: "2", Title: "Blue Shirt", Department: "clothes", UnitPrice: 25, QuantityAvailable: 0, Status: models.StatusInactive},
		{ID: "3", Title: "Sneakers", Department: "shoes", UnitPrice: 80, QuantityAvailable: 12, Status: models.StatusActive},
	} {
		r.Put(p)
	}

	minPrice := 21.0
	tests := []struct {
		name string
		pf   ProductFilter
		want []string
	}{
		{"title is case-insensitive", ProductFilter{Title: "shirt"}, []string{"1", "2"}},
		{"department", ProductFilter{Department: "shoes"}, []string{"3"}},
		{"status", ProductFilter{Status: models.StatusInactive}, []string{"2"}},
		{"min price", ProductFilter{MinPrice: &minPrice}, []string{"2", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := r.Filter(ctx, tt.pf)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if total != len(tt.want) || len(got) != len(tt.want) {
				t.Fatalf("expected %d results, got %d (total %d)", len(tt.want), len(got), total)
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("result %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	one, two, ten := 1, 2, 10

	tests := []struct {
		name          string
		offset, limit *int
		want          int
	}{
		{"no bounds", nil, nil, 5},
		{"limit", nil, &two, 2},
		{"offset and limit", &one, &two, 2},
		{"offset past end", &ten, &two, 0},
		{"limit past end", &two, &ten, 3},
	}
	for _, tt := range tests {
		if got := Paginate(items, tt.offset, tt.limit); len(got) != tt.want {
			t.Errorf("%s: expected %d items, got %d", tt.name, tt.want, len(got))
		}
	}
}
