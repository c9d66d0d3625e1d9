package inventory

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-dashboard/internal/apperr"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
)

// sellAll replays a sequence of sales against a fresh product and returns the final state,
// or false if any call broke the stock or ledger rules on the way.
func sellAll(initial int, quantities []int) (models.Product, bool) {
	ctx := context.Background()
	products := repo.NewInMemoryProductRepository()
	products.Put(models.Product{ID: "p", Title: "Widget", Department: "tools", UnitPrice: 2, QuantityAvailable: initial})
	e := NewEngine(products, zap.NewNop())

	for _, q := range quantities {
		before, _ := products.GetByID(ctx, "p")
		_, err := e.RecordSale(ctx, "p", q)
		after, _ := products.GetByID(ctx, "p")

		if after.QuantityAvailable < 0 {
			return after, false
		}
		if q > before.QuantityAvailable {
			if !apperr.IsInsufficientStock(err) || after.QuantityAvailable != before.QuantityAvailable {
				return after, false
			}
		}
	}
	p, _ := products.GetByID(ctx, "p")
	return p, true
}

func TestStockNeverNegative(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("oversized sales are rejected and leave stock untouched", prop.ForAll(
		func(initial int, quantities []int) bool {
			_, ok := sellAll(initial, quantities)
			return ok
		},
		gen.IntRange(0, 50),
		gen.SliceOf(gen.IntRange(1, 20)),
	))

	properties.TestingRun(t)
}

func TestLedgerMatchesUnitsSold(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("units sold equals the sum of ledger quantities", prop.ForAll(
		func(initial int, quantities []int) bool {
			p, ok := sellAll(initial, quantities)
			if !ok {
				return false
			}
			sum := 0
			for _, s := range p.Sales {
				sum += s.Quantity
			}
			return sum == p.UnitsSold && p.QuantityAvailable+p.UnitsSold == initial
		},
		gen.IntRange(0, 100),
		gen.SliceOf(gen.IntRange(1, 30)),
	))

	properties.TestingRun(t)
}
