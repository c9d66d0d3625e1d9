// Package analytics derives KPIs and breakdowns from the full product set.
// Everything here is a pure function of its input; the Service only adds caching.
package analytics

import (
	"sort"
	"time"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

const (
	// HealthyAbove is the stock level above which a product counts as Healthy.
	// 1..HealthyAbove is Low, 0 is Out.
	HealthyAbove = 10
	// DashboardLowStockMax is the landing-page low stock limit (0 < q <= 5).
	// It is independent from HealthyAbove.
	DashboardLowStockMax = 5
	// TopSellersLimit caps the top sellers ranking.
	TopSellersLimit = 5
)

const (
	BucketHealthy = "Healthy"
	BucketLow     = "Low"
	BucketOut     = "Out"
)

type DepartmentStock struct {
	Department string `json:"department"`
	Stock      int    `json:"stock"`
}

type DepartmentRevenue struct {
	Department string  `json:"department"`
	Revenue    float64 `json:"revenue"`
}

type HealthBucket struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type TrendPoint struct {
	Month   string  `json:"month"`
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`

	first time.Time
}

type TopSeller struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department"`
	UnitsSold  int    `json:"units_sold"`
}

// Report is the analytics view. Revenue figures use the current unit price; LedgerRevenue
// sums the historical price of every sale instead.
type Report struct {
	TotalRevenue        float64             `json:"total_revenue"`
	LedgerRevenue       float64             `json:"ledger_revenue"`
	TotalUnitsSold      int                 `json:"total_units_sold"`
	InventoryValue      float64             `json:"inventory_value"`
	StockByDepartment   []DepartmentStock   `json:"stock_by_department"`
	RevenueByDepartment []DepartmentRevenue `json:"revenue_by_department"`
	StockHealth         []HealthBucket      `json:"stock_health"`
	RevenueTrend        []TrendPoint        `json:"revenue_trend"`
	TopSellers          []TopSeller         `json:"top_sellers"`
}

// Summary is the lighter landing-page view.
type Summary struct {
	TotalProducts    int `json:"total_products"`
	TotalDepartments int `json:"total_departments"`
	LowStock         int `json:"low_stock"`
	OutOfStock       int `json:"out_of_stock"`
}

func revenue(p models.Product) float64 {
	return p.UnitPrice * float64(p.UnitsSold)
}

// Compute builds the full report. An empty input yields zeroed KPIs and empty breakdowns.
func Compute(products []models.Product) Report {
	rep := Report{
		StockByDepartment:   []DepartmentStock{},
		RevenueByDepartment: []DepartmentRevenue{},
		StockHealth:         StockHealth(products),
		RevenueTrend:        RevenueTrend(products),
		TopSellers:          TopSellers(products, TopSellersLimit),
		LedgerRevenue:       LedgerRevenue(products),
	}

	stockIdx := map[string]int{}
	revenueIdx := map[string]int{}
	for _, p := range products {
		r := revenue(p)
		rep.TotalRevenue += r
		rep.TotalUnitsSold += p.UnitsSold
		rep.InventoryValue += p.UnitPrice * float64(p.QuantityAvailable)

		i, ok := stockIdx[p.Department]
		if !ok {
			i = len(rep.StockByDepartment)
			stockIdx[p.Department] = i
			rep.StockByDepartment = append(rep.StockByDepartment, DepartmentStock{Department: p.Department})
		}
		rep.StockByDepartment[i].Stock += p.QuantityAvailable

		j, ok := revenueIdx[p.Department]
		if !ok {
			j = len(rep.RevenueByDepartment)
			revenueIdx[p.Department] = j
			rep.RevenueByDepartment = append(rep.RevenueByDepartment, DepartmentRevenue{Department: p.Department})
		}
		rep.RevenueByDepartment[j].Revenue += r
	}

	return rep
}

// LedgerRevenue sums priceAtSale x quantity over every sale of every product.
func LedgerRevenue(products []models.Product) float64 {
	total := 0.0
	for _, p := range products {
		for _, s := range p.Sales {
			total += s.Amount()
		}
	}
	return total
}

// HealthOf returns the bucket name for a stock level.
func HealthOf(quantity int) string {
	switch {
	case quantity > HealthyAbove:
		return BucketHealthy
	case quantity > 0:
		return BucketLow
	default:
		return BucketOut
	}
}

// StockHealth counts products per bucket, always in Healthy, Low, Out order.
func StockHealth(products []models.Product) []HealthBucket {
	buckets := []HealthBucket{{Name: BucketHealthy}, {Name: BucketLow}, {Name: BucketOut}}
	for _, p := range products {
		switch HealthOf(p.QuantityAvailable) {
		case BucketHealthy:
			buckets[0].Count++
		case BucketLow:
			buckets[1].Count++
		default:
			buckets[2].Count++
		}
	}
	return buckets
}

// RevenueTrend groups revenue by the creation month of each product, oldest month first.
// Products without a creation time are skipped.
func RevenueTrend(products []models.Product) []TrendPoint {
	points := []TrendPoint{}
	idx := map[string]int{}

	for _, p := range products {
		if p.CreatedAt.IsZero() {
			continue
		}
		at := p.CreatedAt.UTC()
		key := at.Format("2006-01")

		i, ok := idx[key]
		if !ok {
			i = len(points)
			idx[key] = i
			points = append(points, TrendPoint{Month: key, Label: at.Format("Jan 2006"), first: at})
		}
		if at.Before(points[i].first) {
			points[i].first = at
		}
		points[i].Revenue += revenue(p)
	}

	sort.SliceStable(points, func(a, b int) bool {
		return points[a].first.Before(points[b].first)
	})
	return points
}

// TopSellers ranks products by units sold, descending. Ties keep the input order.
func TopSellers(products []models.Product, limit int) []TopSeller {
	ranked := make([]models.Product, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].UnitsSold > ranked[b].UnitsSold
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]TopSeller, len(ranked))
	for i, p := range ranked {
		out[i] = TopSeller{ID: p.ID, Title: p.Title, Department: p.Department, UnitsSold: p.UnitsSold}
	}
	return out
}

// Summarize computes the dashboard counts in one pass.
func Summarize(products []models.Product) Summary {
	s := Summary{TotalProducts: len(products)}
	departments := map[string]struct{}{}

	for _, p := range products {
		departments[p.Department] = struct{}{}
		switch {
		case p.QuantityAvailable == 0:
			s.OutOfStock++
		case p.QuantityAvailable <= DashboardLowStockMax:
			s.LowStock++
		}
	}
	s.TotalDepartments = len(departments)
	return s
}
