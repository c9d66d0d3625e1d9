package repo

import "github.com/rogerio-castellano/inventory-dashboard/internal/models"

// ProductFilter narrows a product listing. Nil pointers and empty strings are ignored.
type ProductFilter struct {
	Title      string
	Department string
	Status     models.Status
	MinPrice   *float64
	MaxPrice   *float64
	MinQty     *int
	MaxQty     *int
	Offset     *int
	Limit      *int
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Paginate applies offset and limit to an already filtered slice.
func Paginate[T any](items []T, offset, limit *int) []T {
	if offset != nil && *offset > len(items) {
		return []T{}
	}

	start := 0
	if offset != nil {
		start = clamp(*offset, 0, len(items))
	}

	end := len(items)
	if limit != nil && *limit > 0 {
		end = clamp(start+*limit, start, len(items))
	}

	return items[start:end]
}
