package inventory

import "time"

// SaleFilter narrows a ledger listing by date range and paginates it.
type SaleFilter struct {
	Since  *time.Time
	Until  *time.Time
	Offset *int
	Limit  *int
}
