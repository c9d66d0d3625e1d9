package models

import "time"

// Status is informational only, it never gates stock mutations.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Product represents a sellable item in the inventory, including its embedded sale ledger.
type Product struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Summary           string    `json:"summary,omitempty"`
	Department        string    `json:"department"`
	UnitPrice         float64   `json:"unit_price"`
	QuantityAvailable int       `json:"quantity_available"`
	UnitsSold         int       `json:"units_sold"`
	Status            Status    `json:"status"`
	Images            []string  `json:"images"`
	Sales             []Sale    `json:"sales"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	c := p
	c.Images = append([]string{}, p.Images...)
	c.Sales = append([]Sale{}, p.Sales...)
	return c
}

// ProductPatch carries the fields of a partial edit; nil means "leave untouched".
// Stock ledger fields (units sold, sales) are deliberately absent.
type ProductPatch struct {
	Title             *string   `json:"title,omitempty"`
	Summary           *string   `json:"summary,omitempty"`
	Department        *string   `json:"department,omitempty"`
	UnitPrice         *float64  `json:"unit_price,omitempty"`
	QuantityAvailable *int      `json:"quantity_available,omitempty"`
	Images            *[]string `json:"images,omitempty"`
	Status            *Status   `json:"status,omitempty"`
}

// Empty reports whether the patch sets no field at all.
func (p ProductPatch) Empty() bool {
	return p.Title == nil && p.Summary == nil && p.Department == nil && p.UnitPrice == nil &&
		p.QuantityAvailable == nil && p.Images == nil && p.Status == nil
}

// Apply writes the set fields of patch onto p.
func (p *Product) Apply(patch ProductPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Summary != nil {
		p.Summary = *patch.Summary
	}
	if patch.Department != nil {
		p.Department = *patch.Department
	}
	if patch.UnitPrice != nil {
		p.UnitPrice = *patch.UnitPrice
	}
	if patch.QuantityAvailable != nil {
		p.QuantityAvailable = *patch.QuantityAvailable
	}
	if patch.Images != nil {
		p.Images = append([]string{}, (*patch.Images)...)
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
}
