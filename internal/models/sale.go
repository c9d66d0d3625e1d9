package models

import "time"

// Sale is one immutable entry of a product's ledger.
type Sale struct {
	Date        time.Time `json:"date"`
	Quantity    int       `json:"quantity"`
	PriceAtSale float64   `json:"price_at_sale"`
}

// Amount is the revenue booked by this sale at its historical price.
func (s Sale) Amount() float64 {
	return s.PriceAtSale * float64(s.Quantity)
}
