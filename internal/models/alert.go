package models

import "time"

// StockAlert is raised when a sale leaves a product low or out of stock.
type StockAlert struct {
	ProductID         string    `json:"product_id"`
	Title             string    `json:"title"`
	Department        string    `json:"department"`
	QuantityAvailable int       `json:"quantity_available"`
	Level             string    `json:"level"`
	At                time.Time `json:"at"`
}
