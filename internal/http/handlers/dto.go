package handlers

import (
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []models.Product `json:"data"`
	Meta Meta             `json:"meta"`
}

type SaleRequest struct {
	Quantity int `json:"quantity"`
}

type SalesSearchResult struct {
	Data []models.Sale `json:"data"`
	Meta Meta          `json:"meta"`
}

type AlertsResult struct {
	Data []models.StockAlert `json:"data"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type MessageResult struct {
	Message string `json:"message"`
}

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Code     int          `json:"code"`
	Category string       `json:"category"`
	Message  string       `json:"message"`
	Errors   []FieldError `json:"errors,omitempty"`
}
