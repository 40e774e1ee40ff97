package dto

import "github.com/shopspring/decimal"

// UpdateFieldRequest body for PATCH endpoints. Values arrive as strings, the
// way form inputs produce them; numeric fields are parse-coerced server-side
// (quantity falls back to 1, amounts to 0) rather than rejected.
type UpdateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// LineItemResponse one draft row, with its derived line total.
type LineItemResponse struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// DraftResponse full draft state plus derived totals, for GET /api/estimates/:id.
type DraftResponse struct {
	ID              string             `json:"id"`
	EstimateNo      string             `json:"estimate_no"`
	Date            string             `json:"date"` // ISO YYYY-MM-DD
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress string             `json:"customer_address"`
	Items           []LineItemResponse `json:"items"`
	Discount        decimal.Decimal    `json:"discount"`
	Tax             decimal.Decimal    `json:"tax"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	FinalTotal      decimal.Decimal    `json:"final_total"`
}

// UnlockRequest body for POST /api/gate/unlock.
type UnlockRequest struct {
	Code string `json:"code"`
}

// UnlockResponse bearer token for the unlocked session.
type UnlockResponse struct {
	Token string `json:"token"`
}
