package dto

type CreateInventoryInput struct {
	ClientID        string `json:"clientId"`
	Name            string `json:"name"`
	Asin            string `json:"asin"`
	ProductTitle    string `json:"productTitle"`
	SKU             string `json:"sku"`
	ProductImageURL string `json:"productImageUrl"`
	Pending         int64  `json:"pending"`
	Quantity        int64  `json:"quantity"`
	ExpirationDate  string `json:"expirationDate"`
	LotNumber       string `json:"lotNumber"`
}

type EditInventoryInput struct {
	ID string `json:"id"`
	CreateInventoryInput
}

// DeductionInput carries one product's total deduction plus the order context
// recorded on the changelog entry.
type DeductionInput struct {
	ProductID      string
	Quantity       int64 // total units to deduct, already summed across mapping rows
	ClientID       string
	ShipmentNumber string
	Source         string // store name driving the deduction
	SKU            string
}

type DeductionResult struct {
	Found       bool
	NewQuantity int64
	Clamped     bool // deduction exceeded on-hand stock and was cut off at zero
}

type ReceiveInput struct {
	ClientID        string
	SKU             string
	ShipmentNumber  string
	CountedQuantity int64
}
