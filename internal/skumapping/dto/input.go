package dto

type CreateMappingInput struct {
	ProductID        string `json:"product_id"`
	ClientID         string `json:"client_id"`
	SKU              string `json:"sku"`
	Name             string `json:"name"`
	ProductImageURL  string `json:"product_image_url"`
	QuantityToDeduct int64  `json:"quantity_to_deduct"`
}

// ResolveInput is the per-line-item context the resolver needs: the SKU plus
// the order details recorded on an unmapped occurrence.
type ResolveInput struct {
	SKU             string
	ClientID        string
	OrderedQuantity int64
	ShipmentNumber  string
	StoreName       string
	ProductName     string
	ProductImageURL string
}

// ProductDeduction is one inventory target: the mapping's product id and the
// total units to deduct (quantity_to_deduct x ordered quantity).
type ProductDeduction struct {
	ProductID string
	Quantity  int64
}

type Resolution struct {
	Mapped     bool
	Deductions []ProductDeduction
	Total      int64 // summed across all mapping rows for the SKU
}
