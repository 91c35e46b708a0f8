package model

import "time"

// SKUMapping ties an external seller SKU to an internal inventory product.
// Many mappings may target the same product, and one SKU may have several
// mapping rows (bundles): each row's QuantityToDeduct is consumed per unit of
// the external SKU sold.
type SKUMapping struct {
	ID               string    `db:"id" json:"id"`
	ClientID         string    `db:"client_id" json:"client_id"`
	ProductID        string    `db:"product_id" json:"product_id"`
	SKU              string    `db:"sku" json:"sku"`
	Name             string    `db:"name" json:"name"`
	ProductImageURL  string    `db:"product_image_url" json:"product_image_url"`
	QuantityToDeduct int64     `db:"quantity_to_deduct" json:"quantity_to_deduct"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// UnmappedSKU records an incoming order SKU with no mapping row. Every
// occurrence is recorded; the rows are the backlog operators work through when
// backfilling mappings.
type UnmappedSKU struct {
	ID              string    `db:"id" json:"id"`
	SKU             string    `db:"sku" json:"sku"`
	ClientID        string    `db:"client_id" json:"client_id"`
	Quantity        int64     `db:"quantity" json:"quantity"`
	ShipmentNumber  string    `db:"shipment_number" json:"shipment_number"`
	OrderSource     string    `db:"order_source" json:"order_source"`
	ProductName     *string   `db:"product_name" json:"product_name"`
	ProductImageURL *string   `db:"product_image_url" json:"product_image_url"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
