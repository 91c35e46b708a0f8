package model

import "time"

type Inventory struct {
	ID                string     `db:"id" json:"id"`
	ClientID          string     `db:"client_id" json:"client_id"`
	Name              string     `db:"name" json:"name"`
	Asin              *string    `db:"asin" json:"asin"`
	ProductTitle      *string    `db:"product_title" json:"product_title"`
	SKU               *string    `db:"sku" json:"sku"`
	ProductImageURL   *string    `db:"product_image_url" json:"product_image_url"`
	Pending           int64      `db:"pending" json:"pending"`
	Quantity          int64      `db:"quantity" json:"quantity"`
	LotNumber         *string    `db:"lot_number" json:"lot_number"`
	ProductExpiration *time.Time `db:"product_expiration" json:"product_expiration"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// ChangelogEntry is the append-only audit record written once per inventory
// mutation. It is never updated or deleted; it is the sole source of truth for
// why a quantity changed.
type ChangelogEntry struct {
	ID               string    `db:"id" json:"id"`
	ClientID         string    `db:"client_id" json:"client_id"`
	ShipmentNumber   *string   `db:"shipment_number" json:"shipment_number"`
	ChangeSource     string    `db:"change_source" json:"change_source"`
	Asin             *string   `db:"asin" json:"asin"`
	ProductTitle     *string   `db:"product_title" json:"product_title"`
	SKU              *string   `db:"sku" json:"sku"`
	PreviousQuantity int64     `db:"previous_quantity" json:"previous_quantity"`
	NewQuantity      int64     `db:"new_quantity" json:"new_quantity"`
	PreviousPending  int64     `db:"previous_pending" json:"previous_pending"`
	NewPending       int64     `db:"new_pending" json:"new_pending"`
	Notes            *string   `db:"notes" json:"notes"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// ChangeSourcePortal marks mutations made through the warehouse portal, as
// opposed to ones attributed to a sales channel's store name.
const ChangeSourcePortal = "Warehouse Portal"
