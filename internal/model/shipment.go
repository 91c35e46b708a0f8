package model

import "time"

// Shipment status values. Case sensitive; stored verbatim.
const (
	StatusPending  = "Pending"
	StatusShipped  = "Shipped"
	StatusReceived = "Received"
)

const (
	ShipmentTypeOutbound = "Outbound"
	ShipmentTypeInbound  = "Inbound"
)

// OutboundShipment is one row per (order, line item). An order with N line
// items produces N rows sharing the same shipment number.
type OutboundShipment struct {
	ID                      string    `db:"id" json:"id"`
	CreatedAt               time.Time `db:"created_at" json:"created_at"`
	ClientID                string    `db:"client_id" json:"client_id"`
	ShipmentNumber          string    `db:"shipment_number" json:"shipment_number"`
	Carrier                 *string   `db:"carrier" json:"carrier"`
	TrackingNumber          *string   `db:"tracking_number" json:"tracking_number"`
	PONumber                *string   `db:"po_number" json:"po_number"`
	Destination             *string   `db:"destination" json:"destination"`
	RequiresAmazonLabeling  *string   `db:"requires_amazon_labeling" json:"requires_amazon_labeling"`
	ShipmentType            string    `db:"shipment_type" json:"shipment_type"`
	Status                  string    `db:"status" json:"status"`
	DateOfLastChange        *string   `db:"date_of_last_change" json:"date_of_last_change"`
	Asin                    *string   `db:"asin" json:"asin"`
	ProductTitle            *string   `db:"product_title" json:"product_title"`
	SKU                     *string   `db:"sku" json:"sku"`
	ProductImageURL         *string   `db:"product_image_url" json:"product_image_url"`
	Quantity                int64     `db:"quantity" json:"quantity"`
	BuyerName               *string   `db:"buyer_name" json:"buyer_name"`
	BuyerEmail              *string   `db:"buyer_email" json:"buyer_email"`
	RecipientName           *string   `db:"recipient_name" json:"recipient_name"`
	RecipientCompany        *string   `db:"recipient_company" json:"recipient_company"`
	RecipientAddressLine1   *string   `db:"recipient_address_line_1" json:"recipient_address_line_1"`
	RecipientCity           *string   `db:"recipient_city" json:"recipient_city"`
	RecipientState          *string   `db:"recipient_state" json:"recipient_state"`
	RecipientPostalCode     *string   `db:"recipient_postal_code" json:"recipient_postal_code"`
	RecipientCountry        *string   `db:"recipient_country" json:"recipient_country"`
	LotNumber               *string   `db:"lot_number" json:"lot_number"`
	CostOfShipment          *float64  `db:"cost_of_shipment" json:"cost_of_shipment"`
	Notes                   *string   `db:"notes" json:"notes"`
}

type InboundShipment struct {
	ID                  string    `db:"id" json:"id"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	ClientID            string    `db:"client_id" json:"client_id"`
	ShipmentNumber      string    `db:"shipment_number" json:"shipment_number"`
	BOLNumber           *string   `db:"bol_number" json:"bol_number"`
	Carrier             *string   `db:"carrier" json:"carrier"`
	TrackingNumber      *string   `db:"tracking_number" json:"tracking_number"`
	Destination         *string   `db:"destination" json:"destination"`
	ShipmentType        string    `db:"shipment_type" json:"shipment_type"`
	Status              string    `db:"status" json:"status"`
	DateOfLastChange    *string   `db:"date_of_last_change" json:"date_of_last_change"`
	Asin                *string   `db:"asin" json:"asin"`
	ProductTitle        *string   `db:"product_title" json:"product_title"`
	SKU                 *string   `db:"sku" json:"sku"`
	ProductImageURL     *string   `db:"product_image_url" json:"product_image_url"`
	Quantity            int64     `db:"quantity" json:"quantity"`
	CountedQuantity     *int64    `db:"counted_quantity" json:"counted_quantity"`
	WarehouseAddress    *string   `db:"warehouse_address" json:"warehouse_address"`
	WarehouseCity       *string   `db:"warehouse_city" json:"warehouse_city"`
	WarehouseState      *string   `db:"warehouse_state" json:"warehouse_state"`
	WarehousePostalCode *string   `db:"warehouse_postal_code" json:"warehouse_postal_code"`
}
