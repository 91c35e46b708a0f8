package dto

type CreateOutboundInput struct {
	ClientID               string   `json:"clientId"`
	ShipmentNumber         string   `json:"shipmentNumber"`
	Carrier                string   `json:"carrier"`
	TrackingNumber         string   `json:"trackingNumber"`
	PONumber               string   `json:"poNumber"`
	Destination            string   `json:"destination"`
	RequiresAmazonLabeling string   `json:"requiresAmazonLabeling"`
	Status                 string   `json:"status"`
	DateOfLastChange       string   `json:"dateOfLastChange"`
	Asin                   string   `json:"asin"`
	ProductTitle           string   `json:"productTitle"`
	SKU                    string   `json:"sku"`
	ProductImageURL        string   `json:"productImageUrl"`
	Quantity               int64    `json:"quantity"`
	BuyerName              string   `json:"buyerName"`
	BuyerEmail             string   `json:"buyerEmail"`
	RecipientName          string   `json:"recipientName"`
	RecipientCompany       string   `json:"recipientCompany"`
	RecipientAddressLine1  string   `json:"recipientAddressLine1"`
	RecipientCity          string   `json:"recipientCity"`
	RecipientState         string   `json:"recipientState"`
	RecipientPostalCode    string   `json:"recipientPostalCode"`
	RecipientCountry       string   `json:"country"`
	LotNumber              string   `json:"lotNumber"`
	CostOfShipment         *float64 `json:"costOfShipment"`
	Notes                  string   `json:"notes"`
}

type EditOutboundInput struct {
	ID string `json:"id"`
	CreateOutboundInput
}

type ManualTrackingInput struct {
	ClientID       string `json:"clientId"`
	ShipmentNumber string `json:"shipmentNumber"`
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
}

type CreateInboundInput struct {
	ClientID            string `json:"clientId"`
	ShipmentNumber      string `json:"shipmentNumber"`
	BOLNumber           string `json:"bolNumber"`
	Carrier             string `json:"carrier"`
	TrackingNumber      string `json:"trackingNumber"`
	Destination         string `json:"destination"`
	Status              string `json:"status"`
	DateOfLastChange    string `json:"dateOfLastChange"`
	Asin                string `json:"asin"`
	ProductTitle        string `json:"productTitle"`
	SKU                 string `json:"sku"`
	ProductImageURL     string `json:"productImageUrl"`
	Quantity            int64  `json:"quantity"`
	CountedQuantity     *int64 `json:"countedQuantity"`
	WarehouseAddress    string `json:"warehouseAddress"`
	WarehouseCity       string `json:"warehouseCity"`
	WarehouseState      string `json:"warehouseState"`
	WarehousePostalCode string `json:"warehousePostalCode"`
}

type EditInboundInput struct {
	ID string `json:"id"`
	CreateInboundInput
}

type ConfirmCountInput struct {
	ID              string `json:"id"`
	CountedQuantity int64  `json:"countedQuantity"`
}
