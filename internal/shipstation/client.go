// Package shipstation talks to the external shipping platform: the store
// directory and the resource URLs delivered by its webhooks. Webhooks carry
// only a resource_url pointer; the real payload is always a follow-up fetch.
package shipstation

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Config struct {
	BaseURL   string
	APIKey    string
	APISecret string
}

type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

type Store struct {
	StoreID         int64  `json:"storeId"`
	StoreName       string `json:"storeName"`
	MarketplaceName string `json:"marketplaceName"`
}

type Address struct {
	Name       string `json:"name"`
	Company    string `json:"company"`
	Street1    string `json:"street1"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

type OrderItem struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl"`
	Quantity int64   `json:"quantity"`
	UPC      *string `json:"upc"`
}

// AdvancedOptions is the slice of the platform's advanced options the pipeline
// needs. storeId has shipped as both a number and a numeric string across
// payload versions, so it is decoded leniently.
type AdvancedOptions struct {
	StoreID json.Number `json:"storeId"`
	Source  string      `json:"source"`
}

type Order struct {
	OrderNumber         string          `json:"orderNumber"`
	OrderDate           string          `json:"orderDate"`
	CarrierCode         *string         `json:"carrierCode"`
	TrackingNumber      *string         `json:"trackingNumber"`
	CustomerEmail       *string         `json:"customerEmail"`
	CustomerNotes       *string         `json:"customerNotes"`
	ShippingAmount      *float64        `json:"shippingAmount"`
	ShipTo              *Address        `json:"shipTo"`
	Items               []OrderItem     `json:"items"`
	AdvancedOptions     AdvancedOptions `json:"advancedOptions"`
	ExternallyFulfilled bool            `json:"externallyFulfilled"`
}

type OrderBatch struct {
	Orders []Order `json:"orders"`
}

type Shipment struct {
	OrderNumber    string   `json:"orderNumber"`
	TrackingNumber string   `json:"trackingNumber"`
	CarrierCode    string   `json:"carrierCode"`
	ServiceCode    string   `json:"serviceCode"`
	ShipmentCost   float64  `json:"shipmentCost"`
	ShipTo         *Address `json:"shipTo"`
}

type ShipmentBatch struct {
	Shipments []Shipment `json:"shipments"`
}

func (c *Client) authHeader() string {
	creds := c.cfg.APIKey + ":" + c.cfg.APISecret
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
}

func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.authHeader())
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("shipstation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("shipstation returned %d for %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode shipstation response: %w", err)
	}
	return nil
}

// ListStores fetches the full store directory.
func (c *Client) ListStores(ctx context.Context) ([]Store, error) {
	var stores []Store
	if err := c.get(ctx, c.cfg.BaseURL+"/stores", &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// FetchOrders resolves an order-notify resource_url to its order batch.
func (c *Client) FetchOrders(ctx context.Context, resourceURL string) (*OrderBatch, error) {
	var batch OrderBatch
	if err := c.get(ctx, resourceURL, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

// FetchShipments resolves a ship-notify resource_url to its shipment batch.
func (c *Client) FetchShipments(ctx context.Context, resourceURL string) (*ShipmentBatch, error) {
	var batch ShipmentBatch
	if err := c.get(ctx, resourceURL, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}
