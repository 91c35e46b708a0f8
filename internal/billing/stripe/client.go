// Package stripe is a minimal client for the pieces of the Stripe invoicing
// API the billing flow uses: draft invoice creation, invoice items, and
// finalization. Requests are form-encoded per the Stripe API convention.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	privateKey string
	httpClient *http.Client
}

func NewClient(baseURL, privateKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		privateKey: privateKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) post(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.privateKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("stripe %s returned %d: %s", path, resp.StatusCode, string(body))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// CreateInvoice opens a draft invoice for the customer with send_invoice
// collection so Stripe emails a hosted payment page on finalize.
func (c *Client) CreateInvoice(ctx context.Context, customerID string, daysUntilDue int64) (string, error) {
	if daysUntilDue <= 0 {
		daysUntilDue = 30
	}
	form := url.Values{}
	form.Set("customer", customerID)
	form.Set("collection_method", "send_invoice")
	form.Set("days_until_due", strconv.FormatInt(daysUntilDue, 10))

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, "/v1/invoices", form, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *Client) CreateInvoiceItem(ctx context.Context, customerID, invoiceID, description string, amountCents int64) error {
	form := url.Values{}
	form.Set("customer", customerID)
	form.Set("invoice", invoiceID)
	form.Set("description", description)
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", "usd")
	return c.post(ctx, "/v1/invoiceitems", form, nil)
}

func (c *Client) FinalizeInvoice(ctx context.Context, invoiceID string) (string, error) {
	var resp struct {
		HostedInvoiceURL string `json:"hosted_invoice_url"`
	}
	path := "/v1/invoices/" + url.PathEscape(invoiceID) + "/finalize"
	if err := c.post(ctx, path, url.Values{}, &resp); err != nil {
		return "", err
	}
	return resp.HostedInvoiceURL, nil
}
