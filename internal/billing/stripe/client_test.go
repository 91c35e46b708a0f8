package stripe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateInvoice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/invoices" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_123" {
			t.Errorf("auth = %q", got)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if got := r.PostForm.Get("customer"); got != "cus_1" {
			t.Errorf("customer = %q", got)
		}
		if got := r.PostForm.Get("collection_method"); got != "send_invoice" {
			t.Errorf("collection_method = %q", got)
		}
		if got := r.PostForm.Get("days_until_due"); got != "30" {
			t.Errorf("days_until_due = %q, want default 30", got)
		}
		w.Write([]byte(`{"id":"in_456"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_123")
	id, err := c.CreateInvoice(context.Background(), "cus_1", 0)
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	if id != "in_456" {
		t.Errorf("id = %q", id)
	}
}

func TestCreateInvoiceItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/invoiceitems" {
			t.Errorf("path = %q", r.URL.Path)
		}
		r.ParseForm()
		if got := r.PostForm.Get("amount"); got != "25000" {
			t.Errorf("amount = %q", got)
		}
		if got := r.PostForm.Get("currency"); got != "usd" {
			t.Errorf("currency = %q", got)
		}
		w.Write([]byte(`{"id":"ii_1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_123")
	if err := c.CreateInvoiceItem(context.Background(), "cus_1", "in_456", "Storage", 25000); err != nil {
		t.Fatalf("CreateInvoiceItem: %v", err)
	}
}

func TestFinalizeInvoice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/invoices/in_456/finalize" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"id":"in_456","hosted_invoice_url":"https://invoice.stripe.com/i/in_456"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_123")
	url, err := c.FinalizeInvoice(context.Background(), "in_456")
	if err != nil {
		t.Fatalf("FinalizeInvoice: %v", err)
	}
	if url != "https://invoice.stripe.com/i/in_456" {
		t.Errorf("url = %q", url)
	}
}

func TestErrorStatusSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"No such customer"}}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_123")
	if _, err := c.CreateInvoice(context.Background(), "cus_missing", 30); err == nil {
		t.Fatalf("expected error on 404")
	}
}
