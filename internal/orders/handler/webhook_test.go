package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hometown-industries/warehouse-service/pkg/logger"
)

type fakeUseCase struct {
	ingestErr    error
	reconcileErr error
	ingested     []string
	slow         bool
}

func (f *fakeUseCase) IngestOrders(ctx context.Context, resourceURL string) error {
	if f.slow {
		<-ctx.Done()
		return ctx.Err()
	}
	f.ingested = append(f.ingested, resourceURL)
	return f.ingestErr
}

func (f *fakeUseCase) ReconcileTracking(ctx context.Context, resourceURL string) error {
	return f.reconcileErr
}

func newHandler(uc *fakeUseCase, timeout time.Duration) *WebhookHandler {
	return NewWebhookHandler(uc, timeout, logger.NewNop())
}

func TestOrdersWebhookSuccess(t *testing.T) {
	uc := &fakeUseCase{}
	h := newHandler(uc, time.Second)

	body := `{"resource_url":"https://api.example.com/orders?batchId=1","resource_type":"ORDER_NOTIFY"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Orders(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil || !resp.Success {
		t.Errorf("body = %s, want success true", rec.Body.String())
	}
	if len(uc.ingested) != 1 || uc.ingested[0] != "https://api.example.com/orders?batchId=1" {
		t.Errorf("ingested = %v", uc.ingested)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS origin = %q", got)
	}
}

func TestOrdersWebhookMissingResourceURL(t *testing.T) {
	h := newHandler(&fakeUseCase{}, time.Second)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/orders", strings.NewReader(`{"resource_type":"ORDER_NOTIFY"}`))
	rec := httptest.NewRecorder()
	h.Orders(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no resource_url provided") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestOrdersWebhookBadJSON(t *testing.T) {
	h := newHandler(&fakeUseCase{}, time.Second)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/orders", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	h.Orders(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestOrdersWebhookPreflight(t *testing.T) {
	h := newHandler(&fakeUseCase{}, time.Second)

	req := httptest.NewRequest(http.MethodOptions, "/webhooks/orders", nil)
	rec := httptest.NewRecorder()
	h.Orders(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "POST") {
		t.Errorf("allow methods = %q", got)
	}
}

func TestOrdersWebhookFetchFailure(t *testing.T) {
	h := newHandler(&fakeUseCase{ingestErr: errors.New("upstream 500")}, time.Second)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/orders", strings.NewReader(`{"resource_url":"u"}`))
	rec := httptest.NewRecorder()
	h.Orders(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestOrdersWebhookTimeout(t *testing.T) {
	h := newHandler(&fakeUseCase{slow: true}, 10*time.Millisecond)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/orders", strings.NewReader(`{"resource_url":"u"}`))
	rec := httptest.NewRecorder()
	h.Orders(rec, req)

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want 504", rec.Code)
	}
}

func TestShipNotifyWebhookSuccess(t *testing.T) {
	h := newHandler(&fakeUseCase{}, time.Second)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/shipnotify", strings.NewReader(`{"resource_url":"u","resource_type":"SHIP_NOTIFY"}`))
	rec := httptest.NewRecorder()
	h.ShipNotify(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestWebhookRejectsGet(t *testing.T) {
	h := newHandler(&fakeUseCase{}, time.Second)

	req := httptest.NewRequest(http.MethodGet, "/webhooks/orders", nil)
	rec := httptest.NewRecorder()
	h.Orders(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
