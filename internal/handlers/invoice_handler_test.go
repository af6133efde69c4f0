package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"billingBack/internal/models"
	"billingBack/internal/services"
)

type stubInvoiceStore struct {
	created []models.Invoice
	updated []models.Invoice
	deleted []string
	rows    []models.InvoiceRow
	total   int
}

func (s *stubInvoiceStore) CreateInvoice(ctx context.Context, inv models.Invoice) error {
	s.created = append(s.created, inv)
	return nil
}

func (s *stubInvoiceStore) UpdateInvoice(ctx context.Context, inv models.Invoice) error {
	s.updated = append(s.updated, inv)
	return nil
}

func (s *stubInvoiceStore) DeleteInvoice(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubInvoiceStore) GetInvoiceByID(ctx context.Context, id string) (models.Invoice, error) {
	return models.Invoice{}, models.ErrInvoiceNotFound
}

func (s *stubInvoiceStore) GetInvoices(ctx context.Context, search string, limit, offset int) ([]models.InvoiceRow, error) {
	return s.rows, nil
}

func (s *stubInvoiceStore) CountInvoices(ctx context.Context, search string) (int, error) {
	return s.total, nil
}

func newTestInvoiceHandler(store *stubInvoiceStore) *InvoiceHandler {
	svc := &services.InvoiceService{
		InvoiceRepo: store,
		Now:         func() time.Time { return time.Date(2024, 5, 14, 12, 0, 0, 0, time.UTC) },
	}
	return &InvoiceHandler{Service: svc}
}

func postForm(t *testing.T, handler http.HandlerFunc, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestCreateInvoiceHandlerRedirectsOnSuccess(t *testing.T) {
	store := &stubInvoiceStore{}
	h := newTestInvoiceHandler(store)

	rec := postForm(t, h.CreateInvoice, "/dashboard/invoices", url.Values{
		"customerId": {"c1"},
		"amount":     {"12.34"},
		"status":     {"pending"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard/invoices" {
		t.Errorf("unexpected Location: %q", loc)
	}
	if len(store.created) != 1 || store.created[0].Amount != 1234 {
		t.Errorf("unexpected insert: %#v", store.created)
	}
}

func TestCreateInvoiceHandlerValidationFailure(t *testing.T) {
	store := &stubInvoiceStore{}
	h := newTestInvoiceHandler(store)

	rec := postForm(t, h.CreateInvoice, "/dashboard/invoices", url.Values{
		"amount": {"-1"},
		"status": {"overdue"},
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Message != "Missing Fields. Failed to Create Invoice." {
		t.Errorf("unexpected message: %q", body.Message)
	}
	if got := body.Errors["customerId"]; len(got) != 1 || got[0] != "Please select a customer" {
		t.Errorf("unexpected customerId errors: %#v", got)
	}
	if len(store.created) != 0 {
		t.Errorf("store was written on validation failure")
	}
}

func TestCreateInvoiceHandlerJSONBody(t *testing.T) {
	store := &stubInvoiceStore{}
	h := newTestInvoiceHandler(store)

	req := httptest.NewRequest(http.MethodPost, "/dashboard/invoices",
		strings.NewReader(`{"customerId":"c1","amount":12.34,"status":"paid"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.CreateInvoice(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(store.created) != 1 || store.created[0].Amount != 1234 {
		t.Errorf("unexpected insert: %#v", store.created)
	}
}

func TestUpdateInvoiceHandler(t *testing.T) {
	store := &stubInvoiceStore{}
	h := newTestInvoiceHandler(store)

	form := url.Values{
		"customerId": {"c2"},
		"amount":     {"50"},
		"status":     {"paid"},
	}
	req := httptest.NewRequest(http.MethodPut, "/dashboard/invoices/inv_1?:id=inv_1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.UpdateInvoice(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(store.updated) != 1 || store.updated[0].ID != "inv_1" || store.updated[0].Amount != 5000 {
		t.Errorf("unexpected update: %#v", store.updated)
	}
}

func TestDeleteInvoiceHandlerAlwaysFails(t *testing.T) {
	store := &stubInvoiceStore{}
	h := newTestInvoiceHandler(store)

	req := httptest.NewRequest(http.MethodDelete, "/dashboard/invoices/inv_1?:id=inv_1", nil)
	rec := httptest.NewRecorder()
	h.DeleteInvoice(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Faild to Delete") {
		t.Errorf("expected the delete failure message, got %q", rec.Body.String())
	}
	if len(store.deleted) != 0 {
		t.Errorf("row must stay untouched, got deletes: %#v", store.deleted)
	}
}

func TestGetInvoicesHandlerListing(t *testing.T) {
	store := &stubInvoiceStore{
		rows: []models.InvoiceRow{
			{ID: "inv_1", CustomerID: "c1", CustomerName: "Ada", Amount: 1234, Status: "pending", Date: "2024-05-14"},
		},
		total: 1,
	}
	h := newTestInvoiceHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices?query=ada&page=1", nil)
	rec := httptest.NewRecorder()
	h.GetInvoices(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var listing models.InvoiceListing
	if err := json.Unmarshal(rec.Body.Bytes(), &listing); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(listing.Invoices) != 1 || listing.Invoices[0].CustomerName != "Ada" {
		t.Errorf("unexpected listing: %#v", listing)
	}
	if listing.TotalPages != 1 {
		t.Errorf("expected 1 page, got %d", listing.TotalPages)
	}
}
