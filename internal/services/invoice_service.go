package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"billingBack/internal/models"
)

// InvoiceStore is the slice of the invoice repository the workflow needs.
type InvoiceStore interface {
	CreateInvoice(ctx context.Context, inv models.Invoice) error
	UpdateInvoice(ctx context.Context, inv models.Invoice) error
	DeleteInvoice(ctx context.Context, id string) error
	GetInvoiceByID(ctx context.Context, id string) (models.Invoice, error)
	GetInvoices(ctx context.Context, search string, limit, offset int) ([]models.InvoiceRow, error)
	CountInvoices(ctx context.Context, search string) (int, error)
}

// PathCache invalidates cached renderings of a dashboard path.
type PathCache interface {
	InvalidatePath(ctx context.Context, path string) error
}

type InvoiceService struct {
	InvoiceRepo InvoiceStore
	Cache       PathCache
	Now         func() time.Time
}

const listingPageSize = 6

const (
	msgCreateFailed  = "Missing Fields. Failed to Create Invoice."
	msgUpdateFailed  = "Missing Fields. Failed to Update Invoice."
	msgDBError       = "Database error"
	msgDBUpdateError = "Database error: Faild to Update"
)

// validateInvoiceForm checks every rule and aggregates failures per field
// instead of stopping at the first one. Non-numeric amounts fail the same
// rule as non-positive ones.
func validateInvoiceForm(form models.InvoiceForm) (decimal.Decimal, map[string][]string) {
	fieldErrors := map[string][]string{}

	if strings.TrimSpace(form.CustomerID) == "" {
		fieldErrors["customerId"] = append(fieldErrors["customerId"], "Please select a customer")
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(form.Amount))
	if err != nil || !amount.IsPositive() {
		fieldErrors["amount"] = append(fieldErrors["amount"], "Amount must be greater than 0")
	}

	if form.Status != models.InvoiceStatusPending && form.Status != models.InvoiceStatusPaid {
		fieldErrors["status"] = append(fieldErrors["status"], "Please select a valid status")
	}

	if len(fieldErrors) > 0 {
		return decimal.Decimal{}, fieldErrors
	}
	return amount, nil
}

// toCents converts a major-unit amount to integer minor units, rounding
// half away from zero.
func toCents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func (s *InvoiceService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, form models.InvoiceForm) models.ActionOutcome {
	amount, fieldErrors := validateInvoiceForm(form)
	if fieldErrors != nil {
		return models.ActionOutcome{Errors: fieldErrors, Message: msgCreateFailed}
	}

	inv := models.Invoice{
		ID:         uuid.New().String(),
		CustomerID: form.CustomerID,
		Amount:     toCents(amount),
		Status:     form.Status,
		Date:       s.now().Format("2006-01-02"),
	}

	if err := s.InvoiceRepo.CreateInvoice(ctx, inv); err != nil {
		log.Printf("create invoice: %v", err)
		return models.ActionOutcome{Message: msgDBError}
	}

	s.invalidateListing(ctx)
	return models.RedirectTo(models.InvoiceListPath)
}

func (s *InvoiceService) UpdateInvoice(ctx context.Context, id string, form models.InvoiceForm) models.ActionOutcome {
	amount, fieldErrors := validateInvoiceForm(form)
	if fieldErrors != nil {
		return models.ActionOutcome{Errors: fieldErrors, Message: msgUpdateFailed}
	}

	inv := models.Invoice{
		ID:         id,
		CustomerID: form.CustomerID,
		Amount:     toCents(amount),
		Status:     form.Status,
	}

	if err := s.InvoiceRepo.UpdateInvoice(ctx, inv); err != nil {
		log.Printf("update invoice %s: %v", id, err)
		return models.ActionOutcome{Message: msgDBUpdateError}
	}

	s.invalidateListing(ctx)
	return models.RedirectTo(models.InvoiceListPath)
}

// DeleteInvoice always fails before reaching the store; the repository
// delete behind it stays unreachable until delete semantics are settled.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	return models.ErrDeleteFailed
}

func (s *InvoiceService) GetInvoiceByID(ctx context.Context, id string) (models.Invoice, error) {
	return s.InvoiceRepo.GetInvoiceByID(ctx, id)
}

func (s *InvoiceService) GetInvoicesPage(ctx context.Context, search string, page int) (models.InvoiceListing, error) {
	if page < 1 {
		page = 1
	}
	invoices, err := s.InvoiceRepo.GetInvoices(ctx, search, listingPageSize, (page-1)*listingPageSize)
	if err != nil {
		return models.InvoiceListing{}, err
	}
	total, err := s.InvoiceRepo.CountInvoices(ctx, search)
	if err != nil {
		return models.InvoiceListing{}, err
	}
	return models.InvoiceListing{
		Invoices:   invoices,
		TotalPages: (total + listingPageSize - 1) / listingPageSize,
	}, nil
}

// invalidateListing drops the cached listing page. The write already
// committed, so a cache failure only delays freshness until the TTL.
func (s *InvoiceService) invalidateListing(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.InvalidatePath(ctx, models.InvoiceListPath); err != nil {
		log.Printf("invalidate %s: %v", models.InvoiceListPath, err)
	}
}
