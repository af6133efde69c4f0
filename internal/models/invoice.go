package models

// InvoiceListPath is the dashboard page invalidated and redirected to after
// every successful invoice write.
const InvoiceListPath = "/dashboard/invoices"

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice is a persisted invoice row. Amount is stored in minor currency
// units (cents), Date as a YYYY-MM-DD calendar day.
type Invoice struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}

// InvoiceForm carries the raw submitted field values before validation.
// Amount stays a string here; coercion happens during validation.
type InvoiceForm struct {
	CustomerID string
	Amount     string
	Status     string
}

// InvoiceRow is a listing row joined with its customer.
type InvoiceRow struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"name"`
	CustomerEmail string `json:"email"`
	ImageURL      string `json:"image_url"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
	Date          string `json:"date"`
}

type InvoiceListing struct {
	Invoices   []InvoiceRow `json:"invoices"`
	TotalPages int          `json:"total_pages"`
}
