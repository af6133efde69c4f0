package repositories

import (
	"context"
	"database/sql"
	"errors"

	"billingBack/internal/models"
)

type InvoiceRepository struct {
	DB *sql.DB
}

func (r *InvoiceRepository) CreateInvoice(ctx context.Context, inv models.Invoice) error {
	query := `INSERT INTO invoices (id, customer_id, amount, status, date) VALUES (?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, inv.ID, inv.CustomerID, inv.Amount, inv.Status, inv.Date)
	return err
}

// UpdateInvoice rewrites customer, amount and status for the row. The issue
// date is never touched after creation.
func (r *InvoiceRepository) UpdateInvoice(ctx context.Context, inv models.Invoice) error {
	query := `UPDATE invoices SET customer_id = ?, amount = ?, status = ? WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, inv.CustomerID, inv.Amount, inv.Status, inv.ID)
	return err
}

func (r *InvoiceRepository) DeleteInvoice(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id)
	return err
}

func (r *InvoiceRepository) GetInvoiceByID(ctx context.Context, id string) (models.Invoice, error) {
	var inv models.Invoice
	query := `SELECT id, customer_id, amount, status, date FROM invoices WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Invoice{}, models.ErrInvoiceNotFound
	}
	return inv, err
}

// GetInvoices returns a page of listing rows joined with their customers,
// newest first. The search term matches customer name/email as well as the
// stringified amount, date and status.
func (r *InvoiceRepository) GetInvoices(ctx context.Context, search string, limit, offset int) ([]models.InvoiceRow, error) {
	query := `
		SELECT invoices.id, invoices.customer_id, customers.name, customers.email, customers.image_url,
		       invoices.amount, invoices.status, invoices.date
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE customers.name LIKE ? OR customers.email LIKE ? OR invoices.amount LIKE ?
		   OR invoices.date LIKE ? OR invoices.status LIKE ?
		ORDER BY invoices.date DESC
		LIMIT ? OFFSET ?`
	pattern := "%" + search + "%"
	rows, err := r.DB.QueryContext(ctx, query, pattern, pattern, pattern, pattern, pattern, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []models.InvoiceRow
	for rows.Next() {
		var inv models.InvoiceRow
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.CustomerName, &inv.CustomerEmail, &inv.ImageURL,
			&inv.Amount, &inv.Status, &inv.Date); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *InvoiceRepository) CountInvoices(ctx context.Context, search string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE customers.name LIKE ? OR customers.email LIKE ? OR invoices.amount LIKE ?
		   OR invoices.date LIKE ? OR invoices.status LIKE ?`
	pattern := "%" + search + "%"
	var count int
	err := r.DB.QueryRowContext(ctx, query, pattern, pattern, pattern, pattern, pattern).Scan(&count)
	return count, err
}
