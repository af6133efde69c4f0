package repositories

import (
	"context"
	"database/sql"

	"billingBack/internal/models"
)

type CustomerRepository struct {
	DB *sql.DB
}

func (r *CustomerRepository) GetCustomers(ctx context.Context) ([]models.CustomerField, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name FROM customers ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.CustomerField
	for rows.Next() {
		var c models.CustomerField
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
