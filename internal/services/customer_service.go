package services

import (
	"context"

	"billingBack/internal/models"
)

type CustomerStore interface {
	GetCustomers(ctx context.Context) ([]models.CustomerField, error)
}

type CustomerService struct {
	CustomerRepo CustomerStore
}

func (s *CustomerService) GetCustomers(ctx context.Context) ([]models.CustomerField, error) {
	return s.CustomerRepo.GetCustomers(ctx)
}
