package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"billingBack/internal/services"
)

type CustomerHandler struct {
	Service *services.CustomerService
}

func (h *CustomerHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Service.GetCustomers(r.Context())
	if err != nil {
		log.Printf("list customers: %v", err)
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(customers)
}
