package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"billingBack/internal/cache"
	"billingBack/internal/models"
	"billingBack/internal/services"
)

type InvoiceHandler struct {
	Service *services.InvoiceService
	Cache   *cache.PathCache
}

func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	form, err := invoiceFormFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	writeOutcome(w, h.Service.CreateInvoice(r.Context(), form))
}

func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		http.Error(w, "Invoice ID is required", http.StatusBadRequest)
		return
	}
	form, err := invoiceFormFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	writeOutcome(w, h.Service.UpdateInvoice(r.Context(), id, form))
}

func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		http.Error(w, "Invoice ID is required", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteInvoice(r.Context(), id); err != nil {
		log.Printf("delete invoice %s: %v", id, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Location", models.InvoiceListPath)
	w.WriteHeader(http.StatusSeeOther)
}

func (h *InvoiceHandler) GetInvoiceByID(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	inv, err := h.Service.GetInvoiceByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrInvoiceNotFound) {
			http.Error(w, "Invoice not found", http.StatusNotFound)
			return
		}
		log.Printf("get invoice %s: %v", id, err)
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(inv)
}

// GetInvoices serves the listing page, cached per path+query. Cache misses
// and cache failures both fall through to the store.
func (h *InvoiceHandler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("query")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	cachePath := r.URL.Path
	if r.URL.RawQuery != "" {
		cachePath += "?" + r.URL.RawQuery
	}

	if h.Cache != nil {
		payload, ok, err := h.Cache.GetPage(r.Context(), cachePath)
		if err != nil {
			log.Printf("cache get %s: %v", cachePath, err)
		} else if ok {
			w.Write(payload)
			return
		}
	}

	listing, err := h.Service.GetInvoicesPage(r.Context(), search, page)
	if err != nil {
		log.Printf("list invoices: %v", err)
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(listing)
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}

	if h.Cache != nil {
		if err := h.Cache.SetPage(r.Context(), cachePath, payload); err != nil {
			log.Printf("cache set %s: %v", cachePath, err)
		}
	}
	w.Write(payload)
}

// invoiceFormFromRequest accepts either a urlencoded/multipart form post or
// a JSON body with the same field names.
func invoiceFormFromRequest(r *http.Request) (models.InvoiceForm, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req struct {
			CustomerID string      `json:"customerId"`
			Amount     json.Number `json:"amount"`
			Status     string      `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return models.InvoiceForm{}, err
		}
		return models.InvoiceForm{
			CustomerID: req.CustomerID,
			Amount:     req.Amount.String(),
			Status:     req.Status,
		}, nil
	}

	if err := r.ParseForm(); err != nil {
		return models.InvoiceForm{}, err
	}
	return models.InvoiceForm{
		CustomerID: r.PostFormValue("customerId"),
		Amount:     r.PostFormValue("amount"),
		Status:     r.PostFormValue("status"),
	}, nil
}

// writeOutcome maps an action outcome onto the response: 303 with Location
// on success, 422 with the field-error payload on validation failure, 500
// with the opaque message when the store rejected the statement.
func writeOutcome(w http.ResponseWriter, outcome models.ActionOutcome) {
	switch {
	case outcome.Redirect != "":
		w.Header().Set("Location", outcome.Redirect)
		w.WriteHeader(http.StatusSeeOther)
	case outcome.Errors != nil:
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(outcome)
	default:
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(outcome)
	}
}
