package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"billingBack/internal/models"
	"billingBack/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(user.Email) == "" || user.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	created, err := h.Service.SignUp(r.Context(), user)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			http.Error(w, "Email already registered", http.StatusConflict)
			return
		}
		log.Printf("sign up: %v", err)
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// SignIn authenticates the submitted credentials. Categorized auth failures
// come back as a 401 with the mapped message; anything else is the generic
// server error path.
func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	email, password, err := credentialsFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tokens, message, err := h.Service.Authenticate(r.Context(), email, password)
	if err != nil {
		log.Printf("sign in: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if message != "" {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": message})
		return
	}

	json.NewEncoder(w).Encode(tokens)
}

func (h *UserHandler) LogOut(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.UserLogOut(r.Context(), userID); err != nil {
		log.Printf("logout user %d: %v", userID, err)
		http.Error(w, "Failed to log out", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func credentialsFromRequest(r *http.Request) (string, string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req models.SignInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", "", err
		}
		return req.Email, req.Password, nil
	}

	if err := r.ParseForm(); err != nil {
		return "", "", err
	}
	return r.PostFormValue("email"), r.PostFormValue("password"), nil
}
