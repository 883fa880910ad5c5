package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dom/book-catalog/internal/domain"
	"github.com/dom/book-catalog/internal/service"
	"github.com/dom/book-catalog/internal/validation"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *validation.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *validation.Validator) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validator}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(req); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.authService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			WriteError(w, http.StatusBadRequest, "Email is already in use")
			return
		}
		log.Printf("ERROR [AuthHandler.Register] %v", err)
		WriteInternalError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, "User registered successfully", nil)
}

// Login answers every credential failure, expected or not, with the same
// 401 message so a caller cannot probe which emails are registered.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(req); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			log.Printf("ERROR [AuthHandler.Login] %v", err)
		}
		WriteError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Status:  true,
		Message: "Login successful",
		Data:    map[string]string{"token": token},
	})
}
