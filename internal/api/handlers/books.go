package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dom/book-catalog/internal/domain"
	"github.com/dom/book-catalog/internal/service"
	"github.com/dom/book-catalog/internal/validation"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type BookHandler struct {
	bookService *service.BookService
	validator   *validation.Validator
}

func NewBookHandler(bookService *service.BookService, validator *validation.Validator) *BookHandler {
	return &BookHandler{bookService: bookService, validator: validator}
}

type BookRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Author      string `json:"author" validate:"required,min=3,max=50"`
	Description string `json:"description" validate:"required,min=1,max=1000"`
}

func (h *BookHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(req); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.bookService.Add(r.Context(), service.BookInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
	})
	if err != nil {
		log.Printf("ERROR [BookHandler.Add] %v", err)
		WriteInternalError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, "Book added successfully", nil)
}

func (h *BookHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.GetAll(r.Context())
	if err != nil {
		log.Printf("ERROR [BookHandler.GetAll] %v", err)
		WriteInternalError(w, err)
		return
	}

	if len(books) == 0 {
		WriteError(w, http.StatusNotFound, "No books found")
		return
	}

	WriteSuccess(w, http.StatusOK, "Books retrieved successfully", books)
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "Book not found")
		return
	}

	book, err := h.bookService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			WriteError(w, http.StatusNotFound, "Book not found")
			return
		}
		log.Printf("ERROR [BookHandler.Get] %v", err)
		WriteInternalError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Book retrieved successfully", book)
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "Book not found")
		return
	}

	// Existence check before validating the payload so a bad id answers 404
	if _, err := h.bookService.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			WriteError(w, http.StatusNotFound, "Book not found")
			return
		}
		log.Printf("ERROR [BookHandler.Update] %v", err)
		WriteInternalError(w, err)
		return
	}

	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(req); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	book, err := h.bookService.Update(r.Context(), id, service.BookInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			WriteError(w, http.StatusNotFound, "Book not found")
			return
		}
		log.Printf("ERROR [BookHandler.Update] %v", err)
		WriteInternalError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Book updated successfully", book)
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "Book not found")
		return
	}

	if err := h.bookService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			WriteError(w, http.StatusNotFound, "Book not found")
			return
		}
		log.Printf("ERROR [BookHandler.Delete] %v", err)
		WriteInternalError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Book deleted successfully", nil)
}
