package service

import (
	"context"
	"errors"
	"time"

	"github.com/dom/book-catalog/internal/domain"
	"github.com/dom/book-catalog/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookService struct {
	bookRepo repository.BookRepository
}

func NewBookService(bookRepo repository.BookRepository) *BookService {
	return &BookService{bookRepo: bookRepo}
}

type BookInput struct {
	Title       string
	Author      string
	Description string
}

func (s *BookService) Add(ctx context.Context, input BookInput) (*domain.Book, error) {
	book := &domain.Book{
		ID:          uuid.New(),
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

func (s *BookService) GetAll(ctx context.Context) ([]*domain.Book, error) {
	return s.bookRepo.GetAll(ctx)
}

func (s *BookService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

// Update replaces the three writable fields on the stored record.
// The id and creation timestamp are left untouched.
func (s *BookService) Update(ctx context.Context, id uuid.UUID, input BookInput) (*domain.Book, error) {
	book, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	book.Title = input.Title
	book.Author = input.Author
	book.Description = input.Description
	book.UpdatedAt = time.Now()

	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.bookRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrBookNotFound
	}
	return nil
}
