package repository

import (
	"context"

	"github.com/dom/book-catalog/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetAll(ctx context.Context) ([]*domain.Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type Repositories struct {
	User UserRepository
	Book BookRepository
}
