package service

import (
	"github.com/dom/book-catalog/internal/config"
	"github.com/dom/book-catalog/internal/repository"
)

type Services struct {
	Auth *AuthService
	Book *BookService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth: NewAuthService(repos.User, cfg),
		Book: NewBookService(repos.Book),
	}
}
