package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dom/book-catalog/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		name:     "Test User",
		email:    fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithName sets the name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build persists the user and returns it along with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user, b.password
}

// BookBuilder creates test books with a builder pattern
type BookBuilder struct {
	title       string
	author      string
	description string
}

// NewBookBuilder creates a new BookBuilder with default values
func NewBookBuilder() *BookBuilder {
	return &BookBuilder{
		title:       "The Test Book",
		author:      "Test Author",
		description: "A book created for testing.",
	}
}

// WithTitle sets the title
func (b *BookBuilder) WithTitle(title string) *BookBuilder {
	b.title = title
	return b
}

// WithAuthor sets the author
func (b *BookBuilder) WithAuthor(author string) *BookBuilder {
	b.author = author
	return b
}

// WithDescription sets the description
func (b *BookBuilder) WithDescription(description string) *BookBuilder {
	b.description = description
	return b
}

// Build persists the book and returns it
func (b *BookBuilder) Build(t *testing.T, db *gorm.DB) *domain.Book {
	t.Helper()

	book := &domain.Book{
		ID:          uuid.New(),
		Title:       b.title,
		Author:      b.author,
		Description: b.description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(book).Error; err != nil {
		t.Fatalf("failed to create test book: %v", err)
	}

	return book
}

// AuthToken issues an access token for the given user
func (ts *TestServer) AuthToken(t *testing.T, user *domain.User) string {
	t.Helper()

	token, err := ts.Services.Auth.GenerateAccessToken(user.ID)
	if err != nil {
		t.Fatalf("failed to generate access token: %v", err)
	}
	return token
}

// DoJSON performs a JSON request against the test server, attaching the
// bearer token when one is given
func (ts *TestServer) DoJSON(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, ts.APIURL(path), reqBody)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}
