package service

import (
	"context"
	"net/url"
	"time"
	"unicode/utf8"

	"bookstore-backend/internal/apperr"
	"bookstore-backend/internal/core/cache"
	"bookstore-backend/internal/domain"
	"bookstore-backend/pkg/utils"
)

const (
	booksCacheKey = "books:all"
	booksCacheTTL = 60 * time.Second
)

type CatalogService struct {
	accounts domain.AccountRepository
	books    domain.BookRepository
	cache    *cache.Cache // 可为 nil（未配置 redis）
}

func NewCatalogService(accounts domain.AccountRepository, books domain.BookRepository, c *cache.Cache) *CatalogService {
	return &CatalogService{accounts: accounts, books: books, cache: c}
}

type BookInput struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Price       *float64 `json:"price"`
	Description string   `json:"desc"`
	Language    string   `json:"language"`
}

func (in *BookInput) validate() error {
	if !validURL(in.URL) {
		return apperr.BadRequest("Invalid image URL")
	}
	if in.Title == "" {
		return apperr.BadRequest("Title is required")
	}
	if in.Author == "" {
		return apperr.BadRequest("Author is required")
	}
	if in.Price == nil || *in.Price < 0 {
		return apperr.BadRequest("Price must be non-negative")
	}
	if utf8.RuneCountInString(in.Description) < 5 {
		return apperr.BadRequest("Description must be at least 5 characters")
	}
	if in.Language == "" {
		return apperr.BadRequest("Language is required")
	}
	return nil
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ensureAdmin 每次从库里查角色：token 里只有 uid，账号被删后这里直接 403
func (s *CatalogService) ensureAdmin(callerID, denyMsg string) error {
	acct, err := s.accounts.FindByID(callerID)
	if err != nil {
		return apperr.Internal("Internal server error", err)
	}
	if acct == nil || acct.Role != domain.RoleAdmin {
		return apperr.Forbidden(denyMsg)
	}
	return nil
}

func (s *CatalogService) AddBook(ctx context.Context, callerID string, in BookInput) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}
	if err := s.ensureAdmin(callerID, "Only admin can add books"); err != nil {
		return "", err
	}

	book := &domain.Book{
		ID:          utils.NewID(),
		URL:         in.URL,
		Title:       in.Title,
		Author:      in.Author,
		Price:       *in.Price,
		Description: in.Description,
		Language:    in.Language,
	}
	if err := s.books.Create(book); err != nil {
		return "", apperr.Internal("Internal server error", err)
	}
	s.invalidateList(ctx)
	return book.ID, nil
}

type BookPatch struct {
	URL         *string  `json:"url"`
	Title       *string  `json:"title"`
	Author      *string  `json:"author"`
	Price       *float64 `json:"price"`
	Description *string  `json:"desc"`
	Language    *string  `json:"language"`
}

func (s *CatalogService) UpdateBook(ctx context.Context, callerID, bookID string, patch BookPatch) (*domain.Book, error) {
	if err := s.ensureAdmin(callerID, "Only admin can update books"); err != nil {
		return nil, err
	}
	book, err := s.books.FindByID(bookID)
	if err != nil {
		return nil, apperr.Internal("Internal server error", err)
	}
	if book == nil {
		return nil, apperr.NotFound("Book not found")
	}

	if patch.URL != nil {
		if !validURL(*patch.URL) {
			return nil, apperr.BadRequest("Invalid image URL")
		}
		book.URL = *patch.URL
	}
	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, apperr.BadRequest("Title is required")
		}
		book.Title = *patch.Title
	}
	if patch.Author != nil {
		if *patch.Author == "" {
			return nil, apperr.BadRequest("Author is required")
		}
		book.Author = *patch.Author
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, apperr.BadRequest("Price must be non-negative")
		}
		book.Price = *patch.Price
	}
	if patch.Description != nil {
		if utf8.RuneCountInString(*patch.Description) < 5 {
			return nil, apperr.BadRequest("Description must be at least 5 characters")
		}
		book.Description = *patch.Description
	}
	if patch.Language != nil {
		if *patch.Language == "" {
			return nil, apperr.BadRequest("Language is required")
		}
		book.Language = *patch.Language
	}

	if err := s.books.Update(book); err != nil {
		return nil, apperr.Internal("Internal server error", err)
	}
	s.invalidateList(ctx)
	return book, nil
}

// DeleteBook 不级联清理各账号的 cart/favourites，列表读取侧容忍悬挂引用
func (s *CatalogService) DeleteBook(ctx context.Context, callerID, bookID string) error {
	if err := s.ensureAdmin(callerID, "Only admin can delete books"); err != nil {
		return err
	}
	ok, err := s.books.Delete(bookID)
	if err != nil {
		return apperr.Internal("Internal server error", err)
	}
	if !ok {
		return apperr.NotFound("Book not found")
	}
	s.invalidateList(ctx)
	return nil
}

func (s *CatalogService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	if s.cache == nil {
		books, err := s.books.List()
		if err != nil {
			return nil, apperr.Internal("Internal server error", err)
		}
		return books, nil
	}
	out, err := cache.GetOrLoadJSON[[]domain.Book](s.cache, ctx, booksCacheKey, booksCacheTTL,
		func(ctx context.Context) (*[]domain.Book, error) {
			books, e := s.books.List()
			if e != nil {
				return nil, e
			}
			return &books, nil
		})
	if err != nil {
		return nil, apperr.Internal("Internal server error", err)
	}
	if out == nil {
		return []domain.Book{}, nil
	}
	return *out, nil
}

func (s *CatalogService) invalidateList(ctx context.Context) {
	if s.cache != nil {
		s.cache.Del(ctx, booksCacheKey)
	}
}
