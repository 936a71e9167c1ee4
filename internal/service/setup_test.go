package service

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bookstore-backend/internal/apperr"
	"bookstore-backend/internal/core/auth"
	"bookstore-backend/internal/domain"
	"bookstore-backend/internal/repo"
)

type testEnv struct {
	DB       *gorm.DB
	Accounts *repo.AccountRepo
	Books    *repo.BookRepo
	JWTer    *auth.JWTer

	Account    *AccountService
	Catalog    *CatalogService
	Membership *MembershipService
	Admin      *AdminService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库只认单连接，多连接会各开一个空库
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Account{}, &domain.Book{}))

	accounts := repo.NewAccountRepo(db)
	books := repo.NewBookRepo(db)
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "bookstore-test", TTL: 7 * 24 * time.Hour}

	return &testEnv{
		DB:         db,
		Accounts:   accounts,
		Books:      books,
		JWTer:      jwter,
		Account:    NewAccountService(accounts, jwter),
		Catalog:    NewCatalogService(accounts, books, nil),
		Membership: NewMembershipService(accounts, books),
		Admin:      NewAdminService(accounts),
	}
}

func validSignup() SignupInput {
	return SignupInput{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
		Address:  "123 Test Street",
	}
}

func (e *testEnv) signupUser(t *testing.T, username, email, role string) *domain.Account {
	t.Helper()
	in := validSignup()
	in.Username = username
	in.Email = email
	in.Role = role
	_, acct, err := e.Account.Signup(in)
	require.NoError(t, err)
	return acct
}

func (e *testEnv) addBook(t *testing.T, adminID, title string) string {
	t.Helper()
	price := 9.99
	id, err := e.Catalog.AddBook(t.Context(), adminID, BookInput{
		URL:         "https://example.com/cover.jpg",
		Title:       title,
		Author:      "Some Author",
		Price:       &price,
		Description: "A long enough description",
		Language:    "English",
	})
	require.NoError(t, err)
	return id
}

func requireAppErr(t *testing.T, err error, status int, msg string) {
	t.Helper()
	require.Error(t, err)
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae), "expected apperr.Error, got %T", err)
	require.Equal(t, status, ae.Status)
	require.Equal(t, msg, ae.Msg)
}
