package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func validBook() BookInput {
	price := 19.99
	return BookInput{
		URL:         "https://example.com/cover.jpg",
		Title:       "The Go Programming Language",
		Author:      "Donovan & Kernighan",
		Price:       &price,
		Description: "The authoritative resource",
		Language:    "English",
	}
}

func TestAddBookValidationOrder(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signupUser(t, "adminuser", "admin@example.com", "admin")

	neg := -1.0
	cases := []struct {
		name   string
		mutate func(*BookInput)
		msg    string
	}{
		{"bad url", func(in *BookInput) { in.URL = "not a url" }, "Invalid image URL"},
		{"relative url", func(in *BookInput) { in.URL = "/cover.jpg" }, "Invalid image URL"},
		{"missing title", func(in *BookInput) { in.Title = "" }, "Title is required"},
		{"missing author", func(in *BookInput) { in.Author = "" }, "Author is required"},
		{"missing price", func(in *BookInput) { in.Price = nil }, "Price must be non-negative"},
		{"negative price", func(in *BookInput) { in.Price = &neg }, "Price must be non-negative"},
		{"short description", func(in *BookInput) { in.Description = "abc" }, "Description must be at least 5 characters"},
		{"multibyte description counts runes", func(in *BookInput) { in.Description = "良い本" }, "Description must be at least 5 characters"},
		{"missing language", func(in *BookInput) { in.Language = "" }, "Language is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validBook()
			tc.mutate(&in)
			_, err := env.Catalog.AddBook(t.Context(), admin.ID, in)
			requireAppErr(t, err, http.StatusBadRequest, tc.msg)
		})
	}
}

func TestAddBookAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	user := env.signupUser(t, "plainuser", "user@example.com", "")

	_, err := env.Catalog.AddBook(t.Context(), user.ID, validBook())
	requireAppErr(t, err, http.StatusForbidden, "Only admin can add books")

	// 被删账号的 uid 也拿不到权限
	_, err = env.Catalog.AddBook(t.Context(), "missing-id", validBook())
	requireAppErr(t, err, http.StatusForbidden, "Only admin can add books")

	// 被拒的请求不能留下任何书
	books, err := env.Catalog.ListBooks(t.Context())
	require.NoError(t, err)
	require.Empty(t, books)
}

func TestUpdateBookPartial(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signupUser(t, "adminuser", "admin@example.com", "admin")
	user := env.signupUser(t, "plainuser", "user@example.com", "")
	bookID := env.addBook(t, admin.ID, "Original Title")

	_, err := env.Catalog.UpdateBook(t.Context(), user.ID, bookID, BookPatch{})
	requireAppErr(t, err, http.StatusForbidden, "Only admin can update books")

	_, err = env.Catalog.UpdateBook(t.Context(), admin.ID, "missing-id", BookPatch{})
	requireAppErr(t, err, http.StatusNotFound, "Book not found")

	newPrice := 4.5
	updated, err := env.Catalog.UpdateBook(t.Context(), admin.ID, bookID, BookPatch{Price: &newPrice})
	require.NoError(t, err)
	require.Equal(t, 4.5, updated.Price)
	// 没提交的字段原样保留
	require.Equal(t, "Original Title", updated.Title)

	empty := ""
	_, err = env.Catalog.UpdateBook(t.Context(), admin.ID, bookID, BookPatch{Title: &empty})
	requireAppErr(t, err, http.StatusBadRequest, "Title is required")
}

func TestDeleteBook(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signupUser(t, "adminuser", "admin@example.com", "admin")
	user := env.signupUser(t, "plainuser", "user@example.com", "")
	bookID := env.addBook(t, admin.ID, "Some Book")

	err := env.Catalog.DeleteBook(t.Context(), user.ID, bookID)
	requireAppErr(t, err, http.StatusForbidden, "Only admin can delete books")

	require.NoError(t, env.Catalog.DeleteBook(t.Context(), admin.ID, bookID))

	err = env.Catalog.DeleteBook(t.Context(), admin.ID, bookID)
	requireAppErr(t, err, http.StatusNotFound, "Book not found")
}

func TestListBooksNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signupUser(t, "adminuser", "admin@example.com", "admin")

	first := env.addBook(t, admin.ID, "First Book")
	second := env.addBook(t, admin.ID, "Second Book")

	books, err := env.Catalog.ListBooks(t.Context())
	require.NoError(t, err)
	require.Len(t, books, 2)
	require.Equal(t, second, books[0].ID)
	require.Equal(t, first, books[1].ID)
}

func TestAdminServiceGating(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signupUser(t, "adminuser", "admin@example.com", "admin")
	user := env.signupUser(t, "plainuser", "user@example.com", "")

	_, _, err := env.Admin.ListAccounts(user.ID, 0, 20)
	requireAppErr(t, err, http.StatusForbidden, "Admins only")

	accounts, total, err := env.Admin.ListAccounts(admin.ID, 0, 20)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, accounts, 2)

	err = env.Admin.DeleteAccount(admin.ID, user.ID)
	require.NoError(t, err)

	err = env.Admin.DeleteAccount(admin.ID, user.ID)
	requireAppErr(t, err, http.StatusNotFound, "User not found")

	// 删除后旧 uid 第一次使用就 404
	_, err = env.Account.Profile(user.ID)
	requireAppErr(t, err, http.StatusNotFound, "User not found")
}
