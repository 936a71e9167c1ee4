package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCartAddRemoveCycle(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signupUser(t, "adminuser", "admin@example.com", "admin")
	user := env.signupUser(t, "plainuser", "user@example.com", "")
	bookID := env.addBook(t, admin.ID, "Some Book")

	list, err := env.Membership.Add(user.ID, KindCart, bookID)
	require.NoError(t, err)
	require.Equal(t, []string{bookID}, list)

	// 重复添加必须报错，不能静默成功
	_, err = env.Membership.Add(user.ID, KindCart, bookID)
	requireAppErr(t, err, http.StatusBadRequest, "Book is already in cart")

	list, err = env.Membership.Remove(user.ID, KindCart, bookID)
	require.NoError(t, err)
	require.Empty(t, list)

	_, err = env.Membership.Remove(user.ID, KindCart, bookID)
	requireAppErr(t, err, http.StatusBadRequest, "Book is not in cart")
}

func TestFavouritesAddRemoveCycle(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signupUser(t, "adminuser", "admin@example.com", "admin")
	user := env.signupUser(t, "plainuser", "user@example.com", "")
	bookID := env.addBook(t, admin.ID, "Some Book")

	list, err := env.Membership.Add(user.ID, KindFavourites, bookID)
	require.NoError(t, err)
	require.Equal(t, []string{bookID}, list)

	_, err = env.Membership.Add(user.ID, KindFavourites, bookID)
	requireAppErr(t, err, http.StatusBadRequest, "Book already in favourites")

	list, err = env.Membership.Remove(user.ID, KindFavourites, bookID)
	require.NoError(t, err)
	require.Empty(t, list)

	_, err = env.Membership.Remove(user.ID, KindFavourites, bookID)
	requireAppErr(t, err, http.StatusBadRequest, "Book is not in favourites")
}

// 收藏夹校验书存在、购物车不校验
func TestExistenceCheckAsymmetry(t *testing.T) {
	env := newTestEnv(t)
	user := env.signupUser(t, "plainuser", "user@example.com", "")

	_, err := env.Membership.Add(user.ID, KindFavourites, "no-such-book")
	requireAppErr(t, err, http.StatusNotFound, "Book not found")

	list, err := env.Membership.Add(user.ID, KindCart, "no-such-book")
	require.NoError(t, err)
	require.Equal(t, []string{"no-such-book"}, list)
}

func TestMembershipUnknownAccount(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signupUser(t, "adminuser", "admin@example.com", "admin")
	bookID := env.addBook(t, admin.ID, "Some Book")

	_, err := env.Membership.Add("missing-id", KindCart, bookID)
	requireAppErr(t, err, http.StatusNotFound, "User not found")
}

func TestResolveSkipsDanglingIDs(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signupUser(t, "adminuser", "admin@example.com", "admin")
	user := env.signupUser(t, "plainuser", "user@example.com", "")

	keep := env.addBook(t, admin.ID, "Kept Book")
	doomed := env.addBook(t, admin.ID, "Doomed Book")

	_, err := env.Membership.Add(user.ID, KindCart, keep)
	require.NoError(t, err)
	_, err = env.Membership.Add(user.ID, KindCart, doomed)
	require.NoError(t, err)

	// 删书不级联清理购物车，读取侧要容忍悬挂 id
	require.NoError(t, env.Catalog.DeleteBook(t.Context(), admin.ID, doomed))

	books, err := env.Membership.Resolve(user.ID, KindCart)
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, keep, books[0].ID)
}

func TestListsAreIndependent(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signupUser(t, "adminuser", "admin@example.com", "admin")
	user := env.signupUser(t, "plainuser", "user@example.com", "")
	bookID := env.addBook(t, admin.ID, "Some Book")

	_, err := env.Membership.Add(user.ID, KindCart, bookID)
	require.NoError(t, err)

	// 同一本书进收藏夹不算重复
	list, err := env.Membership.Add(user.ID, KindFavourites, bookID)
	require.NoError(t, err)
	require.Equal(t, []string{bookID}, list)
}
