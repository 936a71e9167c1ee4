package service

import (
	"slices"

	"bookstore-backend/internal/apperr"
	"bookstore-backend/internal/domain"
)

// ListKind cart 和 favourites 共用同一套 add/remove 逻辑，差异收敛到这张配置表
type ListKind int

const (
	KindCart ListKind = iota
	KindFavourites
)

type kindRule struct {
	checkBook  bool // add 前是否校验书存在（只有收藏夹开这个开关）
	alreadyMsg string
	missingMsg string
}

var kindRules = map[ListKind]kindRule{
	KindCart: {
		checkBook:  false,
		alreadyMsg: "Book is already in cart",
		missingMsg: "Book is not in cart",
	},
	KindFavourites: {
		checkBook:  true,
		alreadyMsg: "Book already in favourites",
		missingMsg: "Book is not in favourites",
	},
}

func (k ListKind) of(a *domain.Account) *[]string {
	if k == KindCart {
		return &a.Cart
	}
	return &a.Favourites
}

type MembershipService struct {
	accounts domain.AccountRepository
	books    domain.BookRepository
}

func NewMembershipService(accounts domain.AccountRepository, books domain.BookRepository) *MembershipService {
	return &MembershipService{accounts: accounts, books: books}
}

func (s *MembershipService) loadAccount(uid string) (*domain.Account, error) {
	acct, err := s.accounts.FindByID(uid)
	if err != nil {
		return nil, apperr.Internal("Internal server error", err)
	}
	if acct == nil {
		return nil, apperr.NotFound("User not found")
	}
	return acct, nil
}

// Add 重复加报错而不是静默忽略，暴露调用方状态不同步
func (s *MembershipService) Add(uid string, kind ListKind, bookID string) ([]string, error) {
	rule := kindRules[kind]

	if rule.checkBook {
		book, err := s.books.FindByID(bookID)
		if err != nil {
			return nil, apperr.Internal("Internal server error", err)
		}
		if book == nil {
			return nil, apperr.NotFound("Book not found")
		}
	}

	acct, err := s.loadAccount(uid)
	if err != nil {
		return nil, err
	}
	list := kind.of(acct)
	if slices.Contains(*list, bookID) {
		return nil, apperr.BadRequest(rule.alreadyMsg)
	}
	*list = append(*list, bookID)
	if err := s.accounts.Update(acct); err != nil {
		return nil, apperr.Internal("Internal server error", err)
	}
	return *list, nil
}

func (s *MembershipService) Remove(uid string, kind ListKind, bookID string) ([]string, error) {
	rule := kindRules[kind]

	acct, err := s.loadAccount(uid)
	if err != nil {
		return nil, err
	}
	list := kind.of(acct)
	idx := slices.Index(*list, bookID)
	if idx < 0 {
		return nil, apperr.BadRequest(rule.missingMsg)
	}
	*list = slices.Delete(*list, idx, idx+1)
	if err := s.accounts.Update(acct); err != nil {
		return nil, apperr.Internal("Internal server error", err)
	}
	return *list, nil
}

// Resolve 把 id 列表展开成完整书目；删书不级联，悬挂 id 直接跳过
func (s *MembershipService) Resolve(uid string, kind ListKind) ([]domain.Book, error) {
	acct, err := s.loadAccount(uid)
	if err != nil {
		return nil, err
	}
	list := *kind.of(acct)
	books, err := s.books.FindByIDs(list)
	if err != nil {
		return nil, apperr.Internal("Internal server error", err)
	}
	// 保持列表原始顺序
	byID := make(map[string]domain.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}
	out := make([]domain.Book, 0, len(list))
	for _, id := range list {
		if b, ok := byID[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}
