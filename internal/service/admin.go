package service

import (
	"bookstore-backend/internal/apperr"
	"bookstore-backend/internal/domain"
)

// AdminService 管理端（cmd/admin）专用：账号的查看与删除走这里，不进用户 API
type AdminService struct {
	accounts domain.AccountRepository
}

func NewAdminService(accounts domain.AccountRepository) *AdminService {
	return &AdminService{accounts: accounts}
}

func (s *AdminService) ensureAdmin(callerID string) error {
	acct, err := s.accounts.FindByID(callerID)
	if err != nil {
		return apperr.Internal("Internal server error", err)
	}
	if acct == nil || acct.Role != domain.RoleAdmin {
		return apperr.Forbidden("Admins only")
	}
	return nil
}

func (s *AdminService) ListAccounts(callerID string, offset, limit int) ([]domain.Account, int64, error) {
	if err := s.ensureAdmin(callerID); err != nil {
		return nil, 0, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	accounts, total, err := s.accounts.List(offset, limit)
	if err != nil {
		return nil, 0, apperr.Internal("Internal server error", err)
	}
	return accounts, total, nil
}

func (s *AdminService) DeleteAccount(callerID, id string) error {
	if err := s.ensureAdmin(callerID); err != nil {
		return err
	}
	ok, err := s.accounts.Delete(id)
	if err != nil {
		return apperr.Internal("Internal server error", err)
	}
	if !ok {
		return apperr.NotFound("User not found")
	}
	return nil
}
