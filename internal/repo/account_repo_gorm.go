package repo

import (
	"errors"

	"gorm.io/gorm"

	"bookstore-backend/internal/domain"
)

type AccountRepo struct{ db *gorm.DB }

func NewAccountRepo(db *gorm.DB) *AccountRepo { return &AccountRepo{db: db} }

func (r *AccountRepo) Create(a *domain.Account) error { return r.db.Create(a).Error }

func (r *AccountRepo) FindByID(id string) (*domain.Account, error) {
	var a domain.Account
	err := r.db.First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *AccountRepo) FindByUsername(username string) (*domain.Account, error) {
	var a domain.Account
	err := r.db.First(&a, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *AccountRepo) FindByEmail(email string) (*domain.Account, error) {
	var a domain.Account
	err := r.db.First(&a, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *AccountRepo) Update(a *domain.Account) error { return r.db.Save(a).Error }

func (r *AccountRepo) List(offset, limit int) ([]domain.Account, int64, error) {
	var accounts []domain.Account
	tx := r.db.Model(&domain.Account{})
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := tx.Offset(offset).Limit(limit).Order("created_at desc").Find(&accounts).Error; err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}

func (r *AccountRepo) Delete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.Account{})
	return res.RowsAffected > 0, res.Error
}
