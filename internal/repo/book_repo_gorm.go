package repo

import (
	"errors"

	"gorm.io/gorm"

	"bookstore-backend/internal/domain"
)

type BookRepo struct{ db *gorm.DB }

func NewBookRepo(db *gorm.DB) *BookRepo { return &BookRepo{db: db} }

func (r *BookRepo) Create(b *domain.Book) error { return r.db.Create(b).Error }

func (r *BookRepo) FindByID(id string) (*domain.Book, error) {
	var b domain.Book
	err := r.db.First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &b, err
}

func (r *BookRepo) FindByIDs(ids []string) ([]domain.Book, error) {
	if len(ids) == 0 {
		return []domain.Book{}, nil
	}
	var books []domain.Book
	err := r.db.Where("id IN ?", ids).Find(&books).Error
	return books, err
}

// List 最新的书排前面
func (r *BookRepo) List() ([]domain.Book, error) {
	var books []domain.Book
	err := r.db.Order("created_at desc").Find(&books).Error
	return books, err
}

func (r *BookRepo) Update(b *domain.Book) error { return r.db.Save(b).Error }

func (r *BookRepo) Delete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.Book{})
	return res.RowsAffected > 0, res.Error
}
