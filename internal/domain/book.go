package domain

import "time"

type Book struct {
	ID          string  `gorm:"primaryKey;size:32" json:"id"`
	URL         string  `gorm:"size:512;not null" json:"url"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Author      string  `gorm:"size:255;not null" json:"author"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `gorm:"size:2048;not null" json:"desc"`
	Language    string  `gorm:"size:64;not null" json:"language"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Book) TableName() string { return "books" }

// BookRepository 查无记录返回 (nil, nil)
type BookRepository interface {
	Create(b *Book) error
	FindByID(id string) (*Book, error)
	FindByIDs(ids []string) ([]Book, error)
	List() ([]Book, error)
	Update(b *Book) error
	Delete(id string) (bool, error)
}
