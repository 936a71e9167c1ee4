package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account 购物车/收藏夹直接挂在账号行上（JSON 序列化列），
// 读-改-写不做事务，并发修改同一列表时 last-write-wins
type Account struct {
	ID           string   `gorm:"primaryKey;size:32" json:"id"`
	Username     string   `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email        string   `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string   `gorm:"size:100;not null" json:"-"`
	Address      string   `gorm:"size:255;not null" json:"address"`
	Role         string   `gorm:"size:16;not null;default:user" json:"role"` // "user"/"admin"
	Cart         []string `gorm:"serializer:json" json:"cart"`
	Favourites   []string `gorm:"serializer:json" json:"favourites"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Account) TableName() string { return "users" }

// PublicView signup/signin 返回的精简视图
type PublicView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (a *Account) Public() PublicView {
	return PublicView{ID: a.ID, Username: a.Username, Email: a.Email}
}

// AccountRepository 查无记录返回 (nil, nil)
type AccountRepository interface {
	Create(a *Account) error
	FindByID(id string) (*Account, error)
	FindByUsername(username string) (*Account, error)
	FindByEmail(email string) (*Account, error)
	Update(a *Account) error
	List(offset, limit int) ([]Account, int64, error)
	Delete(id string) (bool, error)
}
