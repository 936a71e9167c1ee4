package service

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"bookstore-backend/internal/apperr"
	"bookstore-backend/internal/core/auth"
	"bookstore-backend/internal/domain"
	"bookstore-backend/pkg/utils"
)

type AccountService struct {
	accounts domain.AccountRepository
	jwter    *auth.JWTer
}

func NewAccountService(accounts domain.AccountRepository, jwter *auth.JWTer) *AccountService {
	return &AccountService{accounts: accounts, jwter: jwter}
}

type SignupInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
	Role     string `json:"role"`
}

// 校验按字段声明顺序短路，只报第一个失败项
func (in *SignupInput) validate() error {
	if utf8.RuneCountInString(in.Username) < 4 {
		return apperr.BadRequest("Username must be at least 4 characters")
	}
	if !validEmail(in.Email) {
		return apperr.BadRequest("Invalid email address")
	}
	if utf8.RuneCountInString(in.Password) < 5 {
		return apperr.BadRequest("Password must be at least 5 characters")
	}
	if utf8.RuneCountInString(in.Address) < 3 {
		return apperr.BadRequest("Address must be at least 3 characters")
	}
	if in.Role != "" && in.Role != domain.RoleUser && in.Role != domain.RoleAdmin {
		return apperr.BadRequest("Invalid role")
	}
	return nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	// 只接受裸地址，不接受 "Name <a@b>" 形式；域名里必须有点
	if err != nil || addr.Address != strings.TrimSpace(s) {
		return false
	}
	at := strings.LastIndexByte(addr.Address, '@')
	return strings.ContainsRune(addr.Address[at+1:], '.')
}

func (s *AccountService) Signup(in SignupInput) (string, *domain.Account, error) {
	if err := in.validate(); err != nil {
		return "", nil, err
	}

	// 先查用户名再查邮箱：两者都冲突时报用户名，错误信息才确定
	if existing, err := s.accounts.FindByUsername(in.Username); err != nil {
		return "", nil, apperr.Internal("Internal server error", err)
	} else if existing != nil {
		return "", nil, apperr.BadRequest("Username already taken")
	}
	if existing, err := s.accounts.FindByEmail(in.Email); err != nil {
		return "", nil, apperr.Internal("Internal server error", err)
	} else if existing != nil {
		return "", nil, apperr.BadRequest("Email already registered")
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	acct := &domain.Account{
		ID:           utils.NewID(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: utils.HashPassword(in.Password),
		Address:      in.Address,
		Role:         role,
		Cart:         []string{},
		Favourites:   []string{},
	}
	if err := s.accounts.Create(acct); err != nil {
		return "", nil, apperr.Internal("Internal server error", err)
	}

	token, err := s.jwter.Issue(acct.ID)
	if err != nil {
		return "", nil, apperr.Internal("Internal server error", err)
	}
	return token, acct, nil
}

type SigninInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *AccountService) Signin(in SigninInput) (string, *domain.Account, error) {
	if !validEmail(in.Email) {
		return "", nil, apperr.BadRequest("Invalid email address")
	}
	if utf8.RuneCountInString(in.Password) < 5 {
		return "", nil, apperr.BadRequest("Password must be at least 5 characters")
	}

	acct, err := s.accounts.FindByEmail(in.Email)
	if err != nil {
		return "", nil, apperr.Internal("Internal server error", err)
	}
	// 查无此人和密码不对返回同一句话，不暴露哪个字段错了
	if acct == nil || !utils.CheckPassword(in.Password, acct.PasswordHash) {
		return "", nil, apperr.BadRequest("Invalid email or password")
	}

	token, err := s.jwter.Issue(acct.ID)
	if err != nil {
		return "", nil, apperr.Internal("Internal server error", err)
	}
	return token, acct, nil
}

func (s *AccountService) Profile(uid string) (*domain.Account, error) {
	acct, err := s.accounts.FindByID(uid)
	if err != nil {
		return nil, apperr.Internal("Internal server error", err)
	}
	if acct == nil {
		return nil, apperr.NotFound("User not found")
	}
	return acct, nil
}

func (s *AccountService) UpdateAddress(uid, address string) (*domain.Account, error) {
	if utf8.RuneCountInString(address) < 3 {
		return nil, apperr.BadRequest("Address must be at least 3 characters")
	}
	acct, err := s.accounts.FindByID(uid)
	if err != nil {
		return nil, apperr.Internal("Internal server error", err)
	}
	if acct == nil {
		return nil, apperr.NotFound("User not found")
	}
	acct.Address = address
	if err := s.accounts.Update(acct); err != nil {
		return nil, apperr.Internal("Internal server error", err)
	}
	return acct, nil
}
