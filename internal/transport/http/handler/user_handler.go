package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-backend/internal/service"
	mdw "bookstore-backend/internal/transport/http/middleware"
	resp "bookstore-backend/internal/transport/http/response"
)

type UserHandler struct {
	svc *service.AccountService
}

func NewUserHandler(svc *service.AccountService) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Signup(c *gin.Context) {
	var in service.SignupInput
	if !bindJSON(c, &in) {
		return
	}
	token, acct, err := h.svc.Signup(in)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful",
		"token":   token,
		"user":    acct.Public(),
	})
}

func (h *UserHandler) Signin(c *gin.Context) {
	var in service.SigninInput
	if !bindJSON(c, &in) {
		return
	}
	token, acct, err := h.svc.Signin(in)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Signin successful",
		"token":   token,
		"user":    acct.Public(),
	})
}

// UserInfo 返回完整账号（PasswordHash 打了 json:"-"，不会出现在响应里）
func (h *UserHandler) UserInfo(c *gin.Context) {
	acct, err := h.svc.Profile(c.GetString(mdw.KeyUserID))
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, acct)
}

func (h *UserHandler) UpdateAddress(c *gin.Context) {
	var in struct {
		Address string `json:"address"`
	}
	if !bindJSON(c, &in) {
		return
	}
	acct, err := h.svc.UpdateAddress(c.GetString(mdw.KeyUserID), in.Address)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Address updated successfully",
		"user":    acct,
	})
}
