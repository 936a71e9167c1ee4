package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookstore-backend/internal/service"
	mdw "bookstore-backend/internal/transport/http/middleware"
	resp "bookstore-backend/internal/transport/http/response"
)

// AdminHandler 账号管理只在管理端口暴露（cmd/admin），用户 API 不挂这些路由
type AdminHandler struct {
	svc *service.AdminService
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler { return &AdminHandler{svc: svc} }

func (h *AdminHandler) ListUsers(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	accounts, total, err := h.svc.ListAccounts(c.GetString(mdw.KeyUserID), offset, limit)
	if err != nil {
		resp.Err(c, err)
		return
	}
	type row struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}
	items := make([]row, 0, len(accounts))
	for _, a := range accounts {
		items = append(items, row{ID: a.ID, Username: a.Username, Email: a.Email, Role: a.Role})
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "items": items})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.svc.DeleteAccount(c.GetString(mdw.KeyUserID), c.Param("id")); err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
