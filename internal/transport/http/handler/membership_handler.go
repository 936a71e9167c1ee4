package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-backend/internal/service"
	mdw "bookstore-backend/internal/transport/http/middleware"
	resp "bookstore-backend/internal/transport/http/response"
)

// MembershipHandler cart 和 favourites 两套路由背后是同一个服务，
// 差异只有 kind、响应字段名和提示语
type MembershipHandler struct {
	svc *service.MembershipService
}

func NewMembershipHandler(svc *service.MembershipService) *MembershipHandler {
	return &MembershipHandler{svc: svc}
}

func (h *MembershipHandler) AddToCart(c *gin.Context) {
	h.add(c, service.KindCart, "cart", "Book added to cart")
}

func (h *MembershipHandler) RemoveFromCart(c *gin.Context) {
	h.remove(c, service.KindCart, "cart", "Book removed from cart")
}

func (h *MembershipHandler) AddToFavourites(c *gin.Context) {
	h.add(c, service.KindFavourites, "favourites", "Book added to favourites")
}

func (h *MembershipHandler) RemoveFromFavourites(c *gin.Context) {
	h.remove(c, service.KindFavourites, "favourites", "Book removed from favourites")
}

func (h *MembershipHandler) GetCart(c *gin.Context) {
	h.get(c, service.KindCart, "cart")
}

func (h *MembershipHandler) GetFavourites(c *gin.Context) {
	h.get(c, service.KindFavourites, "favourites")
}

func (h *MembershipHandler) add(c *gin.Context, kind service.ListKind, field, msg string) {
	list, err := h.svc.Add(c.GetString(mdw.KeyUserID), kind, c.Param("bookId"))
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, field: list})
}

func (h *MembershipHandler) remove(c *gin.Context, kind service.ListKind, field, msg string) {
	list, err := h.svc.Remove(c.GetString(mdw.KeyUserID), kind, c.Param("bookId"))
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, field: list})
}

func (h *MembershipHandler) get(c *gin.Context, kind service.ListKind, field string) {
	books, err := h.svc.Resolve(c.GetString(mdw.KeyUserID), kind)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{field: books})
}
