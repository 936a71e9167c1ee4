package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-backend/internal/service"
	mdw "bookstore-backend/internal/transport/http/middleware"
	resp "bookstore-backend/internal/transport/http/response"
)

type BookHandler struct {
	svc *service.CatalogService
}

func NewBookHandler(svc *service.CatalogService) *BookHandler { return &BookHandler{svc: svc} }

func (h *BookHandler) AddBook(c *gin.Context) {
	var in service.BookInput
	if !bindJSON(c, &in) {
		return
	}
	bookID, err := h.svc.AddBook(c.Request.Context(), c.GetString(mdw.KeyUserID), in)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Book added successfully",
		"bookId":  bookID,
	})
}

func (h *BookHandler) UpdateBook(c *gin.Context) {
	var patch service.BookPatch
	if !bindJSON(c, &patch) {
		return
	}
	book, err := h.svc.UpdateBook(c.Request.Context(), c.GetString(mdw.KeyUserID), c.Param("bookId"), patch)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Book updated successfully",
		"book":    book,
	})
}

func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := h.svc.DeleteBook(c.Request.Context(), c.GetString(mdw.KeyUserID), c.Param("bookId")); err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}

func (h *BookHandler) AllBooks(c *gin.Context) {
	books, err := h.svc.ListBooks(c.Request.Context())
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books})
}
