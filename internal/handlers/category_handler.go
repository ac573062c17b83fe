package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/models"
	"tasktrack/internal/services"
)

type CategoryHandler struct {
	service services.CategoryService
}

func NewCategoryHandler(service services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// GET /api/categories
func (h *CategoryHandler) GetAll(c *gin.Context) {
	userID, _ := currentUserID(c)

	categories, err := h.service.GetAll(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[category][list][err] user=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve categories"})
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

// POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	userID, _ := currentUserID(c)

	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[category][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	category := &models.Category{
		UserID: userID,
		Name:   req.Name,
		Color:  req.Color,
	}
	created, err := h.service.Create(c.Request.Context(), category)
	if err != nil {
		log.Printf("[category][create][err] user=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category"})
		return
	}
	log.Printf("[category][create][ok] id=%d user=%d name=%q", created.ID, userID, created.Name)
	c.JSON(http.StatusCreated, created)
}

// DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	userID, _ := currentUserID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		if err == models.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		log.Printf("[category][delete][err] id=%d user=%d: %v", id, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete category"})
		return
	}
	log.Printf("[category][delete][ok] id=%d user=%d", id, userID)
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
