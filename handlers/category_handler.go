package handlers

import (
	"blogicum/helper"
	"blogicum/models"
	"blogicum/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	Helper          *helper.HTTPHelper
}

func NewCategoryHandler(categoryService services.CategoryService, httpHelper *helper.HTTPHelper) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, Helper: httpHelper}
}

// GetCategories lists published categories; the admin variant lists all.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	h.list(c, true)
}

func (h *CategoryHandler) GetAllCategories(c *gin.Context) {
	h.list(c, false)
}

func (h *CategoryHandler) list(c *gin.Context, publishedOnly bool) {
	categories, err := h.categoryService.GetCategories(c.Request.Context(), publishedOnly)
	if err != nil {
		h.Helper.SendInternalError(c, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	h.Helper.SendSuccess(c, "Categories loaded", categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondError(h.Helper, c, err, "")
		return
	}

	h.Helper.SendSuccess(c, "Category created", category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		respondError(h.Helper, c, err, "")
		return
	}

	h.Helper.SendSuccess(c, "Category updated", category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("slug")); err != nil {
		respondError(h.Helper, c, err, "")
		return
	}

	h.Helper.SendSuccess(c, "Category deleted", h.Helper.EmptyJsonMap())
}
