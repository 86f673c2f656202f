package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-magmart-api/internal/service"
	resp "go-magmart-api/internal/transport/http/response"
	"go-magmart-api/internal/validate"
)

type CategoryHandler struct {
	categories *service.CategoryService
	log        *zap.Logger
}

func NewCategoryHandler(categories *service.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, log: log}
}

type categoryReq struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var in categoryReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	in.Name = validate.Sanitize(in.Name)
	if in.Name == "" {
		resp.Fail(c, http.StatusBadRequest, "Name is required.")
		return
	}
	cat, err := h.categories.Create(c.Request.Context(), in.Name)
	if err != nil {
		if isDupKey(err) {
			resp.Fail(c, http.StatusBadRequest, "Category name is already in use.")
			return
		}
		internalErr(c, h.log, err)
		return
	}
	resp.OK(c, http.StatusCreated, "Category created successfully", "category", cat)
}

func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.categories.List(c.Request.Context())
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	resp.OK(c, http.StatusOK, "Categories fetched successfully", "categories", cats)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cat, err := h.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	if cat == nil {
		resp.Fail(c, http.StatusNotFound, "Category not found.")
		return
	}
	resp.OK(c, http.StatusOK, "Category fetched successfully", "category", cat)
}

func (h *CategoryHandler) Rename(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in categoryReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	in.Name = validate.Sanitize(in.Name)
	if in.Name == "" {
		resp.Fail(c, http.StatusBadRequest, "Name is required.")
		return
	}
	cat, err := h.categories.Rename(c.Request.Context(), id, in.Name)
	if err != nil {
		if isDupKey(err) {
			resp.Fail(c, http.StatusBadRequest, "Category name is already in use.")
			return
		}
		internalErr(c, h.log, err)
		return
	}
	if cat == nil {
		resp.Fail(c, http.StatusNotFound, "Category not found.")
		return
	}
	resp.OK(c, http.StatusOK, "Category updated successfully", "category", cat)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleted, err := h.categories.Delete(c.Request.Context(), id)
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	if !deleted {
		resp.Fail(c, http.StatusNotFound, "Category not found.")
		return
	}
	resp.Message(c, http.StatusOK, "Category deleted successfully")
}
