package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-magmart-api/internal/service"
	resp "go-magmart-api/internal/transport/http/response"
	"go-magmart-api/internal/validate"
)

// ItemHandler 内存态演示 CRUD，store 显式注入。
type ItemHandler struct {
	store *service.ItemStore
}

func NewItemHandler(store *service.ItemStore) *ItemHandler {
	return &ItemHandler{store: store}
}

type itemReq struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type itemPatchReq struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
}

func (h *ItemHandler) Create(c *gin.Context) {
	var in itemReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	in.Name = validate.Sanitize(in.Name)
	in.Description = validate.Sanitize(in.Description)
	if in.Name == "" {
		resp.Fail(c, http.StatusBadRequest, "Name is required.")
		return
	}
	it := h.store.Create(service.ItemInput{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
	})
	resp.OK(c, http.StatusCreated, "Item created successfully", "item", it)
}

func (h *ItemHandler) List(c *gin.Context) {
	resp.OK(c, http.StatusOK, "Items fetched successfully", "items", h.store.List())
}

func (h *ItemHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	it := h.store.GetByID(id)
	if it == nil {
		resp.Fail(c, http.StatusNotFound, "Item not found.")
		return
	}
	resp.OK(c, http.StatusOK, fmt.Sprintf("Item with id %d fetched successfully", id), "item", it)
}

func (h *ItemHandler) GetByName(c *gin.Context) {
	name := validate.Sanitize(c.Param("name"))
	it := h.store.GetByName(name)
	if it == nil {
		resp.Fail(c, http.StatusNotFound, "Item not found.")
		return
	}
	resp.OK(c, http.StatusOK, fmt.Sprintf("Item %s fetched successfully", name), "item", it)
}

func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in itemPatchReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if in.Name == nil && in.Description == nil && in.Price == nil && in.Quantity == nil {
		resp.Fail(c, http.StatusBadRequest, "At least one field is required.")
		return
	}
	if in.Name != nil {
		s := validate.Sanitize(*in.Name)
		if s == "" {
			resp.Fail(c, http.StatusBadRequest, "Name must not be empty.")
			return
		}
		in.Name = &s
	}
	if in.Description != nil {
		s := validate.Sanitize(*in.Description)
		in.Description = &s
	}
	it := h.store.Update(id, service.ItemPatch{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
	})
	if it == nil {
		resp.Fail(c, http.StatusNotFound, "Item not found.")
		return
	}
	resp.OK(c, http.StatusOK, fmt.Sprintf("Item with id %d updated successfully", id), "item", it)
}

func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	it := h.store.Delete(id)
	if it == nil {
		resp.Fail(c, http.StatusNotFound, "Item not found.")
		return
	}
	resp.OK(c, http.StatusOK, fmt.Sprintf("Item with id %d deleted successfully", id), "item", it)
}
