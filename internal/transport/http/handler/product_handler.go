package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-magmart-api/internal/domain"
	"go-magmart-api/internal/repo"
	"go-magmart-api/internal/service"
	mdw "go-magmart-api/internal/transport/http/middleware"
	resp "go-magmart-api/internal/transport/http/response"
	"go-magmart-api/internal/validate"
)

type ProductHandler struct {
	products *service.ProductService
	log      *zap.Logger
}

func NewProductHandler(products *service.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{products: products, log: log}
}

type createProductReq struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	DiscountPrice float64  `json:"discountPrice"`
	CountInStock  int      `json:"countInStock"`
	SKU           string   `json:"sku"`
	CategoryID    int64    `json:"categoryId"`
	Brand         *string  `json:"brand"`
	Sizes         []string `json:"sizes"`
	Colours       []string `json:"colours"`
	Collections   string   `json:"collections"`
	Material      *string  `json:"material"`
	Gender        string   `json:"gender"`
	Images        []string `json:"images"`
	ImageAlt      []string `json:"imageAlt"`
	Tags          []string `json:"tags"`
	IsFeatured    bool     `json:"isFeatured"`
	IsPublished   bool     `json:"isPublished"`
}

type updateProductReq struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Price         *float64  `json:"price"`
	DiscountPrice *float64  `json:"discountPrice"`
	CountInStock  *int      `json:"countInStock"`
	CategoryID    *int64    `json:"categoryId"`
	Brand         *string   `json:"brand"`
	Sizes         *[]string `json:"sizes"`
	Colours       *[]string `json:"colours"`
	Images        *[]string `json:"images"`
	Tags          *[]string `json:"tags"`
	IsFeatured    *bool     `json:"isFeatured"`
	IsPublished   *bool     `json:"isPublished"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var in createProductReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	in.Name = validate.Sanitize(in.Name)
	in.Description = validate.Sanitize(in.Description)
	in.SKU = validate.Sanitize(in.SKU)
	switch {
	case in.Name == "" || in.Description == "" || in.SKU == "" || in.Gender == "" || in.Collections == "":
		resp.Fail(c, http.StatusBadRequest, "All fields are required.")
		return
	case in.Price <= 0:
		resp.Fail(c, http.StatusBadRequest, "Price must be positive.")
		return
	case in.CategoryID <= 0:
		resp.Fail(c, http.StatusBadRequest, "Category is required.")
		return
	}

	p := domain.Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		DiscountPrice: in.DiscountPrice,
		CountInStock:  in.CountInStock,
		SKU:           in.SKU,
		CategoryID:    in.CategoryID,
		Brand:         in.Brand,
		Sizes:         in.Sizes,
		Colours:       in.Colours,
		Collections:   in.Collections,
		Material:      in.Material,
		Gender:        in.Gender,
		Images:        in.Images,
		ImageAlt:      in.ImageAlt,
		Tags:          in.Tags,
		IsFeatured:    in.IsFeatured,
		IsPublished:   in.IsPublished,
		CreatorID:     c.GetInt64(mdw.KeyUserID),
	}
	created, err := h.products.Create(c.Request.Context(), &p)
	if err != nil {
		if isDupKey(err) {
			resp.Fail(c, http.StatusBadRequest, "Product name or SKU is already in use.")
			return
		}
		internalErr(c, h.log, err)
		return
	}
	resp.OK(c, http.StatusCreated, "Product created successfully", "product", created)
}

func (h *ProductHandler) List(c *gin.Context) {
	var f repo.ProductFilter
	if v := c.Query("published"); v != "" {
		b := v == "true"
		f.Published = &b
	}
	if v := c.Query("featured"); v != "" {
		b := v == "true"
		f.Featured = &b
	}
	if v := c.Query("categoryId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			resp.Fail(c, http.StatusBadRequest, "Invalid categoryId.")
			return
		}
		f.CategoryID = id
	}
	ps, err := h.products.List(c.Request.Context(), f)
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	resp.OK(c, http.StatusOK, "Products fetched successfully", "products", ps)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	if p == nil {
		resp.Fail(c, http.StatusNotFound, "Product not found.")
		return
	}
	resp.OK(c, http.StatusOK, "Product fetched successfully", "product", p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in updateProductReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request body.")
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
	if in.Price != nil && *in.Price <= 0 {
		resp.Fail(c, http.StatusBadRequest, "Price must be positive.")
		return
	}

	p, err := h.products.Update(c.Request.Context(), id, service.UpdateProductInput{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		DiscountPrice: in.DiscountPrice,
		CountInStock:  in.CountInStock,
		CategoryID:    in.CategoryID,
		Brand:         in.Brand,
		Sizes:         in.Sizes,
		Colours:       in.Colours,
		Images:        in.Images,
		Tags:          in.Tags,
		IsFeatured:    in.IsFeatured,
		IsPublished:   in.IsPublished,
	})
	if err != nil {
		if isDupKey(err) {
			resp.Fail(c, http.StatusBadRequest, "Product name or SKU is already in use.")
			return
		}
		internalErr(c, h.log, err)
		return
	}
	if p == nil {
		resp.Fail(c, http.StatusNotFound, "Product not found.")
		return
	}
	resp.OK(c, http.StatusOK, "Product updated successfully", "product", p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleted, err := h.products.Delete(c.Request.Context(), id)
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	if !deleted {
		resp.Fail(c, http.StatusNotFound, "Product not found.")
		return
	}
	resp.Message(c, http.StatusOK, "Product deleted successfully")
}
