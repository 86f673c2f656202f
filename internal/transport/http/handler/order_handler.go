package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-magmart-api/internal/service"
	mdw "go-magmart-api/internal/transport/http/middleware"
	resp "go-magmart-api/internal/transport/http/response"
	"go-magmart-api/internal/validate"
)

type OrderHandler struct {
	orders *service.OrderService
	log    *zap.Logger
}

func NewOrderHandler(orders *service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, log: log}
}

type orderLineReq struct {
	ProductID int64   `json:"productId"`
	Size      string  `json:"size"`
	Colour    string  `json:"colour"`
	Quantity  int     `json:"quantity"`
	Comment   *string `json:"comment"`
}

type createOrderReq struct {
	Discount float64        `json:"discount"`
	Lines    []orderLineReq `json:"lines"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var in createOrderReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if len(in.Lines) == 0 {
		resp.Fail(c, http.StatusBadRequest, "At least one order line is required.")
		return
	}
	lines := make([]service.OrderLineInput, 0, len(in.Lines))
	for _, ln := range in.Lines {
		if ln.ProductID <= 0 || ln.Quantity <= 0 {
			resp.Fail(c, http.StatusBadRequest, "Order lines need a product and a positive quantity.")
			return
		}
		lines = append(lines, service.OrderLineInput{
			ProductID: ln.ProductID,
			Size:      ln.Size,
			Colour:    ln.Colour,
			Quantity:  ln.Quantity,
			Comment:   ln.Comment,
		})
	}

	o, err := h.orders.Create(c.Request.Context(), c.GetInt64(mdw.KeyUserID), in.Discount, lines)
	if err != nil {
		if errors.Is(err, service.ErrOrderLineProduct) {
			resp.Fail(c, http.StatusBadRequest, "Order line references an unknown product.")
			return
		}
		internalErr(c, h.log, err)
		return
	}
	resp.OK(c, http.StatusCreated, "Order created successfully", "order", o)
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	o, err := h.orders.GetByID(c.Request.Context(), id)
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	if o == nil {
		resp.Fail(c, http.StatusNotFound, "Order not found.")
		return
	}
	// 非 admin 只能看自己的
	if c.GetString(mdw.KeyRole) != "admin" && o.UserID != c.GetInt64(mdw.KeyUserID) {
		resp.Fail(c, http.StatusForbidden, "Forbidden.")
		return
	}
	resp.OK(c, http.StatusOK, "Order fetched successfully", "order", o)
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	os, err := h.orders.ListByUser(c.Request.Context(), c.GetInt64(mdw.KeyUserID))
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	resp.OK(c, http.StatusOK, "Orders fetched successfully", "orders", os)
}

type statusReq struct {
	Status string `json:"status"`
}

func (h *OrderHandler) AppendStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in statusReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	in.Status = validate.Sanitize(in.Status)
	if in.Status == "" {
		resp.Fail(c, http.StatusBadRequest, "Status is required.")
		return
	}
	o, err := h.orders.AppendStatus(c.Request.Context(), id, in.Status)
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	if o == nil {
		resp.Fail(c, http.StatusNotFound, "Order not found.")
		return
	}
	resp.OK(c, http.StatusOK, "Order status updated successfully", "order", o)
}

func (h *OrderHandler) MarkDelivered(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	done, err := h.orders.SetDelivered(c.Request.Context(), id, time.Now())
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	if !done {
		resp.Fail(c, http.StatusNotFound, "Order not found.")
		return
	}
	resp.Message(c, http.StatusOK, "Order marked as delivered")
}
