package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-magmart-api/internal/domain"
)

func seedProductRow(t *testing.T, api *testAPI, name string, price, discount float64) *domain.Product {
	t.Helper()
	p := &domain.Product{
		Name:          name,
		Description:   "test product",
		Price:         price,
		DiscountPrice: discount,
		CountInStock:  10,
		SKU:           "SKU-" + name,
		CategoryID:    1000,
		Collections:   "summer",
		Gender:        "unisex",
		IsPublished:   true,
		CreatorID:     1000,
	}
	require.NoError(t, api.db.Create(p).Error)
	return p
}

func TestOrderCreateAndFetch(t *testing.T) {
	api := newTestAPI(t)
	_, buyer := api.bearerFor(t, "buyer@example.com", "customer")
	shirt := seedProductRow(t, api, "Shirt", 50, 0)
	boots := seedProductRow(t, api, "Boots", 100, 80)

	w := api.do(t, http.MethodPost, "/api/orders/", map[string]any{
		"discount": 10,
		"lines": []map[string]any{
			{"productId": shirt.ID, "size": "M", "colour": "black", "quantity": 2},
			{"productId": boots.ID, "size": "42", "colour": "brown", "quantity": 1},
		},
	}, "Authorization", buyer)
	require.Equal(t, http.StatusCreated, w.Code)
	order := decode(t, w)["order"].(map[string]any)
	assert.EqualValues(t, 3, order["items"])
	assert.EqualValues(t, 180, order["price"])
	assert.EqualValues(t, 170, order["totalPrice"])
	id := int64(order["id"].(float64))

	w = api.do(t, http.MethodGet, fmt.Sprintf("/api/orders/order/%d", id), nil, "Authorization", buyer)
	require.Equal(t, http.StatusOK, w.Code)
	order = decode(t, w)["order"].(map[string]any)
	assert.Len(t, order["lines"], 2)
	assert.Len(t, order["statuses"], 1)

	w = api.do(t, http.MethodGet, "/api/orders/", nil, "Authorization", buyer)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["orders"], 1)
}

func TestOrderCreate_Validation(t *testing.T) {
	api := newTestAPI(t)
	_, buyer := api.bearerFor(t, "buyer@example.com", "customer")

	w := api.do(t, http.MethodPost, "/api/orders/", map[string]any{"lines": []any{}},
		"Authorization", buyer)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "At least one order line is required.", decode(t, w)["message"])

	w = api.do(t, http.MethodPost, "/api/orders/", map[string]any{
		"lines": []map[string]any{{"productId": 0, "quantity": 1}},
	}, "Authorization", buyer)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Order lines need a product and a positive quantity.", decode(t, w)["message"])
}

// 指向不存在商品的行是客户端错误，不是 500，且不许留下半个订单。
func TestOrderCreate_UnknownProductIsBadRequest(t *testing.T) {
	api := newTestAPI(t)
	_, buyer := api.bearerFor(t, "buyer@example.com", "customer")
	shirt := seedProductRow(t, api, "Shirt", 50, 0)

	w := api.do(t, http.MethodPost, "/api/orders/", map[string]any{
		"lines": []map[string]any{
			{"productId": shirt.ID, "size": "M", "colour": "black", "quantity": 1},
			{"productId": 424242, "size": "M", "colour": "black", "quantity": 1},
		},
	}, "Authorization", buyer)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Order line references an unknown product.", decode(t, w)["message"])

	var orders, items int64
	require.NoError(t, api.db.Model(&domain.Order{}).Count(&orders).Error)
	require.NoError(t, api.db.Model(&domain.OrderItem{}).Count(&items).Error)
	assert.EqualValues(t, 0, orders)
	assert.EqualValues(t, 0, items)
}

// 顾客看不了别人的订单，admin 可以。
func TestOrderGet_OwnershipCheck(t *testing.T) {
	api := newTestAPI(t)
	_, buyer := api.bearerFor(t, "buyer@example.com", "customer")
	_, other := api.bearerFor(t, "other@example.com", "customer")
	_, admin := api.bearerFor(t, "admin@example.com", "admin")
	shirt := seedProductRow(t, api, "Shirt", 50, 0)

	w := api.do(t, http.MethodPost, "/api/orders/", map[string]any{
		"lines": []map[string]any{{"productId": shirt.ID, "size": "M", "colour": "black", "quantity": 1}},
	}, "Authorization", buyer)
	require.Equal(t, http.StatusCreated, w.Code)
	id := int64(decode(t, w)["order"].(map[string]any)["id"].(float64))

	w = api.do(t, http.MethodGet, fmt.Sprintf("/api/orders/order/%d", id), nil, "Authorization", other)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(t, http.MethodGet, fmt.Sprintf("/api/orders/order/%d", id), nil, "Authorization", admin)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestOrderStatusAndDelivery_AdminOnly(t *testing.T) {
	api := newTestAPI(t)
	_, buyer := api.bearerFor(t, "buyer@example.com", "customer")
	_, admin := api.bearerFor(t, "admin@example.com", "admin")
	shirt := seedProductRow(t, api, "Shirt", 50, 0)

	w := api.do(t, http.MethodPost, "/api/orders/", map[string]any{
		"lines": []map[string]any{{"productId": shirt.ID, "size": "M", "colour": "black", "quantity": 1}},
	}, "Authorization", buyer)
	require.Equal(t, http.StatusCreated, w.Code)
	id := int64(decode(t, w)["order"].(map[string]any)["id"].(float64))

	w = api.do(t, http.MethodPost, fmt.Sprintf("/api/orders/order/%d/status", id),
		map[string]any{"status": "confirmed"}, "Authorization", buyer)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(t, http.MethodPost, fmt.Sprintf("/api/orders/order/%d/status", id),
		map[string]any{"status": "confirmed"}, "Authorization", admin)
	require.Equal(t, http.StatusOK, w.Code)
	order := decode(t, w)["order"].(map[string]any)
	assert.Len(t, order["statuses"], 2)

	w = api.do(t, http.MethodPost, fmt.Sprintf("/api/orders/order/%d/delivered", id), nil,
		"Authorization", admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Order marked as delivered", decode(t, w)["message"])

	w = api.do(t, http.MethodPost, "/api/orders/order/424242/delivered", nil,
		"Authorization", admin)
	require.Equal(t, http.StatusNotFound, w.Code)
}
