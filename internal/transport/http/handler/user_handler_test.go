package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUserBody() map[string]any {
	return map[string]any{
		"firstName": "Maija",
		"lastName":  "Berzina",
		"email":     "maija@example.com",
		"password":  "password123",
	}
}

func TestUserCreate_HappyPath(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/users/", validUserBody())
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "User created successfully", body["message"])

	u := body["user"].(map[string]any)
	assert.Equal(t, "maija@example.com", u["email"])
	assert.Equal(t, "customer", u["role"])
	assert.GreaterOrEqual(t, u["id"].(float64), float64(1000))
	// 密码散列绝不能出现在响应里
	_, leaked := u["password"]
	assert.False(t, leaked)
}

func TestUserCreate_Validation(t *testing.T) {
	api := newTestAPI(t)

	cases := []struct {
		name string
		mut  func(map[string]any)
		want string
	}{
		{"missing field", func(m map[string]any) { m["email"] = "" }, "All fields are required."},
		{"bad name", func(m map[string]any) { m["firstName"] = "M41ja" }, "Name is not valid."},
		{"bad email", func(m map[string]any) { m["email"] = "not-an-email" }, "Email is not valid."},
		{"short password", func(m map[string]any) { m["password"] = "abc1" },
			"Password must be at least 8 characters long and contain only alphanumeric characters."},
		{"symbol password", func(m map[string]any) { m["password"] = "secret!123" },
			"Password must be at least 8 characters long and contain only alphanumeric characters."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := validUserBody()
			tc.mut(body)
			w := api.do(t, http.MethodPost, "/api/users/", body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.want, decode(t, w)["message"])
		})
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/users/", validUserBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodPost, "/api/users/", validUserBody())
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email is already in use.", decode(t, w)["message"])
}

func TestUserGet_ByIDAndEmail(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/users/", validUserBody())
	require.Equal(t, http.StatusCreated, w.Code)
	id := int64(decode(t, w)["user"].(map[string]any)["id"].(float64))

	w = api.do(t, http.MethodGet, fmt.Sprintf("/api/users/user/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodGet, "/api/users/user/email/maija@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "maija@example.com", decode(t, w)["user"].(map[string]any)["email"])

	w = api.do(t, http.MethodGet, "/api/users/user/email/not-an-email", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodGet, "/api/users/user/email/ghost@example.com", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(t, http.MethodGet, "/api/users/user/424242", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found.", decode(t, w)["message"])
}

func TestUserUpdate(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/users/", validUserBody())
	id := int64(decode(t, w)["user"].(map[string]any)["id"].(float64))

	// 空补丁 400
	w = api.do(t, http.MethodPut, fmt.Sprintf("/api/users/user/%d", id), map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "At least one field is required.", decode(t, w)["message"])

	// 提供了但不合法 400
	w = api.do(t, http.MethodPut, fmt.Sprintf("/api/users/user/%d", id), map[string]any{"role": "root"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Role is not valid.", decode(t, w)["message"])

	// 部分更新只动提供的字段
	w = api.do(t, http.MethodPut, fmt.Sprintf("/api/users/user/%d", id), map[string]any{"firstName": "Zane"})
	require.Equal(t, http.StatusOK, w.Code)
	u := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "Zane", u["firstName"])
	assert.Equal(t, "Berzina", u["lastName"])

	w = api.do(t, http.MethodPut, "/api/users/user/424242", map[string]any{"firstName": "Zane"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserDelete(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/users/", validUserBody())
	id := int64(decode(t, w)["user"].(map[string]any)["id"].(float64))

	w = api.do(t, http.MethodDelete, fmt.Sprintf("/api/users/user/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deleted successfully", decode(t, w)["message"])

	w = api.do(t, http.MethodDelete, fmt.Sprintf("/api/users/user/%d", id), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserList_SortOrder(t *testing.T) {
	api := newTestAPI(t)

	for _, email := range []string{"a@example.com", "b@example.com"} {
		body := validUserBody()
		body["email"] = email
		w := api.do(t, http.MethodPost, "/api/users/", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := api.do(t, http.MethodGet, "/api/users/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decode(t, w)["users"].([]any)
	require.Len(t, users, 2)

	w = api.do(t, http.MethodGet, "/api/users/?sortOrder=desc", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
