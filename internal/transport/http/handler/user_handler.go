package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-magmart-api/internal/service"
	resp "go-magmart-api/internal/transport/http/response"
	"go-magmart-api/internal/validate"
)

type UserHandler struct {
	users *service.UserService
	log   *zap.Logger
}

func NewUserHandler(users *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

type createUserReq struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type updateUserReq struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	UserImage *string `json:"userImage"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Role      *string `json:"role"`
}

// checkCreateUser 清洗 + 结构校验，第一条失败直接 400。
func checkCreateUser(c *gin.Context, in *createUserReq) bool {
	in.FirstName = validate.Sanitize(in.FirstName)
	in.LastName = validate.Sanitize(in.LastName)
	in.Email = validate.Sanitize(in.Email)

	switch {
	case in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "":
		resp.Fail(c, http.StatusBadRequest, "All fields are required.")
	case !validate.Name(in.FirstName) || !validate.Name(in.LastName):
		resp.Fail(c, http.StatusBadRequest, "Name is not valid.")
	case !validate.Email(in.Email):
		resp.Fail(c, http.StatusBadRequest, "Email is not valid.")
	case !validate.Password(in.Password):
		resp.Fail(c, http.StatusBadRequest, "Password must be at least 8 characters long and contain only alphanumeric characters.")
	default:
		return true
	}
	return false
}

func (h *UserHandler) Create(c *gin.Context) {
	var in createUserReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if !checkCreateUser(c, &in) {
		return
	}

	exists, err := h.users.EmailExists(c.Request.Context(), in.Email)
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	if exists {
		resp.Fail(c, http.StatusBadRequest, "Email is already in use.")
		return
	}

	u, err := h.users.Create(c.Request.Context(), service.CreateUserInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
	})
	if err != nil {
		if isDupKey(err) {
			resp.Fail(c, http.StatusBadRequest, "Email is already in use.")
			return
		}
		internalErr(c, h.log, err)
		return
	}
	resp.OK(c, http.StatusCreated, "User created successfully", "user", u)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context(), c.Query("sortOrder"))
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	resp.OK(c, http.StatusOK, "Users fetched successfully", "users", users)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	u, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	if u == nil {
		resp.Fail(c, http.StatusNotFound, "User not found.")
		return
	}
	resp.OK(c, http.StatusOK, "User fetched successfully", "user", u)
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	email := validate.Sanitize(c.Param("email"))
	if !validate.Email(email) {
		resp.Fail(c, http.StatusBadRequest, "Email is not valid.")
		return
	}
	u, err := h.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	if u == nil {
		resp.Fail(c, http.StatusNotFound, "User not found.")
		return
	}
	resp.OK(c, http.StatusOK, "User fetched successfully", "user", u)
}

// checkUserPatch 校验部分更新里实际提供的字段。
func checkUserPatch(c *gin.Context, in *updateUserReq) bool {
	if in.FirstName != nil {
		*in.FirstName = validate.Sanitize(*in.FirstName)
		if !validate.Name(*in.FirstName) {
			resp.Fail(c, http.StatusBadRequest, "Name is not valid.")
			return false
		}
	}
	if in.LastName != nil {
		*in.LastName = validate.Sanitize(*in.LastName)
		if !validate.Name(*in.LastName) {
			resp.Fail(c, http.StatusBadRequest, "Name is not valid.")
			return false
		}
	}
	if in.Email != nil {
		*in.Email = validate.Sanitize(*in.Email)
		if !validate.Email(*in.Email) {
			resp.Fail(c, http.StatusBadRequest, "Email is not valid.")
			return false
		}
	}
	if in.Password != nil && !validate.Password(*in.Password) {
		resp.Fail(c, http.StatusBadRequest, "Password must be at least 8 characters long and contain only alphanumeric characters.")
		return false
	}
	if in.Role != nil && !validate.Role(*in.Role) {
		resp.Fail(c, http.StatusBadRequest, "Role is not valid.")
		return false
	}
	return true
}

func toUpdateInput(in updateUserReq) service.UpdateUserInput {
	return service.UpdateUserInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		UserImage: in.UserImage,
		Email:     in.Email,
		Password:  in.Password,
		Role:      in.Role,
	}
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in updateUserReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	patch := toUpdateInput(in)
	if patch.Empty() {
		resp.Fail(c, http.StatusBadRequest, "At least one field is required.")
		return
	}
	if !checkUserPatch(c, &in) {
		return
	}
	patch = toUpdateInput(in)

	u, err := h.users.Update(c.Request.Context(), id, patch)
	if err != nil {
		if isDupKey(err) {
			resp.Fail(c, http.StatusBadRequest, "Email is already in use.")
			return
		}
		internalErr(c, h.log, err)
		return
	}
	if u == nil {
		resp.Fail(c, http.StatusNotFound, "User not found.")
		return
	}
	resp.OK(c, http.StatusOK, "User updated successfully", "user", u)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleted, err := h.users.Delete(c.Request.Context(), id)
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	if !deleted {
		resp.Fail(c, http.StatusNotFound, "User not found.")
		return
	}
	resp.Message(c, http.StatusOK, "User deleted successfully")
}
