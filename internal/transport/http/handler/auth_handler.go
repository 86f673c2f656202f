package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-magmart-api/internal/service"
	mdw "go-magmart-api/internal/transport/http/middleware"
	resp "go-magmart-api/internal/transport/http/response"
	"go-magmart-api/internal/validate"
)

type AuthHandler struct {
	auth  *service.AuthService
	users *service.UserService
	log   *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, users *service.UserService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, users: users, log: log}
}

func (h *AuthHandler) Register(c *gin.Context) {
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
	resp.OK(c, http.StatusCreated, "User registered successfully", "user", u)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	in.Email = validate.Sanitize(in.Email)
	if !validate.Email(in.Email) || in.Password == "" {
		resp.Fail(c, http.StatusBadRequest, "Email and password are required.")
		return
	}
	pair, err := h.auth.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	if pair == nil {
		resp.Fail(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}
	resp.OK(c, http.StatusOK, "Login successful", "tokens", pair)
}

type refreshReq struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var in refreshReq
	if err := c.ShouldBindJSON(&in); err != nil || in.RefreshToken == "" {
		resp.Fail(c, http.StatusBadRequest, "Refresh token is required.")
		return
	}
	pair, err := h.auth.Refresh(c.Request.Context(), in.RefreshToken)
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	if pair == nil {
		resp.Fail(c, http.StatusUnauthorized, "Invalid refresh token.")
		return
	}
	resp.OK(c, http.StatusOK, "Token refreshed successfully", "tokens", pair)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), c.GetInt64(mdw.KeyUserID)); err != nil {
		internalErr(c, h.log, err)
		return
	}
	resp.Message(c, http.StatusOK, "Logged out successfully")
}
