package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-magmart-api/internal/service"
	resp "go-magmart-api/internal/transport/http/response"
	"go-magmart-api/internal/validate"
)

// AccountHandler 服务 user+address 联合流（同一原子单元）。
type AccountHandler struct {
	accounts *service.AccountService
	users    *service.UserService
	log      *zap.Logger
}

func NewAccountHandler(accounts *service.AccountService, users *service.UserService, log *zap.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, users: users, log: log}
}

type addressReq struct {
	StreetAddress string `json:"streetAddress"`
	PostalCode    string `json:"postalCode"`
	City          string `json:"city"`
	Phone         string `json:"phone"`
	Country       string `json:"country"`
}

type createAccountReq struct {
	createUserReq
	Address addressReq `json:"address"`
}

type updateAddressReq struct {
	StreetAddress *string `json:"streetAddress"`
	PostalCode    *string `json:"postalCode"`
	City          *string `json:"city"`
	Phone         *string `json:"phone"`
	Country       *string `json:"country"`
}

type updateAccountReq struct {
	updateUserReq
	Address updateAddressReq `json:"address"`
}

// sanitizeAddressPatch 对提供的自由文本地址字段做和创建路径一致的转义。
func sanitizeAddressPatch(in *updateAddressReq) {
	for _, p := range []**string{&in.StreetAddress, &in.PostalCode, &in.City, &in.Country} {
		if *p != nil {
			s := validate.Sanitize(**p)
			*p = &s
		}
	}
}

func checkAddress(c *gin.Context, in *addressReq) bool {
	in.StreetAddress = validate.Sanitize(in.StreetAddress)
	in.PostalCode = validate.Sanitize(in.PostalCode)
	in.City = validate.Sanitize(in.City)
	in.Country = validate.Sanitize(in.Country)

	switch {
	case in.StreetAddress == "" || in.PostalCode == "" || in.City == "" || in.Phone == "" || in.Country == "":
		resp.Fail(c, http.StatusBadRequest, "All address fields are required.")
	case !validate.Phone(in.Phone):
		resp.Fail(c, http.StatusBadRequest, "Phone is not valid.")
	default:
		return true
	}
	return false
}

// Create POST /api/users/user — 一个事务里建用户行 + 地址行
func (h *AccountHandler) Create(c *gin.Context) {
	var in createAccountReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if !checkCreateUser(c, &in.createUserReq) || !checkAddress(c, &in.Address) {
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

	view, err := h.accounts.Create(c.Request.Context(),
		service.CreateUserInput{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Email:     in.Email,
			Password:  in.Password,
		},
		service.AddressInput{
			StreetAddress: in.Address.StreetAddress,
			PostalCode:    in.Address.PostalCode,
			City:          in.Address.City,
			Phone:         in.Address.Phone,
			Country:       in.Address.Country,
		},
	)
	if err != nil {
		if isDupKey(err) {
			resp.Fail(c, http.StatusBadRequest, "Email is already in use.")
			return
		}
		internalErr(c, h.log, err)
		return
	}
	resp.OK(c, http.StatusCreated, "User with address created successfully", "user", view)
}

// Get GET /api/users/user/:id/address
func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	view, err := h.accounts.GetByID(c.Request.Context(), id)
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	if view == nil {
		resp.Fail(c, http.StatusNotFound, "User with address not found.")
		return
	}
	resp.OK(c, http.StatusOK, "User with address fetched successfully", "user", view)
}

// Update PUT /api/users/user/:id/address
func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in updateAccountReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	sanitizeAddressPatch(&in.Address)
	userPatch := toUpdateInput(in.updateUserReq)
	addrPatch := service.UpdateAddressInput{
		StreetAddress: in.Address.StreetAddress,
		PostalCode:    in.Address.PostalCode,
		City:          in.Address.City,
		Phone:         in.Address.Phone,
		Country:       in.Address.Country,
	}
	if userPatch.Empty() && addrPatch.Empty() {
		resp.Fail(c, http.StatusBadRequest, "At least one field is required.")
		return
	}
	if !checkUserPatch(c, &in.updateUserReq) {
		return
	}
	if addrPatch.Phone != nil && !validate.Phone(*addrPatch.Phone) {
		resp.Fail(c, http.StatusBadRequest, "Phone is not valid.")
		return
	}
	userPatch = toUpdateInput(in.updateUserReq)

	view, err := h.accounts.Update(c.Request.Context(), id, userPatch, addrPatch)
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	if view == nil {
		resp.Fail(c, http.StatusNotFound, "User with address not found.")
		return
	}
	resp.OK(c, http.StatusOK, "User with address updated successfully", "user", view)
}

// Delete DELETE /api/users/user/:id/address — 两行要么都删，要么都留
func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleted, err := h.accounts.Delete(c.Request.Context(), id)
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	if !deleted {
		resp.Fail(c, http.StatusNotFound, "User with address not found.")
		return
	}
	resp.Message(c, http.StatusOK, "User with address deleted successfully")
}

// List GET /api/users/user — 用户连地址的全量列表
func (h *AccountHandler) List(c *gin.Context) {
	views, err := h.accounts.ListAll(c.Request.Context())
	if err != nil {
		internalErr(c, h.log, err)
		return
	}
	resp.OK(c, http.StatusOK, "Users with address fetched successfully", "users", views)
}
