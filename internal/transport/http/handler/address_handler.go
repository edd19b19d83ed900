package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-address-service/internal/core/validate"
	"user-address-service/internal/domain"
	resp "user-address-service/internal/transport/http/response"
)

type AddressHandler struct {
	addresses domain.AddressRepository
	users     domain.UserRepository
	log       *zap.Logger
}

func NewAddressHandler(addresses domain.AddressRepository, users domain.UserRepository, log *zap.Logger) *AddressHandler {
	return &AddressHandler{addresses: addresses, users: users, log: log}
}

func (h *AddressHandler) Register(r gin.IRouter) {
	r.POST("/addresses", h.Create)
	r.GET("/addresses", h.List)
	r.GET("/addresses/user/:userId", h.ListByUser)
	r.GET("/addresses/pincode/:pincode", h.ListByPincode)
	r.GET("/addresses/:id", h.Get)
	r.PUT("/addresses/:id", h.Update)
	r.DELETE("/addresses/:id", h.Delete)
}

// Create handles POST /addresses. The owning user must exist. The lookup
// and the insert are not atomic; a concurrent user deletion can still slip
// an orphan in, which this service accepts.
func (h *AddressHandler) Create(c *gin.Context) {
	var body map[string]any
	if err := bindBody(c, &body); err != nil {
		resp.Fail(c, h.log, err)
		return
	}

	missing := validate.MissingFields(body, []string{"user_id", "street", "city", "state", "pincode"})
	if len(missing) > 0 {
		resp.Fail(c, h.log, resp.BadRequest(fmt.Sprintf("Missing fields: %s", strings.Join(missing, ", "))))
		return
	}

	pincode := asString(body["pincode"])
	if !validate.Pincode(pincode) {
		resp.Fail(c, h.log, resp.BadRequest("Invalid pincode format (expected 6 digits)"))
		return
	}

	userID, ok := asUint(body["user_id"])
	if !ok {
		resp.Fail(c, h.log, resp.BadRequest("Invalid user_id"))
		return
	}
	owner, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		resp.Fail(c, h.log, resp.Internal("lookup user failed", err))
		return
	}
	if owner == nil {
		resp.Fail(c, h.log, resp.NotFound("User not found for provided user_id"))
		return
	}

	a := &domain.Address{
		UserID:  userID,
		Street:  stringField(body, "street"),
		City:    stringField(body, "city"),
		State:   stringField(body, "state"),
		Block:   stringField(body, "block"),
		Pincode: pincode,
	}
	if err := h.addresses.Create(c.Request.Context(), a); err != nil {
		resp.Fail(c, h.log, resp.Internal("create address failed", err))
		return
	}

	c.JSON(http.StatusCreated, resp.Created("Address created successfully", a))
}

// List handles GET /addresses with an optional exact ?pincode= filter.
func (h *AddressHandler) List(c *gin.Context) {
	pincode := strings.TrimSpace(c.Query("pincode"))
	if pincode != "" && !validate.Pincode(pincode) {
		resp.Fail(c, h.log, resp.BadRequest("Invalid pincode format"))
		return
	}
	addrs, err := h.addresses.List(c.Request.Context(), pincode)
	if err != nil {
		resp.Fail(c, h.log, resp.Internal("list addresses failed", err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(addrs))
}

// Get handles GET /addresses/:id.
func (h *AddressHandler) Get(c *gin.Context) {
	id, ok := pathID(c.Param("id"))
	if !ok {
		resp.Fail(c, h.log, resp.BadRequest("Invalid address ID"))
		return
	}
	a, err := h.addresses.FindByID(c.Request.Context(), id)
	if err != nil {
		resp.Fail(c, h.log, resp.Internal("find address failed", err))
		return
	}
	if a == nil {
		resp.Fail(c, h.log, resp.NotFound("Address not found"))
		return
	}
	c.JSON(http.StatusOK, resp.OK(a))
}

// ListByUser handles GET /addresses/user/:userId.
func (h *AddressHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c.Param("userId"))
	if !ok {
		resp.Fail(c, h.log, resp.BadRequest("Invalid user ID"))
		return
	}
	addrs, err := h.addresses.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		resp.Fail(c, h.log, resp.Internal("list addresses failed", err))
		return
	}
	if len(addrs) == 0 {
		resp.Fail(c, h.log, resp.NotFound("No addresses found for this user"))
		return
	}
	c.JSON(http.StatusOK, resp.OK(addrs))
}

// ListByPincode handles GET /addresses/pincode/:pincode.
func (h *AddressHandler) ListByPincode(c *gin.Context) {
	pincode := strings.TrimSpace(c.Param("pincode"))
	if !validate.Pincode(pincode) {
		resp.Fail(c, h.log, resp.BadRequest("Invalid pincode format (must be 6 digits)"))
		return
	}
	addrs, err := h.addresses.ListByPincode(c.Request.Context(), pincode)
	if err != nil {
		resp.Fail(c, h.log, resp.Internal("list addresses failed", err))
		return
	}
	if len(addrs) == 0 {
		resp.Fail(c, h.log, resp.NotFound("No addresses found for this pincode"))
		return
	}
	c.JSON(http.StatusOK, resp.OK(addrs))
}

// Update handles PUT /addresses/:id. Pincode and owner are re-validated
// when present in the payload.
func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := pathID(c.Param("id"))
	if !ok {
		resp.Fail(c, h.log, resp.BadRequest("Invalid address ID"))
		return
	}

	var body map[string]any
	if err := bindBody(c, &body); err != nil {
		resp.Fail(c, h.log, err)
		return
	}

	updates := map[string]any{}
	for _, f := range []string{"street", "city", "state", "block"} {
		if _, present := body[f]; present {
			updates[f] = stringField(body, f)
		}
	}
	if _, present := body["pincode"]; present {
		pincode := asString(body["pincode"])
		if !validate.Pincode(pincode) {
			resp.Fail(c, h.log, resp.BadRequest("Invalid pincode format"))
			return
		}
		updates["pincode"] = pincode
	}
	if _, present := body["user_id"]; present {
		userID, ok := asUint(body["user_id"])
		if !ok {
			resp.Fail(c, h.log, resp.BadRequest("Invalid user_id"))
			return
		}
		owner, err := h.users.FindByID(c.Request.Context(), userID)
		if err != nil {
			resp.Fail(c, h.log, resp.Internal("lookup user failed", err))
			return
		}
		if owner == nil {
			resp.Fail(c, h.log, resp.NotFound("User not found for provided user_id"))
			return
		}
		updates["user_id"] = userID
	}

	a, err := h.addresses.FindByID(c.Request.Context(), id)
	if err != nil {
		resp.Fail(c, h.log, resp.Internal("find address failed", err))
		return
	}
	if a == nil {
		resp.Fail(c, h.log, resp.NotFound("Address not found"))
		return
	}

	if len(updates) > 0 {
		if _, err := h.addresses.Update(c.Request.Context(), id, updates); err != nil {
			resp.Fail(c, h.log, resp.Internal("update address failed", err))
			return
		}
	}

	c.JSON(http.StatusOK, resp.Message("Address updated successfully"))
}

// Delete handles DELETE /addresses/:id.
func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := pathID(c.Param("id"))
	if !ok {
		resp.Fail(c, h.log, resp.BadRequest("Invalid address ID"))
		return
	}
	n, err := h.addresses.Delete(c.Request.Context(), id)
	if err != nil {
		resp.Fail(c, h.log, resp.Internal("delete address failed", err))
		return
	}
	if n == 0 {
		resp.Fail(c, h.log, resp.NotFound("Address not found"))
		return
	}
	c.JSON(http.StatusOK, resp.Message("Address deleted successfully"))
}
