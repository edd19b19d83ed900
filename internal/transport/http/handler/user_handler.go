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

type UserHandler struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewUserHandler(users domain.UserRepository, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

func (h *UserHandler) Register(r gin.IRouter) {
	r.POST("/users", h.Create)
	r.GET("/users", h.List)
	r.GET("/users/only", h.ListOnly)
	r.GET("/users/no-addresses", h.ListWithoutAddresses)
	r.GET("/users/:id", h.Get)
	r.PUT("/users/:id", h.Update)
	r.DELETE("/users/:id", h.Delete)
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var body map[string]any
	if err := bindBody(c, &body); err != nil {
		resp.Fail(c, h.log, err)
		return
	}

	missing := validate.MissingFields(body, []string{"first_name", "last_name", "email"})
	if len(missing) > 0 {
		resp.Fail(c, h.log, resp.BadRequest(fmt.Sprintf("Missing fields: %s", strings.Join(missing, ", "))))
		return
	}

	firstName := stringField(body, "first_name")
	lastName := stringField(body, "last_name")
	email := stringField(body, "email")

	if !validate.Name(firstName) || !validate.Name(lastName) {
		resp.Fail(c, h.log, resp.BadRequest("Names must contain only letters"))
		return
	}
	if !validate.Email(email) {
		resp.Fail(c, h.log, resp.BadRequest("Invalid email format"))
		return
	}

	// Application-level uniqueness check; the unique index is the final guard.
	existing, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		resp.Fail(c, h.log, resp.Internal("lookup user by email failed", err))
		return
	}
	if existing != nil {
		resp.Fail(c, h.log, resp.BadRequest("Email already exists. Please use a different one."))
		return
	}

	u := &domain.User{FirstName: firstName, LastName: lastName, Email: email}
	if err := h.users.Create(c.Request.Context(), u); err != nil {
		if isDupKey(err) {
			resp.Fail(c, h.log, resp.BadRequest("Email already exists. Please use a different one."))
			return
		}
		resp.Fail(c, h.log, resp.Internal("create user failed", err))
		return
	}

	c.JSON(http.StatusCreated, resp.Created("User created successfully", u))
}

// List handles GET /users: every user with nested addresses.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		resp.Fail(c, h.log, resp.Internal("list users failed", err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(users))
}

// ListOnly handles GET /users/only: core user columns, no addresses.
func (h *UserHandler) ListOnly(c *gin.Context) {
	users, err := h.users.ListOnly(c.Request.Context())
	if err != nil {
		resp.Fail(c, h.log, resp.Internal("list users failed", err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(users))
}

// ListWithoutAddresses handles GET /users/no-addresses.
func (h *UserHandler) ListWithoutAddresses(c *gin.Context) {
	users, err := h.users.ListWithoutAddresses(c.Request.Context())
	if err != nil {
		resp.Fail(c, h.log, resp.Internal("list users failed", err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(users))
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c.Param("id"))
	if !ok {
		resp.Fail(c, h.log, resp.BadRequest("Invalid user ID"))
		return
	}
	u, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		resp.Fail(c, h.log, resp.Internal("find user failed", err))
		return
	}
	if u == nil {
		resp.Fail(c, h.log, resp.NotFound("User not found"))
		return
	}
	c.JSON(http.StatusOK, resp.OK(u))
}

// Update handles PUT /users/:id. Only the supplied fields change; the row
// is looked up first so a missing user and a no-op update stay distinct.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c.Param("id"))
	if !ok {
		resp.Fail(c, h.log, resp.BadRequest("Invalid user ID"))
		return
	}

	var body map[string]any
	if err := bindBody(c, &body); err != nil {
		resp.Fail(c, h.log, err)
		return
	}

	updates := map[string]any{}
	if _, present := body["first_name"]; present {
		v := stringField(body, "first_name")
		if !validate.Name(v) {
			resp.Fail(c, h.log, resp.BadRequest("Names must contain only letters"))
			return
		}
		updates["first_name"] = v
	}
	if _, present := body["last_name"]; present {
		v := stringField(body, "last_name")
		if !validate.Name(v) {
			resp.Fail(c, h.log, resp.BadRequest("Names must contain only letters"))
			return
		}
		updates["last_name"] = v
	}
	if _, present := body["email"]; present {
		v := stringField(body, "email")
		if !validate.Email(v) {
			resp.Fail(c, h.log, resp.BadRequest("Invalid email format"))
			return
		}
		updates["email"] = v
	}

	u, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		resp.Fail(c, h.log, resp.Internal("find user failed", err))
		return
	}
	if u == nil {
		resp.Fail(c, h.log, resp.NotFound("User not found"))
		return
	}

	if len(updates) > 0 {
		if _, err := h.users.Update(c.Request.Context(), id, updates); err != nil {
			if isDupKey(err) {
				resp.Fail(c, h.log, resp.BadRequest("Email already exists. Please use a different one."))
				return
			}
			resp.Fail(c, h.log, resp.Internal("update user failed", err))
			return
		}
	}

	c.JSON(http.StatusOK, resp.Message("User updated successfully"))
}

// Delete handles DELETE /users/:id. Addresses are not cascaded; orphaned
// rows remain, matching the documented behavior.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c.Param("id"))
	if !ok {
		resp.Fail(c, h.log, resp.BadRequest("Invalid user ID"))
		return
	}
	n, err := h.users.Delete(c.Request.Context(), id)
	if err != nil {
		resp.Fail(c, h.log, resp.Internal("delete user failed", err))
		return
	}
	if n == 0 {
		resp.Fail(c, h.log, resp.NotFound("User not found"))
		return
	}
	c.JSON(http.StatusOK, resp.Message("User deleted successfully"))
}
