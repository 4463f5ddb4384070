package handlers

import (
	"net/http"

	"travellounge/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := a.auth(c).Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/auth/me
func (a *API) Me(c *gin.Context) {
	u, err := a.auth(c).Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "role": middleware.UserRole(c)})
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=admin editor"`
}

// POST /api/admin/users (admin only)
func (a *API) CreateUser(c *gin.Context) {
	var req createUserRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	u, err := a.auth(c).CreateUser(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	created(c, u)
}
