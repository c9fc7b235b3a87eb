package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/app/services"
	"github.com/atlasmedia/newsdesk/internal/middleware"
)

// AuthController handles authentication operations
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// LoginUser godoc
// @Summary Log in or register an app user by mobile number
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.UserLoginRequest true "Login details"
// @Success 200 {object} dto.APIResponse{data=dto.UserLoginResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /auth/user/login [post]
func (c *AuthController) LoginUser(ctx *gin.Context) {
	var req dto.UserLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.authService.LoginUser(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Login successful", resp))
}

// LoginAdmin godoc
// @Summary Log in an admin with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AdminLoginResponse}
// @Failure 401 {object} dto.APIResponse
// @Router /auth/admin/login [post]
func (c *AuthController) LoginAdmin(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.authService.LoginAdmin(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Login successful", resp))
}
