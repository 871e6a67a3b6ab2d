package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pokedex-api/internal/models"
	"pokedex-api/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles POST /users/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
		})
		return
	}

	user, err := ac.authService.Register(&req)
	if err != nil {
		// Duplicates and validation failures are both client errors here.
		c.JSON(http.StatusBadRequest, gin.H{
			"message": err.Error(),
		})
		return
	}

	// The password hash never leaves the service layer.
	c.JSON(http.StatusOK, models.RegisterResponse{
		UserName: user.Username,
		Email:    user.Email,
	})
}

// Login handles POST /users/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
		})
		return
	}

	token, err := ac.authService.Login(&req)
	if err != nil {
		// Unknown email and wrong password take the same path on purpose.
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token})
}
