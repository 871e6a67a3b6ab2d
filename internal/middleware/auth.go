package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pokedex-api/internal/jwt"
)

const bearerPrefix = "Bearer "

// AuthMiddleware returns a Gin middleware that requires a valid bearer token.
// On success it stores user_id and username in the request context for
// downstream handlers; everything else is rejected with 401.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Missing or malformed Authorization header",
			})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("username", claims.Name)
		c.Next()
	}
}
