package middlewares

import (
	"gin-tourbooking/constants"
	"gin-tourbooking/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": constants.ErrNotLoggedIn})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		identity, err := authService.VerifyToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": constants.ErrInvalidToken})
			return
		}

		ctx.Set("identity", identity)

		ctx.Next()
	}
}
