package middlewares

import (
	"gin-tourbooking/constants"
	"gin-tourbooking/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminRequired must run after AuthMiddleware (it needs "identity" in the
// context). It trusts the role claim embedded in the token; there is no
// second lookup against the users table.
func AdminRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, exists := ctx.Get("identity")
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": constants.ErrNotLoggedIn})
			return
		}

		identityModel, ok := identity.(*models.Identity)
		if !ok || identityModel.Role != constants.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": constants.ErrNoAdminPermission})
			return
		}

		ctx.Next()
	}
}
