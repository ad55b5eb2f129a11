package middlewares

import (
	"context"
	"net/http"
	"strings"

	"bitbucket.org/candorwt/fieldforce_backend/utils"
	"github.com/gin-gonic/gin"
)

type authString string

// AuthMiddleware validates a bearer token when one is present and attaches
// the claims to the request context. Requests without a token pass through;
// RequireAuth gates the routes that need a signed-in user.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.Request.Header.Get("Authorization")

		if auth == "" {
			c.Next()
			return
		}

		auth = strings.TrimPrefix(auth, "Bearer ")

		validate, err := utils.JwtValidate(auth)
		if err != nil || !validate.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		customClaim, _ := validate.Claims.(*utils.JwtCustomClaim)

		ctx := context.WithValue(c.Request.Context(), authString("auth"), customClaim)
		if customClaim != nil {
			ctx = utils.SetUserIdInContext(ctx, customClaim.ID)
			ctx = utils.SetUserNameInContext(ctx, customClaim.Name)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CtxValue(c.Request.Context()) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func CtxValue(ctx context.Context) *utils.JwtCustomClaim {
	raw, _ := ctx.Value(authString("auth")).(*utils.JwtCustomClaim)
	return raw
}
