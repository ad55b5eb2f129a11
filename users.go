package main

import (
	"net/http"

	"bitbucket.org/candorwt/fieldforce_backend/middlewares"
	"bitbucket.org/candorwt/fieldforce_backend/models"
	"bitbucket.org/candorwt/fieldforce_backend/utils"
	"github.com/gin-gonic/gin"
)

// createUserHandler provisions a user account. Admin only.
func createUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := middlewares.CtxValue(c.Request.Context())
		if claims == nil || claims.Role != string(models.UserRoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}

		var input models.NewUser
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
			return
		}

		user, err := models.CreateUser(c.Request.Context(), &input)
		if err != nil {
			logError(c, "users.go", "createUserHandler", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}
