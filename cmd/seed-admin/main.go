// seed-admin creates or updates the admin console user.
//
// Usage (from backend directory):
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-admin
package main

import (
	"context"
	"fmt"
	"os"

	"bitbucket.org/candorwt/fieldforce_backend/config"
	"bitbucket.org/candorwt/fieldforce_backend/models"
	"bitbucket.org/candorwt/fieldforce_backend/utils"
	"gorm.io/gorm"
)

const (
	adminEmail    = "admin@fieldforce.local"
	adminPassword = "ff@dmin123"
	adminName     = "FieldForce Admin"
)

func main() {
	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}
	models.MigrateTable()

	var user models.User
	err := db.WithContext(ctx).First(&user, "email = ?", adminEmail).Error
	switch err {
	case nil:
		hashed, herr := utils.HashPassword(adminPassword)
		if herr != nil {
			fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", herr)
			os.Exit(1)
		}
		user.PasswordHash = string(hashed)
		user.Name = adminName
		user.Role = models.UserRoleAdmin
		user.IsActive = utils.NewTrue()
		if err := db.WithContext(ctx).Save(&user).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to update admin user: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("updated admin user %s (id=%d)\n", adminEmail, user.ID)
	case gorm.ErrRecordNotFound:
		created, cerr := models.CreateUser(ctx, &models.NewUser{
			Email:    adminEmail,
			Password: adminPassword,
			Name:     adminName,
			Role:     models.UserRoleAdmin,
		})
		if cerr != nil {
			fmt.Fprintf(os.Stderr, "failed to create admin user: %v\n", cerr)
			os.Exit(1)
		}
		fmt.Printf("created admin user %s (id=%d)\n", adminEmail, created.ID)
	default:
		fmt.Fprintf(os.Stderr, "failed to lookup admin user: %v\n", err)
		os.Exit(1)
	}
}
