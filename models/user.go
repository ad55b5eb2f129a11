package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/candorwt/fieldforce_backend/config"
	"bitbucket.org/candorwt/fieldforce_backend/utils"
	"gorm.io/gorm"
)

type User struct {
	ID           int64     `gorm:"primary_key" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email" binding:"required"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Name         string    `gorm:"size:255;not null" json:"name" binding:"required"`
	Mobile       string    `gorm:"size:20" json:"mobile"`
	Aadhaar      string    `gorm:"size:20" json:"aadhaar"`
	PanCard      string    `gorm:"size:20" json:"pan_card"`
	EmployeeCode *int      `gorm:"uniqueIndex" json:"employee_code"`
	Role         UserRole  `gorm:"size:20;not null" json:"role"`
	IsActive     *bool     `gorm:"default:true;not null" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewUser struct {
	Email        string   `json:"email" binding:"required,email"`
	Password     string   `json:"password" binding:"required,min=6"`
	Name         string   `json:"name" binding:"required"`
	Mobile       string   `json:"mobile"`
	Role         UserRole `json:"role" binding:"required"`
	EmployeeCode *int     `json:"employee_code"`
}

func CreateUser(ctx context.Context, input *NewUser) (*User, error) {

	db := config.GetDB()

	if err := input.Role.Validate(); err != nil {
		return nil, err
	}
	if !utils.IsValidEmail(input.Email) {
		return nil, errors.New("invalid email address")
	}
	if input.Mobile != "" {
		if err := utils.ValidatePhoneNumber(input.Mobile, utils.CountryCode); err != nil {
			return nil, errors.New("invalid mobile number")
		}
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := User{
		Email:        input.Email,
		PasswordHash: string(hashed),
		Name:         input.Name,
		Mobile:       input.Mobile,
		Role:         input.Role,
		EmployeeCode: input.EmployeeCode,
		IsActive:     utils.NewTrue(),
	}

	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUser(ctx context.Context, id int64) (*User, error) {

	db := config.GetDB()
	var user User
	if err := db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}
	return &user, nil
}

func GetUserByEmail(ctx context.Context, email string) (*User, error) {

	db := config.GetDB()
	var user User
	if err := db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Login verifies the credentials and returns a signed token for the user.
func Login(ctx context.Context, email string, password string) (string, *User, error) {

	user, err := GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.New("invalid email or password")
	}
	if user.IsActive == nil || !*user.IsActive {
		return "", nil, errors.New("user is inactive")
	}
	if err := utils.ComparePassword(user.PasswordHash, password); err != nil {
		return "", nil, errors.New("invalid email or password")
	}

	token, err := utils.JwtGenerate(user.ID, string(user.Role), user.Name)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
