package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/UJJWAL-7777/Diet-Manager/config"
	"github.com/UJJWAL-7777/Diet-Manager/models"
	"github.com/UJJWAL-7777/Diet-Manager/utils"

	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const resetTokenTTL = 10 * time.Minute

// RegisterUser creates an account and returns it with a signed token.
func RegisterUser(username, email, password string) (*models.User, string, error) {
	var existing models.User
	err := config.DB.Where("email = ? OR username = ?", email, username).First(&existing).Error
	if err == nil {
		return nil, "", errors.New("user already exists with this email or username")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{Username: username, Email: email, Password: hashed}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// AuthenticateUser checks credentials and returns the user with a token.
func AuthenticateUser(email, password string) (*models.User, string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// StartPasswordReset stores a hashed reset token and mails the raw one.
// Returns gorm.ErrRecordNotFound when no account matches; callers decide
// whether to reveal that.
func StartPasswordReset(email, frontendURL string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return err
	}

	raw, err := utils.GenerateResetToken()
	if err != nil {
		return err
	}
	user.ResetToken = utils.HashToken(raw)
	user.ResetTokenExp = time.Now().Add(resetTokenTTL)
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", frontendURL, raw)
	if err := utils.SendResetEmail(user.Email, resetURL); err != nil {
		// don't leave a live token behind if the mail never went out
		user.ResetToken = ""
		user.ResetTokenExp = time.Time{}
		config.DB.Save(&user)
		return err
	}
	return nil
}

// ResetPassword redeems a raw reset token for a new password.
func ResetPassword(rawToken, newPassword string) error {
	var user models.User
	err := config.DB.
		Where("reset_token = ? AND reset_token_exp > ?", utils.HashToken(rawToken), time.Now()).
		First(&user).Error
	if err != nil {
		return errors.New("invalid or expired reset token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}
