package services

import (
	"errors"
	"log"

	"backend/config"
	"backend/models"
	"backend/utils"
)

func RegisterUser(email, password, participantID string) error {
	if participantID == "" {
		return &ValidationError{Field: "participant_id", Reason: "required"}
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:         email,
		Password:      hashedPassword,
		ParticipantID: participantID,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return &PersistenceError{Op: "create user", Err: err}
	}

	// Best effort; registration succeeds even if the mail bounces.
	if err := utils.SendWelcomeEmail(email, participantID); err != nil {
		log.Printf("welcome mail to %s failed: %v", email, err)
	}
	return nil
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func FindUserByEmail(email string) (models.User, error) {
	var user models.User
	err := config.DB.Where("email = ?", email).First(&user).Error
	return user, err
}
