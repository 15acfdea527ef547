package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type UserProfile struct {
	Email         string `json:"email"`
	ParticipantID string `json:"participant_id"`
	Admin         bool   `json:"admin"`
}

func GetUserProfile(userID uint) (*UserProfile, error) {
	var user models.User
	err := config.DB.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "lookup user", Err: err}
	}
	return &UserProfile{
		Email:         user.Email,
		ParticipantID: user.ParticipantID,
		Admin:         user.Admin,
	}, nil
}

func UpdateParticipantID(userID uint, participantID string) error {
	if participantID == "" {
		return &ValidationError{Field: "participant_id", Reason: "required"}
	}
	res := config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("participant_id", participantID)
	if res.Error != nil {
		return &PersistenceError{Op: "update user", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
