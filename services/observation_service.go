package services

import (
	"fmt"
	"time"

	"backend/data"
	"backend/models"

	"gorm.io/gorm"
)

type ObservationService struct {
	db *gorm.DB
}

func NewObservationService(db *gorm.DB) *ObservationService {
	return &ObservationService{db: db}
}

type AnswerInput struct {
	QuestionID int    `json:"question_id"`
	Value      string `json:"value"`
}

// SubmitAnswers stores the one-time survey. Resubmission replaces all
// previous answers atomically, mirroring the delete-then-insert of the app.
func (s *ObservationService) SubmitAnswers(userID uint, answers []AnswerInput) error {
	if len(answers) == 0 {
		return &ValidationError{Field: "answers", Reason: "required"}
	}

	rows := make([]models.Observation, 0, len(answers))
	now := time.Now()
	for _, a := range answers {
		question, ok := data.QuestionByID(a.QuestionID)
		if !ok {
			return &ValidationError{Field: "question_id", Reason: fmt.Sprintf("unknown question %d", a.QuestionID)}
		}
		if a.Value == "" {
			return &ValidationError{Field: "value", Reason: fmt.Sprintf("answer for question %d is empty", a.QuestionID)}
		}
		rows = append(rows, models.Observation{
			UserID:     userID,
			QuestionID: a.QuestionID,
			Value:      a.Value,
			Category:   question.Category,
			ObservedAt: now,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Observation{}).Error; err != nil {
			return err
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return &PersistenceError{Op: "submit answers", Err: err}
	}

	EmitStudyEvent(userID, "survey.submitted",
		fmt.Sprintf("Abschluss-Umfrage mit %d Antworten abgeschickt", len(rows)))
	return nil
}

func (s *ObservationService) ListAnswers(userID uint) ([]models.Observation, error) {
	var rows []models.Observation
	err := s.db.
		Where("user_id = ?", userID).
		Order("question_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list answers", Err: err}
	}
	return rows, nil
}

// HasCompleted reports survey completion: any answer rows exist.
func (s *ObservationService) HasCompleted(userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Observation{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, &PersistenceError{Op: "count answers", Err: err}
	}
	return count > 0, nil
}
