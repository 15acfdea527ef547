package services

import (
	"errors"
	"fmt"
	"time"

	"backend/data"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type ChallengeService struct {
	db  *gorm.DB
	rek *RekognitionService // nil disables proof-photo moderation
}

func NewChallengeService(db *gorm.DB, rek *RekognitionService) *ChallengeService {
	return &ChallengeService{db: db, rek: rek}
}

// ChallengeWithProgress joins the static catalog with the user's progress row.
type ChallengeWithProgress struct {
	data.Challenge
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	ProofText   string     `json:"proof_text,omitempty"`
	ProofPhoto  string     `json:"proof_photo,omitempty"`
}

type ChallengeSummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Percent   int `json:"percent"`
}

func (s *ChallengeService) ListForUser(userID uint) ([]ChallengeWithProgress, error) {
	var rows []models.MiniChallengeProgress
	if err := s.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, &PersistenceError{Op: "list challenge progress", Err: err}
	}

	byChallenge := make(map[int]models.MiniChallengeProgress, len(rows))
	for _, row := range rows {
		byChallenge[row.ChallengeID] = row
	}

	out := make([]ChallengeWithProgress, 0, len(data.Challenges))
	for _, ch := range data.Challenges {
		entry := ChallengeWithProgress{Challenge: ch}
		if row, ok := byChallenge[ch.ID]; ok {
			entry.Completed = row.Completed
			entry.CompletedAt = row.CompletedAt
			entry.ProofText = row.ProofText
			entry.ProofPhoto = row.ProofPhoto
		}
		out = append(out, entry)
	}
	return out, nil
}

// CompleteChallenge marks a catalog challenge as done, with optional proof
// text and photo. Photos are moderated before upload; a flagged photo fails
// the completion.
func (s *ChallengeService) CompleteChallenge(userID uint, challengeID int, proofText, proofImageBase64 string) (*models.MiniChallengeProgress, error) {
	challenge, ok := data.ChallengeByID(challengeID)
	if !ok {
		return nil, &ValidationError{Field: "challenge_id", Reason: fmt.Sprintf("unknown challenge %d", challengeID)}
	}
	if challenge.RequireProofText && proofText == "" {
		return nil, &ValidationError{Field: "proof_text", Reason: "required for this challenge"}
	}
	if challenge.RequireProofImage && proofImageBase64 == "" {
		return nil, &ValidationError{Field: "proof_image", Reason: "required for this challenge"}
	}

	var photoURL string
	if proofImageBase64 != "" {
		raw, contentType, err := utils.DecodeBase64Image(proofImageBase64)
		if err != nil {
			return nil, &ValidationError{Field: "proof_image", Reason: err.Error()}
		}
		if s.rek != nil {
			labels, err := s.rek.ModerationLabels(raw)
			if err != nil {
				return nil, &PersistenceError{Op: "moderate proof image", Err: err}
			}
			if len(labels) > 0 {
				return nil, &ValidationError{Field: "proof_image", Reason: "image rejected by moderation"}
			}
		}
		photoURL, err = utils.UploadImageToS3(raw, contentType,
			fmt.Sprintf("challenge-proofs/%d_%d", userID, challengeID))
		if err != nil {
			return nil, &PersistenceError{Op: "upload proof image", Err: err}
		}
	}

	now := time.Now()
	var row models.MiniChallengeProgress
	err := s.db.Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = models.MiniChallengeProgress{
			UserID:      userID,
			ChallengeID: challengeID,
			Completed:   true,
			CompletedAt: &now,
			ProofText:   proofText,
			ProofPhoto:  photoURL,
		}
		if err := s.db.Create(&row).Error; err != nil {
			return nil, &PersistenceError{Op: "create challenge progress", Err: err}
		}
	case err != nil:
		return nil, &PersistenceError{Op: "lookup challenge progress", Err: err}
	default:
		row.Completed = true
		row.CompletedAt = &now
		row.ProofText = proofText
		if photoURL != "" {
			row.ProofPhoto = photoURL
		}
		if err := s.db.Save(&row).Error; err != nil {
			return nil, &PersistenceError{Op: "update challenge progress", Err: err}
		}
	}

	EmitStudyEvent(userID, "challenge.completed",
		fmt.Sprintf("Challenge «%s» abgeschlossen", challenge.Title))
	return &row, nil
}

func (s *ChallengeService) Summary(userID uint) (*ChallengeSummary, error) {
	var completed int64
	err := s.db.Model(&models.MiniChallengeProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&completed).Error
	if err != nil {
		return nil, &PersistenceError{Op: "count challenge progress", Err: err}
	}

	total := len(data.Challenges)
	percent := 0
	if total > 0 {
		percent = int(float64(completed)/float64(total)*100 + 0.5)
	}
	return &ChallengeSummary{Total: total, Completed: int(completed), Percent: percent}, nil
}
