package services

import (
	"errors"
	"fmt"
	"time"

	"backend/config"
	"backend/data"
	"backend/models"

	"gorm.io/gorm"
)

const (
	MilestoneFirst  = 1 // Küchen-Check 1, Tag 1
	MilestoneSecond = 2 // Küchen-Check 2, Tag 29
)

// Milestone states reported to the dashboard.
const (
	StateNotStarted = "not_started"
	StateInProgress = "in_progress"
	StateCompleted  = "completed"
)

type KitchenCheckService struct {
	db  *gorm.DB
	cfg config.StudyConfig
}

func NewKitchenCheckService(db *gorm.DB, cfg config.StudyConfig) *KitchenCheckService {
	return &KitchenCheckService{db: db, cfg: cfg}
}

type ItemInput struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	Origin           string `json:"origin"`
	OriginDetail     string `json:"origin_detail"`
	Label            string `json:"label"`
	PurchaseLocation string `json:"purchase_location"`
}

type Progress struct {
	ItemCount             int  `json:"item_count"`
	DistinctCategoryCount int  `json:"distinct_category_count"`
	RequiredItems         int  `json:"required_items"`
	RequiredCategories    int  `json:"required_categories"`
	ThresholdMet          bool `json:"threshold_met"`
}

type MilestoneStatus struct {
	State    string                      `json:"state"`
	Session  *models.KitchenCheckSession `json:"session,omitempty"`
	Progress *Progress                   `json:"progress,omitempty"`
}

func validMilestone(m int) bool {
	return m == MilestoneFirst || m == MilestoneSecond
}

// EnsureOpenSession returns the open session for (user, milestone), creating
// one when none exists. A completed session is never reopened; after
// completion the next call starts a fresh round.
func (s *KitchenCheckService) EnsureOpenSession(userID uint, milestone int) (*models.KitchenCheckSession, error) {
	if !validMilestone(milestone) {
		return nil, &ValidationError{Field: "milestone", Reason: fmt.Sprintf("unknown milestone %d", milestone)}
	}

	var sess models.KitchenCheckSession
	err := s.db.
		Where("user_id = ? AND milestone = ? AND completed_at IS NULL", userID, milestone).
		First(&sess).Error
	if err == nil {
		return &sess, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &PersistenceError{Op: "lookup open session", Err: err}
	}

	sess = models.KitchenCheckSession{UserID: userID, Milestone: milestone}
	if err := s.db.Create(&sess).Error; err != nil {
		// The partial unique index fires when a second tab created the session
		// between our lookup and insert. The winner's row is the session.
		var open models.KitchenCheckSession
		if lookupErr := s.db.
			Where("user_id = ? AND milestone = ? AND completed_at IS NULL", userID, milestone).
			First(&open).Error; lookupErr == nil {
			return &open, nil
		}
		return nil, &PersistenceError{Op: "create session", Err: err}
	}
	return &sess, nil
}

// GetSession fetches a session owned by the user.
func (s *KitchenCheckService) GetSession(userID, sessionID uint) (*models.KitchenCheckSession, error) {
	var sess models.KitchenCheckSession
	err := s.db.Where("id = ? AND user_id = ?", sessionID, userID).First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "lookup session", Err: err}
	}
	return &sess, nil
}

func validateItemInput(in ItemInput) error {
	if in.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if in.Category == "" {
		return &ValidationError{Field: "category", Reason: "required"}
	}
	if !data.ValidCategory(in.Category) {
		return &ValidationError{Field: "category", Reason: "not a known category"}
	}
	if in.Origin == "" {
		return &ValidationError{Field: "origin", Reason: "required"}
	}
	if !data.ValidOrigin(in.Origin) {
		return &ValidationError{Field: "origin", Reason: "not a known origin"}
	}
	if in.Origin == data.OriginForeign && in.OriginDetail == "" {
		return &ValidationError{Field: "origin_detail", Reason: "required for foreign origin"}
	}
	if !data.ValidLabel(in.Label) {
		return &ValidationError{Field: "label", Reason: "not a known label"}
	}
	return nil
}

// AddItem appends a documented food entry to one of the user's sessions.
func (s *KitchenCheckService) AddItem(userID, sessionID uint, in ItemInput) (*models.KitchenItem, error) {
	if err := validateItemInput(in); err != nil {
		return nil, err
	}
	if _, err := s.GetSession(userID, sessionID); err != nil {
		return nil, err
	}

	item := models.KitchenItem{
		UserID:           userID,
		SessionID:        sessionID,
		Name:             in.Name,
		Category:         in.Category,
		Origin:           in.Origin,
		OriginDetail:     in.OriginDetail,
		Label:            in.Label,
		PurchaseLocation: in.PurchaseLocation,
		AddedAt:          time.Now(),
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, &PersistenceError{Op: "create item", Err: err}
	}
	return &item, nil
}

func (s *KitchenCheckService) UpdateItem(userID, itemID uint, in ItemInput) (*models.KitchenItem, error) {
	if err := validateItemInput(in); err != nil {
		return nil, err
	}

	var item models.KitchenItem
	err := s.db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "lookup item", Err: err}
	}

	item.Name = in.Name
	item.Category = in.Category
	item.Origin = in.Origin
	item.OriginDetail = in.OriginDetail
	item.Label = in.Label
	item.PurchaseLocation = in.PurchaseLocation
	if err := s.db.Save(&item).Error; err != nil {
		return nil, &PersistenceError{Op: "update item", Err: err}
	}
	return &item, nil
}

func (s *KitchenCheckService) DeleteItem(userID, itemID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.KitchenItem{})
	if res.Error != nil {
		return &PersistenceError{Op: "delete item", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *KitchenCheckService) ListItems(userID, sessionID uint) ([]models.KitchenItem, error) {
	if _, err := s.GetSession(userID, sessionID); err != nil {
		return nil, err
	}
	var items []models.KitchenItem
	err := s.db.
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("added_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list items", Err: err}
	}
	return items, nil
}

// ComputeProgress is a pure read: item count, distinct categories and whether
// the completion threshold is met.
func (s *KitchenCheckService) ComputeProgress(sessionID uint) (*Progress, error) {
	var itemCount int64
	err := s.db.Model(&models.KitchenItem{}).
		Where("session_id = ?", sessionID).
		Count(&itemCount).Error
	if err != nil {
		return nil, &PersistenceError{Op: "count items", Err: err}
	}

	var categoryCount int64
	err = s.db.Model(&models.KitchenItem{}).
		Where("session_id = ?", sessionID).
		Distinct("category").
		Count(&categoryCount).Error
	if err != nil {
		return nil, &PersistenceError{Op: "count categories", Err: err}
	}

	return &Progress{
		ItemCount:             int(itemCount),
		DistinctCategoryCount: int(categoryCount),
		RequiredItems:         s.cfg.RequiredItems,
		RequiredCategories:    s.cfg.RequiredCategories,
		ThresholdMet: int(itemCount) >= s.cfg.RequiredItems &&
			int(categoryCount) >= s.cfg.RequiredCategories,
	}, nil
}

// SessionProgress is the owner-scoped variant used by the HTTP layer.
func (s *KitchenCheckService) SessionProgress(userID, sessionID uint) (*Progress, error) {
	if _, err := s.GetSession(userID, sessionID); err != nil {
		return nil, err
	}
	return s.ComputeProgress(sessionID)
}

// CompleteSession closes a session once its threshold is met. Completing an
// already-completed session is a no-op that returns the session unchanged, so
// a duplicated button click cannot move completed_at.
func (s *KitchenCheckService) CompleteSession(userID, sessionID uint) (*models.KitchenCheckSession, error) {
	sess, err := s.GetSession(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.CompletedAt != nil {
		return sess, nil
	}

	progress, err := s.ComputeProgress(sessionID)
	if err != nil {
		return nil, err
	}
	if !progress.ThresholdMet {
		return nil, &ValidationError{
			Field: "session",
			Reason: fmt.Sprintf("threshold not met: %d/%d items, %d/%d categories",
				progress.ItemCount, s.cfg.RequiredItems,
				progress.DistinctCategoryCount, s.cfg.RequiredCategories),
		}
	}

	now := time.Now()
	if err := s.db.Model(sess).Update("completed_at", now).Error; err != nil {
		return nil, &PersistenceError{Op: "complete session", Err: err}
	}
	sess.CompletedAt = &now

	EmitStudyEvent(userID, "session.completed",
		fmt.Sprintf("Küchen-Check %d abgeschlossen (%d Einträge)", sess.Milestone, progress.ItemCount))
	return sess, nil
}

// MilestoneState answers not_started / in_progress / completed for a
// (user, milestone) without the create side effect of EnsureOpenSession.
// An open session with zero items still counts as not started.
func (s *KitchenCheckService) MilestoneState(userID uint, milestone int) (*MilestoneStatus, error) {
	if !validMilestone(milestone) {
		return nil, &ValidationError{Field: "milestone", Reason: fmt.Sprintf("unknown milestone %d", milestone)}
	}

	var completed models.KitchenCheckSession
	err := s.db.
		Where("user_id = ? AND milestone = ? AND completed_at IS NOT NULL", userID, milestone).
		Order("completed_at DESC").
		First(&completed).Error
	if err == nil {
		progress, perr := s.ComputeProgress(completed.ID)
		if perr != nil {
			return nil, perr
		}
		return &MilestoneStatus{State: StateCompleted, Session: &completed, Progress: progress}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &PersistenceError{Op: "lookup completed session", Err: err}
	}

	var open models.KitchenCheckSession
	err = s.db.
		Where("user_id = ? AND milestone = ? AND completed_at IS NULL", userID, milestone).
		First(&open).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &MilestoneStatus{State: StateNotStarted}, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "lookup open session", Err: err}
	}

	progress, err := s.ComputeProgress(open.ID)
	if err != nil {
		return nil, err
	}
	if progress.ItemCount == 0 {
		return &MilestoneStatus{State: StateNotStarted, Session: &open, Progress: progress}, nil
	}
	return &MilestoneStatus{State: StateInProgress, Session: &open, Progress: progress}, nil
}

// DeleteSession removes a session together with its items. Cascade on purpose:
// orphaned items would otherwise keep counting on the dashboard.
func (s *KitchenCheckService) DeleteSession(userID, sessionID uint) error {
	if _, err := s.GetSession(userID, sessionID); err != nil {
		return err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&models.KitchenItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", sessionID, userID).
			Delete(&models.KitchenCheckSession{}).Error
	})
	if err != nil {
		return &PersistenceError{Op: "delete session", Err: err}
	}
	return nil
}
