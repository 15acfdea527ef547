package services

import (
	"fmt"
	"sort"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type DashboardService struct {
	db           *gorm.DB
	cfg          config.StudyConfig
	challenges   *ChallengeService
	observations *ObservationService
}

func NewDashboardService(db *gorm.DB, cfg config.StudyConfig, ch *ChallengeService, obs *ObservationService) *DashboardService {
	return &DashboardService{db: db, cfg: cfg, challenges: ch, observations: obs}
}

type InProgressCheck struct {
	SessionID uint `json:"session_id"`
	Milestone int  `json:"milestone"`
	ItemCount int  `json:"item_count"`
}

type SessionOriginChart struct {
	SessionID   uint               `json:"session_id"`
	Milestone   int                `json:"milestone"`
	CompletedAt time.Time          `json:"completed_at"`
	Origins     map[OriginTier]int `json:"origins"`
}

type Activity struct {
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date,omitempty"`
}

type Overview struct {
	CompletedChecks  int                  `json:"completed_checks"`
	LastCompletedAt  *time.Time           `json:"last_completed_at,omitempty"`
	InProgress       *InProgressCheck     `json:"in_progress,omitempty"`
	TotalItems       int                  `json:"total_items"`
	Challenges       ChallengeSummary     `json:"challenges"`
	SurveyCompleted  bool                 `json:"survey_completed"`
	ObservationCount int                  `json:"observation_count"`
	OriginCharts     []SessionOriginChart `json:"origin_charts"`
	RecentActivities []Activity           `json:"recent_activities"`
}

// Overview builds the per-user dashboard. A session only counts as a
// completed check when completed_at is set AND the thresholds still hold,
// the same recheck the dashboard always did.
func (s *DashboardService) Overview(userID uint) (*Overview, error) {
	var sessions []models.KitchenCheckSession
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list sessions", Err: err}
	}

	var items []models.KitchenItem
	if err := s.db.Where("user_id = ?", userID).Order("added_at ASC").Find(&items).Error; err != nil {
		return nil, &PersistenceError{Op: "list items", Err: err}
	}

	bySession := make(map[uint][]models.KitchenItem)
	for _, item := range items {
		bySession[item.SessionID] = append(bySession[item.SessionID], item)
	}

	isComplete := func(sess models.KitchenCheckSession) bool {
		if sess.CompletedAt == nil {
			return false
		}
		sessItems := bySession[sess.ID]
		categories := make(map[string]struct{})
		for _, it := range sessItems {
			categories[it.Category] = struct{}{}
		}
		return len(sessItems) >= s.cfg.RequiredItems && len(categories) >= s.cfg.RequiredCategories
	}

	out := &Overview{TotalItems: len(items)}

	var completed []models.KitchenCheckSession
	for _, sess := range sessions {
		if isComplete(sess) {
			completed = append(completed, sess)
			continue
		}
		if sess.CompletedAt == nil && len(bySession[sess.ID]) > 0 && out.InProgress == nil {
			out.InProgress = &InProgressCheck{
				SessionID: sess.ID,
				Milestone: sess.Milestone,
				ItemCount: len(bySession[sess.ID]),
			}
		}
	}
	sort.Slice(completed, func(i, j int) bool {
		return completed[i].CompletedAt.Before(*completed[j].CompletedAt)
	})

	out.CompletedChecks = len(completed)
	for _, sess := range completed {
		out.LastCompletedAt = sess.CompletedAt
		out.OriginCharts = append(out.OriginCharts, SessionOriginChart{
			SessionID:   sess.ID,
			Milestone:   sess.Milestone,
			CompletedAt: *sess.CompletedAt,
			Origins:     OriginBreakdown(bySession[sess.ID]),
		})
	}

	summary, err := s.challenges.Summary(userID)
	if err != nil {
		return nil, err
	}
	out.Challenges = *summary

	observations, err := s.observations.ListAnswers(userID)
	if err != nil {
		return nil, err
	}
	out.ObservationCount = len(observations)
	out.SurveyCompleted = len(observations) > 0

	out.RecentActivities = s.buildActivities(out, completed, observations)
	return out, nil
}

func (s *DashboardService) buildActivities(out *Overview, completed []models.KitchenCheckSession, observations []models.Observation) []Activity {
	var activities []Activity

	if len(completed) > 0 {
		last := completed[len(completed)-1]
		activities = append(activities, Activity{
			Type:        "kitchen",
			Title:       "Küchen-Check abgeschlossen",
			Description: fmt.Sprintf("Küchen-Check %d dokumentiert", last.Milestone),
			Date:        last.CompletedAt,
		})
	}
	if out.InProgress != nil {
		activities = append(activities, Activity{
			Type:  "kitchen-inprogress",
			Title: "Küchen-Check in Bearbeitung",
			Description: fmt.Sprintf("%d/%d Einträge",
				out.InProgress.ItemCount, s.cfg.RequiredItems),
		})
	}
	if out.Challenges.Completed > 0 {
		activities = append(activities, Activity{
			Type:        "challenge",
			Title:       "Challenge abgeschlossen",
			Description: fmt.Sprintf("%d Challenges abgeschlossen", out.Challenges.Completed),
		})
	}
	if len(observations) > 0 {
		activities = append(activities, Activity{
			Type:        "observation",
			Title:       "Umfrage abgeschickt",
			Description: fmt.Sprintf("%d Beobachtungen", len(observations)),
			Date:        &observations[0].ObservedAt,
		})
	}
	return activities
}
