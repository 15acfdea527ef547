package services

import (
	"backend/models"

	"gorm.io/gorm"
)

// ProjectDashboardService aggregates across all participants for the admin
// project dashboard.
type ProjectDashboardService struct {
	db *gorm.DB
}

func NewProjectDashboardService(db *gorm.DB) *ProjectDashboardService {
	return &ProjectDashboardService{db: db}
}

type FoodCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type DayCount struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Count int    `json:"count"`
}

type ProjectSummary struct {
	Participants       int                  `json:"participants"`
	SessionsTotal      int                  `json:"sessions_total"`
	SessionsCompleted  int                  `json:"sessions_completed"`
	ItemsTotal         int                  `json:"items_total"`
	TopFoods           []FoodCount          `json:"top_foods"`
	OriginBreakdown    map[OriginTier]int   `json:"origin_breakdown"`
	CategoryBreakdown  []CategoryCount      `json:"category_breakdown"`
	ChallengesPerDay   []DayCount           `json:"challenges_per_day"`
	SurveyParticipants int                  `json:"survey_participants"`
	RecentEvents       []models.StudyEvent  `json:"recent_events"`
}

func (s *ProjectDashboardService) Summary() (*ProjectSummary, error) {
	out := &ProjectSummary{}

	var n int64
	if err := s.db.Model(&models.User{}).Count(&n).Error; err != nil {
		return nil, &PersistenceError{Op: "count users", Err: err}
	}
	out.Participants = int(n)

	if err := s.db.Model(&models.KitchenCheckSession{}).Count(&n).Error; err != nil {
		return nil, &PersistenceError{Op: "count sessions", Err: err}
	}
	out.SessionsTotal = int(n)

	if err := s.db.Model(&models.KitchenCheckSession{}).
		Where("completed_at IS NOT NULL").Count(&n).Error; err != nil {
		return nil, &PersistenceError{Op: "count completed sessions", Err: err}
	}
	out.SessionsCompleted = int(n)

	if err := s.db.Model(&models.KitchenItem{}).Count(&n).Error; err != nil {
		return nil, &PersistenceError{Op: "count items", Err: err}
	}
	out.ItemsTotal = int(n)

	err := s.db.Model(&models.KitchenItem{}).
		Select("name, count(*) as count").
		Group("name").
		Order("count DESC").
		Limit(10).
		Scan(&out.TopFoods).Error
	if err != nil {
		return nil, &PersistenceError{Op: "top foods", Err: err}
	}

	err = s.db.Model(&models.KitchenItem{}).
		Select("category, count(*) as count").
		Group("category").
		Order("count DESC").
		Scan(&out.CategoryBreakdown).Error
	if err != nil {
		return nil, &PersistenceError{Op: "category breakdown", Err: err}
	}

	// Study-sized data set; classifying in memory beats pushing the EU list
	// into SQL.
	var items []models.KitchenItem
	if err := s.db.Find(&items).Error; err != nil {
		return nil, &PersistenceError{Op: "list items", Err: err}
	}
	out.OriginBreakdown = OriginBreakdown(items)

	err = s.db.Model(&models.MiniChallengeProgress{}).
		Select("DATE(completed_at) as day, count(*) as count").
		Where("completed = ? AND completed_at IS NOT NULL", true).
		Group("DATE(completed_at)").
		Order("day ASC").
		Scan(&out.ChallengesPerDay).Error
	if err != nil {
		return nil, &PersistenceError{Op: "challenges per day", Err: err}
	}

	err = s.db.Model(&models.Observation{}).
		Distinct("user_id").
		Count(&n).Error
	if err != nil {
		return nil, &PersistenceError{Op: "count survey participants", Err: err}
	}
	out.SurveyParticipants = int(n)

	err = s.db.Order("created_at DESC").Limit(20).Find(&out.RecentEvents).Error
	if err != nil {
		return nil, &PersistenceError{Op: "recent events", Err: err}
	}

	return out, nil
}
