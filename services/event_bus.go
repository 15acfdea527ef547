package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type eventDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _events eventDeps

func InitEventDeps(db *gorm.DB, rt *RealtimeHub) {
	_events = eventDeps{db: db, rt: rt}
}

// EmitStudyEvent records a participant activity and pushes it live to the
// project dashboard. Safe to call anywhere; a no-op until initialized.
func EmitStudyEvent(userID uint, typ, message string) {
	if _events.db == nil {
		return
	}
	ev := &models.StudyEvent{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _events.db.Create(ev).Error

	if _events.rt != nil {
		_events.rt.Broadcast(map[string]any{
			"kind":  "event.created",
			"event": ev,
		})
	}
}
