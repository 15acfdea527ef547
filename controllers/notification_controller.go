package controllers

import (
	"log"
	"net/http"

	"backend/config"
	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Push *services.PushService
}

func NewNotificationController(ps *services.PushService) *NotificationController {
	return &NotificationController{Push: ps}
}

type ReminderInput struct {
	Milestone int  `json:"milestone" binding:"required"`
	SendMail  bool `json:"send_mail"`
}

// POST /admin/reminders notifies all participants that a check round is due.
func (nc *NotificationController) SendReminder(c *gin.Context) {
	var input ReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pushed, err := nc.Push.SendMilestoneReminder(input.Milestone)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	mailed := 0
	if input.SendMail {
		var users []models.User
		if err := config.DB.Find(&users).Error; err == nil {
			for _, u := range users {
				if err := utils.SendMilestoneReminderEmail(u.Email, input.Milestone); err != nil {
					log.Printf("reminder mail to %s failed: %v", u.Email, err)
					continue
				}
				mailed++
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"pushed": pushed, "mailed": mailed})
}
