package controllers

import (
	"net/http"

	"backend/data"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type ObservationController struct {
	Svc *services.ObservationService
}

func NewObservationController(svc *services.ObservationService) *ObservationController {
	return &ObservationController{Svc: svc}
}

// GET /observations/questions
func (oc *ObservationController) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, data.Questions)
}

// GET /observations
func (oc *ObservationController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	answers, err := oc.Svc.ListAnswers(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"completed": len(answers) > 0,
		"answers":   answers,
	})
}

type SubmitObservationsInput struct {
	Answers []services.AnswerInput `json:"answers" binding:"required"`
}

// POST /observations
func (oc *ObservationController) Submit(c *gin.Context) {
	uid := c.GetUint("userID")

	var input SubmitObservationsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := oc.Svc.SubmitAnswers(uid, input.Answers); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "survey submitted"})
}
