package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	Svc *services.ChallengeService
}

func NewChallengeController(svc *services.ChallengeService) *ChallengeController {
	return &ChallengeController{Svc: svc}
}

// GET /challenges
func (cc *ChallengeController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	challenges, err := cc.Svc.ListForUser(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, challenges)
}

type CompleteChallengeInput struct {
	ProofText        string `json:"proof_text"`
	ProofImageBase64 string `json:"proof_image_base64"`
}

// POST /challenges/:id/complete
func (cc *ChallengeController) Complete(c *gin.Context) {
	uid := c.GetUint("userID")
	challengeID, ok := intParam(c, "id")
	if !ok {
		return
	}

	var input CompleteChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	progress, err := cc.Svc.CompleteChallenge(uid, challengeID, input.ProofText, input.ProofImageBase64)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// GET /challenges/summary
func (cc *ChallengeController) Summary(c *gin.Context) {
	uid := c.GetUint("userID")

	summary, err := cc.Svc.Summary(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
