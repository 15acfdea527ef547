package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type KitchenCheckController struct {
	Svc *services.KitchenCheckService
}

func NewKitchenCheckController(svc *services.KitchenCheckService) *KitchenCheckController {
	return &KitchenCheckController{Svc: svc}
}

type EnsureSessionInput struct {
	Milestone int `json:"milestone" binding:"required"`
}

// POST /kitchen-check/sessions
func (kc *KitchenCheckController) EnsureSession(c *gin.Context) {
	uid := c.GetUint("userID")

	var input EnsureSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := kc.Svc.EnsureOpenSession(uid, input.Milestone)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	progress, err := kc.Svc.ComputeProgress(sess.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": sess, "progress": progress})
}

// GET /kitchen-check/milestones/:milestone
func (kc *KitchenCheckController) MilestoneState(c *gin.Context) {
	uid := c.GetUint("userID")
	milestone, ok := intParam(c, "milestone")
	if !ok {
		return
	}

	status, err := kc.Svc.MilestoneState(uid, milestone)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GET /kitchen-check/sessions/:id/items
func (kc *KitchenCheckController) ListItems(c *gin.Context) {
	uid := c.GetUint("userID")
	sessionID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	items, err := kc.Svc.ListItems(uid, sessionID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /kitchen-check/sessions/:id/items
func (kc *KitchenCheckController) AddItem(c *gin.Context) {
	uid := c.GetUint("userID")
	sessionID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var input services.ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := kc.Svc.AddItem(uid, sessionID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PUT /kitchen-check/items/:id
func (kc *KitchenCheckController) UpdateItem(c *gin.Context) {
	uid := c.GetUint("userID")
	itemID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var input services.ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := kc.Svc.UpdateItem(uid, itemID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /kitchen-check/items/:id
func (kc *KitchenCheckController) DeleteItem(c *gin.Context) {
	uid := c.GetUint("userID")
	itemID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := kc.Svc.DeleteItem(uid, itemID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

// GET /kitchen-check/sessions/:id/progress
func (kc *KitchenCheckController) Progress(c *gin.Context) {
	uid := c.GetUint("userID")
	sessionID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	progress, err := kc.Svc.SessionProgress(uid, sessionID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// POST /kitchen-check/sessions/:id/complete
func (kc *KitchenCheckController) CompleteSession(c *gin.Context) {
	uid := c.GetUint("userID")
	sessionID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	sess, err := kc.Svc.CompleteSession(uid, sessionID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}
