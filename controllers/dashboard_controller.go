package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Svc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

// GET /dashboard/overview
func (dc *DashboardController) Overview(c *gin.Context) {
	uid := c.GetUint("userID")

	overview, err := dc.Svc.Overview(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
