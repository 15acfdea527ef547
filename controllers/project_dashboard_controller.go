package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ProjectDashboardController struct {
	Svc *services.ProjectDashboardService
}

func NewProjectDashboardController(svc *services.ProjectDashboardService) *ProjectDashboardController {
	return &ProjectDashboardController{Svc: svc}
}

// GET /admin/project-dashboard
func (pc *ProjectDashboardController) Summary(c *gin.Context) {
	summary, err := pc.Svc.Summary()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
