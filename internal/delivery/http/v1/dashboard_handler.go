package v1

import (
	"net/http"

	"valletta-hr-backend/internal/delivery/http/response"
	"valletta-hr-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(rg *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}
	rg.GET("/dashboard", handler.Get)
}

// Get godoc
// @Summary      Dashboard statistics
// @Description  Live counts: candidates still in the pipeline, active vacancies, interviews touched in the last 7 days.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	data, err := h.dashboardUC.GetDashboard(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard fetched", data)
}
