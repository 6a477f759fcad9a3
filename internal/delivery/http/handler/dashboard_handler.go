package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"austay/internal/usecase/dashboard"
	"austay/pkg/utils"
)

type DashboardHandler struct {
	service *dashboard.Service
}

func NewDashboardHandler(service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	dash := router.Group("/dashboard")
	{
		dash.GET("", h.Overview)
		dash.GET("/pets-hospedados", h.PetsHospedados)
		dash.GET("/more-days", h.MoreDays)
		dash.GET("/movimentacoes/:date", h.Movimentacoes)
	}
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	resp, err := h.service.Overview(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dashboard retrieved successfully", resp)
}

func (h *DashboardHandler) PetsHospedados(c *gin.Context) {
	resp, err := h.service.PetsHospedados(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Hosted pets retrieved successfully", resp)
}

func (h *DashboardHandler) MoreDays(c *gin.Context) {
	startDay, err := strconv.Atoi(c.Query("start_day"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid start_day")
		return
	}
	numDays, err := strconv.Atoi(c.Query("num_days"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid num_days")
		return
	}

	resp, err := h.service.MoreDays(c.Request.Context(), startDay, numDays)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Upcoming movements retrieved successfully", resp)
}

func (h *DashboardHandler) Movimentacoes(c *gin.Context) {
	resp, err := h.service.Movimentacoes(c.Request.Context(), c.Param("date"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Movements retrieved successfully", resp)
}
