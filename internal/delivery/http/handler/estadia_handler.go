package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"austay/internal/usecase/estadia"
	"austay/pkg/utils"
)

type EstadiaHandler struct {
	service *estadia.Service
}

func NewEstadiaHandler(service *estadia.Service) *EstadiaHandler {
	return &EstadiaHandler{service: service}
}

func (h *EstadiaHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	estadias := router.Group("/estadias")
	{
		estadias.POST("", h.Create)
		estadias.GET("", h.GetAll)
		estadias.GET("/:estadia_id", h.GetByID)
		estadias.PUT("/:estadia_id", h.Update)
		estadias.DELETE("/:estadia_id", h.Delete)
	}
}

func (h *EstadiaHandler) Create(c *gin.Context) {
	var req estadia.CreateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Estadia created successfully", resp)
}

func (h *EstadiaHandler) GetAll(c *gin.Context) {
	skip, limit := parsePagination(c)

	resp, err := h.service.GetAll(c.Request.Context(), skip, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Estadias retrieved successfully", resp)
}

func (h *EstadiaHandler) GetByID(c *gin.Context) {
	estadiaID, ok := parseIDParam(c, "estadia_id")
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), estadiaID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Estadia retrieved successfully", resp)
}

func (h *EstadiaHandler) Update(c *gin.Context) {
	estadiaID, ok := parseIDParam(c, "estadia_id")
	if !ok {
		return
	}

	var req estadia.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), estadiaID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Estadia updated successfully", resp)
}

func (h *EstadiaHandler) Delete(c *gin.Context) {
	estadiaID, ok := parseIDParam(c, "estadia_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), estadiaID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Estadia deleted successfully", nil)
}
