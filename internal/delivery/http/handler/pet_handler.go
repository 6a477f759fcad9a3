package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"austay/internal/usecase/pet"
	"austay/pkg/utils"
)

type PetHandler struct {
	service *pet.Service
}

func NewPetHandler(service *pet.Service) *PetHandler {
	return &PetHandler{service: service}
}

func (h *PetHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.POST("/pets", h.Create)
}

func (h *PetHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	pets := router.Group("/pets")
	{
		pets.GET("", h.GetAll)
		pets.GET("/:pet_id", h.GetByID)
		pets.PUT("/:pet_id", h.Update)
		pets.DELETE("/:pet_id", h.Delete)
	}
}

func (h *PetHandler) Create(c *gin.Context) {
	var req pet.CreateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Pet created successfully", resp)
}

func (h *PetHandler) GetAll(c *gin.Context) {
	skip, limit := parsePagination(c)

	resp, err := h.service.GetAll(c.Request.Context(), skip, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pets retrieved successfully", resp)
}

func (h *PetHandler) GetByID(c *gin.Context) {
	petID, ok := parseIDParam(c, "pet_id")
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), petID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pet retrieved successfully", resp)
}

func (h *PetHandler) Update(c *gin.Context) {
	petID, ok := parseIDParam(c, "pet_id")
	if !ok {
		return
	}

	var req pet.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), petID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pet updated successfully", resp)
}

func (h *PetHandler) Delete(c *gin.Context) {
	petID, ok := parseIDParam(c, "pet_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), petID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pet deleted successfully", nil)
}
