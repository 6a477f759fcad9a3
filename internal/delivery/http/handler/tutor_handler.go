package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	petUsecase "austay/internal/usecase/pet"
	"austay/internal/usecase/tutor"
	"austay/pkg/utils"
)

type TutorHandler struct {
	service    *tutor.Service
	petService *petUsecase.Service
}

func NewTutorHandler(service *tutor.Service, petService *petUsecase.Service) *TutorHandler {
	return &TutorHandler{service: service, petService: petService}
}

func (h *TutorHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.POST("/tutors", h.Create)
}

func (h *TutorHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	tutors := router.Group("/tutors")
	{
		tutors.GET("", h.GetAll)
		tutors.GET("/:tutor_id", h.GetByID)
		tutors.GET("/:tutor_id/pets", h.GetPets)
		tutors.PUT("/:tutor_id", h.Update)
		tutors.DELETE("/:tutor_id", h.Delete)
	}
}

func (h *TutorHandler) Create(c *gin.Context) {
	var req tutor.CreateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = utils.SanitizeString(req.Name)
	req.CPF = utils.SanitizeDigits(req.CPF)
	req.Phone = utils.SanitizePhone(req.Phone)

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Tutor created successfully", resp)
}

func (h *TutorHandler) GetAll(c *gin.Context) {
	skip, limit := parsePagination(c)

	resp, err := h.service.GetAll(c.Request.Context(), skip, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tutors retrieved successfully", resp)
}

func (h *TutorHandler) GetByID(c *gin.Context) {
	tutorID, ok := parseIDParam(c, "tutor_id")
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), tutorID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tutor retrieved successfully", resp)
}

// GetPets lists every pet linked to a tutor.
func (h *TutorHandler) GetPets(c *gin.Context) {
	tutorID, ok := parseIDParam(c, "tutor_id")
	if !ok {
		return
	}

	resp, err := h.petService.ListByTutor(c.Request.Context(), tutorID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pets retrieved successfully", resp)
}

func (h *TutorHandler) Update(c *gin.Context) {
	tutorID, ok := parseIDParam(c, "tutor_id")
	if !ok {
		return
	}

	var req tutor.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name != nil {
		sanitized := utils.SanitizeString(*req.Name)
		req.Name = &sanitized
	}
	if req.CPF != nil {
		sanitized := utils.SanitizeDigits(*req.CPF)
		req.CPF = &sanitized
	}
	if req.Phone != nil {
		sanitized := utils.SanitizePhone(*req.Phone)
		req.Phone = &sanitized
	}

	resp, err := h.service.Update(c.Request.Context(), tutorID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tutor updated successfully", resp)
}

func (h *TutorHandler) Delete(c *gin.Context) {
	tutorID, ok := parseIDParam(c, "tutor_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), tutorID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tutor deleted successfully", nil)
}
