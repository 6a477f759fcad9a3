package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"austay/internal/usecase/pagamento"
	"austay/pkg/utils"
)

type PagamentoHandler struct {
	service *pagamento.Service
}

func NewPagamentoHandler(service *pagamento.Service) *PagamentoHandler {
	return &PagamentoHandler{service: service}
}

func (h *PagamentoHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	pagamentos := router.Group("/pagamentos")
	{
		pagamentos.POST("", h.Pay)
		pagamentos.GET("", h.GetAll)
		pagamentos.GET("/:pagamento_id", h.GetByID)
		pagamentos.PUT("/:pagamento_id", h.Update)
		pagamentos.DELETE("/:pagamento_id", h.Delete)
	}
}

// Pay settles the payment that already exists for the given estadia.
func (h *PagamentoHandler) Pay(c *gin.Context) {
	var req pagamento.PayRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Pay(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pagamento completed successfully", resp)
}

func (h *PagamentoHandler) GetAll(c *gin.Context) {
	skip, limit := parsePagination(c)

	resp, err := h.service.GetAll(c.Request.Context(), skip, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pagamentos retrieved successfully", resp)
}

func (h *PagamentoHandler) GetByID(c *gin.Context) {
	pagamentoID, ok := parseIDParam(c, "pagamento_id")
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), pagamentoID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pagamento retrieved successfully", resp)
}

func (h *PagamentoHandler) Update(c *gin.Context) {
	pagamentoID, ok := parseIDParam(c, "pagamento_id")
	if !ok {
		return
	}

	var req pagamento.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), pagamentoID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pagamento updated successfully", resp)
}

// Delete puts the payment back in the unpaid state. The row survives so the
// estadia can be settled again later.
func (h *PagamentoHandler) Delete(c *gin.Context) {
	pagamentoID, ok := parseIDParam(c, "pagamento_id")
	if !ok {
		return
	}

	resp, err := h.service.Delete(c.Request.Context(), pagamentoID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pagamento reset successfully", resp)
}
