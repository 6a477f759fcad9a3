package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domainEstadia "austay/internal/domain/estadia"
	domainPet "austay/internal/domain/pet"
	domainTutor "austay/internal/domain/tutor"
	domainUser "austay/internal/domain/user"
	"austay/internal/logger"
	"austay/internal/middleware"
	appErrors "austay/pkg/errors"
	"austay/pkg/utils"
)

// respondWithError maps domain errors onto HTTP statuses. Anything unmapped
// is logged with its request id and reported as a generic 500.
func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, domainUser.ErrUserNotFound),
		errors.Is(err, domainTutor.ErrTutorNotFound),
		errors.Is(err, domainTutor.ErrTutorsNotFound),
		errors.Is(err, domainPet.ErrPetNotFound),
		errors.Is(err, domainEstadia.ErrEstadiaNotFound),
		errors.Is(err, domainEstadia.ErrPagamentoNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, appErrors.ErrInvalidCredentials),
		errors.Is(err, appErrors.ErrInvalidToken),
		errors.Is(err, appErrors.ErrUnauthorized):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, appErrors.ErrForbidden):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, domainUser.ErrEmailAlreadyUsed),
		errors.Is(err, domainTutor.ErrCPFAlreadyExists),
		errors.Is(err, domainPet.ErrPetHasEstadias),
		errors.Is(err, domainEstadia.ErrPagamentoAlreadyPaid):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, domainUser.ErrResetTokenInvalid),
		errors.Is(err, domainEstadia.ErrAmountNotYetKnown),
		errors.Is(err, appErrors.ErrInvalidInput),
		errors.Is(err, appErrors.ErrWeakPassword):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
			return
		}

		requestID := middleware.GetRequestID(c)
		logger.Error("Internal server error",
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}

// parseIDParam reads a uuid path parameter, answering 400 itself when the
// value does not parse. The bool reports whether the handler may continue.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads the skip/limit query pair shared by every list
// endpoint.
func parsePagination(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return skip, limit
}
