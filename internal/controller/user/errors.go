package user

import (
	"errors"
	"net/http"

	"github.com/dang-hang/CheckPointAI/internal/dto"
	"github.com/dang-hang/CheckPointAI/internal/service"
	"github.com/gin-gonic/gin"
)

// respondError maps service-layer sentinel errors onto HTTP statuses.
// Anything unrecognized is a 500 with a generic message so internal
// details never leak to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}
